package repository

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/recipebox/recipebox-go/internal/model"
)

var ErrRecipeNotFound = errors.New("recipe not found")

// RecipeRepository handles recipe storage operations. All lookups that take a
// userID only see recipes owned by that user; ErrRecipeNotFound covers both
// "absent" and "owned by someone else".
type RecipeRepository struct {
	store *Store
}

// NewRecipeRepository creates a new RecipeRepository backed by the given store.
func NewRecipeRepository(store *Store) *RecipeRepository {
	return &RecipeRepository{store: store}
}

// Create inserts a new recipe, assigns the next sequential id and creation
// time, and records it in the owner's index.
func (r *RecipeRepository) Create(_ context.Context, recipe *model.Recipe) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	recipe.ID = s.nextRecipeID
	recipe.CreatedAt = time.Now().UTC()
	s.nextRecipeID++

	stored := *recipe
	s.recipes[recipe.ID] = &stored
	s.userRecipes[recipe.UserID] = append(s.userRecipes[recipe.UserID], recipe.ID)
	return nil
}

// GetOwned retrieves a recipe by id, restricted to the given owner.
func (r *RecipeRepository) GetOwned(_ context.Context, userID, recipeID int64) (*model.Recipe, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.recipes[recipeID]
	if !ok || stored.UserID != userID {
		return nil, ErrRecipeNotFound
	}
	recipe := *stored
	return &recipe, nil
}

// UpdateOwned applies mutate to the stored recipe under the store lock and
// returns the updated copy. Every field change goes through here, so partial
// updates are atomic and there is no second copy to fall out of sync.
func (r *RecipeRepository) UpdateOwned(_ context.Context, userID, recipeID int64, mutate func(*model.Recipe)) (*model.Recipe, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.recipes[recipeID]
	if !ok || stored.UserID != userID {
		return nil, ErrRecipeNotFound
	}

	mutate(stored)
	recipe := *stored
	return &recipe, nil
}

// DeleteOwned removes a recipe from the store and from the owner's index.
func (r *RecipeRepository) DeleteOwned(_ context.Context, userID, recipeID int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.recipes[recipeID]
	if !ok || stored.UserID != userID {
		return ErrRecipeNotFound
	}

	delete(s.recipes, recipeID)
	ids := s.userRecipes[userID]
	if i := slices.Index(ids, recipeID); i >= 0 {
		s.userRecipes[userID] = slices.Delete(ids, i, i+1)
	}
	return nil
}

// ListByUser returns the user's recipes in insertion order.
func (r *RecipeRepository) ListByUser(_ context.Context, userID int64) ([]model.Recipe, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.userRecipes[userID]
	recipes := make([]model.Recipe, 0, len(ids))
	for _, id := range ids {
		recipes = append(recipes, *s.recipes[id])
	}
	return recipes, nil
}

// ListPublic returns every public recipe in store order. IDs are assigned
// monotonically, so ascending id order equals insertion order.
func (r *RecipeRepository) ListPublic(_ context.Context) ([]model.Recipe, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]int64, 0, len(s.recipes))
	for id, recipe := range s.recipes {
		if recipe.IsPublic {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)

	recipes := make([]model.Recipe, 0, len(ids))
	for _, id := range ids {
		recipes = append(recipes, *s.recipes[id])
	}
	return recipes, nil
}
