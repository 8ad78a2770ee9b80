package service

import (
	"context"
	"errors"

	"github.com/recipebox/recipebox-go/internal/model"
	"github.com/recipebox/recipebox-go/internal/repository"
)

var ErrRecipeNotFound = errors.New("recipe not found or not owned by user")

// RecipeService handles recipe business logic. Every operation except
// ListPublic takes the authenticated user's ID and only ever touches that
// user's recipes.
type RecipeService struct {
	recipes *repository.RecipeRepository
	users   *repository.UserRepository
}

// NewRecipeService creates a new RecipeService.
func NewRecipeService(recipes *repository.RecipeRepository, users *repository.UserRepository) *RecipeService {
	return &RecipeService{recipes: recipes, users: users}
}

// ListMine returns the user's recipes in creation order.
func (s *RecipeService) ListMine(ctx context.Context, userID int64) ([]model.Recipe, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.recipes.ListByUser(ctx, userID)
}

// Create stores a new recipe for the user. The author name is snapshotted from
// the user's current name; isFavorite starts false.
func (s *RecipeService) Create(ctx context.Context, userID int64, req model.CreateRecipeRequest) (*model.Recipe, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	recipe := &model.Recipe{
		UserID:       user.ID,
		Title:        req.Title,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		Calories:     int(req.Calories),
		IsPublic:     req.IsPublic,
		AuthorName:   user.Name,
	}

	if err := s.recipes.Create(ctx, recipe); err != nil {
		return nil, err
	}
	return recipe, nil
}

// Update applies a partial update to a recipe the user owns. String fields and
// calories overwrite only when non-zero — a calories value of 0 means "leave
// unchanged". The boolean fields overwrite whenever present, so an explicit
// false is honored.
func (s *RecipeService) Update(ctx context.Context, userID, recipeID int64, req model.UpdateRecipeRequest) (*model.Recipe, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	recipe, err := s.recipes.UpdateOwned(ctx, userID, recipeID, func(r *model.Recipe) {
		if req.Title != "" {
			r.Title = req.Title
		}
		if req.Ingredients != "" {
			r.Ingredients = req.Ingredients
		}
		if req.Instructions != "" {
			r.Instructions = req.Instructions
		}
		if req.Calories != 0 {
			r.Calories = int(req.Calories)
		}
		if req.IsFavorite != nil {
			r.IsFavorite = *req.IsFavorite
		}
		if req.IsPublic != nil {
			r.IsPublic = *req.IsPublic
		}
	})
	if err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	return recipe, nil
}

// Delete removes a recipe the user owns.
func (s *RecipeService) Delete(ctx context.Context, userID, recipeID int64) error {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	err := s.recipes.DeleteOwned(ctx, userID, recipeID)
	if errors.Is(err, repository.ErrRecipeNotFound) {
		return ErrRecipeNotFound
	}
	return err
}

// ListPublic returns every recipe marked public, in store order. No
// authentication required.
func (s *RecipeService) ListPublic(ctx context.Context) ([]model.Recipe, error) {
	return s.recipes.ListPublic(ctx)
}
