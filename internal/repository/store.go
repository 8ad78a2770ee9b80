package repository

import (
	"sync"

	"github.com/recipebox/recipebox-go/internal/model"
)

// Store is the process-lifetime in-memory database. Recipes live in a single
// map keyed by id with an insertion-ordered per-user index, so ownership and
// the public listing read from one source of truth. One mutex guards all
// collections: every mutating operation (user creation, recipe create/update/
// delete) is atomic with respect to concurrent requests.
//
// A Store is constructed per process (and per test) and handed to the
// repositories; there is no package-level instance.
type Store struct {
	mu sync.RWMutex

	users        map[int64]*model.User
	emails       map[string]int64
	nextUserID   int64
	recipes      map[int64]*model.Recipe
	userRecipes  map[int64][]int64
	nextRecipeID int64
}

// NewStore creates an empty Store. IDs for both users and recipes are assigned
// sequentially starting at 1.
func NewStore() *Store {
	return &Store{
		users:        make(map[int64]*model.User),
		emails:       make(map[string]int64),
		nextUserID:   1,
		recipes:      make(map[int64]*model.Recipe),
		userRecipes:  make(map[int64][]int64),
		nextRecipeID: 1,
	}
}
