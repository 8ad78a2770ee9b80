package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/recipebox/recipebox-go/internal/middleware"
)

// NewRouter assembles the API routes. Protected routes sit behind the token
// gate; register, login and the public recipe listing do not.
func NewRouter(authHandler *AuthHandler, recipeHandler *RecipeHandler, jwtSecret string) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Post("/api/register", authHandler.HandleRegister)
	r.Post("/api/login", authHandler.HandleLogin)
	r.Get("/api/recipes/public", recipeHandler.HandleListPublic)

	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(jwtSecret))
		r.Get("/api/protected", authHandler.HandleProtected)

		r.Get("/api/recipes/me", recipeHandler.HandleListMine)
		r.Post("/api/recipes", recipeHandler.HandleCreate)
		r.Put("/api/recipes/{id}", recipeHandler.HandleUpdate)
		r.Delete("/api/recipes/{id}", recipeHandler.HandleDelete)
	})

	return r
}
