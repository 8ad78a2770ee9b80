package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/recipebox/recipebox-go/internal/middleware"
	"github.com/recipebox/recipebox-go/internal/model"
	"github.com/recipebox/recipebox-go/internal/service"
)

// RecipeHandler handles HTTP requests for recipe operations.
type RecipeHandler struct {
	service *service.RecipeService
}

// NewRecipeHandler creates a new RecipeHandler.
func NewRecipeHandler(svc *service.RecipeService) *RecipeHandler {
	return &RecipeHandler{service: svc}
}

// HandleListMine handles GET /api/recipes/me requests.
func (h *RecipeHandler) HandleListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	recipes, err := h.service.ListMine(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		slog.Error("listing recipes failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, recipes)
}

// HandleCreate handles POST /api/recipes requests.
func (h *RecipeHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	var req model.CreateRecipeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	recipe, err := h.service.Create(r.Context(), userID, req)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		slog.Error("creating recipe failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusCreated, recipe)
}

// HandleUpdate handles PUT /api/recipes/{id} requests.
func (h *RecipeHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	recipeID, ok := recipeIDParam(r)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse(service.ErrRecipeNotFound.Error()))
		return
	}

	var req model.UpdateRecipeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	recipe, err := h.service.Update(r.Context(), userID, recipeID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound), errors.Is(err, service.ErrRecipeNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		default:
			slog.Error("updating recipe failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, recipe)
}

// HandleDelete handles DELETE /api/recipes/{id} requests.
func (h *RecipeHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	recipeID, ok := recipeIDParam(r)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse(service.ErrRecipeNotFound.Error()))
		return
	}

	err := h.service.Delete(r.Context(), userID, recipeID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound), errors.Is(err, service.ErrRecipeNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		default:
			slog.Error("deleting recipe failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, model.MessageResponse{Msg: "Recipe removed"})
}

// HandleListPublic handles GET /api/recipes/public requests. No auth required.
func (h *RecipeHandler) HandleListPublic(w http.ResponseWriter, r *http.Request) {
	recipes, err := h.service.ListPublic(r.Context())
	if err != nil {
		slog.Error("listing public recipes failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, recipes)
}

// recipeIDParam parses the {id} path parameter. A non-numeric id behaves as
// "not found" rather than a distinct error.
func recipeIDParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
