package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recipebox/recipebox-go/internal/middleware"
	"github.com/recipebox/recipebox-go/internal/model"
	"github.com/recipebox/recipebox-go/internal/repository"
	"github.com/recipebox/recipebox-go/internal/service"
)

const testJWTSecret = "test-secret"

func newTestServer(t *testing.T) *resty.Client {
	t.Helper()

	store := repository.NewStore()
	userRepo := repository.NewUserRepository(store)
	recipeRepo := repository.NewRecipeRepository(store)

	authHandler := NewAuthHandler(service.NewAuthService(userRepo, testJWTSecret, time.Hour))
	recipeHandler := NewRecipeHandler(service.NewRecipeService(recipeRepo, userRepo))

	ts := httptest.NewServer(NewRouter(authHandler, recipeHandler, testJWTSecret))
	t.Cleanup(ts.Close)

	return resty.New().SetBaseURL(ts.URL)
}

func register(t *testing.T, client *resty.Client, name, email, password string) string {
	t.Helper()

	var body model.TokenResponse
	resp, err := client.R().
		SetBody(map[string]string{"name": name, "email": email, "password": password}).
		SetResult(&body).
		Post("/api/register")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	require.NotEmpty(t, body.Token)
	return body.Token
}

func TestRegisterValidation(t *testing.T) {
	client := newTestServer(t)

	resp, err := client.R().
		SetBody(map[string]string{"name": "Ann", "password": "pw1"}).
		Post("/api/register")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode())

	register(t, client, "Ann", "a@x.com", "pw1")

	resp, err = client.R().
		SetBody(map[string]string{"name": "Impostor", "email": "a@x.com", "password": "other"}).
		Post("/api/register")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode())
}

func TestLoginRoundtrip(t *testing.T) {
	client := newTestServer(t)
	register(t, client, "Ann", "a@x.com", "pw1")

	var body model.TokenResponse
	resp, err := client.R().
		SetBody(map[string]string{"email": "a@x.com", "password": "pw1"}).
		SetResult(&body).
		Post("/api/login")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.NotEmpty(t, body.Token)

	for _, creds := range []map[string]string{
		{"email": "nobody@x.com", "password": "pw1"},
		{"email": "a@x.com", "password": "wrong"},
	} {
		resp, err := client.R().SetBody(creds).Post("/api/login")
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode())
	}
}

func TestProtectedRoute(t *testing.T) {
	client := newTestServer(t)
	token := register(t, client, "Ann", "a@x.com", "pw1")

	resp, err := client.R().Get("/api/protected")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode())

	resp, err = client.R().
		SetHeader(middleware.TokenHeader, "garbage").
		Get("/api/protected")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode())

	var profile model.ProfileResponse
	resp, err = client.R().
		SetHeader(middleware.TokenHeader, token).
		SetResult(&profile).
		Get("/api/protected")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, "Welcome Ann!", profile.Msg)
	assert.Equal(t, "a@x.com", profile.User.Email)
	assert.NotContains(t, string(resp.Body()), "passwordHash")
}

func TestExpiredTokenRejected(t *testing.T) {
	store := repository.NewStore()
	userRepo := repository.NewUserRepository(store)
	recipeRepo := repository.NewRecipeRepository(store)

	// Issue tokens that are already expired.
	authHandler := NewAuthHandler(service.NewAuthService(userRepo, testJWTSecret, -time.Minute))
	recipeHandler := NewRecipeHandler(service.NewRecipeService(recipeRepo, userRepo))

	ts := httptest.NewServer(NewRouter(authHandler, recipeHandler, testJWTSecret))
	t.Cleanup(ts.Close)
	client := resty.New().SetBaseURL(ts.URL)

	token := register(t, client, "Ann", "a@x.com", "pw1")

	resp, err := client.R().
		SetHeader(middleware.TokenHeader, token).
		Get("/api/protected")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode())
}

func TestRecipeLifecycle(t *testing.T) {
	client := newTestServer(t)
	token := register(t, client, "Ann", "a@x.com", "pw1")

	// Create with calories sent as a string, as the web client does.
	var created model.Recipe
	resp, err := client.R().
		SetHeader(middleware.TokenHeader, token).
		SetBody(map[string]any{
			"title":        "Soup",
			"ingredients":  "water, salt",
			"instructions": "boil",
			"calories":     "120",
			"isPublic":     true,
		}).
		SetResult(&created).
		Post("/api/recipes")
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode())
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, 120, created.Calories)
	assert.True(t, created.IsPublic)
	assert.False(t, created.IsFavorite)
	assert.Equal(t, "Ann", created.AuthorName)

	var mine []model.Recipe
	resp, err = client.R().
		SetHeader(middleware.TokenHeader, token).
		SetResult(&mine).
		Get("/api/recipes/me")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	require.Len(t, mine, 1)
	assert.Equal(t, "Soup", mine[0].Title)

	var public []model.Recipe
	resp, err = client.R().SetResult(&public).Get("/api/recipes/public")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	require.Len(t, public, 1)
	assert.Equal(t, created.ID, public[0].ID)

	var removed model.MessageResponse
	resp, err = client.R().
		SetHeader(middleware.TokenHeader, token).
		SetResult(&removed).
		Delete("/api/recipes/1")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, "Recipe removed", removed.Msg)

	public = nil
	resp, err = client.R().SetResult(&public).Get("/api/recipes/public")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Empty(t, public)
}

func TestCreateRecipeRejectsNonNumericCalories(t *testing.T) {
	client := newTestServer(t)
	token := register(t, client, "Ann", "a@x.com", "pw1")

	resp, err := client.R().
		SetHeader(middleware.TokenHeader, token).
		SetBody(map[string]any{"title": "Soup", "calories": "plenty"}).
		Post("/api/recipes")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode())
	assert.Contains(t, string(resp.Body()), "calories must be a number")
}

func TestUpdateRecipeQuirks(t *testing.T) {
	client := newTestServer(t)
	token := register(t, client, "Ann", "a@x.com", "pw1")

	var created model.Recipe
	resp, err := client.R().
		SetHeader(middleware.TokenHeader, token).
		SetBody(map[string]any{"title": "Soup", "calories": 120, "isPublic": true}).
		SetResult(&created).
		Post("/api/recipes")
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode())

	// calories: 0 is treated as "not supplied"; isFavorite: false is applied.
	var updated model.Recipe
	resp, err = client.R().
		SetHeader(middleware.TokenHeader, token).
		SetBody(map[string]any{"calories": 0, "isFavorite": false, "isPublic": false}).
		SetResult(&updated).
		Put("/api/recipes/1")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, 120, updated.Calories)
	assert.False(t, updated.IsFavorite)
	assert.False(t, updated.IsPublic)
	assert.Equal(t, "Soup", updated.Title)
}

func TestUpdateRecipeOwnership(t *testing.T) {
	client := newTestServer(t)
	annToken := register(t, client, "Ann", "a@x.com", "pw1")
	bobToken := register(t, client, "Bob", "b@x.com", "pw2")

	resp, err := client.R().
		SetHeader(middleware.TokenHeader, annToken).
		SetBody(map[string]any{"title": "Soup"}).
		Post("/api/recipes")
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode())

	resp, err = client.R().
		SetHeader(middleware.TokenHeader, bobToken).
		SetBody(map[string]any{"title": "Hijacked"}).
		Put("/api/recipes/1")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode())

	resp, err = client.R().
		SetHeader(middleware.TokenHeader, bobToken).
		Delete("/api/recipes/1")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode())

	// A non-numeric id behaves as not found.
	resp, err = client.R().
		SetHeader(middleware.TokenHeader, annToken).
		SetBody(map[string]any{"title": "X"}).
		Put("/api/recipes/abc")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode())

	var mine []model.Recipe
	resp, err = client.R().
		SetHeader(middleware.TokenHeader, annToken).
		SetResult(&mine).
		Get("/api/recipes/me")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Soup", mine[0].Title)
}
