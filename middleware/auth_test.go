package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"geopost-api/config"
	"geopost-api/models"
	"geopost-api/repositories"
	"geopost-api/services"
	"geopost-api/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthTest(t *testing.T) (*gin.Engine, services.TokenService, repositories.UserRepository) {
	gin.SetMode(gin.TestMode)

	db := testutil.OpenTestDB(t)
	userRepo := repositories.NewUserRepository(db)
	tokens := services.NewTokenService(config.NewStaticKeyProvider("test-secret"), 30*time.Minute)

	router := gin.New()
	router.GET("/protected", Authenticated(tokens, userRepo), func(c *gin.Context) {
		user, _ := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"username": user.Username})
	})
	router.GET("/vip", Authenticated(tokens, userRepo), RequireVIP(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	router.GET("/admin", Authenticated(tokens, userRepo), RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	return router, tokens, userRepo
}

func do(router *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthenticatedMissingHeader(t *testing.T) {
	router, _, _ := setupAuthTest(t)
	w := do(router, "/protected", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticatedMalformedHeader(t *testing.T) {
	router, _, _ := setupAuthTest(t)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Basic abc123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticatedInvalidToken(t *testing.T) {
	router, _, _ := setupAuthTest(t)
	w := do(router, "/protected", "garbage.token.here")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticatedExpiredToken(t *testing.T) {
	router, tokens, userRepo := setupAuthTest(t)
	require.NoError(t, userRepo.Create(&models.User{Username: "alice", Email: "a@example.com", Password: "x"}))

	token, err := tokens.Issue("alice", 0)
	require.NoError(t, err)

	w := do(router, "/protected", token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticatedUnknownSubject(t *testing.T) {
	router, tokens, _ := setupAuthTest(t)

	// Valid signature but the subject does not exist in the store.
	token, err := tokens.Issue("ghost", time.Minute)
	require.NoError(t, err)

	w := do(router, "/protected", token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticatedResolvesUser(t *testing.T) {
	router, tokens, userRepo := setupAuthTest(t)
	require.NoError(t, userRepo.Create(&models.User{Username: "alice", Email: "a@example.com", Password: "x"}))

	token, err := tokens.Issue("alice", time.Minute)
	require.NoError(t, err)

	w := do(router, "/protected", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alice")
}

func TestEntitlementGatesReadLiveFlags(t *testing.T) {
	router, tokens, userRepo := setupAuthTest(t)
	user := &models.User{Username: "bob", Email: "b@example.com", Password: "x"}
	require.NoError(t, userRepo.Create(user))

	token, err := tokens.Issue("bob", time.Minute)
	require.NoError(t, err)

	assert.Equal(t, http.StatusForbidden, do(router, "/vip", token).Code)
	assert.Equal(t, http.StatusForbidden, do(router, "/admin", token).Code)

	// Flip the flags in the store; the unchanged token now passes both
	// gates because entitlements are re-read per request.
	user.IsVIP = true
	user.IsAdmin = true
	require.NoError(t, userRepo.Update(user))

	assert.Equal(t, http.StatusOK, do(router, "/vip", token).Code)
	assert.Equal(t, http.StatusOK, do(router, "/admin", token).Code)
}
