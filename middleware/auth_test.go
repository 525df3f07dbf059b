package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sheep-june/react-node-shop/middleware"
	"github.com/sheep-june/react-node-shop/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB, *bool) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.CartItem{}, &models.HistoryEntry{}))

	reached := false
	r := gin.New()
	r.GET("/protected", middleware.ValidateToken(db), func(c *gin.Context) {
		reached = true
		user, ok := middleware.CurrentUser(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"email": user.Email})
	})
	return r, db, &reached
}

func sign(t *testing.T, secret string, userID uint, expiry time.Duration) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(expiry).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func get(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestMissingTokenRejectedBeforeHandler(t *testing.T) {
	r, _, reached := setupRouter(t)

	w := get(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, *reached)
}

func TestMalformedTokenRejected(t *testing.T) {
	r, _, reached := setupRouter(t)

	w := get(r, "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, *reached)
}

func TestTokenSignedWithWrongSecretRejected(t *testing.T) {
	r, _, reached := setupRouter(t)

	w := get(r, sign(t, "other-secret", 1, time.Hour))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, *reached)
}

func TestExpiredTokenRejected(t *testing.T) {
	r, _, reached := setupRouter(t)

	w := get(r, sign(t, "test-secret", 1, -time.Hour))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, *reached)
}

func TestValidTokenWithoutUserRejected(t *testing.T) {
	r, _, reached := setupRouter(t)

	w := get(r, sign(t, "test-secret", 1234, time.Hour))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, *reached)
}

func TestValidTokenAttachesUser(t *testing.T) {
	r, db, reached := setupRouter(t)

	user := models.User{Email: "june@example.com", Password: "x", Name: "June"}
	require.NoError(t, db.Create(&user).Error)

	w := get(r, sign(t, "test-secret", user.ID, time.Hour))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, *reached)
	assert.Contains(t, w.Body.String(), "june@example.com")
}
