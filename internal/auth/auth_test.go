package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"gamehub/backend/internal/config"
	"gamehub/backend/internal/database/dbtest"
	"gamehub/backend/internal/models"
	"gamehub/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupRouter(t *testing.T, db *gorm.DB) *gin.Engine {
	t.Helper()
	prev := config.AppConfig
	config.AppConfig = &config.Config{JWTSecret: "test-secret"}
	t.Cleanup(func() { config.AppConfig = prev })

	whoami := func(c *gin.Context) {
		id, ok := PlayerID(c)
		c.JSON(http.StatusOK, gin.H{"player_id": id, "authenticated": ok})
	}

	r := gin.New()
	r.GET("/private", AuthMiddleware(), whoami)
	r.GET("/public", OptionalAuthMiddleware(), whoami)
	r.GET("/admin", AuthMiddleware(), AdminMiddleware(db), whoami)
	return r
}

func get(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	db := dbtest.New(t)
	r := setupRouter(t, db)
	player := dbtest.Player(t, db, "alice")
	token, err := jwt.GenerateToken(player.ID)
	require.NoError(t, err)

	w := get(r, "/private", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"unauthorized"`)

	w = get(r, "/private", "garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = get(r, "/private", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"player_id": 1, "authenticated": true}`, w.Body.String())
}

func TestOptionalAuthMiddleware(t *testing.T) {
	db := dbtest.New(t)
	r := setupRouter(t, db)

	w := get(r, "/public", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"player_id": 0, "authenticated": false}`, w.Body.String())

	w = get(r, "/public", "garbage")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"player_id": 0, "authenticated": false}`, w.Body.String())

	token, err := jwt.GenerateToken(5)
	require.NoError(t, err)
	w = get(r, "/public", token)
	assert.JSONEq(t, `{"player_id": 5, "authenticated": true}`, w.Body.String())
}

func TestAdminMiddleware(t *testing.T) {
	db := dbtest.New(t)
	r := setupRouter(t, db)

	regular := dbtest.Player(t, db, "alice")
	staff := dbtest.Player(t, db, "root")
	require.NoError(t, db.Model(&models.Player{}).Where("id = ?", staff.ID).Update("is_staff", true).Error)

	tokenFor := func(id uint) string {
		token, err := jwt.GenerateToken(id)
		require.NoError(t, err)
		return token
	}

	assert.Equal(t, http.StatusForbidden, get(r, "/admin", tokenFor(regular.ID)).Code)
	assert.Equal(t, http.StatusOK, get(r, "/admin", tokenFor(staff.ID)).Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/admin", tokenFor(999)).Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/admin", "").Code)
}
