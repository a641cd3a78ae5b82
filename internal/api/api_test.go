package api

import (
	"bytes"
	"encoding/json"
	"io"
	"movie_favourites/internal/domain"
	"movie_favourites/internal/middleware"
	"movie_favourites/internal/service"
	"movie_favourites/internal/utils"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

// newTestRouter builds the full route table against an in-memory sqlite
// database and a miniredis instance, mirroring the wiring in cmd/server.
func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Every pooled connection to :memory: is a separate database; pin the pool
	// to one connection so all queries see the same tables.
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Favourite{}))

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	authSvc := service.NewAuthService(db, testSecret)
	favSvc := service.NewFavouriteService(db)

	r := gin.New()
	r.GET("/", HomeHandler())
	r.POST("/api/register", RegisterHandler(authSvc))
	r.POST("/api/login", LoginHandler(authSvc))
	authGroup := r.Group("/api")
	authGroup.Use(middleware.JWTAuthMiddleware(testSecret))
	authGroup.POST("/toogle_favourites", ToggleFavouritesHandler(favSvc, rdb))
	authGroup.GET("/favourites", GetFavouritesHandler(favSvc, rdb))
	authGroup.GET("/check-token", CheckTokenHandler(authSvc))
	return r, db
}

// doJSON performs a request with an optional bearer token and JSON body
func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// decodeBody unmarshals a JSON response body into a map
func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// registerAndLogin creates a user through the API and returns its token
func registerAndLogin(t *testing.T, r *gin.Engine, username, email string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/register", "", gin.H{"username": username, "email": email})
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(t, r, http.MethodPost, "/api/login", "", gin.H{"username": username, "email": email})
	require.Equal(t, http.StatusOK, w.Code)
	token, ok := decodeBody(t, w)["access_token"].(string)
	require.True(t, ok, "login response must carry access_token")
	return token
}

func TestHome(t *testing.T) {
	r, _ := newTestRouter(t)
	w := doJSON(t, r, http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Home", w.Body.String())
}

func TestTokenRoundTrip(t *testing.T) {
	r, db := newTestRouter(t)
	token := registerAndLogin(t, r, "alice", "a@x.com")

	var user domain.User
	require.NoError(t, db.Where("username = ?", "alice").First(&user).Error)

	claims, err := utils.ParseJWT(token, testSecret)
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.UserID)
}
