package menuControllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Tvilalai/jsd9-catsudon-backend/auth"
	"github.com/Tvilalai/jsd9-catsudon-backend/config"
	"github.com/Tvilalai/jsd9-catsudon-backend/middleware"
	"github.com/Tvilalai/jsd9-catsudon-backend/models"
	"github.com/Tvilalai/jsd9-catsudon-backend/routes"
)

const apiPrefix = "/calnoy-api/v1"

type testAPI struct {
	db     *gorm.DB
	router *gin.Engine
	tokens *auth.TokenManager
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.CartItem{}, &models.Address{},
		&models.Menu{}, &models.Order{}, &models.OrderItem{},
	))

	cfg := config.Config{JWTSecret: "test-secret", TokenTTL: 24 * time.Hour, BcryptCost: 4}
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	routes.SetupRoutes(r.Group(apiPrefix), db, cfg)

	return &testAPI{db: db, router: r, tokens: auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)}
}

func (a *testAPI) seedUser(t *testing.T, username string, role models.Role) string {
	t.Helper()
	user := models.User{
		Username:     username,
		Email:        username + "@x.com",
		Role:         role,
		FirstName:    "Test",
		LastName:     "User",
		PasswordHash: "irrelevant",
	}
	require.NoError(t, a.db.Create(&user).Error)
	token, err := a.tokens.Generate(user)
	require.NoError(t, err)
	return token
}

func (a *testAPI) do(t *testing.T, method, path, token string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, apiPrefix+path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.AddCookie(&http.Cookie{Name: middleware.AccessTokenCookie, Value: token})
	}
	a.router.ServeHTTP(w, req)
	return w
}

func menuPayload(slug string) gin.H {
	return gin.H{
		"name":          "Katsudon",
		"slug":          slug,
		"category":      "rice",
		"type":          "main",
		"price":         129.0,
		"descriptionEn": "Pork cutlet rice bowl",
		"descriptionTh": "ข้าวหน้าหมูทอด",
		"imageUrl":      "https://cdn.example.com/katsudon.jpg",
		"servingSize":   "1 bowl",
		"tagsEn":        []string{"pork", "rice"},
		"allergens":     []string{"egg", "gluten"},
	}
}

func TestMenusArePublic(t *testing.T) {
	api := newTestAPI(t)
	require.NoError(t, api.db.Create(&models.Menu{
		Name: "Katsudon", Slug: "katsudon", Category: "rice", Type: "main",
		Price: 129, ImageURL: "x", Available: true,
	}).Error)

	w := api.do(t, http.MethodGet, "/menus", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "katsudon")

	w = api.do(t, http.MethodGet, "/menus/1", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = api.do(t, http.MethodGet, "/menus/999", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateMenuRequiresAdmin(t *testing.T) {
	api := newTestAPI(t)
	userToken := api.seedUser(t, "alice", models.RoleUser)

	w := api.do(t, http.MethodPost, "/menus", userToken, menuPayload("katsudon"))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = api.do(t, http.MethodPost, "/menus", "", menuPayload("katsudon"))
	assert.Equal(t, http.StatusForbidden, w.Code, "no token at all")
}

func TestAdminMenuCRUD(t *testing.T) {
	api := newTestAPI(t)
	adminToken := api.seedUser(t, "root", models.RoleAdmin)

	w := api.do(t, http.MethodPost, "/menus", adminToken, menuPayload("katsudon"))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var menu models.Menu
	require.NoError(t, api.db.Where("slug = ?", "katsudon").First(&menu).Error)
	assert.Equal(t, []string{"egg", "gluten"}, menu.Allergens)

	updated := menuPayload("katsudon")
	updated["price"] = 149.0
	w = api.do(t, http.MethodPut, fmt.Sprintf("/menus/%d", menu.ID), adminToken, updated)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NoError(t, api.db.First(&menu, menu.ID).Error)
	assert.Equal(t, 149.0, menu.Price)

	w = api.do(t, http.MethodDelete, fmt.Sprintf("/menus/%d", menu.ID), adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = api.do(t, http.MethodDelete, fmt.Sprintf("/menus/%d", menu.ID), adminToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateMenuDuplicateSlug(t *testing.T) {
	api := newTestAPI(t)
	adminToken := api.seedUser(t, "root", models.RoleAdmin)

	w := api.do(t, http.MethodPost, "/menus", adminToken, menuPayload("katsudon"))
	require.Equal(t, http.StatusCreated, w.Code)

	w = api.do(t, http.MethodPost, "/menus", adminToken, menuPayload("katsudon"))
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestExportMenusToExcel(t *testing.T) {
	api := newTestAPI(t)
	adminToken := api.seedUser(t, "root", models.RoleAdmin)
	userToken := api.seedUser(t, "alice", models.RoleUser)

	w := api.do(t, http.MethodPost, "/menus", adminToken, menuPayload("katsudon"))
	require.Equal(t, http.StatusCreated, w.Code)

	w = api.do(t, http.MethodGet, "/menus/export", userToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = api.do(t, http.MethodGet, "/menus/export", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		w.Header().Get("Content-Type"))
	assert.NotZero(t, w.Body.Len())
}
