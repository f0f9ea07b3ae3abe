package orderControllers_test

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

func (a *testAPI) seedUser(t *testing.T, username string, role models.Role) (models.User, string) {
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
	return user, token
}

func (a *testAPI) seedMenu(t *testing.T, name string, price float64) models.Menu {
	t.Helper()
	menu := models.Menu{
		Name: name, Slug: name, Category: "rice", Type: "main",
		Price: price, ImageURL: "x", Available: true,
	}
	require.NoError(t, a.db.Create(&menu).Error)
	return menu
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
	req.AddCookie(&http.Cookie{Name: middleware.AccessTokenCookie, Value: token})
	a.router.ServeHTTP(w, req)
	return w
}

func orderPayload(menuID uint, quantity int) gin.H {
	address := gin.H{
		"name":       "Home",
		"phone":      "0812345678",
		"street":     "123 Sukhumvit Rd",
		"district":   "Watthana",
		"province":   "Bangkok",
		"postalCode": "10110",
	}
	return gin.H{
		"orderItems":      []gin.H{{"menuId": menuID, "quantity": quantity}},
		"shippingAddress": address,
		"billingAddress":  address,
	}
}

func TestCreateOrderComputesTotalFromCatalog(t *testing.T) {
	api := newTestAPI(t)
	user, token := api.seedUser(t, "alice", models.RoleUser)
	menu := api.seedMenu(t, "katsudon", 129)

	payload := orderPayload(menu.ID, 3)
	// A client-supplied total must be ignored.
	payload["totalPrice"] = 1.0

	w := api.do(t, http.MethodPost, "/orders", token, payload)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var order models.Order
	require.NoError(t, api.db.Preload("Items").Where("user_id = ?", user.ID).First(&order).Error)
	assert.Equal(t, 387.0, order.TotalPrice)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.NotEmpty(t, order.Reference)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 129.0, order.Items[0].Price)
}

func TestCreateOrderUnknownMenu(t *testing.T) {
	api := newTestAPI(t)
	_, token := api.seedUser(t, "alice", models.RoleUser)

	w := api.do(t, http.MethodPost, "/orders", token, orderPayload(999, 1))
	assert.Equal(t, http.StatusNotFound, w.Code)

	var count int64
	api.db.Model(&models.Order{}).Count(&count)
	assert.Zero(t, count, "failed placement must not leave a partial order")
}

func TestCreateOrderUnavailableMenu(t *testing.T) {
	api := newTestAPI(t)
	_, token := api.seedUser(t, "alice", models.RoleUser)
	menu := api.seedMenu(t, "katsudon", 129)
	require.NoError(t, api.db.Model(&models.Menu{}).Where("id = ?", menu.ID).Update("available", false).Error)

	w := api.do(t, http.MethodPost, "/orders", token, orderPayload(menu.ID, 1))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrderVisibilityScopedByRole(t *testing.T) {
	api := newTestAPI(t)
	_, aliceToken := api.seedUser(t, "alice", models.RoleUser)
	_, bobToken := api.seedUser(t, "bob", models.RoleUser)
	_, adminToken := api.seedUser(t, "root", models.RoleAdmin)
	menu := api.seedMenu(t, "katsudon", 129)

	w := api.do(t, http.MethodPost, "/orders", aliceToken, orderPayload(menu.ID, 1))
	require.Equal(t, http.StatusCreated, w.Code)

	var order models.Order
	require.NoError(t, api.db.First(&order).Error)
	path := fmt.Sprintf("/orders/%d", order.ID)

	w = api.do(t, http.MethodGet, path, bobToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = api.do(t, http.MethodGet, path, aliceToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = api.do(t, http.MethodGet, path, adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Listing: bob sees none, alice sees hers.
	w = api.do(t, http.MethodGet, "/orders", bobToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), order.Reference)

	w = api.do(t, http.MethodGet, "/orders", aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), order.Reference)
}

func TestUpdateOrderStatus(t *testing.T) {
	api := newTestAPI(t)
	_, userToken := api.seedUser(t, "alice", models.RoleUser)
	_, adminToken := api.seedUser(t, "root", models.RoleAdmin)
	menu := api.seedMenu(t, "katsudon", 129)

	w := api.do(t, http.MethodPost, "/orders", userToken, orderPayload(menu.ID, 1))
	require.Equal(t, http.StatusCreated, w.Code)

	var order models.Order
	require.NoError(t, api.db.First(&order).Error)
	path := fmt.Sprintf("/orders/%d", order.ID)

	w = api.do(t, http.MethodPut, path, userToken, gin.H{"status": "shipped"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = api.do(t, http.MethodPut, path, adminToken, gin.H{"status": "teleported"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.do(t, http.MethodPut, path, adminToken, gin.H{"status": "shipped"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NoError(t, api.db.First(&order, order.ID).Error)
	assert.Equal(t, models.OrderStatusShipped, order.Status)
}

func TestDeleteOrderAdminOnly(t *testing.T) {
	api := newTestAPI(t)
	_, userToken := api.seedUser(t, "alice", models.RoleUser)
	_, adminToken := api.seedUser(t, "root", models.RoleAdmin)
	menu := api.seedMenu(t, "katsudon", 129)

	w := api.do(t, http.MethodPost, "/orders", userToken, orderPayload(menu.ID, 1))
	require.Equal(t, http.StatusCreated, w.Code)

	var order models.Order
	require.NoError(t, api.db.First(&order).Error)
	path := fmt.Sprintf("/orders/%d", order.ID)

	w = api.do(t, http.MethodDelete, path, userToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = api.do(t, http.MethodDelete, path, adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = api.do(t, http.MethodDelete, path, adminToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
