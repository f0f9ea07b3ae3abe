package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Tvilalai/jsd9-catsudon-backend/auth"
	orderControllers "github.com/Tvilalai/jsd9-catsudon-backend/controllers/order"
	"github.com/Tvilalai/jsd9-catsudon-backend/middleware"
)

// SetupOrderRoutes registers the /orders/* endpoints, all authenticated.
func SetupOrderRoutes(api *gin.RouterGroup, db *gorm.DB, tokens *auth.TokenManager) {
	orders := api.Group("/orders")
	orders.Use(middleware.Authenticate(tokens))
	{
		orders.GET("", orderControllers.GetAllOrders(db))
		orders.GET("/:orderId", orderControllers.GetOrderByID(db))
		orders.POST("", orderControllers.CreateOrder(db))
		orders.PUT("/:orderId", orderControllers.UpdateOrder(db))
		orders.DELETE("/:orderId", orderControllers.DeleteOrder(db))
	}
}
