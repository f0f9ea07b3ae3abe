package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Tvilalai/jsd9-catsudon-backend/auth"
	"github.com/Tvilalai/jsd9-catsudon-backend/config"
	addressControllers "github.com/Tvilalai/jsd9-catsudon-backend/controllers/address"
	cartControllers "github.com/Tvilalai/jsd9-catsudon-backend/controllers/cart"
	userControllers "github.com/Tvilalai/jsd9-catsudon-backend/controllers/user"
	"github.com/Tvilalai/jsd9-catsudon-backend/middleware"
)

// SetupUserRoutes registers the /users/* endpoints. Everything here requires
// an authenticated identity; the admin-only handlers enforce the role check
// themselves.
func SetupUserRoutes(api *gin.RouterGroup, db *gorm.DB, cfg config.Config, tokens *auth.TokenManager) {
	users := api.Group("/users")
	users.Use(middleware.Authenticate(tokens))
	{
		// Profile
		users.GET("/me", userControllers.GetCurrentUser(db))
		users.PUT("/me", userControllers.UpdateCurrentUser(db))
		users.DELETE("/me", userControllers.DeleteCurrentUser(db, cfg))

		// Cart
		users.GET("/me/cart", cartControllers.GetCart(db))
		users.POST("/me/cart", cartControllers.AddItem(db))
		users.DELETE("/me/cart", cartControllers.ClearCart(db))
		users.PATCH("/me/cart/item/:itemId", cartControllers.UpdateItem(db))
		users.DELETE("/me/cart/item/:itemId", cartControllers.RemoveItem(db))

		// Addresses
		users.GET("/me/addresses", addressControllers.GetAddresses(db))
		users.POST("/me/addresses", addressControllers.AddAddress(db))
		users.PUT("/me/addresses/:addressId", addressControllers.EditAddress(db))
		users.DELETE("/me/addresses/:addressId", addressControllers.DeleteAddress(db))

		// Admin
		users.GET("", userControllers.GetAllUsers(db))
		users.GET("/:userId", userControllers.GetOneUser(db))
		users.DELETE("/:userId", userControllers.DeleteUser(db))
		users.PATCH("/:userId/role", userControllers.UpdateUserRole(db))
	}
}
