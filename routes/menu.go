package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Tvilalai/jsd9-catsudon-backend/auth"
	menuControllers "github.com/Tvilalai/jsd9-catsudon-backend/controllers/menu"
	"github.com/Tvilalai/jsd9-catsudon-backend/middleware"
)

// SetupMenuRoutes registers the /menus/* endpoints. Reads are public,
// catalog mutations and the export require an admin identity.
func SetupMenuRoutes(api *gin.RouterGroup, db *gorm.DB, tokens *auth.TokenManager) {
	menus := api.Group("/menus")
	{
		menus.GET("", menuControllers.GetAllMenus(db))

		protected := menus.Group("")
		protected.Use(middleware.Authenticate(tokens))
		{
			protected.GET("/export", menuControllers.ExportMenusToExcel(db))
			protected.POST("", menuControllers.CreateMenu(db))
			protected.PUT("/:id", menuControllers.UpdateMenu(db))
			protected.DELETE("/:id", menuControllers.DeleteMenu(db))
		}

		menus.GET("/:id", menuControllers.GetMenuByID(db))
	}
}
