package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Tvilalai/jsd9-catsudon-backend/auth"
	"github.com/Tvilalai/jsd9-catsudon-backend/config"
	authControllers "github.com/Tvilalai/jsd9-catsudon-backend/controllers/auth"
)

// SetupAuthRoutes registers the /auth/* endpoints. All of them are public:
// logout only clears a cookie and must succeed with or without a session.
func SetupAuthRoutes(api *gin.RouterGroup, db *gorm.DB, cfg config.Config, tokens *auth.TokenManager) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/create-account", authControllers.CreateAccount(db, cfg))
		authGroup.POST("/login", authControllers.Login(db, cfg, tokens))
		authGroup.POST("/logout", authControllers.Logout(cfg))
	}
}
