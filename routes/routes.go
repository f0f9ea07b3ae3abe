package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Tvilalai/jsd9-catsudon-backend/auth"
	"github.com/Tvilalai/jsd9-catsudon-backend/config"
)

// SetupRoutes is the single entry point that wires up the auth, user, menu,
// and order route groups under the API prefix.
func SetupRoutes(api *gin.RouterGroup, db *gorm.DB, cfg config.Config) {
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	SetupAuthRoutes(api, db, cfg, tokens)
	SetupUserRoutes(api, db, cfg, tokens)
	SetupMenuRoutes(api, db, tokens)
	SetupOrderRoutes(api, db, tokens)
}
