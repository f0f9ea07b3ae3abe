package authControllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Tvilalai/jsd9-catsudon-backend/apperrors"
	"github.com/Tvilalai/jsd9-catsudon-backend/auth"
	"github.com/Tvilalai/jsd9-catsudon-backend/config"
	"github.com/Tvilalai/jsd9-catsudon-backend/middleware"
	"github.com/Tvilalai/jsd9-catsudon-backend/models"
)

type CreateAccountInput struct {
	Username  string `json:"username" binding:"required"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	// Role is accepted in the payload for forward compatibility but never
	// honored: self-registration always creates a plain user. Elevation goes
	// through the admin-only promotion endpoint.
	Role string `json:"role"`
}

type LoginInput struct {
	EmailOrUsername string `json:"emailOrUsername" binding:"required"`
	Password        string `json:"password" binding:"required"`
}

// POST /auth/create-account
func CreateAccount(db *gorm.DB, cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateAccountInput
		if err := c.ShouldBindJSON(&input); err != nil {
			_ = c.Error(apperrors.Validation("Invalid input"))
			return
		}
		if err := auth.ValidatePasswordStrength(input.Password); err != nil {
			_ = c.Error(apperrors.Validation("Weak password"))
			return
		}

		username := strings.TrimSpace(input.Username)
		email := strings.ToLower(strings.TrimSpace(input.Email))

		var existing models.User
		err := db.Where("email = ? OR username = ?", email, username).First(&existing).Error
		if err == nil {
			_ = c.Error(apperrors.Conflict("User exists"))
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			_ = c.Error(err)
			return
		}

		passwordHash, err := auth.HashPassword(input.Password, cfg.BcryptCost)
		if err != nil {
			_ = c.Error(err)
			return
		}

		user := models.User{
			Username:     username,
			Email:        email,
			Role:         models.RoleUser,
			FirstName:    strings.TrimSpace(input.FirstName),
			LastName:     strings.TrimSpace(input.LastName),
			PasswordHash: passwordHash,
		}
		if err := db.Create(&user).Error; err != nil {
			// The unique indexes are the authority; the pre-check only makes
			// the common case friendly.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				_ = c.Error(apperrors.Conflict("User exists"))
				return
			}
			_ = c.Error(err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"error":   false,
			"message": "Registration successful. Please log in to continue.",
		})
	}
}

// POST /auth/login
func Login(db *gorm.DB, cfg config.Config, tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			_ = c.Error(apperrors.Validation("Email/Username and password required"))
			return
		}

		identifier := strings.TrimSpace(input.EmailOrUsername)
		var user models.User
		err := db.Where("email = ? OR username = ?", strings.ToLower(identifier), identifier).First(&user).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				_ = c.Error(apperrors.NotFound("User not found"))
				return
			}
			_ = c.Error(err)
			return
		}

		if !auth.CheckPassword(user.PasswordHash, input.Password) {
			_ = c.Error(apperrors.Auth("Invalid credentials"))
			return
		}

		token, err := tokens.Generate(user)
		if err != nil {
			_ = c.Error(err)
			return
		}

		setSessionCookie(c, cfg, token, int(tokens.TTL().Seconds()))
		c.JSON(http.StatusOK, gin.H{
			"error": false,
			"user": gin.H{
				"id":       user.ID,
				"email":    user.Email,
				"username": user.Username,
				"role":     user.Role,
			},
			"accessToken": token,
			"message":     "Login successfully",
		})
	}
}

// POST /auth/logout
//
// There is no server-side session to tear down; clearing the cookie is the
// whole operation, so it succeeds whether or not a session existed.
func Logout(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		ClearSessionCookie(c, cfg)
		c.JSON(http.StatusOK, gin.H{
			"error":   false,
			"message": "Logged out successfully",
		})
	}
}

func setSessionCookie(c *gin.Context, cfg config.Config, token string, maxAge int) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.AccessTokenCookie, token, maxAge, "/", "", cfg.IsProduction(), true)
}

// ClearSessionCookie expires the access token cookie. Shared with account
// deletion, which signs the caller out as a side effect.
func ClearSessionCookie(c *gin.Context, cfg config.Config) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.AccessTokenCookie, "", -1, "/", "", cfg.IsProduction(), true)
}
