package userControllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Tvilalai/jsd9-catsudon-backend/apperrors"
	"github.com/Tvilalai/jsd9-catsudon-backend/config"
	authControllers "github.com/Tvilalai/jsd9-catsudon-backend/controllers/auth"
	"github.com/Tvilalai/jsd9-catsudon-backend/middleware"
	"github.com/Tvilalai/jsd9-catsudon-backend/models"
)

type UpdateUserInput struct {
	Username  *string `json:"username"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Role      *string `json:"role"`
}

type UpdateRoleInput struct {
	Role models.Role `json:"role" binding:"required"`
}

// GET /users/me
func GetCurrentUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, _ := middleware.Identity(c)

		var user models.User
		err := db.Preload("Cart").Preload("Addresses").First(&user, claims.UserID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				_ = c.Error(apperrors.NotFound("User not found"))
				return
			}
			_ = c.Error(err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"error":   false,
			"message": "Retrieved current user successfully",
			"user":    user,
		})
	}
}

// PUT /users/me
//
// Partial update via pointer fields. A role change rides along only when the
// caller is already an admin; everyone else gets a hard 403 before any write.
func UpdateCurrentUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, _ := middleware.Identity(c)

		var input UpdateUserInput
		if err := c.ShouldBindJSON(&input); err != nil {
			_ = c.Error(apperrors.Validation("Invalid input"))
			return
		}
		if input.Role != nil && claims.Role != models.RoleAdmin {
			_ = c.Error(apperrors.Forbidden("You cannot edit 'role'"))
			return
		}

		var user models.User
		if err := db.First(&user, claims.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				_ = c.Error(apperrors.NotFound("User not found"))
				return
			}
			_ = c.Error(err)
			return
		}

		updates := make(map[string]interface{})
		if input.Username != nil {
			updates["username"] = strings.TrimSpace(*input.Username)
		}
		if input.FirstName != nil {
			updates["first_name"] = strings.TrimSpace(*input.FirstName)
		}
		if input.LastName != nil {
			updates["last_name"] = strings.TrimSpace(*input.LastName)
		}
		if input.Email != nil {
			updates["email"] = strings.ToLower(strings.TrimSpace(*input.Email))
		}
		if input.Role != nil {
			role := models.Role(*input.Role)
			if role != models.RoleUser && role != models.RoleAdmin {
				_ = c.Error(apperrors.Validation("Invalid role"))
				return
			}
			updates["role"] = role
		}

		if len(updates) > 0 {
			if err := db.Model(&user).Updates(updates).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					_ = c.Error(apperrors.Conflict("User exists"))
					return
				}
				_ = c.Error(err)
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"error":   false,
			"message": "User information updated successfully",
			"user":    user,
		})
	}
}

// DELETE /users/me
//
// Deleting the account cascades to its cart and addresses and signs the
// caller out by clearing the session cookie.
func DeleteCurrentUser(db *gorm.DB, cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, _ := middleware.Identity(c)

		result := db.Select("Cart", "Addresses").Delete(&models.User{ID: claims.UserID})
		if result.Error != nil {
			_ = c.Error(result.Error)
			return
		}
		if result.RowsAffected == 0 {
			_ = c.Error(apperrors.NotFound("User not found"))
			return
		}

		authControllers.ClearSessionCookie(c, cfg)
		c.JSON(http.StatusOK, gin.H{
			"error":   false,
			"message": "Your account has been deleted. You have been signed out.",
		})
	}
}

// GET /users (admin)
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireAdmin(c) {
			return
		}

		var users []models.User
		if err := db.Order("created_at desc").Find(&users).Error; err != nil {
			_ = c.Error(err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"error": false, "users": users})
	}
}

// GET /users/:userId (admin)
func GetOneUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireAdmin(c) {
			return
		}

		userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
		if err != nil {
			_ = c.Error(apperrors.Validation("Invalid user id"))
			return
		}

		var user models.User
		if err := db.Preload("Cart").Preload("Addresses").First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				_ = c.Error(apperrors.NotFound("User not found"))
				return
			}
			_ = c.Error(err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"error":   false,
			"message": "Retrieved user successfully",
			"user":    user,
		})
	}
}

// DELETE /users/:userId (admin)
func DeleteUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireAdmin(c) {
			return
		}

		userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
		if err != nil {
			_ = c.Error(apperrors.Validation("Invalid user id"))
			return
		}

		result := db.Select("Cart", "Addresses").Delete(&models.User{ID: uint(userID)})
		if result.Error != nil {
			_ = c.Error(result.Error)
			return
		}
		if result.RowsAffected == 0 {
			_ = c.Error(apperrors.NotFound("User not found"))
			return
		}

		c.JSON(http.StatusOK, gin.H{"error": false, "message": "User deleted successfully"})
	}
}

// PATCH /users/:userId/role (admin)
//
// The only way a role changes hands: self-registration always yields a plain
// user, promotion requires an already-authenticated admin.
func UpdateUserRole(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireAdmin(c) {
			return
		}

		userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
		if err != nil {
			_ = c.Error(apperrors.Validation("Invalid user id"))
			return
		}

		var input UpdateRoleInput
		if err := c.ShouldBindJSON(&input); err != nil {
			_ = c.Error(apperrors.Validation("Invalid input"))
			return
		}
		if input.Role != models.RoleUser && input.Role != models.RoleAdmin {
			_ = c.Error(apperrors.Validation("Invalid role"))
			return
		}

		result := db.Model(&models.User{}).Where("id = ?", userID).Update("role", input.Role)
		if result.Error != nil {
			_ = c.Error(result.Error)
			return
		}
		if result.RowsAffected == 0 {
			_ = c.Error(apperrors.NotFound("User not found"))
			return
		}

		c.JSON(http.StatusOK, gin.H{"error": false, "message": "User role updated successfully"})
	}
}

// requireAdmin enforces the role gate inside the handler; the Authenticate
// middleware only established identity.
func requireAdmin(c *gin.Context) bool {
	claims, ok := middleware.Identity(c)
	if !ok || claims.Role != models.RoleAdmin {
		_ = c.Error(apperrors.Forbidden("Access denied. No permission"))
		return false
	}
	return true
}
