package addressControllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Tvilalai/jsd9-catsudon-backend/apperrors"
	"github.com/Tvilalai/jsd9-catsudon-backend/middleware"
	"github.com/Tvilalai/jsd9-catsudon-backend/models"
)

// AddressInput is all-or-nothing: a request missing any required field is
// rejected before anything is written. Name alone may be omitted and falls
// back to the account's full name.
type AddressInput struct {
	Name       string `json:"name"`
	Phone      string `json:"phone" binding:"required"`
	Street     string `json:"street" binding:"required"`
	District   string `json:"district" binding:"required"`
	Province   string `json:"province" binding:"required"`
	PostalCode string `json:"postalCode" binding:"required"`
}

// GET /users/me/addresses
func GetAddresses(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, _ := middleware.Identity(c)

		var addresses []models.Address
		if err := db.Where("user_id = ?", claims.UserID).Order("id").Find(&addresses).Error; err != nil {
			_ = c.Error(err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"error":   false,
			"message": "Retrieved user addresses successfully",
			"address": addresses,
		})
	}
}

// POST /users/me/addresses
func AddAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, _ := middleware.Identity(c)

		var input AddressInput
		if err := c.ShouldBindJSON(&input); err != nil {
			_ = c.Error(apperrors.Validation("Please provide all fields"))
			return
		}

		user, err := ownAccount(db, claims.UserID)
		if err != nil {
			_ = c.Error(err)
			return
		}

		address := models.Address{
			UserID:     user.ID,
			Name:       displayName(input.Name, user),
			Phone:      input.Phone,
			Street:     input.Street,
			District:   input.District,
			Province:   input.Province,
			PostalCode: input.PostalCode,
		}
		if err := db.Create(&address).Error; err != nil {
			_ = c.Error(err)
			return
		}

		respondWithAddresses(c, db, user.ID, http.StatusCreated, "Your address added successfully")
	}
}

// PUT /users/me/addresses/:addressId
//
// The lookup is scoped to the authenticated account, so an addressId owned
// by someone else is indistinguishable from a missing one.
func EditAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, _ := middleware.Identity(c)

		addressID, err := strconv.ParseUint(c.Param("addressId"), 10, 64)
		if err != nil {
			_ = c.Error(apperrors.Validation("Invalid address ID"))
			return
		}

		var input AddressInput
		if err := c.ShouldBindJSON(&input); err != nil {
			_ = c.Error(apperrors.Validation("Please provide all fields"))
			return
		}

		user, err := ownAccount(db, claims.UserID)
		if err != nil {
			_ = c.Error(err)
			return
		}

		result := db.Model(&models.Address{}).
			Where("id = ? AND user_id = ?", addressID, user.ID).
			Updates(map[string]interface{}{
				"name":        displayName(input.Name, user),
				"phone":       input.Phone,
				"street":      input.Street,
				"district":    input.District,
				"province":    input.Province,
				"postal_code": input.PostalCode,
			})
		if result.Error != nil {
			_ = c.Error(result.Error)
			return
		}
		if result.RowsAffected == 0 {
			_ = c.Error(apperrors.NotFound("Address not found"))
			return
		}

		respondWithAddresses(c, db, user.ID, http.StatusOK, "Your address updated successfully")
	}
}

// DELETE /users/me/addresses/:addressId
func DeleteAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, _ := middleware.Identity(c)

		addressID, err := strconv.ParseUint(c.Param("addressId"), 10, 64)
		if err != nil {
			_ = c.Error(apperrors.Validation("Invalid address ID"))
			return
		}

		result := db.Where("id = ? AND user_id = ?", addressID, claims.UserID).
			Delete(&models.Address{})
		if result.Error != nil {
			_ = c.Error(result.Error)
			return
		}
		if result.RowsAffected == 0 {
			_ = c.Error(apperrors.NotFound("Address not found"))
			return
		}

		respondWithAddresses(c, db, claims.UserID, http.StatusOK, "Your address has been deleted")
	}
}

func ownAccount(db *gorm.DB, userID uint) (models.User, error) {
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, apperrors.NotFound("User not found")
		}
		return models.User{}, err
	}
	return user, nil
}

func displayName(name string, user models.User) string {
	if trimmed := strings.TrimSpace(name); trimmed != "" {
		return trimmed
	}
	return user.FullName()
}

func respondWithAddresses(c *gin.Context, db *gorm.DB, userID uint, status int, message string) {
	var addresses []models.Address
	if err := db.Where("user_id = ?", userID).Order("id").Find(&addresses).Error; err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(status, gin.H{
		"error":   false,
		"message": message,
		"address": addresses,
	})
}
