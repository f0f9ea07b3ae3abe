package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Tvilalai/jsd9-catsudon-backend/apperrors"
	"github.com/Tvilalai/jsd9-catsudon-backend/middleware"
	"github.com/Tvilalai/jsd9-catsudon-backend/models"
)

type AddItemInput struct {
	MenuID   uint `json:"menuId" binding:"required"`
	Quantity int  `json:"quantity" binding:"required,min=1"`
}

type UpdateItemInput struct {
	// Pointer so that zero is distinguishable from absent; zero and below
	// remove the line.
	Quantity *int `json:"quantity"`
}

// GET /users/me/cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, _ := middleware.Identity(c)

		var items []models.CartItem
		if err := db.Where("user_id = ?", claims.UserID).Order("id").Find(&items).Error; err != nil {
			_ = c.Error(err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"error":   false,
			"message": "Retrieved cart successfully",
			"cart":    items,
		})
	}
}

// POST /users/me/cart
//
// Adding a menu entry already in the cart increments the existing line
// instead of appending a duplicate. The merge is a single upsert keyed on
// (user_id, menu_id), so two concurrent adds for the same item end up as one
// line with the cumulative quantity.
func AddItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, _ := middleware.Identity(c)

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			_ = c.Error(apperrors.Validation("Item quantity cannot be less than 1"))
			return
		}

		var user models.User
		if err := db.Select("id").First(&user, claims.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				_ = c.Error(apperrors.NotFound("User not found"))
				return
			}
			_ = c.Error(err)
			return
		}

		var menu models.Menu
		if err := db.First(&menu, input.MenuID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				_ = c.Error(apperrors.NotFound("Menu not found"))
				return
			}
			_ = c.Error(err)
			return
		}

		item := models.CartItem{
			UserID:   claims.UserID,
			MenuID:   menu.ID,
			Name:     menu.Name,
			Price:    menu.Price,
			ImageURL: menu.ImageURL,
			Quantity: input.Quantity,
		}
		err := db.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "menu_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity": gorm.Expr("quantity + ?", input.Quantity),
			}),
		}).Create(&item).Error
		if err != nil {
			_ = c.Error(err)
			return
		}

		var cart []models.CartItem
		if err := db.Where("user_id = ?", claims.UserID).Order("id").Find(&cart).Error; err != nil {
			_ = c.Error(err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"error":   false,
			"message": "Item added to cart successfully",
			"cart":    cart,
		})
	}
}

// PATCH /users/me/cart/item/:itemId
//
// Quantity above zero overwrites the stored quantity only; the price
// snapshot taken at add-time is deliberately left alone. Zero or below
// removes the line, and removing an already-absent line is a no-op success.
func UpdateItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, _ := middleware.Identity(c)

		itemID, err := strconv.ParseUint(c.Param("itemId"), 10, 64)
		if err != nil {
			_ = c.Error(apperrors.Validation("Invalid item ID"))
			return
		}

		var input UpdateItemInput
		if err := c.ShouldBindJSON(&input); err != nil || input.Quantity == nil {
			_ = c.Error(apperrors.Validation("Quantity must be a number"))
			return
		}

		if *input.Quantity <= 0 {
			if err := db.Where("id = ? AND user_id = ?", itemID, claims.UserID).
				Delete(&models.CartItem{}).Error; err != nil {
				_ = c.Error(err)
				return
			}
			respondWithCart(c, db, claims.UserID, "Cart updated successfully")
			return
		}

		result := db.Model(&models.CartItem{}).
			Where("id = ? AND user_id = ?", itemID, claims.UserID).
			Update("quantity", *input.Quantity)
		if result.Error != nil {
			_ = c.Error(result.Error)
			return
		}
		if result.RowsAffected == 0 {
			_ = c.Error(apperrors.NotFound("Item not found in your cart"))
			return
		}

		respondWithCart(c, db, claims.UserID, "Cart updated successfully")
	}
}

// DELETE /users/me/cart/item/:itemId
func RemoveItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, _ := middleware.Identity(c)

		itemID, err := strconv.ParseUint(c.Param("itemId"), 10, 64)
		if err != nil {
			_ = c.Error(apperrors.Validation("Invalid item ID"))
			return
		}

		if err := db.Where("id = ? AND user_id = ?", itemID, claims.UserID).
			Delete(&models.CartItem{}).Error; err != nil {
			_ = c.Error(err)
			return
		}

		respondWithCart(c, db, claims.UserID, "Item deleted successfully")
	}
}

// DELETE /users/me/cart
func ClearCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, _ := middleware.Identity(c)

		if err := db.Where("user_id = ?", claims.UserID).Delete(&models.CartItem{}).Error; err != nil {
			_ = c.Error(err)
			return
		}

		respondWithCart(c, db, claims.UserID, "Cart cleared successfully")
	}
}

func respondWithCart(c *gin.Context, db *gorm.DB, userID uint, message string) {
	var cart []models.CartItem
	if err := db.Where("user_id = ?", userID).Order("id").Find(&cart).Error; err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"error":   false,
		"message": message,
		"cart":    cart,
	})
}
