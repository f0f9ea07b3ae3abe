package menuControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Tvilalai/jsd9-catsudon-backend/apperrors"
	"github.com/Tvilalai/jsd9-catsudon-backend/middleware"
	"github.com/Tvilalai/jsd9-catsudon-backend/models"
)

type MenuInput struct {
	Name          string           `json:"name" binding:"required"`
	Slug          string           `json:"slug" binding:"required"`
	Category      string           `json:"category" binding:"required"`
	Type          string           `json:"type" binding:"required"`
	Price         float64          `json:"price" binding:"required,gt=0"`
	DescriptionTH string           `json:"descriptionTh"`
	DescriptionEN string           `json:"descriptionEn"`
	ImageURL      string           `json:"imageUrl" binding:"required"`
	Available     *bool            `json:"available"`
	ServingSize   string           `json:"servingSize"`
	Nutrition     models.Nutrition `json:"nutrition"`
	TagsTH        []string         `json:"tagsTh"`
	TagsEN        []string         `json:"tagsEn"`
	Dietary       []string         `json:"dietary"`
	IngredientsTH []string         `json:"ingredientsTh"`
	IngredientsEN []string         `json:"ingredientsEn"`
	Allergens     []string         `json:"allergens"`
}

// GET /menus
func GetAllMenus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var menus []models.Menu
		if err := db.Order("id").Find(&menus).Error; err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"error": false, "menus": menus})
	}
}

// GET /menus/:id
func GetMenuByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			_ = c.Error(apperrors.Validation("Invalid menu id"))
			return
		}

		var menu models.Menu
		if err := db.First(&menu, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				_ = c.Error(apperrors.NotFound("Menu not found"))
				return
			}
			_ = c.Error(err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"error": false, "menu": menu})
	}
}

// POST /menus (admin)
func CreateMenu(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireAdmin(c) {
			return
		}

		var input MenuInput
		if err := c.ShouldBindJSON(&input); err != nil {
			_ = c.Error(apperrors.Validation("Invalid input"))
			return
		}

		menu := menuFromInput(input)
		if err := db.Create(&menu).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				_ = c.Error(apperrors.Conflict("Menu slug already exists"))
				return
			}
			_ = c.Error(err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{"error": false, "menu": menu})
	}
}

// PUT /menus/:id (admin)
func UpdateMenu(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireAdmin(c) {
			return
		}

		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			_ = c.Error(apperrors.Validation("Invalid menu id"))
			return
		}

		var input MenuInput
		if err := c.ShouldBindJSON(&input); err != nil {
			_ = c.Error(apperrors.Validation("Invalid input"))
			return
		}

		var menu models.Menu
		if err := db.First(&menu, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				_ = c.Error(apperrors.NotFound("Menu not found"))
				return
			}
			_ = c.Error(err)
			return
		}

		updated := menuFromInput(input)
		updated.ID = menu.ID
		if err := db.Save(&updated).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				_ = c.Error(apperrors.Conflict("Menu slug already exists"))
				return
			}
			_ = c.Error(err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"error": false, "menu": updated})
	}
}

// DELETE /menus/:id (admin)
func DeleteMenu(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireAdmin(c) {
			return
		}

		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			_ = c.Error(apperrors.Validation("Invalid menu id"))
			return
		}

		result := db.Delete(&models.Menu{}, id)
		if result.Error != nil {
			_ = c.Error(result.Error)
			return
		}
		if result.RowsAffected == 0 {
			_ = c.Error(apperrors.NotFound("Menu not found"))
			return
		}

		c.JSON(http.StatusOK, gin.H{"error": false, "message": "Menu deleted successfully"})
	}
}

func menuFromInput(input MenuInput) models.Menu {
	available := true
	if input.Available != nil {
		available = *input.Available
	}
	return models.Menu{
		Name:          input.Name,
		Slug:          input.Slug,
		Category:      input.Category,
		Type:          input.Type,
		Price:         input.Price,
		DescriptionTH: input.DescriptionTH,
		DescriptionEN: input.DescriptionEN,
		ImageURL:      input.ImageURL,
		Available:     available,
		ServingSize:   input.ServingSize,
		Nutrition:     input.Nutrition,
		TagsTH:        input.TagsTH,
		TagsEN:        input.TagsEN,
		Dietary:       input.Dietary,
		IngredientsTH: input.IngredientsTH,
		IngredientsEN: input.IngredientsEN,
		Allergens:     input.Allergens,
	}
}

func requireAdmin(c *gin.Context) bool {
	claims, ok := middleware.Identity(c)
	if !ok || claims.Role != models.RoleAdmin {
		_ = c.Error(apperrors.Forbidden("Access denied. No permission"))
		return false
	}
	return true
}
