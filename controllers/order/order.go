package orderControllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Tvilalai/jsd9-catsudon-backend/apperrors"
	"github.com/Tvilalai/jsd9-catsudon-backend/middleware"
	"github.com/Tvilalai/jsd9-catsudon-backend/models"
)

type OrderItemInput struct {
	MenuID   uint `json:"menuId" binding:"required"`
	Quantity int  `json:"quantity" binding:"required,min=1"`
}

type OrderAddressInput struct {
	Name       string `json:"name" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
	Street     string `json:"street" binding:"required"`
	District   string `json:"district" binding:"required"`
	Province   string `json:"province" binding:"required"`
	PostalCode string `json:"postalCode" binding:"required"`
}

type PlaceOrderInput struct {
	Items           []OrderItemInput  `json:"orderItems" binding:"required,min=1,dive"`
	ShippingAddress OrderAddressInput `json:"shippingAddress" binding:"required"`
	BillingAddress  OrderAddressInput `json:"billingAddress" binding:"required"`
}

type UpdateOrderInput struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// GET /orders
func GetAllOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, _ := middleware.Identity(c)

		query := db.Preload("Items").Order("id desc")
		if claims.Role != models.RoleAdmin {
			query = query.Where("user_id = ?", claims.UserID)
		}

		var orders []models.Order
		if err := query.Find(&orders).Error; err != nil {
			_ = c.Error(err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"error": false, "orders": orders})
	}
}

// GET /orders/:orderId
func GetOrderByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, _ := middleware.Identity(c)

		orderID, err := strconv.ParseUint(c.Param("orderId"), 10, 64)
		if err != nil {
			_ = c.Error(apperrors.Validation("Invalid order id"))
			return
		}

		var order models.Order
		if err := db.Preload("Items").First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				_ = c.Error(apperrors.NotFound("Order not found"))
				return
			}
			_ = c.Error(err)
			return
		}

		if claims.Role != models.RoleAdmin && order.UserID != claims.UserID {
			_ = c.Error(apperrors.Forbidden("Access denied. No permission"))
			return
		}

		c.JSON(http.StatusOK, gin.H{"error": false, "order": order})
	}
}

// POST /orders
//
// The total is recomputed from current menu prices inside a transaction;
// client-supplied prices are never trusted.
func CreateOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, _ := middleware.Identity(c)

		var input PlaceOrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			_ = c.Error(apperrors.Validation("Missing required fields"))
			return
		}

		order := models.Order{
			Reference:       generateOrderRef(),
			UserID:          claims.UserID,
			Status:          models.OrderStatusPending,
			ShippingAddress: shippingPoint(input.ShippingAddress),
			BillingAddress:  shippingPoint(input.BillingAddress),
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			var total float64
			for _, item := range input.Items {
				var menu models.Menu
				if err := tx.First(&menu, item.MenuID).Error; err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						return apperrors.NotFound("Menu not found")
					}
					return err
				}
				if !menu.Available {
					return apperrors.Validation("Menu is not available: " + menu.Name)
				}
				total += menu.Price * float64(item.Quantity)
				order.Items = append(order.Items, models.OrderItem{
					MenuID:   menu.ID,
					Name:     menu.Name,
					Price:    menu.Price,
					Quantity: item.Quantity,
				})
			}
			order.TotalPrice = total
			return tx.Create(&order).Error
		})
		if err != nil {
			_ = c.Error(err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{"error": false, "order": order})
	}
}

// PUT /orders/:orderId (admin)
func UpdateOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireAdmin(c) {
			return
		}

		orderID, err := strconv.ParseUint(c.Param("orderId"), 10, 64)
		if err != nil {
			_ = c.Error(apperrors.Validation("Invalid order id"))
			return
		}

		var input UpdateOrderInput
		if err := c.ShouldBindJSON(&input); err != nil || !input.Status.Valid() {
			_ = c.Error(apperrors.Validation("Invalid order status"))
			return
		}

		result := db.Model(&models.Order{}).Where("id = ?", orderID).Update("status", input.Status)
		if result.Error != nil {
			_ = c.Error(result.Error)
			return
		}
		if result.RowsAffected == 0 {
			_ = c.Error(apperrors.NotFound("Order not found"))
			return
		}

		var order models.Order
		if err := db.Preload("Items").First(&order, orderID).Error; err != nil {
			_ = c.Error(err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"error": false, "order": order})
	}
}

// DELETE /orders/:orderId (admin)
func DeleteOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireAdmin(c) {
			return
		}

		orderID, err := strconv.ParseUint(c.Param("orderId"), 10, 64)
		if err != nil {
			_ = c.Error(apperrors.Validation("Invalid order id"))
			return
		}

		result := db.Select("Items").Delete(&models.Order{ID: uint(orderID)})
		if result.Error != nil {
			_ = c.Error(result.Error)
			return
		}
		if result.RowsAffected == 0 {
			_ = c.Error(apperrors.NotFound("Order not found"))
			return
		}

		c.JSON(http.StatusOK, gin.H{"error": false, "message": "Order has been successfully deleted"})
	}
}

func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

func shippingPoint(in OrderAddressInput) models.ShippingPoint {
	return models.ShippingPoint{
		Name:       in.Name,
		Phone:      in.Phone,
		Street:     in.Street,
		District:   in.District,
		Province:   in.Province,
		PostalCode: in.PostalCode,
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
