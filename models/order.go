package models

import "time"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Valid reports whether s is one of the known order statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Order references the account and menu entries but is otherwise independent
// of the cart; cart mutations never touch order rows.
type Order struct {
	ID              uint          `gorm:"primaryKey" json:"id"`
	Reference       string        `gorm:"uniqueIndex;not null" json:"reference"`
	UserID          uint          `gorm:"index;not null" json:"userId"`
	Status          OrderStatus   `gorm:"type:VARCHAR(20);default:'pending';not null" json:"status"`
	TotalPrice      float64       `gorm:"not null" json:"totalPrice"`
	Items           []OrderItem   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"orderItems"`
	ShippingAddress ShippingPoint `gorm:"embedded;embeddedPrefix:shipping_" json:"shippingAddress"`
	BillingAddress  ShippingPoint `gorm:"embedded;embeddedPrefix:billing_" json:"billingAddress"`
	OrderDate       time.Time     `gorm:"autoCreateTime" json:"orderDate"`
	CreatedAt       time.Time     `json:"createdAt"`
}

type OrderItem struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	OrderID  uint    `gorm:"index" json:"-"`
	MenuID   uint    `gorm:"not null" json:"menuId"`
	Name     string  `gorm:"not null" json:"name"`
	Price    float64 `gorm:"not null" json:"price"`
	Quantity int     `gorm:"not null" json:"quantity"`
}

// ShippingPoint is a delivery address frozen into the order at placement.
type ShippingPoint struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Street     string `json:"street"`
	District   string `json:"district"`
	Province   string `json:"province"`
	PostalCode string `json:"postalCode"`
}
