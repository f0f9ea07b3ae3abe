package models

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User is the aggregate root: cart items and addresses have no life of their
// own and are removed together with the account.
type User struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Username     string     `gorm:"uniqueIndex;not null" json:"username"`
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	Role         Role       `gorm:"type:VARCHAR(10);default:'user';not null" json:"role"`
	FirstName    string     `gorm:"not null" json:"firstName"`
	LastName     string     `gorm:"not null" json:"lastName"`
	PasswordHash string     `gorm:"not null" json:"-"`
	Cart         []CartItem `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"cart"`
	Addresses    []Address  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"addresses"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// FullName is the default label for new addresses.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// CartItem is one cart line. Name, price, and image are snapshotted from the
// menu at add-time; later catalog edits do not touch existing lines. The
// (user_id, menu_id) unique index backs the merge-on-add upsert.
type CartItem struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	UserID   uint      `gorm:"uniqueIndex:idx_cart_user_menu;not null" json:"-"`
	MenuID   uint      `gorm:"uniqueIndex:idx_cart_user_menu;not null" json:"menuId"`
	Name     string    `gorm:"not null" json:"name"`
	Price    float64   `gorm:"not null" json:"price"`
	ImageURL string    `json:"imageUrl"`
	Quantity int       `gorm:"not null" json:"quantity"`
	AddedAt  time.Time `gorm:"autoCreateTime" json:"addedAt"`
}

type Address struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	UserID     uint   `gorm:"index;not null" json:"-"`
	Name       string `gorm:"not null" json:"name"`
	Phone      string `gorm:"not null" json:"phone"`
	Street     string `gorm:"not null" json:"street"`
	District   string `gorm:"not null" json:"district"`
	Province   string `gorm:"not null" json:"province"`
	PostalCode string `gorm:"not null" json:"postalCode"`
}
