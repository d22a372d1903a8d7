package models

import "time"

// OrderStatusPending is the status every new order starts in. There is no
// fulfilment pipeline yet, so it is also the only status the backend writes.
const OrderStatusPending = "PENDING"

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Category struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Slug        string `gorm:"uniqueIndex;not null" json:"slug"`
	Description string `json:"description"`
}

type Product struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"not null" json:"name"`
	Slug          string    `gorm:"uniqueIndex;not null" json:"slug"`
	Description   string    `json:"description"`
	Price         float64   `gorm:"not null" json:"price"`
	OriginalPrice *float64  `json:"originalPrice"`
	Image         string    `json:"image"`
	IsOffer       bool      `json:"isOffer"`
	InStock       bool      `json:"inStock"`
	CategoryID    uint      `gorm:"index;not null" json:"categoryId"`
	Category      *Category `json:"category,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type Order struct {
	ID                uint        `gorm:"primaryKey" json:"id"`
	OrderNumber       string      `gorm:"uniqueIndex;not null" json:"orderNumber"`
	CustomerName      string      `gorm:"not null" json:"customerName"`
	CustomerEmail     string      `gorm:"index;not null" json:"customerEmail"`
	UserID            *uint       `json:"userId"`
	User              *User       `json:"user"`
	Total             float64     `gorm:"not null" json:"total"`
	ItemCount         int         `gorm:"not null" json:"itemCount"`
	Status            string      `gorm:"not null;default:PENDING" json:"status"`
	ShippingMinDays   int         `gorm:"not null" json:"shippingMinDays"`
	ShippingMaxDays   int         `gorm:"not null" json:"shippingMaxDays"`
	EstimatedDelivery time.Time   `gorm:"not null" json:"estimatedDelivery"`
	Items             []OrderItem `gorm:"constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt         time.Time   `json:"createdAt"`
	UpdatedAt         time.Time   `json:"updatedAt"`
}

// OrderItem captures the product name and price at order time, so later
// catalog edits never alter historical orders.
type OrderItem struct {
	ID          uint     `gorm:"primaryKey" json:"id"`
	OrderID     uint     `gorm:"index;not null" json:"-"`
	ProductID   uint     `gorm:"index;not null" json:"productId"`
	Product     *Product `json:"product,omitempty"`
	ProductName string   `gorm:"not null" json:"productName"`
	Price       float64  `gorm:"not null" json:"price"`
	Quantity    int      `gorm:"not null" json:"quantity"`
	Subtotal    float64  `gorm:"not null" json:"subtotal"`
}
