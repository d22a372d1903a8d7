package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"electroparts-backend/internal/models"
)

const (
	shippingMinDays = 2
	shippingMaxDays = 3

	// Generated order numbers are only astronomically likely to be unique;
	// the unique index is the real guarantee, so creation retries a few
	// times with a fresh number on collision.
	orderNumberAttempts = 3
)

type orderItemInput struct {
	ProductID uint `json:"productId"`
	Quantity  int  `json:"quantity"`
}

type createOrderInput struct {
	Items         []orderItemInput `json:"items"`
	CustomerName  string           `json:"customerName"`
	CustomerEmail string           `json:"customerEmail"`
	OrderNumber   string           `json:"orderNumber"`
}

func generateOrderNumber() string {
	return fmt.Sprintf("ORD-%d-%03d", time.Now().UnixMilli(), rand.Intn(1000))
}

// createOrder validates the cart, resolves prices server-side and persists
// the order with its line items in a single nested create.
func (s *server) createOrder(c *gin.Context) {
	var input createOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order payload"})
		return
	}
	if len(input.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Order contains no items"})
		return
	}

	seen := map[uint]bool{}
	productIDs := []uint{}
	for _, item := range input.Items {
		if item.ProductID == 0 || seen[item.ProductID] {
			continue
		}
		seen[item.ProductID] = true
		productIDs = append(productIDs, item.ProductID)
	}
	if len(productIDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Order items are not valid"})
		return
	}

	var products []models.Product
	if err := s.db.Where("id IN ?", productIDs).Find(&products).Error; err != nil {
		slog.Error("failed to resolve order products", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not place the order"})
		return
	}
	if len(products) != len(productIDs) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "One or more items are no longer available"})
		return
	}

	productsByID := make(map[uint]models.Product, len(products))
	for _, p := range products {
		productsByID[p.ID] = p
	}

	// Prices and names come from the catalog, never from the client.
	var (
		items     []models.OrderItem
		total     float64
		itemCount int
	)
	for _, item := range input.Items {
		product, ok := productsByID[item.ProductID]
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "One or more items are no longer available"})
			return
		}
		quantity := item.Quantity
		if quantity < 1 {
			quantity = 1
		}
		subtotal := product.Price * float64(quantity)
		items = append(items, models.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Price:       product.Price,
			Quantity:    quantity,
			Subtotal:    subtotal,
		})
		total += subtotal
		itemCount += quantity
	}

	customerEmail := normalizeEmail(input.CustomerEmail)
	if customerEmail == "" {
		customerEmail = s.cfg.GuestEmail
	}

	var user *models.User
	var existing models.User
	if err := s.db.Where("email = ?", customerEmail).First(&existing).Error; err == nil {
		user = &existing
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		slog.Error("failed to look up order customer", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not place the order"})
		return
	}

	customerName := strings.TrimSpace(input.CustomerName)
	if customerName == "" {
		if user != nil {
			customerName = user.Name
		} else {
			customerName = "Guest"
		}
	}

	order := models.Order{
		CustomerName:      customerName,
		CustomerEmail:     customerEmail,
		Total:             total,
		ItemCount:         itemCount,
		Status:            models.OrderStatusPending,
		ShippingMinDays:   shippingMinDays,
		ShippingMaxDays:   shippingMaxDays,
		EstimatedDelivery: time.Now().AddDate(0, 0, shippingMaxDays),
		Items:             items,
	}
	if user != nil {
		order.UserID = &user.ID
	}

	if clientNumber := strings.TrimSpace(input.OrderNumber); clientNumber != "" {
		order.OrderNumber = strings.ToUpper(clientNumber)
		if err := s.db.Create(&order).Error; err != nil {
			slog.Error("failed to create order", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not place the order"})
			return
		}
	} else {
		var err error
		for attempt := 0; attempt < orderNumberAttempts; attempt++ {
			order.OrderNumber = generateOrderNumber()
			err = s.db.Create(&order).Error
			if err == nil || !errors.Is(err, gorm.ErrDuplicatedKey) {
				break
			}
		}
		if err != nil {
			slog.Error("failed to create order", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not place the order"})
			return
		}
	}

	var created models.Order
	if err := s.db.Preload("Items.Product").Preload("User").First(&created, order.ID).Error; err != nil {
		slog.Error("failed to reload created order", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not place the order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": created})
}

// listOrders returns the order history for one customer email, newest first.
func (s *server) listOrders(c *gin.Context) {
	email := normalizeEmail(c.Query("email"))
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing email query parameter"})
		return
	}

	orders := []models.Order{}
	err := s.db.
		Preload("Items.Product").
		Preload("User").
		Where("customer_email = ?", email).
		Order("created_at desc").
		Find(&orders).Error
	if err != nil {
		slog.Error("failed to list orders", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}
