package orderControllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AyaMohamed233/elreem/models"
)

type CheckoutInput struct {
	CustomerName    string `json:"customerName"`
	CustomerPhone   string `json:"customerPhone"`
	CustomerAddress string `json:"customerAddress"`
	CustomerEmail   string `json:"customerEmail"`
}

type UpdateOrderStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// -------- Core Logic --------

// Checkout confirms the user's open cart: stores the contact snapshot, moves
// the order to Confirmed and debits bag stock for every line, all in one
// transaction. The stock debit is conditional so two concurrent checkouts
// cannot both take the last units.
func Checkout(db *gorm.DB, userID string, input CheckoutInput) (uint, error) {
	if strings.TrimSpace(input.CustomerName) == "" ||
		strings.TrimSpace(input.CustomerPhone) == "" ||
		strings.TrimSpace(input.CustomerAddress) == "" ||
		strings.TrimSpace(input.CustomerEmail) == "" {
		return 0, models.ValidationError("All customer details are required")
	}

	var orderID uint
	err := db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		err := tx.Where("user_id = ? AND status = ?", userID, models.OrderStatusInProgress).
			First(&order).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrEmptyCart
			}
			return err
		}

		var items []models.OrderItem
		if err := tx.Where("order_id = ?", order.ID).Find(&items).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return models.ErrEmptyCart
		}

		for _, item := range items {
			res := tx.Model(&models.Bag{}).
				Where("id = ? AND quantity >= ?", item.BagID, item.Quantity).
				Update("quantity", gorm.Expr("quantity - ?", item.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return &models.InsufficientStockError{BagID: item.BagID, Requested: item.Quantity}
			}
		}

		if err := tx.Model(&order).Updates(map[string]interface{}{
			"customer_name":    input.CustomerName,
			"customer_phone":   input.CustomerPhone,
			"customer_address": input.CustomerAddress,
			"customer_email":   input.CustomerEmail,
			"status":           models.OrderStatusConfirmed,
		}).Error; err != nil {
			return err
		}

		orderID = order.ID
		return nil
	})
	return orderID, err
}

// CancelOrder cancels a Confirmed order the user owns and puts its stock
// back. An In Progress cart cannot be cancelled, only emptied.
func CancelOrder(db *gorm.DB, userID string, orderID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		err := tx.Where("id = ? AND user_id = ? AND status = ?",
			orderID, userID, models.OrderStatusConfirmed).First(&order).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrNotFound
			}
			return err
		}

		var items []models.OrderItem
		if err := tx.Where("order_id = ?", order.ID).Find(&items).Error; err != nil {
			return err
		}
		for _, item := range items {
			if err := tx.Model(&models.Bag{}).Where("id = ?", item.BagID).
				Update("quantity", gorm.Expr("quantity + ?", item.Quantity)).Error; err != nil {
				return err
			}
		}

		return tx.Model(&order).Update("status", models.OrderStatusCanceled).Error
	})
}

// SetOrderStatus applies an admin status change after validating it against
// the transition table. Stock never moves here; checkout and cancel already
// did their side of it.
func SetOrderStatus(db *gorm.DB, orderID uint, newStatus models.OrderStatus) error {
	var order models.Order
	if err := db.First(&order, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrNotFound
		}
		return err
	}

	if !models.CanTransition(order.Status, newStatus) {
		return &models.InvalidTransitionError{From: order.Status, To: newStatus}
	}

	return db.Model(&order).Update("status", newStatus).Error
}

// -------- Handlers --------

// POST /api/checkout
func CheckoutHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var input CheckoutInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "All customer details are required"})
			return
		}

		orderID, err := Checkout(db, userID, input)
		if err != nil {
			var stockErr *models.InsufficientStockError
			var validationErr models.ValidationError
			switch {
			case errors.Is(err, models.ErrEmptyCart):
				c.JSON(http.StatusBadRequest, gin.H{"error": "No items in cart"})
			case errors.As(err, &validationErr):
				c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			case errors.As(err, &stockErr):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Bag not available or insufficient quantity"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process checkout"})
			}
			return
		}

		broadcastConfirmedOrder(db, orderID)

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Order placed successfully",
			"orderId": orderID,
		})
	}
}

// POST /api/order/cancel/:orderId
func CancelOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		orderID, err := strconv.ParseUint(c.Param("orderId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}

		if err := CancelOrder(db, userID, uint(orderID)); err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found or cannot be cancelled"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel order"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Order cancelled successfully"})
	}
}

// GET /api/orders — the caller's order history, newest first.
func GetUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var orders []models.Order
		if err := db.
			Where("user_id = ?", userID).
			Preload("Items").
			Preload("Items.Bag").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders})
	}
}

// GET /api/admin/orders
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("User").
			Preload("Items").
			Preload("Items.Bag").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders})
	}
}

// PUT /api/admin/orders/:id/status
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}

		var input UpdateOrderStatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}

		status, ok := models.ParseOrderStatus(input.Status)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}

		if err := SetOrderStatus(db, uint(orderID), status); err != nil {
			var transitionErr *models.InvalidTransitionError
			switch {
			case errors.Is(err, models.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			case errors.As(err, &transitionErr):
				c.JSON(http.StatusBadRequest, gin.H{"error": transitionErr.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Order status updated successfully"})
	}
}
