package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/AyaMohamed233/elreem/models"
)

type AddItemInput struct {
	BagID         uint   `json:"bagId" binding:"required"`
	Quantity      int    `json:"quantity" binding:"required,min=1"`
	SelectedColor string `json:"selectedColor"`
}

type UpdateItemInput struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// -------- Core Logic --------

// AddItem puts quantity units of a bag into the user's cart. The cart is the
// user's "In Progress" order, created lazily on the first add. Re-adding the
// same bag+color increments the existing line instead of duplicating it.
func AddItem(db *gorm.DB, userID string, input AddItemInput) error {
	if input.Quantity < 1 {
		return models.ValidationError("Invalid bag ID or quantity")
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var bag models.Bag
		if err := tx.First(&bag, "id = ?", input.BagID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrNotFound
			}
			return err
		}
		// Checked, not reserved: stock is only debited at checkout.
		if bag.Quantity < input.Quantity {
			return &models.InsufficientStockError{BagID: bag.ID, Requested: input.Quantity}
		}

		order, err := currentCart(tx, userID)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			order = models.Order{
				UserID:      userID,
				Status:      models.OrderStatusInProgress,
				TotalAmount: decimal.Zero,
				ShippingFee: decimal.Zero,
			}
			if err := tx.Create(&order).Error; err != nil {
				return err
			}
		}

		var item models.OrderItem
		err = tx.Where("order_id = ? AND bag_id = ? AND selected_color = ?",
			order.ID, input.BagID, input.SelectedColor).First(&item).Error
		switch {
		case err == nil:
			if err := tx.Model(&item).
				Update("quantity", gorm.Expr("quantity + ?", input.Quantity)).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			newItem := models.OrderItem{
				OrderID:       order.ID,
				BagID:         bag.ID,
				Quantity:      input.Quantity,
				Price:         bag.Price, // snapshot, not live
				SelectedColor: input.SelectedColor,
			}
			if err := tx.Create(&newItem).Error; err != nil {
				return err
			}
		default:
			return err
		}

		return RecomputeTotal(tx, order.ID)
	})
}

// UpdateItemQuantity sets the quantity of a cart line the user owns.
func UpdateItemQuantity(db *gorm.DB, userID string, itemID uint, quantity int) error {
	if quantity < 1 {
		return models.ValidationError("Invalid quantity")
	}

	return db.Transaction(func(tx *gorm.DB) error {
		item, err := ownedCartItem(tx, userID, itemID)
		if err != nil {
			return err
		}
		if err := tx.Model(&models.OrderItem{}).Where("id = ?", item.ID).
			Update("quantity", quantity).Error; err != nil {
			return err
		}
		return RecomputeTotal(tx, item.OrderID)
	})
}

// RemoveItem deletes a cart line the user owns. The order row stays even when
// the cart becomes empty; its shipping fee drops to zero.
func RemoveItem(db *gorm.DB, userID string, itemID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		item, err := ownedCartItem(tx, userID, itemID)
		if err != nil {
			return err
		}
		if err := tx.Delete(&models.OrderItem{}, item.ID).Error; err != nil {
			return err
		}
		return RecomputeTotal(tx, item.OrderID)
	})
}

// RecomputeTotal refreshes total_amount and shipping_fee from the order's
// lines: total = sum(quantity * price) + flat shipping on non-empty carts.
func RecomputeTotal(tx *gorm.DB, orderID uint) error {
	var items []models.OrderItem
	if err := tx.Where("order_id = ?", orderID).Find(&items).Error; err != nil {
		return err
	}

	itemsTotal := decimal.Zero
	for _, it := range items {
		itemsTotal = itemsTotal.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}

	shipping := decimal.Zero
	if len(items) > 0 {
		shipping = models.ShippingFee
	}

	return tx.Model(&models.Order{}).Where("id = ?", orderID).Updates(map[string]interface{}{
		"total_amount": itemsTotal.Add(shipping),
		"shipping_fee": shipping,
	}).Error
}

func currentCart(tx *gorm.DB, userID string) (models.Order, error) {
	var order models.Order
	err := tx.Where("user_id = ? AND status = ?", userID, models.OrderStatusInProgress).
		First(&order).Error
	return order, err
}

// ownedCartItem loads a line only if it sits in the caller's open cart.
// Anything else, including other users' items, reads as not found.
func ownedCartItem(tx *gorm.DB, userID string, itemID uint) (models.OrderItem, error) {
	var item models.OrderItem
	err := tx.Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("order_items.id = ? AND orders.user_id = ? AND orders.status = ?",
			itemID, userID, models.OrderStatusInProgress).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return item, models.ErrNotFound
	}
	return item, err
}

func respondCartError(c *gin.Context, err error) {
	var stockErr *models.InsufficientStockError
	var validationErr models.ValidationError
	switch {
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
	case errors.As(err, &stockErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bag not available or insufficient quantity"})
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
	}
}

// -------- Handlers --------

// POST /api/cart/add
func AddToCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid bag ID or quantity"})
			return
		}

		if err := AddItem(db, userID, input); err != nil {
			respondCartError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Item added to cart"})
	}
}

// PUT /api/cart/update/:itemId
func UpdateCartItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		itemID, err := strconv.ParseUint(c.Param("itemId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
			return
		}

		var input UpdateItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quantity"})
			return
		}

		if err := UpdateItemQuantity(db, userID, uint(itemID), input.Quantity); err != nil {
			respondCartError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Cart updated"})
	}
}

// DELETE /api/cart/remove/:itemId
func RemoveCartItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		itemID, err := strconv.ParseUint(c.Param("itemId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
			return
		}

		if err := RemoveItem(db, userID, uint(itemID)); err != nil {
			respondCartError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Item removed from cart"})
	}
}

// GET /api/cart
func GetCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var order models.Order
		err := db.Preload("Items").Preload("Items.Bag").
			Where("user_id = ? AND status = ?", userID, models.OrderStatusInProgress).
			First(&order).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusOK, gin.H{"success": true, "order": nil})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
	}
}

// GET /api/cart/count
func CartCountHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var count int64
		err := db.Model(&models.OrderItem{}).
			Joins("JOIN orders ON orders.id = order_items.order_id").
			Where("orders.user_id = ? AND orders.status = ?", userID, models.OrderStatusInProgress).
			Count(&count).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get cart count"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"count": count})
	}
}
