package reviewControllers

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/AyaMohamed233/elreem/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{}, &models.Bag{}, &models.Order{}, &models.OrderItem{}, &models.Review{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

// seedPurchase gives the user a Confirmed order containing the bag so the
// eligibility check passes.
func seedPurchase(t *testing.T, db *gorm.DB, userID string, bagID uint) {
	t.Helper()
	order := models.Order{UserID: userID, Status: models.OrderStatusConfirmed}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}
	item := models.OrderItem{
		OrderID:  order.ID,
		BagID:    bagID,
		Quantity: 1,
		Price:    decimal.RequireFromString("100.00"),
	}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("seed order item: %v", err)
	}
}

func seedUserAndBag(t *testing.T, db *gorm.DB) (models.User, models.Bag) {
	t.Helper()
	user := models.User{ID: "u1", FirstName: "Test", Email: "u1@example.com"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	bag := models.Bag{NameEn: "Tote", NameAr: "حقيبة", Price: decimal.RequireFromString("100.00"), Quantity: 5}
	if err := db.Create(&bag).Error; err != nil {
		t.Fatalf("seed bag: %v", err)
	}
	return user, bag
}

func TestSubmitReviewUpsertsSingleRow(t *testing.T) {
	db := openTestDB(t)
	user, bag := seedUserAndBag(t, db)
	seedPurchase(t, db, user.ID, bag.ID)

	if err := SubmitReview(db, user.ID, SubmitReviewInput{BagID: bag.ID, Rating: 4, ReviewText: "nice"}); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	if err := SubmitReview(db, user.ID, SubmitReviewInput{BagID: bag.ID, Rating: 2, ReviewText: "changed"}); err != nil {
		t.Fatalf("second submit: %v", err)
	}

	var reviews []models.Review
	if err := db.Where("user_id = ? AND bag_id = ?", user.ID, bag.ID).Find(&reviews).Error; err != nil {
		t.Fatalf("load reviews: %v", err)
	}
	if len(reviews) != 1 {
		t.Fatalf("expected exactly one review row, got %d", len(reviews))
	}
	if reviews[0].Rating != 2 || reviews[0].ReviewText != "changed" {
		t.Fatalf("review not overwritten: rating=%d text=%q", reviews[0].Rating, reviews[0].ReviewText)
	}
}

func TestSubmitReviewRequiresPurchase(t *testing.T) {
	db := openTestDB(t)
	user, bag := seedUserAndBag(t, db)

	err := SubmitReview(db, user.ID, SubmitReviewInput{BagID: bag.ID, Rating: 5})
	var validationErr models.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError without a purchase, got %v", err)
	}

	// A Canceled order does not make the bag reviewable.
	order := models.Order{UserID: user.ID, Status: models.OrderStatusCanceled}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}
	if err := db.Create(&models.OrderItem{
		OrderID: order.ID, BagID: bag.ID, Quantity: 1, Price: decimal.RequireFromString("100.00"),
	}).Error; err != nil {
		t.Fatalf("seed item: %v", err)
	}
	err = SubmitReview(db, user.ID, SubmitReviewInput{BagID: bag.ID, Rating: 5})
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError for canceled-only purchase, got %v", err)
	}
}

func TestSubmitReviewValidation(t *testing.T) {
	db := openTestDB(t)
	user, bag := seedUserAndBag(t, db)
	seedPurchase(t, db, user.ID, bag.ID)

	var validationErr models.ValidationError
	for _, rating := range []int{0, 6, -1} {
		err := SubmitReview(db, user.ID, SubmitReviewInput{BagID: bag.ID, Rating: rating})
		if !errors.As(err, &validationErr) {
			t.Fatalf("rating %d: expected ValidationError, got %v", rating, err)
		}
	}

	if err := SubmitReview(db, user.ID, SubmitReviewInput{BagID: 9999, Rating: 3}); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing bag, got %v", err)
	}
}

func TestDeleteReview(t *testing.T) {
	db := openTestDB(t)
	user, bag := seedUserAndBag(t, db)
	seedPurchase(t, db, user.ID, bag.ID)

	if err := SubmitReview(db, user.ID, SubmitReviewInput{BagID: bag.ID, Rating: 3}); err != nil {
		t.Fatalf("submit: %v", err)
	}
	var review models.Review
	if err := db.Where("user_id = ? AND bag_id = ?", user.ID, bag.ID).First(&review).Error; err != nil {
		t.Fatalf("load review: %v", err)
	}

	if err := DeleteReview(db, review.ID); err != nil {
		t.Fatalf("DeleteReview: %v", err)
	}
	if err := DeleteReview(db, review.ID); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("second delete should fail with ErrNotFound, got %v", err)
	}
}
