package bagControllers

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

func TestDeleteBagRefusedWhenOrdered(t *testing.T) {
	db := openTestDB(t)

	bag := models.Bag{NameEn: "Tote", NameAr: "حقيبة", Price: decimal.RequireFromString("100.00"), Quantity: 5}
	if err := db.Create(&bag).Error; err != nil {
		t.Fatalf("seed bag: %v", err)
	}
	user := models.User{ID: "u1", FirstName: "Test", Email: "u1@example.com"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	order := models.Order{UserID: user.ID, Status: models.OrderStatusConfirmed}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}
	if err := db.Create(&models.OrderItem{
		OrderID: order.ID, BagID: bag.ID, Quantity: 1, Price: bag.Price,
	}).Error; err != nil {
		t.Fatalf("seed item: %v", err)
	}

	if err := DeleteBag(db, bag.ID); !errors.Is(err, models.ErrBagReferenced) {
		t.Fatalf("expected ErrBagReferenced, got %v", err)
	}
	if err := db.First(&models.Bag{}, "id = ?", bag.ID).Error; err != nil {
		t.Fatalf("bag should still exist after refused delete: %v", err)
	}
}

func TestDeleteBagUnreferenced(t *testing.T) {
	db := openTestDB(t)

	bag := models.Bag{NameEn: "Clutch", NameAr: "كلاتش", Price: decimal.RequireFromString("50.00"), Quantity: 1}
	if err := db.Create(&bag).Error; err != nil {
		t.Fatalf("seed bag: %v", err)
	}

	if err := DeleteBag(db, bag.ID); err != nil {
		t.Fatalf("DeleteBag: %v", err)
	}
	if err := db.First(&models.Bag{}, "id = ?", bag.ID).Error; !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("bag should be gone, got %v", err)
	}

	if err := DeleteBag(db, bag.ID); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing bag, got %v", err)
	}
}

func TestParseColors(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{`["Black","Tan","Olive"]`, []string{"Black", "Tan", "Olive"}},
		{`Black`, []string{"Black"}},
		{``, []string{}},
		{`  `, []string{}},
	}
	for _, tc := range cases {
		got := parseColors(tc.in)
		if len(got) != len(tc.want) {
			t.Fatalf("parseColors(%q) = %v, want %v", tc.in, got, tc.want)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("parseColors(%q)[%d] = %q, want %q (order must be preserved)", tc.in, i, got[i], tc.want[i])
			}
		}
	}
}

func TestParsePrice(t *testing.T) {
	if _, err := parsePrice("-1.00"); err == nil {
		t.Fatal("negative price should be rejected")
	}
	if _, err := parsePrice("abc"); err == nil {
		t.Fatal("non-numeric price should be rejected")
	}
	price, err := parsePrice("149.99")
	if err != nil {
		t.Fatalf("parsePrice: %v", err)
	}
	if !price.Equal(decimal.RequireFromString("149.99")) {
		t.Fatalf("price = %s, want 149.99", price)
	}
}
