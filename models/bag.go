package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// StringList stores an ordered list of strings as JSON text, the same shape
// the storefront scripts read for colors and image URLs.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("unsupported type for StringList")
	}
	if len(raw) == 0 {
		*l = StringList{}
		return nil
	}
	return json.Unmarshal(raw, l)
}

type Bag struct {
	ID            uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	NameEn        string          `gorm:"not null" json:"name_en"`
	NameAr        string          `gorm:"not null" json:"name_ar"`
	DescriptionEn string          `json:"description_en"`
	DescriptionAr string          `json:"description_ar"`
	Price         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Colors        StringList      `gorm:"type:text" json:"colors"`
	Quantity      int             `gorm:"not null;default:0" json:"quantity"`
	ImageURLs     StringList      `gorm:"type:text" json:"image_urls"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
