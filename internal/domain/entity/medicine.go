package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Medicine is a public catalog item. The string key is kept from the
// upstream catalog feed; it is not generated by us.
type Medicine struct {
	ID          string          `gorm:"type:varchar(50);primaryKey" json:"id"`
	Name        string          `gorm:"type:varchar(255);not null" json:"name"`
	Description string          `gorm:"type:text;not null" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Image       string          `gorm:"type:text" json:"image,omitempty"`
	Category    string          `gorm:"type:varchar(100);not null;index" json:"category"`
	Stock       int             `gorm:"not null;default:0" json:"stock"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Medicine) TableName() string {
	return "medicines"
}

// InStock reports whether the item can currently be ordered.
func (m *Medicine) InStock() bool {
	return m.Stock > 0
}
