package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order adalah catatan checkout yang sudah selesai. Immutable setelah dibuat,
// riwayat order per user bersifat append-only.
type Order struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	UserID      uint            `gorm:"not null;index" json:"user_id"`
	User        User            `gorm:"foreignKey:UserID;references:ID" json:"-"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	OrderItems  []OrderItem     `gorm:"foreignKey:OrderID" json:"order_items"`
}
