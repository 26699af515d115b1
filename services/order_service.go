package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/yeremiapane/food-order-app/cart"
	"github.com/yeremiapane/food-order-app/models"
	"github.com/yeremiapane/food-order-app/utils"
)

var (
	// ErrEmptyCart dikembalikan saat checkout tanpa ada baris di cart.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrUnauthorized dikembalikan saat checkout tanpa identitas user.
	ErrUnauthorized = errors.New("user is not authenticated")
)

type OrderService struct {
	DB *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{DB: db}
}

// PlaceOrder mengubah isi cart menjadi satu Order plus OrderItem per baris
// dalam satu transaksi: semua insert berhasil atau semuanya di-rollback.
// Kalau gagal, cart dibiarkan utuh supaya user bisa retry; kalau sukses,
// cart dikosongkan dan ID order baru dikembalikan.
func (s *OrderService) PlaceOrder(userID uint, c *cart.Cart) (uint, error) {
	if userID == 0 {
		return 0, ErrUnauthorized
	}
	if c.IsEmpty() {
		return 0, ErrEmptyCart
	}

	lines := c.Lines()
	order := models.Order{
		UserID:      userID,
		TotalAmount: c.Total(),
		CreatedAt:   time.Now(),
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		for _, ln := range lines {
			item := models.OrderItem{
				OrderID:    order.ID,
				MenuItemID: ln.ItemID,
				Quantity:   ln.Quantity,
				Price:      ln.Price, // harga dari cart, bukan dari tabel menu
				CreatedAt:  order.CreatedAt,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		utils.ErrorLogger.Printf("Failed to place order for user %d: %v", userID, err)
		return 0, err
	}

	c.Clear()
	utils.InfoLogger.Printf("Order #%d placed by user %d, total %s",
		order.ID, userID, utils.FormatCurrency(order.TotalAmount))
	return order.ID, nil
}

// ListOrders mengembalikan riwayat order milik user, terbaru dulu.
func (s *OrderService) ListOrders(userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := s.DB.Preload("OrderItems").
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&orders).Error
	return orders, err
}
