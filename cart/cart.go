package cart

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrInvalidPrice dikembalikan kalau harga dari client tidak bisa diparse
// sebagai angka desimal non-negatif.
var ErrInvalidPrice = errors.New("invalid price")

// Line adalah satu baris item di dalam cart.
type Line struct {
	ItemID   uint            `json:"item_id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// Cart menampung daftar item belanja milik satu session. Tidak pernah
// disimpan ke database; isinya baru jadi durable lewat OrderService.
type Cart struct {
	lines []Line
}

// Add memasukkan SATU unit item ke cart. Kalau item dengan itemID yang sama
// sudah ada, quantity-nya bertambah satu; kalau belum, baris baru ditambahkan
// di urutan paling akhir. Quantity dari client sengaja diabaikan: satu kali
// add selalu menambah tepat satu unit.
func (c *Cart) Add(itemID uint, name string, price string) error {
	p, err := decimal.NewFromString(price)
	if err != nil || p.IsNegative() {
		return ErrInvalidPrice
	}

	for i := range c.lines {
		if c.lines[i].ItemID == itemID {
			c.lines[i].Quantity++
			return nil
		}
	}

	c.lines = append(c.lines, Line{
		ItemID:   itemID,
		Name:     name,
		Price:    p,
		Quantity: 1,
	})
	return nil
}

// Total menjumlahkan price x quantity semua baris dengan aritmetika desimal
// eksak. Cart kosong menghasilkan 0.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, ln := range c.lines {
		total = total.Add(ln.Price.Mul(decimal.NewFromInt(int64(ln.Quantity))))
	}
	return total
}

// Lines mengembalikan snapshot baris sesuai urutan insert.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Clear mengosongkan cart. Idempotent.
func (c *Cart) Clear() {
	c.lines = nil
}

// IsEmpty melaporkan apakah cart tidak punya baris sama sekali.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}
