package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/food-order-app/cart"
	"github.com/yeremiapane/food-order-app/utils"
)

type CartController struct {
	Carts *cart.Store
}

func NewCartController(carts *cart.Store) *CartController {
	return &CartController{Carts: carts}
}

// AddItem -> tambah SATU unit item ke cart session.
// Field quantity dari client diterima tapi diabaikan; lihat cart.Add.
func (cc *CartController) AddItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user id not found in context"))
		return
	}

	var req struct {
		ItemID   uint        `json:"item_id" binding:"required"`
		Name     string      `json:"name" binding:"required"`
		Price    interface{} `json:"price" binding:"required"`
		Quantity int         `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	// Price boleh dikirim sebagai string atau angka; selain itu ditolak
	var priceStr string
	switch v := req.Price.(type) {
	case string:
		priceStr = v
	case float64:
		priceStr = strconv.FormatFloat(v, 'f', -1, 64)
	default:
		utils.RespondError(c, http.StatusBadRequest, cart.ErrInvalidPrice)
		return
	}

	userCart := cc.Carts.Fetch(userID)
	if err := userCart.Add(req.ItemID, req.Name, priceStr); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Item added to cart", gin.H{
		"items": userCart.Lines(),
		"total": userCart.Total(),
	})
}

// GetCart -> isi cart plus total desimal eksak
func (cc *CartController) GetCart(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user id not found in context"))
		return
	}

	userCart := cc.Carts.Fetch(userID)
	total := userCart.Total()

	utils.RespondJSON(c, http.StatusOK, "Cart contents", gin.H{
		"items":         userCart.Lines(),
		"total":         total,
		"total_display": utils.FormatCurrency(total),
	})
}

// ClearCart -> kosongkan cart. Idempotent.
func (cc *CartController) ClearCart(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user id not found in context"))
		return
	}

	cc.Carts.Fetch(userID).Clear()
	utils.RespondJSON(c, http.StatusOK, "Cart cleared", nil)
}
