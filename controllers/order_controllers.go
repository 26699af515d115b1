package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/food-order-app/cart"
	"github.com/yeremiapane/food-order-app/services"
	"github.com/yeremiapane/food-order-app/utils"
)

type OrderController struct {
	Service *services.OrderService
	Carts   *cart.Store
}

func NewOrderController(svc *services.OrderService, carts *cart.Store) *OrderController {
	return &OrderController{Service: svc, Carts: carts}
}

// PlaceOrder -> checkout isi cart menjadi order durable
func (oc *OrderController) PlaceOrder(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, services.ErrUnauthorized)
		return
	}

	userCart := oc.Carts.Fetch(userID)

	orderID, err := oc.Service.PlaceOrder(userID, userCart)
	switch {
	case errors.Is(err, services.ErrEmptyCart):
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	case errors.Is(err, services.ErrUnauthorized):
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	case err != nil:
		// Kegagalan storage: transaksi sudah di-rollback, cart masih utuh
		utils.RespondError(c, http.StatusInternalServerError, errors.New("failed to place order"))
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Order placed", gin.H{
		"order_id": orderID,
	})
}

// GetMyOrders -> riwayat order user, terbaru dulu
func (oc *OrderController) GetMyOrders(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, services.ErrUnauthorized)
		return
	}

	orders, err := oc.Service.ListOrders(userID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}
