package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/onlinestore/backend/auth"
	"github.com/onlinestore/backend/storage"
)

type PaymentHandler struct {
	store storage.Store
}

func NewPaymentHandler(store storage.Store) *PaymentHandler {
	return &PaymentHandler{store: store}
}

func (h *PaymentHandler) List(c *gin.Context) {
	payments, err := h.store.ListPayments()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

func (h *PaymentHandler) GetByOrder(c *gin.Context) {
	orderID, ok := parseID(c, "orderID")
	if !ok {
		return
	}
	order, err := h.store.FindOrder(orderID)
	if err != nil {
		if storage.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
			return
		}
		respondError(c, err)
		return
	}
	if !auth.CanAccessCustomer(auth.CallerFrom(c), order.CustomerID) {
		c.JSON(http.StatusForbidden, gin.H{"message": "You can only view your own payments"})
		return
	}
	payment, err := h.store.PaymentByOrder(orderID)
	if err != nil {
		if storage.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Payment not found"})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}
