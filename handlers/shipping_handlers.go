package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/onlinestore/backend/auth"
	"github.com/onlinestore/backend/models"
	"github.com/onlinestore/backend/storage"
)

type ShippingHandler struct {
	store storage.Store
}

func NewShippingHandler(store storage.Store) *ShippingHandler {
	return &ShippingHandler{store: store}
}

func (h *ShippingHandler) List(c *gin.Context) {
	shippings, err := h.store.ListShippings()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, shippings)
}

func (h *ShippingHandler) GetByOrder(c *gin.Context) {
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
		c.JSON(http.StatusForbidden, gin.H{"message": "You can only view your own shipments"})
		return
	}
	shipping, err := h.store.ShippingByOrder(orderID)
	if err != nil {
		if storage.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Shipping not found"})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, shipping)
}

type updateShippingRequest struct {
	CarrierName        string                `json:"carrierName"`
	Status             models.ShippingStatus `json:"shippingStatus"`
	ActualDeliveryDate *time.Time            `json:"actualDeliveryDate"`
}

func (h *ShippingHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req updateShippingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if req.Status < models.ShippingProcessing || req.Status > models.ShippingLost {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid shipping status"})
		return
	}
	shipping, err := h.store.FindShipping(id)
	if err != nil {
		if storage.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Shipping not found"})
			return
		}
		respondError(c, err)
		return
	}
	if req.CarrierName != "" {
		shipping.CarrierName = req.CarrierName
	}
	shipping.Status = req.Status
	shipping.ActualDeliveryDate = req.ActualDeliveryDate
	if err := h.store.SaveShipping(shipping); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, shipping)
}
