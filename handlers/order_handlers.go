package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/onlinestore/backend/auth"
	"github.com/onlinestore/backend/models"
	"github.com/onlinestore/backend/orders"
	"github.com/onlinestore/backend/storage"
)

type OrderHandler struct {
	store   storage.Store
	service *orders.Service
}

func NewOrderHandler(store storage.Store, service *orders.Service) *OrderHandler {
	return &OrderHandler{store: store, service: service}
}

// PlaceComplete handles POST /orders/complete: the full order + items +
// payment + shipping creation flow.
func (h *OrderHandler) PlaceComplete(c *gin.Context) {
	var req orders.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	placed, err := h.service.PlaceOrder(auth.CallerFrom(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, placed)
}

func (h *OrderHandler) List(c *gin.Context) {
	orderList, err := h.store.ListOrders()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderList)
}

func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	order, err := h.store.FindOrder(id)
	if err != nil {
		if storage.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
			return
		}
		respondError(c, err)
		return
	}
	if !auth.CanAccessCustomer(auth.CallerFrom(c), order.CustomerID) {
		c.JSON(http.StatusForbidden, gin.H{"message": "You can only view your own orders"})
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) ListByCustomer(c *gin.Context) {
	customerID, ok := parseID(c, "customerID")
	if !ok {
		return
	}
	if !auth.CanAccessCustomer(auth.CallerFrom(c), customerID) {
		c.JSON(http.StatusForbidden, gin.H{"message": "You can only view your own orders"})
		return
	}
	orderList, err := h.store.OrdersByCustomer(customerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderList)
}

type updateStatusRequest struct {
	Status models.OrderStatus `json:"status"`
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if err := h.service.UpdateStatus(auth.CallerFrom(c), id, req.Status); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order status updated"})
}

type updateOrderRequest struct {
	CustomerID  uint               `json:"customerID"`
	TotalAmount float64            `json:"totalAmount"`
	Status      models.OrderStatus `json:"status"`
}

// Update is the admin full-order update used by the management screens.
func (h *OrderHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req updateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if req.TotalAmount < 0 || !req.Status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order data"})
		return
	}
	order, err := h.store.FindOrder(id)
	if err != nil {
		if storage.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
			return
		}
		respondError(c, err)
		return
	}
	if req.CustomerID != 0 {
		order.CustomerID = req.CustomerID
	}
	order.TotalAmount = req.TotalAmount
	order.Status = req.Status
	if err := h.store.SaveOrder(order); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if _, err := h.store.FindOrder(id); err != nil {
		if storage.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
			return
		}
		respondError(c, err)
		return
	}
	if err := h.store.DeleteOrder(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted"})
}

func (h *OrderHandler) Exists(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	exists, err := h.store.OrderExists(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, exists)
}

// ItemsByOrder handles GET /orderitems/order/:orderID.
func (h *OrderHandler) ItemsByOrder(c *gin.Context) {
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
		c.JSON(http.StatusForbidden, gin.H{"message": "You can only view your own orders"})
		return
	}
	items, err := h.store.ItemsByOrder(orderID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}
