package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/onlinestore/backend/auth"
	"github.com/onlinestore/backend/storage"
)

type CustomerHandler struct {
	store storage.Store
}

func NewCustomerHandler(store storage.Store) *CustomerHandler {
	return &CustomerHandler{store: store}
}

func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.store.ListCustomers()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if !auth.CanAccessCustomer(auth.CallerFrom(c), id) {
		c.JSON(http.StatusForbidden, gin.H{"message": "You can only view your own profile"})
		return
	}
	customer, err := h.store.FindCustomer(id)
	if err != nil {
		if storage.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Customer not found"})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

type updateCustomerRequest struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   string  `json:"phone"`
	Address string  `json:"address"`
	Role    *string `json:"role"`
}

func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	caller := auth.CallerFrom(c)
	if !auth.CanAccessCustomer(caller, id) {
		c.JSON(http.StatusForbidden, gin.H{"message": "You can only update your own profile"})
		return
	}
	var req updateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if req.Name == "" || req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name and email are required"})
		return
	}
	customer, err := h.store.FindCustomer(id)
	if err != nil {
		if storage.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Customer not found"})
			return
		}
		respondError(c, err)
		return
	}
	customer.Name = req.Name
	customer.Email = req.Email
	customer.Phone = req.Phone
	customer.Address = req.Address
	// Only admins may change roles.
	if req.Role != nil && caller.IsAdmin() {
		customer.Role = *req.Role
	}
	if err := h.store.SaveCustomer(customer); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if _, err := h.store.FindCustomer(id); err != nil {
		if storage.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Customer not found"})
			return
		}
		respondError(c, err)
		return
	}
	if err := h.store.DeleteCustomer(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted"})
}
