package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/onlinestore/backend/auth"
	"github.com/onlinestore/backend/models"
	"github.com/onlinestore/backend/storage"
)

type AuthHandler struct {
	store  storage.Store
	tokens *auth.TokenService
}

func NewAuthHandler(store storage.Store, tokens *auth.TokenService) *AuthHandler {
	return &AuthHandler{store: store, tokens: tokens}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authResponse struct {
	Customer models.Customer `json:"customer"`
	Token    string          `json:"token"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if req.Name == "" || req.Email == "" || req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name, email, username, and password are required"})
		return
	}
	if len(req.Password) < 6 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Password must be at least 6 characters long"})
		return
	}

	if _, err := h.store.FindCustomerByUsername(req.Username); err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username already exists"})
		return
	} else if !storage.IsNotFound(err) {
		respondError(c, err)
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	customer := models.Customer{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		Username: req.Username,
		Password: hash,
		Role:     models.RoleCustomer,
	}
	if err := h.store.CreateCustomer(&customer); err != nil {
		// A concurrent registration may slip past the pre-check and hit the
		// unique index instead.
		if storage.IsDuplicate(err) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Username already exists"})
			return
		}
		respondError(c, err)
		return
	}
	log.Printf("customer registered: %s (ID %d)", customer.Username, customer.ID)

	token, err := h.tokens.Generate(customer.ID, customer.Username, customer.Role)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, authResponse{Customer: customer, Token: token})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username and password are required"})
		return
	}

	customer, err := h.store.FindCustomerByUsername(req.Username)
	if err != nil {
		if storage.IsNotFound(err) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid username or password"})
			return
		}
		respondError(c, err)
		return
	}
	if !auth.VerifyPassword(req.Password, customer.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid username or password"})
		return
	}

	token, err := h.tokens.Generate(customer.ID, customer.Username, customer.Role)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, authResponse{Customer: *customer, Token: token})
}

func (h *AuthHandler) Me(c *gin.Context) {
	caller := auth.CallerFrom(c)
	customer, err := h.store.FindCustomer(caller.CustomerID)
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
