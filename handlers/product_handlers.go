package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/onlinestore/backend/models"
	"github.com/onlinestore/backend/storage"
)

type ProductHandler struct {
	store storage.Store
}

func NewProductHandler(store storage.Store) *ProductHandler {
	return &ProductHandler{store: store}
}

func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.store.ListProducts()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	product, err := h.store.FindProduct(id)
	if err != nil {
		if storage.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Exists(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	exists, err := h.store.ProductExists(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, exists)
}

func validProduct(p *models.Product) bool {
	return p.Name != "" && p.Price >= 0 && p.Stock >= 0
}

func (h *ProductHandler) Create(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if !validProduct(&product) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product data"})
		return
	}
	product.ID = 0
	if err := h.store.CreateProduct(&product); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var updated models.Product
	if err := c.ShouldBindJSON(&updated); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if !validProduct(&updated) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product data"})
		return
	}
	product, err := h.store.FindProduct(id)
	if err != nil {
		if storage.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			return
		}
		respondError(c, err)
		return
	}
	product.Name = updated.Name
	product.Description = updated.Description
	product.Price = updated.Price
	product.Stock = updated.Stock
	product.CategoryID = updated.CategoryID
	if err := h.store.SaveProduct(product); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if _, err := h.store.FindProduct(id); err != nil {
		if storage.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			return
		}
		respondError(c, err)
		return
	}
	if err := h.store.DeleteProduct(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}
