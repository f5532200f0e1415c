package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/onlinestore/backend/models"
	"github.com/onlinestore/backend/storage"
)

type ImageHandler struct {
	store storage.Store
}

func NewImageHandler(store storage.Store) *ImageHandler {
	return &ImageHandler{store: store}
}

// ListByProduct returns a product's images sorted by display order.
func (h *ImageHandler) ListByProduct(c *gin.Context) {
	productID, ok := parseID(c, "id")
	if !ok {
		return
	}
	if _, err := h.store.FindProduct(productID); err != nil {
		if storage.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			return
		}
		respondError(c, err)
		return
	}
	images, err := h.store.ImagesByProduct(productID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, images)
}

type createImageRequest struct {
	ProductID  uint   `json:"productID"`
	ImageURL   string `json:"imageURL"`
	ImageOrder int    `json:"imageOrder"`
}

func (h *ImageHandler) Create(c *gin.Context) {
	var req createImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if req.ImageURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Image URL is required"})
		return
	}
	if _, err := h.store.FindProduct(req.ProductID); err != nil {
		if storage.IsNotFound(err) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Product does not exist"})
			return
		}
		respondError(c, err)
		return
	}
	image := models.Image{
		ProductID:  req.ProductID,
		ImageURL:   req.ImageURL,
		ImageOrder: req.ImageOrder,
	}
	if err := h.store.CreateImage(&image); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, image)
}

func (h *ImageHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if _, err := h.store.FindImage(id); err != nil {
		if storage.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Image not found"})
			return
		}
		respondError(c, err)
		return
	}
	if err := h.store.DeleteImage(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Image deleted"})
}
