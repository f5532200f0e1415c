package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/onlinestore/backend/auth"
	"github.com/onlinestore/backend/models"
	"github.com/onlinestore/backend/storage"
)

type ReviewHandler struct {
	store storage.Store
}

func NewReviewHandler(store storage.Store) *ReviewHandler {
	return &ReviewHandler{store: store}
}

func (h *ReviewHandler) ListByProduct(c *gin.Context) {
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
	reviews, err := h.store.ReviewsByProduct(productID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

type createReviewRequest struct {
	ProductID  uint   `json:"productID"`
	CustomerID uint   `json:"customerID"`
	Rating     int    `json:"rating"`
	ReviewText string `json:"reviewText"`
}

func (h *ReviewHandler) Create(c *gin.Context) {
	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if !auth.CanAccessCustomer(auth.CallerFrom(c), req.CustomerID) {
		c.JSON(http.StatusForbidden, gin.H{"message": "You can only review as yourself"})
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Rating must be between 1 and 5"})
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
	review := models.Review{
		ProductID:  req.ProductID,
		CustomerID: req.CustomerID,
		Rating:     req.Rating,
		ReviewText: req.ReviewText,
		ReviewDate: time.Now().UTC(),
	}
	if err := h.store.CreateReview(&review); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}
