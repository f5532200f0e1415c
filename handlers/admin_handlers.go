package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/onlinestore/backend/storage"
)

type AdminHandler struct {
	store storage.Store
}

func NewAdminHandler(store storage.Store) *AdminHandler {
	return &AdminHandler{store: store}
}

// Stats backs the admin dashboard counters.
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.store.Stats()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
