package handlers

import (
	"net/http"

	"github.com/Nourbaganne/Esport-post-board/internal/database"
	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	db *database.Database
}

func NewProfileHandler(db *database.Database) *ProfileHandler {
	return &ProfileHandler{db: db}
}

// GetProfile возвращает публичный профиль по id
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.db.GetProfile(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get profile"})
		return
	}
	if profile == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}

	c.JSON(http.StatusOK, profile)
}
