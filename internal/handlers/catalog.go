package handlers

import (
	"net/http"

	"github.com/Nourbaganne/Esport-post-board/internal/catalog"
	"github.com/gin-gonic/gin"
)

type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// GetCatalog отдаёт справочники для форм и панели фильтров
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"games":   catalog.Games,
		"regions": catalog.Regions,
		"roles":   catalog.Roles,
		"ranks":   catalog.Ranks,
	})
}
