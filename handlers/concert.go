package handlers

import (
	"net/http"

	"chorus/models"
	"chorus/services/concert"
	"chorus/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ConcertHandler exposes the concert list and browser endpoints.
type ConcertHandler struct {
	Service concert.ConcertService
}

// NewConcertHandler creates a ConcertHandler.
func NewConcertHandler(svc concert.ConcertService) *ConcertHandler {
	return &ConcertHandler{Service: svc}
}

// ListConcertsHandler handles GET /api/concerts.
func (h *ConcertHandler) ListConcertsHandler(c *gin.Context) {
	concerts, err := h.Service.List()
	if err != nil {
		utils.GetLogger().Error("Failed to load concerts", zap.Error(err))
		// Load failures are retryable from the client's perspective; it
		// falls back to an empty list.
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to load concerts", "retryable": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"concerts": concerts})
}

// BrowseConcertsHandler handles GET /api/concerts/browse.
// Query params: filter=all|upcoming|past, q=<text>, field=everywhere|
// description|address|type|participants, sort=date_asc|date_desc|type|start_time.
func (h *ConcertHandler) BrowseConcertsHandler(c *gin.Context) {
	opts := concert.BrowseOptions{
		Filter: concert.TimeFilter(c.DefaultQuery("filter", string(concert.FilterAll))),
		Query:  c.Query("q"),
		Field:  concert.SearchField(c.DefaultQuery("field", string(concert.SearchEverywhere))),
		Sort:   concert.SortKey(c.DefaultQuery("sort", string(concert.SortDateAsc))),
	}

	groups, err := h.Service.Browse(opts)
	if err != nil {
		utils.GetLogger().Error("Failed to browse concerts", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to load concerts", "retryable": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"groups": groups})
}

// GetConcertHandler handles GET /api/concerts/:id.
func (h *ConcertHandler) GetConcertHandler(c *gin.Context) {
	id := c.Param("id")
	con, err := h.Service.Get(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, con)
}

// CreateConcertHandler handles POST /api/concerts.
func (h *ConcertHandler) CreateConcertHandler(c *gin.Context) {
	var con models.Concert
	if err := c.ShouldBindJSON(&con); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if err := h.Service.Create(&con); err != nil {
		utils.GetLogger().Error("Failed to create concert", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save concert"})
		return
	}
	c.JSON(http.StatusCreated, con)
}

// UpdateConcertHandler handles PUT /api/concerts/:id.
func (h *ConcertHandler) UpdateConcertHandler(c *gin.Context) {
	var con models.Concert
	if err := c.ShouldBindJSON(&con); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	con.ID = c.Param("id")
	if err := h.Service.Update(&con); err != nil {
		utils.GetLogger().Error("Failed to update concert", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save concert"})
		return
	}
	c.JSON(http.StatusOK, con)
}

// DeleteConcertHandler handles DELETE /api/concerts/:id.
func (h *ConcertHandler) DeleteConcertHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.Delete(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Concert deleted"})
}

// ConcertTypeOptionsHandler handles GET /api/concerts/types: the picker table
// of concert type codes to display labels and colors.
func (h *ConcertHandler) ConcertTypeOptionsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, models.ConcertTypeOptions)
}
