package handler

import (
	"net/http"
	"strconv"

	service "recall-reconciliation-backend/internal/services/cases"

	"github.com/gin-gonic/gin"
)

type CaseHandler struct {
	service *service.Service
}

func NewCaseHandler(s *service.Service) *CaseHandler {
	return &CaseHandler{service: s}
}

// ProcessCase runs one recall narrative through the pipeline and returns the
// full result, including the response text to post back to the ticket.
func (h *CaseHandler) ProcessCase(c *gin.Context) {
	var payload struct {
		CaseID    string `json:"case_id"`
		Narrative string `json:"narrative"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if payload.Narrative == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "narrative is required"})
		return
	}

	result := h.service.Process(payload.CaseID, payload.Narrative)
	c.JSON(http.StatusOK, result)
}

// GetCase fetches one previously processed case.
func (h *CaseHandler) GetCase(c *gin.Context) {
	rec, err := h.service.CaseRepo().GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "case not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"case": rec})
}

// ListCases returns recent processed cases, optionally filtered by
// disposition.
func (h *CaseHandler) ListCases(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit <= 0 {
		limit = 50
	}

	recs, err := h.service.CaseRepo().List(c.Query("disposition"), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cases": recs})
}
