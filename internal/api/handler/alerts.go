package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type resolveRequest struct {
	Notes string `json:"notes"`
}

// ListAlerts returns alerts filtered by status, newest first.
func (h *Handler) ListAlerts(c *gin.Context) {
	alerts, err := h.Escalation.List(c.DefaultQuery("status", "all"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"alerts": alerts})
}

// AlertStats serves the pending-alert gauge for polling clients.
func (h *Handler) AlertStats(c *gin.Context) {
	count, err := h.Escalation.Storage.GetPendingAlertGauge()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pending": count})
}

// AcknowledgeAlert claims a pending alert for the caller. A lost race
// surfaces as 409, not a silent overwrite.
func (h *Handler) AcknowledgeAlert(c *gin.Context) {
	alert, err := h.Escalation.Acknowledge(c.Param("id"), c.GetString("anon_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, alert)
}

// ResolveAlert closes out an acknowledged alert with mandatory notes.
func (h *Handler) ResolveAlert(c *gin.Context) {
	var req resolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	alert, err := h.Escalation.Resolve(c.Param("id"), c.GetString("anon_id"), c.GetString("role"), req.Notes)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, alert)
}
