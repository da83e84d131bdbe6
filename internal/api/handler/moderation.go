package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type decisionRequest struct {
	PostID string `json:"post_id" binding:"required"`
	Action string `json:"action" binding:"required"`
	Reason string `json:"reason"`
}

// GetModerationQueue lists forum submissions for the given filter.
func (h *Handler) GetModerationQueue(c *gin.Context) {
	subs, err := h.Moderation.List(c.DefaultQuery("filter", "all"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"submissions": subs})
}

// CreateDecision records a moderation decision by the caller.
func (h *Handler) CreateDecision(c *gin.Context) {
	var req decisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	decision, err := h.Moderation.Decide(req.PostID, req.Action, req.Reason, c.GetString("anon_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, decision)
}

// GetDecisionHistory returns the audit trail of decisions for a post.
func (h *Handler) GetDecisionHistory(c *gin.Context) {
	decisions, err := h.Moderation.History(c.Param("postId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"decisions": decisions})
}
