package handler

import (
	"net/http"

	"manmitra/backend/internal/classifier"

	"github.com/gin-gonic/gin"
)

type submissionRequest struct {
	Body     string `json:"body" binding:"required"`
	Language string `json:"language"`
	Source   string `json:"source" binding:"required"`
}

type contentCheckRequest struct {
	Body     string `json:"body" binding:"required"`
	Language string `json:"language"`
}

// CreateSubmission classifies and stores a submission on behalf of
// the authenticated caller.
func (h *Handler) CreateSubmission(c *gin.Context) {
	var req submissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sub, err := h.Pipeline.Submit(req.Body, c.GetString("anon_id"), classifier.Lang(req.Language), req.Source)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, sub)
}

// CheckContent runs the live classification without persisting
// anything, so the client can decide whether to show the crisis
// dialog while the user types.
func (h *Handler) CheckContent(c *gin.Context) {
	var req contentCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.Pipeline.CheckContent(req.Body, classifier.Lang(req.Language)))
}
