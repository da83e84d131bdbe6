package handler

import (
	"net/http"

	"manmitra/backend/internal/alertfeed"
	"manmitra/backend/internal/escalation"
	"manmitra/backend/internal/localization"
	"manmitra/backend/internal/moderation"
	"manmitra/backend/internal/pipeline"

	"github.com/gin-gonic/gin"
)

// Handler holds the services backing the HTTP surface.
type Handler struct {
	Pipeline   *pipeline.Service
	Moderation *moderation.Service
	Escalation *escalation.Service
	Feed       *alertfeed.Hub
	Localizer  *localization.Localizer
}

func NewHandler(p *pipeline.Service, m *moderation.Service, e *escalation.Service, feed *alertfeed.Hub, loc *localization.Localizer) *Handler {
	return &Handler{
		Pipeline:   p,
		Moderation: m,
		Escalation: e,
		Feed:       feed,
		Localizer:  loc,
	}
}

// GetHelpline returns the localized helpline resource strings. Public:
// crisis resources must never sit behind a login.
func (h *Handler) GetHelpline(c *gin.Context) {
	lang := c.DefaultQuery("lang", "en")
	c.JSON(http.StatusOK, h.Localizer.Bundle(lang))
}
