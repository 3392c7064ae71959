package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hostelez/internal/auth"
	"hostelez/internal/health"
)

func (h *Handler) CreateHealth(c *gin.Context) {
	var nr health.NewRecord
	if !h.bind(c, &nr) {
		return
	}
	rec, err := h.svc.Health.Create(c.Request.Context(), auth.UserID(c), nr)
	h.reply(c, http.StatusCreated, rec, err)
}

func (h *Handler) ListHealth(c *gin.Context) {
	list, err := h.svc.Health.List(c.Request.Context(), auth.UserID(c))
	h.reply(c, http.StatusOK, list, err)
}

func (h *Handler) TodayHealth(c *gin.Context) {
	rec, err := h.svc.Health.Today(c.Request.Context(), auth.UserID(c))
	h.reply(c, http.StatusOK, rec, err)
}

func (h *Handler) UpdateHealth(c *gin.Context) {
	var p health.Patch
	if !h.bind(c, &p) {
		return
	}
	rec, err := h.svc.Health.Update(c.Request.Context(), auth.UserID(c), c.Param("id"), p)
	h.reply(c, http.StatusOK, rec, err)
}
