package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hostelez/internal/auth"
	"hostelez/internal/checklist"
	"hostelez/internal/food"
	"hostelez/internal/laundry"
	"hostelez/internal/maintenance"
	"hostelez/internal/notice"
	"hostelez/internal/roommate"
)

func (h *Handler) BookLaundry(c *gin.Context) {
	var b laundry.Booking
	if !h.bind(c, &b) {
		return
	}
	l, err := h.svc.Laundry.Book(c.Request.Context(), auth.UserID(c), b)
	h.reply(c, http.StatusCreated, l, err)
}

func (h *Handler) GetLaundry(c *gin.Context) {
	l, err := h.svc.Laundry.Get(c.Request.Context(), auth.UserID(c))
	h.reply(c, http.StatusOK, l, err)
}

func (h *Handler) SetLaundrySlotStatus(c *gin.Context) {
	var sc laundry.StatusChange
	if !h.bind(c, &sc) {
		return
	}
	l, err := h.svc.Laundry.SetSlotStatus(c.Request.Context(), auth.UserID(c), c.Param("id"), sc)
	h.reply(c, http.StatusOK, l, err)
}

func (h *Handler) AddRoommate(c *gin.Context) {
	var nm roommate.NewMate
	if !h.bind(c, &nm) {
		return
	}
	ro, err := h.svc.Roommates.Add(c.Request.Context(), auth.UserID(c), nm)
	h.reply(c, http.StatusCreated, ro, err)
}

func (h *Handler) GetRoommates(c *gin.Context) {
	ro, err := h.svc.Roommates.Get(c.Request.Context(), auth.UserID(c))
	h.reply(c, http.StatusOK, ro, err)
}

func (h *Handler) SetRoommateStatus(c *gin.Context) {
	var sc roommate.StatusChange
	if !h.bind(c, &sc) {
		return
	}
	ro, err := h.svc.Roommates.SetStatus(c.Request.Context(), auth.UserID(c), c.Param("id"), sc)
	h.reply(c, http.StatusOK, ro, err)
}

func (h *Handler) ListNotices(c *gin.Context) {
	list, err := h.svc.Notices.ListActive(c.Request.Context(), auth.UserID(c))
	h.reply(c, http.StatusOK, list, err)
}

func (h *Handler) PublishNotice(c *gin.Context) {
	var nn notice.NewNotice
	if !h.bind(c, &nn) {
		return
	}
	n, err := h.svc.Notices.Publish(c.Request.Context(), auth.UserID(c), nn)
	h.reply(c, http.StatusCreated, n, err)
}

func (h *Handler) DeactivateNotice(c *gin.Context) {
	n, err := h.svc.Notices.Deactivate(c.Request.Context(), auth.UserID(c), c.Param("id"))
	h.reply(c, http.StatusOK, n, err)
}

func (h *Handler) GetChecklist(c *gin.Context) {
	cl, err := h.svc.Checklists.Get(c.Request.Context(), auth.UserID(c))
	h.reply(c, http.StatusOK, cl, err)
}

func (h *Handler) AddChecklistItem(c *gin.Context) {
	var ni checklist.NewItem
	if !h.bind(c, &ni) {
		return
	}
	cl, err := h.svc.Checklists.AddItem(c.Request.Context(), auth.UserID(c), ni)
	h.reply(c, http.StatusCreated, cl, err)
}

func (h *Handler) ToggleChecklistItem(c *gin.Context) {
	cl, err := h.svc.Checklists.Toggle(c.Request.Context(), auth.UserID(c), c.Param("id"))
	h.reply(c, http.StatusOK, cl, err)
}

func (h *Handler) ResetChecklist(c *gin.Context) {
	cl, err := h.svc.Checklists.Reset(c.Request.Context(), auth.UserID(c))
	h.reply(c, http.StatusOK, cl, err)
}

func (h *Handler) NearbyFood(c *gin.Context) {
	list, err := h.svc.Food.Nearby(c.Request.Context())
	h.reply(c, http.StatusOK, list, err)
}

func (h *Handler) AddFood(c *gin.Context) {
	var nv food.NewVenue
	if !h.bind(c, &nv) {
		return
	}
	v, err := h.svc.Food.Add(c.Request.Context(), nv)
	h.reply(c, http.StatusCreated, v, err)
}

func (h *Handler) CreateMaintenance(c *gin.Context) {
	var nt maintenance.NewTicket
	if !h.bind(c, &nt) {
		return
	}
	t, err := h.svc.Maintenance.Create(c.Request.Context(), auth.UserID(c), nt)
	h.reply(c, http.StatusCreated, t, err)
}

func (h *Handler) ListMaintenance(c *gin.Context) {
	list, err := h.svc.Maintenance.List(c.Request.Context(), auth.UserID(c))
	h.reply(c, http.StatusOK, list, err)
}
