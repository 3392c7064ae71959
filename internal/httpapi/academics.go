package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hostelez/internal/assignment"
	"hostelez/internal/attendance"
	"hostelez/internal/auth"
	"hostelez/internal/event"
	"hostelez/internal/timetable"
)

func (h *Handler) SaveTimetable(c *gin.Context) {
	var in timetable.Input
	if !h.bind(c, &in) {
		return
	}
	tt, err := h.svc.Timetables.Save(c.Request.Context(), auth.UserID(c), in)
	h.reply(c, http.StatusOK, tt, err)
}

func (h *Handler) GetTimetable(c *gin.Context) {
	tt, err := h.svc.Timetables.Get(c.Request.Context(), auth.UserID(c))
	h.reply(c, http.StatusOK, tt, err)
}

func (h *Handler) TodayClasses(c *gin.Context) {
	classes, err := h.svc.Timetables.Today(c.Request.Context(), auth.UserID(c))
	h.reply(c, http.StatusOK, classes, err)
}

func (h *Handler) CreateAttendance(c *gin.Context) {
	var na attendance.NewAttendance
	if !h.bind(c, &na) {
		return
	}
	att, err := h.svc.Attendance.Create(c.Request.Context(), auth.UserID(c), na)
	h.reply(c, http.StatusCreated, att, err)
}

func (h *Handler) ListAttendance(c *gin.Context) {
	list, err := h.svc.Attendance.List(c.Request.Context(), auth.UserID(c))
	h.reply(c, http.StatusOK, list, err)
}

func (h *Handler) MarkAttendance(c *gin.Context) {
	var m attendance.Mark
	if !h.bind(c, &m) {
		return
	}
	att, err := h.svc.Attendance.Mark(c.Request.Context(), auth.UserID(c), c.Param("id"), m)
	h.reply(c, http.StatusOK, att, err)
}

func (h *Handler) CreateAssignment(c *gin.Context) {
	var na assignment.NewAssignment
	if !h.bind(c, &na) {
		return
	}
	a, err := h.svc.Assignments.Create(c.Request.Context(), auth.UserID(c), na)
	h.reply(c, http.StatusCreated, a, err)
}

func (h *Handler) ListAssignments(c *gin.Context) {
	list, err := h.svc.Assignments.List(c.Request.Context(), auth.UserID(c))
	h.reply(c, http.StatusOK, list, err)
}

func (h *Handler) UpdateAssignment(c *gin.Context) {
	var p assignment.Patch
	if !h.bind(c, &p) {
		return
	}
	a, err := h.svc.Assignments.Update(c.Request.Context(), auth.UserID(c), c.Param("id"), p)
	h.reply(c, http.StatusOK, a, err)
}

func (h *Handler) CreateEvent(c *gin.Context) {
	var ne event.NewEvent
	if !h.bind(c, &ne) {
		return
	}
	e, err := h.svc.Events.Create(c.Request.Context(), auth.UserID(c), ne)
	h.reply(c, http.StatusCreated, e, err)
}

func (h *Handler) ListEvents(c *gin.Context) {
	list, err := h.svc.Events.List(c.Request.Context(), auth.UserID(c))
	h.reply(c, http.StatusOK, list, err)
}
