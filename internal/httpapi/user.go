package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hostelez/internal/auth"
	"hostelez/internal/user"
)

func (h *Handler) Register(c *gin.Context) {
	var nu user.NewUser
	if !h.bind(c, &nu) {
		return
	}
	usr, err := h.svc.Users.Register(c.Request.Context(), nu)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully", "userId": usr.ID})
}

func (h *Handler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if !h.bind(c, &req) {
		return
	}
	token, usr, err := h.svc.Users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user": usr.Summary()})
}

func (h *Handler) GetProfile(c *gin.Context) {
	usr, err := h.svc.Users.Get(c.Request.Context(), auth.UserID(c))
	h.reply(c, http.StatusOK, usr, err)
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	var pu user.ProfileUpdate
	if !h.bind(c, &pu) {
		return
	}
	usr, err := h.svc.Users.Update(c.Request.Context(), auth.UserID(c), pu)
	h.reply(c, http.StatusOK, usr, err)
}
