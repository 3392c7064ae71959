package httpapi

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hostelez/internal/auth"
	"hostelez/internal/cloudinary"
)

const maxUploadBytes = 10 << 20

var uploadFolders = map[string]bool{"certificates": true, "maintenance": true, "profile": true}

func (h *Handler) ListNotifications(c *gin.Context) {
	list, err := h.svc.Notifications.List(c.Request.Context(), auth.UserID(c))
	h.reply(c, http.StatusOK, list, err)
}

func (h *Handler) ReadNotification(c *gin.Context) {
	if err := h.svc.Notifications.MarkRead(c.Request.Context(), auth.UserID(c), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Upload stores a multipart "file" or a JSON {"data": "<data URL>"} body.
func (h *Handler) Upload(c *gin.Context) {
	if h.uploads == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "media storage not configured"})
		return
	}
	folder := c.DefaultQuery("folder", "profile")
	if !uploadFolders[folder] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "folder must be one of certificates, maintenance, profile"})
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)
	ctx := c.Request.Context()

	var (
		res *cloudinary.UploadResult
		err error
	)
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		file, header, ferr := c.Request.FormFile("file")
		if ferr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file field required"})
			return
		}
		defer file.Close()
		data, ferr := io.ReadAll(file)
		if ferr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "could not read file"})
			return
		}
		res, err = h.uploads.UploadBytes(ctx, folder, data, header.Filename)
	} else {
		var body struct {
			Data string `json:"data" binding:"required,startswith=data:"`
		}
		if !h.bind(c, &body) {
			return
		}
		res, err = h.uploads.UploadDataURL(ctx, folder, body.Data)
	}
	if err != nil {
		h.report.Request(c.Request, err, map[string]interface{}{"folder": folder})
		c.JSON(http.StatusBadGateway, gin.H{"error": "upload failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"url":      res.SecureURL,
		"publicId": res.PublicID,
		"width":    res.Width,
		"height":   res.Height,
		"bytes":    res.Bytes,
	})
}
