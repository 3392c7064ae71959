// Package httpapi exposes the services over HTTP under /api.
package httpapi

import (
	"context"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"hostelez/internal/app"
	"hostelez/internal/auth"
	"hostelez/internal/cloudinary"
	"hostelez/internal/core"
	"hostelez/internal/errreport"
)

// Uploader stores media and returns where it lives.
type Uploader interface {
	UploadBytes(ctx context.Context, sub string, data []byte, filename string) (*cloudinary.UploadResult, error)
	UploadDataURL(ctx context.Context, sub, data string) (*cloudinary.UploadResult, error)
}

// Check reports whether a dependency is reachable.
type Check = func(ctx context.Context) bool

// Handler serves every route.
type Handler struct {
	svc     *app.Services
	signer  *auth.Signer
	uploads Uploader // nil when media storage is not configured
	report  *errreport.Reporter
	trans   ut.Translator
	checks  map[string]Check
}

// gin's validator is process wide, so tags and translations are registered once.
var (
	initValidation sync.Once
	translator     ut.Translator
)

func New(svc *app.Services, signer *auth.Signer, uploads Uploader, report *errreport.Reporter, checks map[string]Check) *Handler {
	initValidation.Do(func() {
		translator = core.NewTranslator()
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			core.InitValidators(v, translator)
		}
	})
	return &Handler{svc: svc, signer: signer, uploads: uploads, report: report, trans: translator, checks: checks}
}

// bind decodes the JSON body into dst, answering 400 itself on failure.
func (h *Handler) bind(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": core.TranslateErrors(verrs, h.trans)})
		} else {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		}
		return false
	}
	return true
}

// fail maps a service error to a response.
func (h *Handler) fail(c *gin.Context, err error) {
	var verr *core.ValidationError
	switch {
	case errors.As(err, &verr):
		body := gin.H{"error": verr.Error()}
		if len(verr.Fields) > 0 {
			fields := make(map[string]string, len(verr.Fields))
			for _, f := range verr.Fields {
				fields[f.Field] = f.Error
			}
			body["fields"] = fields
		}
		c.JSON(http.StatusBadRequest, body)
	case core.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, core.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	default:
		h.report.Request(c.Request, err, map[string]interface{}{
			"userId":    auth.UserID(c),
			"requestId": c.GetString("requestID"),
		})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// reply writes v with status, or the error mapping when err is set.
func (h *Handler) reply(c *gin.Context, status int, v any, err error) {
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(status, v)
}

func (h *Handler) Healthz(c *gin.Context) {
	status := http.StatusOK
	out := gin.H{}
	for name, check := range h.checks {
		ok := check(c.Request.Context())
		out[name] = ok
		if !ok {
			status = http.StatusServiceUnavailable
		}
	}
	if status == http.StatusOK {
		out["status"] = "ok"
	} else {
		out["status"] = "degraded"
	}
	c.JSON(status, out)
}
