package httpapi

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"hostelez/internal/auth"
	"hostelez/internal/httpmiddleware"
)

// RouterOptions tunes the middleware stack.
type RouterOptions struct {
	Limiter        *httpmiddleware.TokenBucket // nil disables rate limiting
	AllowedOrigins []string
	AccessLog      bool
}

// NewRouter builds the gin engine with every route mounted.
func NewRouter(h *Handler, opts RouterOptions) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if opts.AccessLog {
		r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
			SkipPaths: []string{"/healthz", "/metrics"},
		}))
	}
	r.Use(httpmiddleware.RequestID(), httpmiddleware.Metrics(), httpmiddleware.SecurityHeaders())

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", httpmiddleware.RequestIDHeader},
		ExposeHeaders:    []string{httpmiddleware.RequestIDHeader},
	}
	// credentials only go to origins that were listed explicitly
	if len(opts.AllowedOrigins) == 0 {
		corsCfg.AllowOriginFunc = func(string) bool { return true }
	} else {
		corsCfg.AllowOrigins = opts.AllowedOrigins
		corsCfg.AllowCredentials = true
	}
	r.Use(cors.New(corsCfg))
	if opts.Limiter != nil {
		r.Use(opts.Limiter.Middleware())
	}

	r.GET("/healthz", h.Healthz)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	api.POST("/auth/register", h.Register)
	api.POST("/auth/login", h.Login)

	authed := api.Group("", auth.Required(h.signer))
	authed.GET("/user/profile", h.GetProfile)
	authed.PUT("/user/profile", h.UpdateProfile)

	authed.POST("/timetable", h.SaveTimetable)
	authed.GET("/timetable", h.GetTimetable)
	authed.GET("/timetable/today", h.TodayClasses)

	authed.POST("/attendance", h.CreateAttendance)
	authed.GET("/attendance", h.ListAttendance)
	authed.POST("/attendance/:id/mark", h.MarkAttendance)

	authed.POST("/laundry/book", h.BookLaundry)
	authed.GET("/laundry", h.GetLaundry)
	authed.PUT("/laundry/slots/:id/status", h.SetLaundrySlotStatus)

	authed.POST("/roommates", h.AddRoommate)
	authed.GET("/roommates", h.GetRoommates)
	authed.PUT("/roommates/:id/status", h.SetRoommateStatus)

	authed.POST("/health", h.CreateHealth)
	authed.GET("/health", h.ListHealth)
	authed.GET("/health/today", h.TodayHealth)
	authed.PUT("/health/:id", h.UpdateHealth)

	authed.POST("/assignments", h.CreateAssignment)
	authed.GET("/assignments", h.ListAssignments)
	authed.PUT("/assignments/:id", h.UpdateAssignment)

	authed.GET("/notices", h.ListNotices)
	authed.POST("/notices", h.PublishNotice)
	authed.PUT("/notices/:id/deactivate", h.DeactivateNotice)

	authed.GET("/checklist", h.GetChecklist)
	authed.POST("/checklist", h.AddChecklistItem)
	authed.PUT("/checklist/:id/toggle", h.ToggleChecklistItem)
	authed.POST("/checklist/reset", h.ResetChecklist)

	authed.GET("/food/nearby", h.NearbyFood)
	authed.POST("/food", h.AddFood)

	authed.POST("/events", h.CreateEvent)
	authed.GET("/events", h.ListEvents)

	authed.POST("/maintenance", h.CreateMaintenance)
	authed.GET("/maintenance", h.ListMaintenance)

	authed.GET("/notifications", h.ListNotifications)
	authed.PUT("/notifications/:id/read", h.ReadNotification)

	authed.POST("/uploads", h.Upload)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})
	return r
}
