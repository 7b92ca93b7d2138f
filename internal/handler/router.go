package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"slotly/internal/handler/api"
	"slotly/internal/handler/middleware"
	"slotly/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	slotHandler *api.SlotHandler,
	bookingHandler *api.BookingHandler,
	availabilityHandler *api.AvailabilityHandler,
	eventTypeHandler *api.EventTypeHandler,
	meetingHandler *api.MeetingHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, slotHandler, bookingHandler, availabilityHandler, eventTypeHandler, meetingHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	slotHandler *api.SlotHandler,
	bookingHandler *api.BookingHandler,
	availabilityHandler *api.AvailabilityHandler,
	eventTypeHandler *api.EventTypeHandler,
	meetingHandler *api.MeetingHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		// Guest-facing routes are public; guests have no accounts.
		hosts := apiGroup.Group("/hosts")
		{
			addRoutes(hosts, []route{
				{Method: http.MethodGet, Path: "/:username/events/:eventUrl", Handler: slotHandler.GetBookingPage},
				{Method: http.MethodGet, Path: "/:username/events/:eventUrl/slots", Handler: slotHandler.ListSlots},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/bookings", Handler: bookingHandler.CreateBooking},
		})

		availability := apiGroup.Group("/availability")
		availability.Use(authMiddleware.RequireAuth())
		{
			addRoutes(availability, []route{
				{Method: http.MethodGet, Path: "", Handler: availabilityHandler.GetAvailability},
				{Method: http.MethodPut, Path: "", Handler: availabilityHandler.UpdateAvailability},
			})
		}

		eventTypes := apiGroup.Group("/event-types")
		eventTypes.Use(authMiddleware.RequireAuth())
		{
			addRoutes(eventTypes, []route{
				{Method: http.MethodGet, Path: "", Handler: eventTypeHandler.ListEventTypes},
				{Method: http.MethodPost, Path: "", Handler: eventTypeHandler.CreateEventType},
				{Method: http.MethodPatch, Path: "/:id", Handler: eventTypeHandler.EditEventType},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: eventTypeHandler.SetEventTypeStatus},
				{Method: http.MethodDelete, Path: "/:id", Handler: eventTypeHandler.DeleteEventType},
			})
		}

		meetings := apiGroup.Group("/meetings")
		meetings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(meetings, []route{
				{Method: http.MethodGet, Path: "", Handler: meetingHandler.ListMeetings},
				{Method: http.MethodDelete, Path: "/:eventId", Handler: meetingHandler.CancelMeeting},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
