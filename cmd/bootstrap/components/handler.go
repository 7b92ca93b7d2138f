package components

import (
	"slotly/internal/handler"
	"slotly/internal/handler/api"
	"slotly/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSlotHandler,
		api.NewBookingHandler,
		api.NewAvailabilityHandler,
		api.NewEventTypeHandler,
		api.NewMeetingHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
