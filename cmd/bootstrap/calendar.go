package bootstrap

import (
	"slotly/internal/infra/calendar"
	"slotly/internal/pkg/config"
	"slotly/internal/usecase"

	"go.uber.org/fx"
)

var CalendarModule = fx.Module("calendar",
	fx.Provide(
		fx.Annotate(
			NewCalendarProvider,
			fx.As(new(usecase.CalendarProvider)),
		),
	),
)

func NewCalendarProvider(cfg config.Config) *calendar.GoogleProvider {
	return calendar.NewGoogleProvider(cfg.Calendar)
}
