package components

import (
	"slotly/internal/pkg/clock"
	"slotly/internal/pkg/hostlock"
	"slotly/internal/usecase"
	"slotly/internal/usecase/commands"
	"slotly/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	hostlock.NewSlotLocker,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
		commands.NewCancellationCommands,
		commands.NewAvailabilityCommands,
		commands.NewEventTypeCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewSlotQueries,
		queries.NewEventTypeQueries,
		queries.NewAvailabilityQueries,
		queries.NewMeetingQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
