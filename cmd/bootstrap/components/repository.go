package components

import (
	repo_impl "slotly/internal/infra/repository"
	"slotly/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewHostRepository,
			fx.As(new(usecase.HostRepository)),
		),
		fx.Annotate(
			repo_impl.NewAvailabilityRepository,
			fx.As(new(usecase.AvailabilityRepository)),
		),
		fx.Annotate(
			repo_impl.NewEventTypeRepository,
			fx.As(new(usecase.EventTypeRepository)),
		),
		fx.Annotate(
			repo_impl.NewIdentityRepository,
			fx.As(new(usecase.IdentityRepository)),
		),
	),
)
