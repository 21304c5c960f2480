package components

import (
	"space-booking-api/internal/handler"
	"space-booking-api/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewUnitHandler,
		api.NewAvailabilityHandler,
		api.NewReservationHandler,
	),
	fx.Invoke(handler.NewRouter),
)
