package handoff_fx

import (
	"os"

	"go.uber.org/fx"

	"cholojai/internal/api/controllers"
	"cholojai/internal/repositories"
	"cholojai/internal/services"
)

var Module = fx.Provide(
	ProvideHandoffService,
	ProvideHandoffController,
)

func ProvideHandoffService(catalog repositories.CatalogRepository) services.HandoffServiceInterface {
	phone := os.Getenv("WHATSAPP_PHONE")
	if phone == "" {
		phone = "+8801708070250"
	}
	return services.NewHandoffService(catalog, phone)
}

func ProvideHandoffController(handoffService services.HandoffServiceInterface) *controllers.HandoffController {
	return controllers.NewHandoffController(handoffService)
}
