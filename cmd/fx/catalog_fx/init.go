package catalog_fx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"cholojai/internal/api/controllers"
	"cholojai/internal/repositories"
	"cholojai/internal/services"
)

var Module = fx.Provide(
	ProvideCatalogRepository,
	ProvidePackageService,
	ProvidePackageController,
)

func ProvideCatalogRepository() (repositories.CatalogRepository, error) {
	path := os.Getenv("CATALOG_PATH")
	if path == "" {
		path = "data/packages.json"
	}

	catalog, err := repositories.NewCatalogRepository(path)
	if err != nil {
		return nil, err
	}
	log.Printf("Loaded catalog %s (version %s, %d packages)", path, catalog.Version(), len(catalog.Packages()))
	return catalog, nil
}

func ProvidePackageService(catalog repositories.CatalogRepository) services.PackageServiceInterface {
	return services.NewPackageService(catalog)
}

func ProvidePackageController(packageService services.PackageServiceInterface) *controllers.PackageController {
	return controllers.NewPackageController(packageService)
}
