package services

import (
	"cholojai/internal/models/catalog_models"
	"cholojai/internal/repositories"
	"cholojai/pkg/memcache"
)

type PackageServiceInterface interface {
	ListPackages() []catalog_models.Package
	GetPackageBySlug(slug string) (catalog_models.Package, error)
	ListDestinations() []catalog_models.Destination
	BudgetRanges() map[string]catalog_models.BudgetRange

	// FilterBySelection returns the packages matching a quiz selection.
	// The boolean reports whether budget and destination both matched; when
	// the intersection is empty the filter falls back to destination-only
	// results and returns false.
	FilterBySelection(sel memcache.QuizSelection) ([]catalog_models.Package, bool)
}

type PackageService struct {
	catalog repositories.CatalogRepository
}

func NewPackageService(catalog repositories.CatalogRepository) PackageServiceInterface {
	return &PackageService{
		catalog: catalog,
	}
}

func (p *PackageService) ListPackages() []catalog_models.Package {
	return p.catalog.Packages()
}

func (p *PackageService) GetPackageBySlug(slug string) (catalog_models.Package, error) {
	pkg, err := p.catalog.PackageBySlug(slug)
	if err != nil {
		return catalog_models.Package{}, err
	}
	return *pkg, nil
}

func (p *PackageService) ListDestinations() []catalog_models.Destination {
	return p.catalog.Destinations()
}

func (p *PackageService) BudgetRanges() map[string]catalog_models.BudgetRange {
	return p.catalog.BudgetRanges()
}

func (p *PackageService) FilterBySelection(sel memcache.QuizSelection) ([]catalog_models.Package, bool) {
	chosen := make(map[string]bool, len(sel.Destinations))
	for _, slug := range sel.Destinations {
		chosen[slug] = true
	}

	exact := make([]catalog_models.Package, 0)
	destinationOnly := make([]catalog_models.Package, 0)
	for _, pkg := range p.catalog.Packages() {
		if !chosen[pkg.Destination] {
			continue
		}
		destinationOnly = append(destinationOnly, pkg)
		if pkg.Budget == sel.Budget {
			exact = append(exact, pkg)
		}
	}

	if len(exact) > 0 {
		return exact, true
	}
	return destinationOnly, false
}
