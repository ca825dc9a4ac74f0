package repositories

import (
	"encoding/json"
	"fmt"
	"os"

	"cholojai/internal/models/catalog_models"
	"cholojai/pkg/utils"
)

// CatalogRepository serves the static travel catalog. The document is read
// once at startup and never mutated afterwards, so every accessor is safe
// for any number of concurrent readers.
//
// FAQs keep their document order: FAQ matching is first-match-wins, so
// reordering the list in the file is a behavior change.
type CatalogRepository interface {
	Packages() []catalog_models.Package
	PackageBySlug(slug string) (*catalog_models.Package, error)
	FAQs() []catalog_models.FAQEntry
	Destinations() []catalog_models.Destination
	BudgetRanges() map[string]catalog_models.BudgetRange
	Version() string
}

type catalogDocument struct {
	Version      string                                `json:"version"`
	Packages     []catalog_models.Package              `json:"packages"`
	FAQs         []catalog_models.FAQEntry             `json:"faqs"`
	Destinations []catalog_models.Destination          `json:"destinations"`
	BudgetRanges map[string]catalog_models.BudgetRange `json:"budgetRanges"`
}

type catalogRepository struct {
	doc    catalogDocument
	bySlug map[string]int
}

func NewCatalogRepository(path string) (CatalogRepository, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	var doc catalogDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}

	if err := validateCatalog(doc); err != nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", path, err)
	}

	bySlug := make(map[string]int, len(doc.Packages))
	for i, pkg := range doc.Packages {
		bySlug[pkg.Destination] = i
	}

	return &catalogRepository{doc: doc, bySlug: bySlug}, nil
}

func validateCatalog(doc catalogDocument) error {
	if len(doc.Packages) == 0 {
		return fmt.Errorf("no packages")
	}

	ids := make(map[int]bool, len(doc.Packages))
	slugs := make(map[string]bool, len(doc.Packages))
	for _, pkg := range doc.Packages {
		if pkg.Destination == "" {
			return fmt.Errorf("package %d: empty destination slug", pkg.ID)
		}
		if pkg.Price <= 0 {
			return fmt.Errorf("package %q: price must be positive", pkg.Destination)
		}
		if !catalog_models.ValidBudgetTier(pkg.Budget) {
			return fmt.Errorf("package %q: unknown budget tier %q", pkg.Destination, pkg.Budget)
		}
		if ids[pkg.ID] {
			return fmt.Errorf("duplicate package id %d", pkg.ID)
		}
		if slugs[pkg.Destination] {
			return fmt.Errorf("duplicate destination slug %q", pkg.Destination)
		}
		ids[pkg.ID] = true
		slugs[pkg.Destination] = true
	}

	tags := make(map[string]bool, len(doc.FAQs))
	for _, faq := range doc.FAQs {
		if len(faq.Keywords) == 0 {
			return fmt.Errorf("faq %q: keyword list is empty", faq.ID)
		}
		if tags[faq.ID] {
			return fmt.Errorf("duplicate faq id %q", faq.ID)
		}
		tags[faq.ID] = true
	}

	return nil
}

func (r *catalogRepository) Packages() []catalog_models.Package {
	return r.doc.Packages
}

func (r *catalogRepository) PackageBySlug(slug string) (*catalog_models.Package, error) {
	i, ok := r.bySlug[slug]
	if !ok {
		return nil, utils.ErrPackageNotFound
	}
	return &r.doc.Packages[i], nil
}

func (r *catalogRepository) FAQs() []catalog_models.FAQEntry {
	return r.doc.FAQs
}

func (r *catalogRepository) Destinations() []catalog_models.Destination {
	return r.doc.Destinations
}

func (r *catalogRepository) BudgetRanges() map[string]catalog_models.BudgetRange {
	return r.doc.BudgetRanges
}

func (r *catalogRepository) Version() string {
	return r.doc.Version
}
