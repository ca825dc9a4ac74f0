package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cholojai/pkg/memcache"
	"cholojai/pkg/utils"
)

func TestGetPackageBySlug(t *testing.T) {
	service := NewPackageService(testCatalog())

	pkg, err := service.GetPackageBySlug("bangkok")
	require.NoError(t, err)
	assert.Equal(t, "Bangkok", pkg.Name)
	assert.Equal(t, 35000, pkg.Price)
}

func TestGetPackageBySlugUnknown(t *testing.T) {
	service := NewPackageService(testCatalog())

	_, err := service.GetPackageBySlug("atlantis")
	assert.ErrorIs(t, err, utils.ErrPackageNotFound)
}

func TestFilterBySelectionExactMatch(t *testing.T) {
	service := NewPackageService(testCatalog())

	packages, exact := service.FilterBySelection(memcache.QuizSelection{
		Budget:       "low",
		Destinations: []string{"coxs", "bangkok"},
	})

	assert.True(t, exact)
	require.Len(t, packages, 1)
	assert.Equal(t, "coxs", packages[0].Destination)
}

func TestFilterBySelectionFallsBackToDestinationOnly(t *testing.T) {
	service := NewPackageService(testCatalog())

	// No high-tier package in Cox's Bazar, so the filter keeps the chosen
	// destination and drops the budget constraint.
	packages, exact := service.FilterBySelection(memcache.QuizSelection{
		Budget:       "high",
		Destinations: []string{"coxs"},
	})

	assert.False(t, exact)
	require.Len(t, packages, 1)
	assert.Equal(t, "coxs", packages[0].Destination)
}

func TestFilterBySelectionNoDestinations(t *testing.T) {
	service := NewPackageService(testCatalog())

	packages, exact := service.FilterBySelection(memcache.QuizSelection{Budget: "low"})

	assert.False(t, exact)
	assert.Empty(t, packages)
}
