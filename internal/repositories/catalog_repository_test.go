package repositories

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cholojai/pkg/utils"
)

func writeCatalogFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "packages.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validCatalog = `{
  "version": "2024-11-02",
  "packages": [
    {"id": 1, "name": "Cox's Bazar", "destination": "coxs", "country": "Bangladesh", "budget": "low", "price": 6000, "duration": "3D/2N"},
    {"id": 2, "name": "Bangkok", "destination": "bangkok", "country": "Thailand", "budget": "medium", "price": 35000, "duration": "4D/3N"}
  ],
  "faqs": [
    {"id": "booking", "keywords": ["book", "booking"], "question": "How do I book?", "answer": "On WhatsApp."}
  ],
  "destinations": [
    {"id": "coxs", "name": "Cox's Bazar", "country": "Bangladesh"}
  ],
  "budgetRanges": {
    "low": {"label": "Under 10k", "min": 0, "max": 10000}
  }
}`

func TestNewCatalogRepositoryLoadsDocument(t *testing.T) {
	repo, err := NewCatalogRepository(writeCatalogFile(t, validCatalog))
	require.NoError(t, err)

	assert.Equal(t, "2024-11-02", repo.Version())
	assert.Len(t, repo.Packages(), 2)
	assert.Len(t, repo.FAQs(), 1)
	assert.Len(t, repo.Destinations(), 1)
	assert.Contains(t, repo.BudgetRanges(), "low")
}

func TestPackageBySlug(t *testing.T) {
	repo, err := NewCatalogRepository(writeCatalogFile(t, validCatalog))
	require.NoError(t, err)

	pkg, err := repo.PackageBySlug("bangkok")
	require.NoError(t, err)
	assert.Equal(t, "Bangkok", pkg.Name)
	assert.Equal(t, 35000, pkg.Price)

	_, err = repo.PackageBySlug("atlantis")
	assert.ErrorIs(t, err, utils.ErrPackageNotFound)
}

func TestNewCatalogRepositoryMissingFile(t *testing.T) {
	_, err := NewCatalogRepository(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestNewCatalogRepositoryMalformedJSON(t *testing.T) {
	_, err := NewCatalogRepository(writeCatalogFile(t, `{"packages": [`))
	assert.Error(t, err)
}

func TestNewCatalogRepositoryValidation(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{
			name:    "no packages",
			content: `{"version": "v", "packages": []}`,
		},
		{
			name: "duplicate slug",
			content: `{"packages": [
				{"id": 1, "destination": "coxs", "budget": "low", "price": 6000},
				{"id": 2, "destination": "coxs", "budget": "low", "price": 7000}
			]}`,
		},
		{
			name: "duplicate id",
			content: `{"packages": [
				{"id": 1, "destination": "coxs", "budget": "low", "price": 6000},
				{"id": 1, "destination": "sajek", "budget": "low", "price": 7000}
			]}`,
		},
		{
			name:    "non-positive price",
			content: `{"packages": [{"id": 1, "destination": "coxs", "budget": "low", "price": 0}]}`,
		},
		{
			name:    "unknown budget tier",
			content: `{"packages": [{"id": 1, "destination": "coxs", "budget": "luxury", "price": 6000}]}`,
		},
		{
			name: "faq without keywords",
			content: `{
				"packages": [{"id": 1, "destination": "coxs", "budget": "low", "price": 6000}],
				"faqs": [{"id": "booking", "keywords": [], "question": "q", "answer": "a"}]
			}`,
		},
		{
			name: "duplicate faq id",
			content: `{
				"packages": [{"id": 1, "destination": "coxs", "budget": "low", "price": 6000}],
				"faqs": [
					{"id": "booking", "keywords": ["book"], "question": "q", "answer": "a"},
					{"id": "booking", "keywords": ["reserve"], "question": "q", "answer": "a"}
				]
			}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewCatalogRepository(writeCatalogFile(t, tc.content))
			assert.Error(t, err)
		})
	}
}
