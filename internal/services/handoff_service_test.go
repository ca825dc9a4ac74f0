package services

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cholojai/internal/models/request_models"
	"cholojai/pkg/utils"
)

const testPhone = "+8801708070250"

func newTestHandoffService() HandoffServiceInterface {
	return NewHandoffService(testCatalog(), testPhone)
}

func TestBuildLinkWithPackageAndNickname(t *testing.T) {
	service := newTestHandoffService()

	resp, err := service.BuildLink(request_models.HandoffRequest{
		Package:  "coxs",
		Nickname: "Ayesha",
	})
	require.NoError(t, err)

	assert.Equal(t, `Hi! I'm Ayesha and I'm interested in the "Cox's Bazar" package (৳6000).`, resp.Message)
	assert.True(t, strings.HasPrefix(resp.URL, "https://wa.me/8801708070250?text="), resp.URL)

	// The link must round-trip back to the composed message.
	parsed, err := url.Parse(resp.URL)
	require.NoError(t, err)
	assert.Equal(t, resp.Message, parsed.Query().Get("text"))
}

func TestBuildLinkWithPackageWithoutNickname(t *testing.T) {
	service := newTestHandoffService()

	resp, err := service.BuildLink(request_models.HandoffRequest{Package: "dubai"})
	require.NoError(t, err)

	assert.Equal(t, `Hello! I'm interested in the "Dubai" package (৳45000).`, resp.Message)
}

func TestBuildLinkWithQueryOnly(t *testing.T) {
	service := newTestHandoffService()

	resp, err := service.BuildLink(request_models.HandoffRequest{Query: "Do you arrange group tours?"})
	require.NoError(t, err)

	assert.Equal(t, "Hello! I have a question: Do you arrange group tours?", resp.Message)
}

func TestBuildLinkGenericGreeting(t *testing.T) {
	service := newTestHandoffService()

	resp, err := service.BuildLink(request_models.HandoffRequest{})
	require.NoError(t, err)

	assert.Equal(t, "Hello! I'm interested in your travel services.", resp.Message)
}

func TestBuildLinkPackageBeatsQuery(t *testing.T) {
	service := newTestHandoffService()

	resp, err := service.BuildLink(request_models.HandoffRequest{
		Package: "sajek",
		Query:   "ignored",
	})
	require.NoError(t, err)

	assert.Contains(t, resp.Message, "Sajek Valley")
	assert.NotContains(t, resp.Message, "ignored")
}

func TestBuildLinkUnknownPackage(t *testing.T) {
	service := newTestHandoffService()

	_, err := service.BuildLink(request_models.HandoffRequest{Package: "atlantis"})
	assert.ErrorIs(t, err, utils.ErrPackageNotFound)
}

func TestBuildLinkAppendsSortedUTMPairs(t *testing.T) {
	service := newTestHandoffService()

	resp, err := service.BuildLink(request_models.HandoffRequest{
		Query: "Group discount?",
		UTM: map[string]string{
			"utm_source":   "facebook",
			"utm_campaign": "winter",
			"gclid":        "ignored",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Hello! I have a question: Group discount? UTM: utm_campaign=winter, utm_source=facebook", resp.Message)
}

func TestBuildLinkNoUTMSuffixWithoutUTMKeys(t *testing.T) {
	service := newTestHandoffService()

	resp, err := service.BuildLink(request_models.HandoffRequest{
		UTM: map[string]string{"gclid": "abc"},
	})
	require.NoError(t, err)

	assert.NotContains(t, resp.Message, "UTM:")
}
