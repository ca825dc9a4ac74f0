package response_models

import "cholojai/internal/models/catalog_models"

// Sources label which resolution stage produced an assistant response.
const (
	SourceFAQ         = "faq"
	SourcePackage     = "package"
	SourceUnavailable = "unavailable"
	SourceAI          = "ai"
	SourceError       = "error"
)

// AssistantResponse is the output of one resolution cycle. The JSON shape is
// the wire contract of POST /api/chat and is consumed directly by the chat
// widget, so it is not wrapped in the usual API envelope.
type AssistantResponse struct {
	Response  string                   `json:"response"`
	Source    string                   `json:"source"`
	ShowCards bool                     `json:"showCards"`
	Packages  []catalog_models.Package `json:"packages,omitempty"`
	Error     bool                     `json:"error,omitempty"`
}
