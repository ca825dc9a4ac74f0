package request_models

// HandoffRequest carries the context available when the visitor jumps to the
// messaging channel. All fields are optional; the service composes the best
// prefilled message it can from what is present.
type HandoffRequest struct {
	Package  string            `json:"package,omitempty"`
	Nickname string            `json:"nickname,omitempty"`
	Query    string            `json:"query,omitempty"`
	UTM      map[string]string `json:"utm,omitempty"`
}
