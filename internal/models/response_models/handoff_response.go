package response_models

type HandoffResponse struct {
	URL     string `json:"url"`
	Message string `json:"message"`
}
