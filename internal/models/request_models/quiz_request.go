package request_models

type QuizStartRequest struct {
	Nickname string `json:"nickname"`
}

type QuizAnswersRequest struct {
	SessionID    string   `json:"session_id"`
	Budget       string   `json:"budget"`
	Destinations []string `json:"destinations"`
}
