package response_models

import "cholojai/internal/models/catalog_models"

type QuizStartResponse struct {
	SessionID    string                                `json:"session_id"`
	Nickname     string                                `json:"nickname"`
	Destinations []catalog_models.Destination          `json:"destinations"`
	BudgetRanges map[string]catalog_models.BudgetRange `json:"budget_ranges"`
}

type QuizResultResponse struct {
	SessionID    string                   `json:"session_id"`
	Nickname     string                   `json:"nickname"`
	Budget       string                   `json:"budget"`
	Destinations []string                 `json:"destinations"`
	Packages     []catalog_models.Package `json:"packages"`
	ExactMatch   bool                     `json:"exact_match"`
}
