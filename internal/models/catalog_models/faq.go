package catalog_models

// FAQEntry is a canned question/answer pair. Entries are matched in table
// order, first match wins, so the order in the catalog document is part of
// the contract.
type FAQEntry struct {
	ID       string   `json:"id"`
	Keywords []string `json:"keywords"`
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
}

// Destination is the quiz-facing view of an offered place.
type Destination struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
}

// BudgetRange is the label metadata behind one budget tier.
type BudgetRange struct {
	Label string `json:"label"`
	Min   int    `json:"min"`
	Max   int    `json:"max"`
}
