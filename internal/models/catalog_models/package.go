package catalog_models

// Budget tiers used by both catalog filtering and quiz matching.
const (
	BudgetLow    = "low"
	BudgetMedium = "medium"
	BudgetHigh   = "high"
)

func ValidBudgetTier(tier string) bool {
	return tier == BudgetLow || tier == BudgetMedium || tier == BudgetHigh
}

// Package is one bookable travel offering. The destination slug is the
// cross-reference key used by quiz selections and chat matches.
type Package struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Destination  string     `json:"destination"`
	Country      string     `json:"country"`
	Budget       string     `json:"budget"`
	Price        int        `json:"price"`
	Duration     string     `json:"duration"`
	Image        string     `json:"image,omitempty"`
	Description  string     `json:"description"`
	Includes     []string   `json:"includes"`
	Highlights   []string   `json:"highlights"`
	VisaRequired bool       `json:"visa_required"`
	VisaInfo     *VisaInfo  `json:"visa_info,omitempty"`
	Itinerary    *Itinerary `json:"itinerary,omitempty"`
	Notes        []string   `json:"notes,omitempty"`
}

type VisaInfo struct {
	Type           string   `json:"type"`
	Validity       string   `json:"validity"`
	ProcessingTime string   `json:"processing_time"`
	Requirements   []string `json:"requirements"`
}

type Itinerary struct {
	Days []ItineraryDay `json:"days"`
}

type ItineraryDay struct {
	Day        int        `json:"day"`
	Title      string     `json:"title,omitempty"`
	Activities []Activity `json:"activities"`
}

type Activity struct {
	Time          string `json:"time"`
	Activity      string `json:"activity"`
	Location      string `json:"location"`
	Transport     string `json:"transport,omitempty"`
	Accommodation string `json:"accommodation,omitempty"`
}
