package services

import (
	"regexp"
	"strconv"
	"strings"
)

// ClassifiedQuery is everything the resolver needs to know about one user
// utterance. It lives for a single turn.
type ClassifiedQuery struct {
	Normalized string
	BudgetMin  int
	BudgetMax  int
	HasMin     bool
	HasMax     bool
	WantsAll   bool
}

func (q ClassifiedQuery) HasBudget() bool {
	return q.HasMin || q.HasMax
}

// InBudget reports whether a price falls inside the extracted window.
// Both bounds are inclusive.
func (q ClassifiedQuery) InBudget(price int) bool {
	if !q.HasBudget() {
		return false
	}
	if q.HasMin && price < q.BudgetMin {
		return false
	}
	if q.HasMax && price > q.BudgetMax {
		return false
	}
	return true
}

var numberPattern = regexp.MustCompile(`\d[\d,]*`)

// Qualifier words that direct a single number to one side of the window.
var (
	maxQualifiers = []string{"under", "below", "less than", "up to", "within"}
	minQualifiers = []string{"above", "more than", "over", "from"}
)

// Words that mark a query as budget/catalog talk rather than a
// single-destination lookup.
var budgetVocabulary = []string{"within", "under", "below", "above", "over", "between", "range", "budget"}

var browsePhrases = []string{"all packages", "show all", "what do you offer", "package list"}

// Bare nouns that count as a catalog-browse request when they make up the
// whole (short) query.
var browseNouns = map[string]bool{
	"packages": true,
	"trips":    true,
	"tours":    true,
	"travel":   true,
	"tour":     true,
}

// Classify maps a raw utterance to its normalized form plus the extracted
// budget and browse signals. It never fails: ungrammatical input simply
// produces a query with empty signals.
func Classify(rawText string) ClassifiedQuery {
	q := ClassifiedQuery{
		Normalized: strings.ToLower(strings.TrimSpace(rawText)),
	}

	locs := numberPattern.FindAllStringIndex(q.Normalized, -1)
	numbers := make([]int, 0, len(locs))
	for _, loc := range locs {
		n, err := strconv.Atoi(strings.ReplaceAll(q.Normalized[loc[0]:loc[1]], ",", ""))
		if err != nil {
			continue
		}
		numbers = append(numbers, n)
	}

	switch {
	case len(numbers) >= 2:
		min, max := numbers[0], numbers[0]
		for _, n := range numbers[1:] {
			if n < min {
				min = n
			}
			if n > max {
				max = n
			}
		}
		q.BudgetMin, q.HasMin = min, true
		q.BudgetMax, q.HasMax = max, true
	case len(numbers) == 1:
		n := numbers[0]
		prefix := strings.TrimSpace(q.Normalized[:locs[0][0]])
		switch {
		case hasAnySuffix(prefix, maxQualifiers):
			q.BudgetMax, q.HasMax = n, true
		case hasAnySuffix(prefix, minQualifiers):
			q.BudgetMin, q.HasMin = n, true
		default:
			// A bare number is read as the center of a +/-20% band. The
			// band width is a documented default, not derived from any
			// product requirement.
			q.BudgetMin, q.HasMin = int(float64(n)*0.8), true
			q.BudgetMax, q.HasMax = int(float64(n)*1.2), true
		}
	}

	for _, phrase := range browsePhrases {
		if strings.Contains(q.Normalized, phrase) {
			q.WantsAll = true
			break
		}
	}
	// Bare-noun shortcut: "packages", "tours" etc. on their own count as a
	// browse request, but only when no numeric qualifier is present.
	if !q.WantsAll && !q.HasBudget() && len(q.Normalized) <= 15 {
		trimmed := strings.Trim(q.Normalized, " ?!.")
		if browseNouns[trimmed] {
			q.WantsAll = true
		}
	}

	return q
}

func hasAnySuffix(s string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}

// Ordered patterns for pulling a candidate destination token out of phrasing
// like "do you have X package" or "package to X". First non-stoplisted
// capture wins.
var destinationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`do you have ([a-z']+) packages?`),
	regexp.MustCompile(`([a-z']+) packages?`),
	regexp.MustCompile(`packages? (?:to|for|in) ([a-z']+)`),
	regexp.MustCompile(`(?:visit|visiting) ([a-z']+)`),
	regexp.MustCompile(`visas? (?:for|to|in) ([a-z']+)`),
}

// Generic words that a destination pattern may capture but never identify a
// destination.
var tokenStoplist = map[string]bool{
	"package": true, "packages": true,
	"trip": true, "trips": true,
	"tour": true, "tours": true,
	"travel": true, "show": true, "all": true, "any": true,
	"have": true, "you": true, "me": true, "the": true, "and": true, "or": true,
}

// DestinationLookupSkipped reports whether the query should not be treated
// as a single-destination lookup at all: numbers and budget vocabulary mean
// the user is talking about prices, not one place.
func DestinationLookupSkipped(normalized string) bool {
	if strings.ContainsAny(normalized, "0123456789") {
		return true
	}
	for _, word := range budgetVocabulary {
		if strings.Contains(normalized, word) {
			return true
		}
	}
	return false
}

// ExtractDestinationToken is a best-effort pull of one destination-looking
// token from the raw text. The boolean is false when extraction is skipped
// or nothing usable matches.
func ExtractDestinationToken(rawText string) (string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(rawText))
	if normalized == "" || DestinationLookupSkipped(normalized) {
		return "", false
	}

	for _, pattern := range destinationPatterns {
		for _, match := range pattern.FindAllStringSubmatch(normalized, -1) {
			token := strings.Trim(match[1], "'")
			if token != "" && !tokenStoplist[token] {
				return token, true
			}
		}
	}
	return "", false
}
