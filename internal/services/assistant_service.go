package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"cholojai/internal/models/catalog_models"
	"cholojai/internal/models/response_models"
	"cholojai/internal/repositories"
	"cholojai/pkg/utils"
)

// FallbackApology is the single user-visible failure text. Every completion
// failure, including a missing API key, degrades to this.
const FallbackApology = "I'm having trouble connecting right now. Please chat with our team on WhatsApp for immediate assistance! 😊"

type AssistantServiceInterface interface {
	// Resolve turns one user utterance into a response. It never returns an
	// error: every failure mode ends in a fully-formed apology response.
	//
	// Resolve is stateless and re-entrant; overlapping calls from the same
	// conversation race safely and serialization, if wanted, is the
	// caller's job.
	Resolve(ctx context.Context, rawText string) response_models.AssistantResponse
}

type AssistantService struct {
	catalog    repositories.CatalogRepository
	completion utils.CompletionClientInterface
}

func NewAssistantService(catalog repositories.CatalogRepository, completion utils.CompletionClientInterface) AssistantServiceInterface {
	return &AssistantService{
		catalog:    catalog,
		completion: completion,
	}
}

// Resolve works through the stages in fixed priority order: FAQ, package
// search, unavailable-destination, generative fallback. The order is the
// core contract and must not change.
func (s *AssistantService) Resolve(ctx context.Context, rawText string) response_models.AssistantResponse {
	query := Classify(rawText)

	if resp, ok := s.resolveFAQ(rawText, query); ok {
		return resp
	}
	if resp, ok := s.resolvePackages(query); ok {
		return resp
	}
	if resp, ok := s.resolveUnavailable(rawText, query); ok {
		return resp
	}
	return s.resolveGenerative(ctx, rawText)
}

func (s *AssistantService) resolveFAQ(rawText string, query ClassifiedQuery) (response_models.AssistantResponse, bool) {
	entry := matchFAQ(s.catalog.FAQs(), query.Normalized)
	if entry == nil {
		return response_models.AssistantResponse{}, false
	}

	answer := entry.Answer
	if entry.ID == "visa" {
		// Visa answers are derived from the catalog instead of the canned
		// text so fees and processing times stay in one place.
		answer = s.visaAnswer(rawText)
	}

	return response_models.AssistantResponse{
		Response: answer,
		Source:   response_models.SourceFAQ,
	}, true
}

// matchFAQ scans entries in table order, first match wins. The strict pass
// looks for a keyword inside the query; the loose pass accepts the query
// appearing inside the question text, or any long query word appearing
// inside a keyword.
func matchFAQ(faqs []catalog_models.FAQEntry, normalized string) *catalog_models.FAQEntry {
	if normalized == "" {
		return nil
	}

	for i := range faqs {
		for _, keyword := range faqs[i].Keywords {
			if strings.Contains(normalized, keyword) {
				return &faqs[i]
			}
		}
	}

	words := strings.Fields(normalized)
	for i := range faqs {
		if strings.Contains(strings.ToLower(faqs[i].Question), normalized) {
			return &faqs[i]
		}
		for _, word := range words {
			if len(word) <= 3 {
				continue
			}
			for _, keyword := range faqs[i].Keywords {
				if strings.Contains(keyword, word) {
					return &faqs[i]
				}
			}
		}
	}
	return nil
}

func (s *AssistantService) visaAnswer(rawText string) string {
	if token, ok := ExtractDestinationToken(rawText); ok {
		if pkg := findPackageByToken(s.catalog.Packages(), token); pkg != nil {
			return visaAnswerFor(pkg)
		}
	}
	return s.visaSummary()
}

func visaAnswerFor(pkg *catalog_models.Package) string {
	if !pkg.VisaRequired {
		return fmt.Sprintf("Good news — %s needs no visa for Bangladeshi travelers! Just pack your bags and go. 😊", pkg.Name)
	}
	if pkg.VisaInfo == nil {
		return fmt.Sprintf("%s requires a visa. Chat with our team on WhatsApp and we'll walk you through the process!", pkg.Name)
	}
	return fmt.Sprintf("For %s you'll need a %s (valid for %s, processing time %s). Visa fee: %s. Our team can handle the paperwork — just ask on WhatsApp!",
		pkg.Name, pkg.VisaInfo.Type, pkg.VisaInfo.Validity, pkg.VisaInfo.ProcessingTime, extractVisaFee(pkg.VisaInfo))
}

// extractVisaFee pulls the fee amount out of the first requirement string
// mentioning a fee. Falls back to "Contact us" when nothing parseable is
// there.
func extractVisaFee(info *catalog_models.VisaInfo) string {
	for _, req := range info.Requirements {
		if !strings.Contains(strings.ToLower(req), "fee") {
			continue
		}
		if amount := numberPattern.FindString(req); amount != "" {
			return "৳" + amount
		}
		break
	}
	return "Contact us"
}

// visaSummary covers every distinct country in the catalog once.
func (s *AssistantService) visaSummary() string {
	var b strings.Builder
	b.WriteString("Here's the visa picture for our destinations: ")

	seen := make(map[string]bool)
	for _, pkg := range s.catalog.Packages() {
		if seen[pkg.Country] {
			continue
		}
		seen[pkg.Country] = true

		switch {
		case !pkg.VisaRequired:
			fmt.Fprintf(&b, "%s — no visa needed. ", pkg.Country)
		case pkg.VisaInfo != nil:
			fmt.Fprintf(&b, "%s — %s, fee %s, processing %s. ", pkg.Country, pkg.VisaInfo.Type, extractVisaFee(pkg.VisaInfo), pkg.VisaInfo.ProcessingTime)
		default:
			fmt.Fprintf(&b, "%s — visa required, ask us for details. ", pkg.Country)
		}
	}

	b.WriteString("Ask me about a specific destination for the full checklist!")
	return b.String()
}

func (s *AssistantService) resolvePackages(query ClassifiedQuery) (response_models.AssistantResponse, bool) {
	packages := s.catalog.Packages()
	var matched []catalog_models.Package

	switch {
	case query.WantsAll && !query.HasBudget():
		// An explicit catalog-browse request is honored in full.
		matched = append(matched, packages...)
	case query.HasBudget():
		for _, pkg := range packages {
			if query.InBudget(pkg.Price) {
				matched = append(matched, pkg)
			}
		}
	case query.Normalized != "":
		for _, pkg := range packages {
			if packageMatchesQuery(query.Normalized, pkg) {
				matched = append(matched, pkg)
			}
		}
	}

	if len(matched) == 0 {
		return response_models.AssistantResponse{}, false
	}

	var text string
	switch {
	case len(matched) == len(packages):
		text = fmt.Sprintf("Here are all %d of our packages — something for every budget! 🎉", len(matched))
	case len(matched) == 1:
		text = fmt.Sprintf("Great choice! Here's our %s package 🌟", matched[0].Name)
	default:
		text = fmt.Sprintf("We have %d amazing options for you! 🎉", len(matched))
	}

	return response_models.AssistantResponse{
		Response:  text,
		Source:    response_models.SourcePackage,
		ShowCards: true,
		Packages:  matched,
	}, true
}

// packageMatchesQuery applies the symmetric substring test against slug,
// name, country and budget tier. "Contained by" tolerates partial typing in
// either direction.
func packageMatchesQuery(normalized string, pkg catalog_models.Package) bool {
	terms := []string{
		pkg.Destination,
		strings.ToLower(pkg.Name),
		strings.ToLower(pkg.Country),
		pkg.Budget,
	}
	for _, term := range terms {
		if strings.Contains(normalized, term) || strings.Contains(term, normalized) {
			return true
		}
	}
	return false
}

func findPackageByToken(packages []catalog_models.Package, token string) *catalog_models.Package {
	for i := range packages {
		pkg := &packages[i]
		if strings.Contains(pkg.Destination, token) ||
			strings.Contains(strings.ToLower(pkg.Name), token) ||
			strings.Contains(strings.ToLower(pkg.Country), token) {
			return pkg
		}
	}
	return nil
}

func (s *AssistantService) resolveUnavailable(rawText string, query ClassifiedQuery) (response_models.AssistantResponse, bool) {
	if query.WantsAll || DestinationLookupSkipped(query.Normalized) {
		return response_models.AssistantResponse{}, false
	}

	token, ok := ExtractDestinationToken(rawText)
	if !ok {
		return response_models.AssistantResponse{}, false
	}
	if findPackageByToken(s.catalog.Packages(), token) != nil {
		return response_models.AssistantResponse{}, false
	}

	text := fmt.Sprintf("We don't have %s packages right now, but our team can arrange custom trips! Chat with us on WhatsApp to plan your dream itinerary 🌍", titleToken(token))
	return response_models.AssistantResponse{
		Response: text,
		Source:   response_models.SourceUnavailable,
	}, true
}

func titleToken(token string) string {
	if token == "" {
		return token
	}
	return strings.ToUpper(token[:1]) + token[1:]
}

func (s *AssistantService) resolveGenerative(ctx context.Context, rawText string) response_models.AssistantResponse {
	text, err := s.completion.Complete(ctx, s.systemPrompt(), rawText)
	if err != nil || text == "" {
		if err != nil {
			log.Printf("Completion failed: %v", err)
		}
		return response_models.AssistantResponse{
			Response: FallbackApology,
			Source:   response_models.SourceError,
			Error:    true,
		}
	}

	return response_models.AssistantResponse{
		Response: text,
		Source:   response_models.SourceAI,
	}
}

// systemPrompt enumerates the live catalog so the model never invents
// destinations the agency doesn't sell.
func (s *AssistantService) systemPrompt() string {
	var b strings.Builder
	b.WriteString("You are a friendly travel assistant for \"choloJai\", a Bangladesh-based travel agency.\n\nOur Available Packages:\n")
	for _, pkg := range s.catalog.Packages() {
		fmt.Fprintf(&b, "- %s (৳%d - %s) - %s\n", pkg.Name, pkg.Price, pkg.Duration, pkg.Country)
	}
	b.WriteString(`
Key Guidelines:
1. Be warm, conversational, and helpful
2. If the user asks about destinations we DON'T offer, politely say we don't have that package currently, but they can request custom packages via WhatsApp
3. Keep responses SHORT and conversational (2-3 sentences max)
4. Use emojis sparingly (1-2 per response max)
5. Don't use bullet points or lists in responses - keep it natural conversation

Important: If the question is about a destination or country we don't serve, be honest and redirect to WhatsApp.`)
	return b.String()
}
