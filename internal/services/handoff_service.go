package services

import (
	"fmt"
	"sort"
	"strings"

	"cholojai/internal/models/request_models"
	"cholojai/internal/models/response_models"
	"cholojai/internal/repositories"
	"cholojai/pkg/utils"
)

type HandoffServiceInterface interface {
	// BuildLink composes the prefilled WhatsApp message from whatever
	// context the caller has and wraps it in a wa.me deep link. One-way,
	// fire-and-forget: the server never talks to WhatsApp itself.
	BuildLink(req request_models.HandoffRequest) (response_models.HandoffResponse, error)
}

type HandoffService struct {
	catalog repositories.CatalogRepository
	phone   string
}

func NewHandoffService(catalog repositories.CatalogRepository, phone string) HandoffServiceInterface {
	return &HandoffService{
		catalog: catalog,
		phone:   phone,
	}
}

func (h *HandoffService) BuildLink(req request_models.HandoffRequest) (response_models.HandoffResponse, error) {
	message, err := h.composeMessage(req)
	if err != nil {
		return response_models.HandoffResponse{}, err
	}

	return response_models.HandoffResponse{
		URL:     utils.BuildWhatsAppLink(h.phone, message),
		Message: message,
	}, nil
}

// Message priority: package context, then last query, then a generic
// greeting. UTM pairs ride inside the text so attribution survives the jump
// to the messaging app.
func (h *HandoffService) composeMessage(req request_models.HandoffRequest) (string, error) {
	var message string
	switch {
	case req.Package != "":
		pkg, err := h.catalog.PackageBySlug(req.Package)
		if err != nil {
			return "", err
		}
		if req.Nickname != "" {
			message = fmt.Sprintf("Hi! I'm %s and I'm interested in the \"%s\" package (৳%d).", req.Nickname, pkg.Name, pkg.Price)
		} else {
			message = fmt.Sprintf("Hello! I'm interested in the \"%s\" package (৳%d).", pkg.Name, pkg.Price)
		}
	case req.Query != "":
		message = fmt.Sprintf("Hello! I have a question: %s", req.Query)
	default:
		message = "Hello! I'm interested in your travel services."
	}

	if utm := formatUTM(req.UTM); utm != "" {
		message += " UTM: " + utm
	}
	return message, nil
}

// formatUTM renders utm_* pairs as "key=value" joined with commas, sorted
// for a stable message.
func formatUTM(utm map[string]string) string {
	if len(utm) == 0 {
		return ""
	}
	keys := make([]string, 0, len(utm))
	for key := range utm {
		if strings.HasPrefix(key, "utm_") {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, key+"="+utm[key])
	}
	return strings.Join(pairs, ", ")
}
