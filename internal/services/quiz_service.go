package services

import (
	"time"

	"github.com/google/uuid"

	"cholojai/internal/models/catalog_models"
	"cholojai/internal/models/request_models"
	"cholojai/internal/models/response_models"
	"cholojai/internal/repositories"
	"cholojai/pkg/memcache"
	"cholojai/pkg/utils"
)

// Quiz sessions are short-lived by design: the store is the server-side
// analogue of the original site's sessionStorage.
const quizSessionTTL = 30 * time.Minute

type QuizServiceInterface interface {
	StartQuiz(nickname string) response_models.QuizStartResponse
	SubmitAnswers(req request_models.QuizAnswersRequest) error
	GetResult(sessionID string) (response_models.QuizResultResponse, error)
}

type QuizService struct {
	catalog  repositories.CatalogRepository
	packages PackageServiceInterface
	sessions memcache.QuizSessionStore
}

func NewQuizService(catalog repositories.CatalogRepository, packages PackageServiceInterface, sessions memcache.QuizSessionStore) QuizServiceInterface {
	return &QuizService{
		catalog:  catalog,
		packages: packages,
		sessions: sessions,
	}
}

func (q *QuizService) StartQuiz(nickname string) response_models.QuizStartResponse {
	sessionID := uuid.New().String()
	q.sessions.Put(sessionID, memcache.QuizSelection{Nickname: nickname}, quizSessionTTL)

	return response_models.QuizStartResponse{
		SessionID:    sessionID,
		Nickname:     nickname,
		Destinations: q.catalog.Destinations(),
		BudgetRanges: q.catalog.BudgetRanges(),
	}
}

func (q *QuizService) SubmitAnswers(req request_models.QuizAnswersRequest) error {
	sel, ok := q.sessions.Get(req.SessionID)
	if !ok {
		return utils.ErrSessionNotFound
	}

	if !catalog_models.ValidBudgetTier(req.Budget) {
		return utils.ErrInvalidBudgetTier
	}
	for _, slug := range req.Destinations {
		if _, err := q.catalog.PackageBySlug(slug); err != nil {
			return utils.ErrUnknownDestination
		}
	}

	sel.Budget = req.Budget
	sel.Destinations = req.Destinations
	sel.Answered = true
	q.sessions.Put(req.SessionID, sel, quizSessionTTL)
	return nil
}

func (q *QuizService) GetResult(sessionID string) (response_models.QuizResultResponse, error) {
	sel, ok := q.sessions.Get(sessionID)
	if !ok {
		return response_models.QuizResultResponse{}, utils.ErrSessionNotFound
	}
	if !sel.Answered {
		return response_models.QuizResultResponse{}, utils.ErrQuizIncomplete
	}

	packages, exact := q.packages.FilterBySelection(sel)
	return response_models.QuizResultResponse{
		SessionID:    sessionID,
		Nickname:     sel.Nickname,
		Budget:       sel.Budget,
		Destinations: sel.Destinations,
		Packages:     packages,
		ExactMatch:   exact,
	}, nil
}
