package quiz_fx

import (
	"go.uber.org/fx"

	"cholojai/internal/api/controllers"
	"cholojai/internal/repositories"
	"cholojai/internal/services"
	"cholojai/pkg/memcache"
)

var Module = fx.Provide(
	ProvideQuizSessionStore,
	ProvideQuizService,
	ProvideQuizController,
)

func ProvideQuizSessionStore() memcache.QuizSessionStore {
	return memcache.NewQuizSessions()
}

func ProvideQuizService(
	catalog repositories.CatalogRepository,
	packages services.PackageServiceInterface,
	sessions memcache.QuizSessionStore,
) services.QuizServiceInterface {
	return services.NewQuizService(catalog, packages, sessions)
}

func ProvideQuizController(quizService services.QuizServiceInterface) *controllers.QuizController {
	return controllers.NewQuizController(quizService)
}
