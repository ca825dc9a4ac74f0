package assistant_fx

import (
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"cholojai/internal/api/controllers"
	"cholojai/internal/repositories"
	"cholojai/internal/services"
	"cholojai/pkg/utils"
)

var Module = fx.Provide(
	ProvideCompletionClient,
	ProvideAssistantService,
	ProvideAssistantController,
)

// CompletionConfig holds configuration for the generative fallback client.
type CompletionConfig struct {
	Provider string
	APIKey   string
	Model    string
}

func ProvideCompletionClient() (utils.CompletionClientInterface, error) {
	config := getCompletionConfig()

	log.Printf("Initializing %s completion client with model: %s", config.Provider, config.Model)
	if config.APIKey == "" {
		// Not fatal: the assistant degrades to its apology path until a key
		// is configured.
		log.Printf("Warning: no API key set for provider %s, generative fallback disabled", config.Provider)
	}

	return utils.NewCompletionClient(config.Provider, config.APIKey, config.Model)
}

func ProvideAssistantService(
	catalog repositories.CatalogRepository,
	completion utils.CompletionClientInterface,
) services.AssistantServiceInterface {
	return services.NewAssistantService(catalog, completion)
}

func ProvideAssistantController(assistantService services.AssistantServiceInterface) *controllers.AssistantController {
	return controllers.NewAssistantController(assistantService)
}

func getCompletionConfig() CompletionConfig {
	provider := getEnvWithDefault("AI_PROVIDER", "openai")

	var apiKey, model string
	switch strings.ToLower(provider) {
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
	default:
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-3.5-turbo")
	}

	return CompletionConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
