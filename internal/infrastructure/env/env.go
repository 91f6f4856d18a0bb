package env

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"orbit-assistant/internal/application/port/output"
	"orbit-assistant/internal/domain/entity"

	"github.com/joho/godotenv"
)

const (
	KeyProvider         = "ORBIT_PROVIDER"
	KeyOpenRouterAPIKey = "OPENROUTER_API_KEY"
	KeyOpenRouterModel  = "OPENROUTER_MODEL_NAME"
	KeyGeminiAPIKey     = "GEMINI_API_KEY"
	KeyGeminiModel      = "GEMINI_MODEL_NAME"
	KeyTavilyAPIKey     = "TAVILY_API_KEY"
	KeyHTTPAddr         = "ORBIT_HTTP_ADDR"
	KeyLogLevel         = "LOG_LEVEL"
	KeySearchTimeout    = "ORBIT_SEARCH_TIMEOUT_SECONDS"
)

var _ output.ConfigPort = (*EnvService)(nil)

type EnvService struct{}

// NewEnvService loads .env, then .env.<APP_ENV> on top of it. Missing files are fine.
func NewEnvService() *EnvService {
	appEnv := os.Getenv("APP_ENV")
	if appEnv == "" {
		appEnv = "dev"
	}

	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Info: no .env file with secrets found (this is OK for CI/CD)")
	}

	envFile := fmt.Sprintf(".env.%s", appEnv)
	if err := godotenv.Overload(envFile); err != nil {
		log.Printf("Warning: could not load %s: %v", envFile, err)
	}

	log.Printf("Environment loaded: APP_ENV=%s", appEnv)

	return &EnvService{}
}

func (e *EnvService) Get(key string) string {
	return os.Getenv(key)
}

func (e *EnvService) GetWithDefault(key string, defaultValue string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue
	}
	return val
}

func (e *EnvService) GetInt(key string, defaultValue int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// SearchTimeout is zero unless set: searches are then bounded by the request only.
func (e *EnvService) SearchTimeout() time.Duration {
	seconds := e.GetInt(KeySearchTimeout, 0)
	if seconds <= 0 {
		return 0
	}
	return time.Duration(seconds) * time.Second
}

// ChatConfig resolves the settings for the selected provider. Blank values are
// kept blank; the chat service reports them to the user.
func (e *EnvService) ChatConfig() entity.Config {
	provider := entity.ParseProvider(e.Get(KeyProvider))

	cfg := entity.Config{
		Provider:     provider,
		SearchAPIKey: e.Get(KeyTavilyAPIKey),
	}

	switch provider {
	case entity.ProviderGemini:
		cfg.APIKey = e.Get(KeyGeminiAPIKey)
		cfg.ModelName = e.Get(KeyGeminiModel)
	default:
		cfg.APIKey = e.Get(KeyOpenRouterAPIKey)
		cfg.ModelName = e.Get(KeyOpenRouterModel)
	}

	return cfg
}
