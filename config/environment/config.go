package environment

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every runtime setting. It is loaded once at startup and
// passed explicitly to the components that need it.
type Config struct {
	Port           string
	MaxBodySize    int64
	OCRConcurrency int
	QueueTimeout   time.Duration
	AllowedOrigin  string
	PrewarmOCR     bool

	Engine      string
	OCRLanguage string

	OpenAIAPIKey string
	OpenAIModel  string
}

const (
	DefaultPort        = "8080"
	DefaultMaxBodySize = 10 * 1024 * 1024 // 10MB
	DefaultConcurrency = 4

	EngineTesseract = "tesseract"
	EngineOpenAI    = "openai"
)

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		log.Printf("⚠️  invalid value for %s: %q, using default %d", key, v, def)
		return def
	}
	return n
}

func getEnvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	switch v {
	case "1", "true", "yes", "TRUE", "True":
		return true
	default:
		return false
	}
}

// Load reads the configuration from the environment. A .env file is
// honored when present but never required.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, using environment values")
	}

	cfg := &Config{
		Port:           getEnv("PORT", DefaultPort),
		MaxBodySize:    getEnvInt("MAX_CONTENT_LENGTH", DefaultMaxBodySize),
		OCRConcurrency: int(getEnvInt("OCR_CONCURRENCY", DefaultConcurrency)),
		QueueTimeout:   time.Duration(getEnvInt("OCR_QUEUE_TIMEOUT_MS", 0)) * time.Millisecond,
		AllowedOrigin:  getEnv("ALLOWED_ORIGIN", "*"),
		PrewarmOCR:     getEnvBool("PREWARM_OCR", true),
		Engine:         getEnv("OCR_ENGINE", EngineTesseract),
		OCRLanguage:    getEnv("OCR_LANGUAGE", "eng"),
		OpenAIAPIKey:   os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:    getEnv("OPENAI_MODEL", "gpt-4o-mini"),
	}

	if cfg.OCRConcurrency < 1 {
		log.Printf("⚠️  OCR_CONCURRENCY must be at least 1, using default %d", DefaultConcurrency)
		cfg.OCRConcurrency = DefaultConcurrency
	}
	if cfg.MaxBodySize < 1 {
		cfg.MaxBodySize = DefaultMaxBodySize
	}

	return cfg
}
