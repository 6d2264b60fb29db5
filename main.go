package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"CaptchaOCR/config/environment"
	"CaptchaOCR/middleware"
	route "CaptchaOCR/routes"
	"CaptchaOCR/services"
	"CaptchaOCR/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := environment.Load()

	// Positional launch argument overrides the configured port
	if len(os.Args) > 1 {
		if port, err := strconv.Atoi(os.Args[1]); err == nil && port >= 1 && port <= 65535 {
			cfg.Port = os.Args[1]
		} else {
			log.Printf("⚠️  invalid port argument %q, using port %s", os.Args[1], cfg.Port)
		}
	}

	engine := buildEngine(cfg)
	ocrService := services.NewOCRService(cfg, engine)

	// Warm the engine in the background so startup never blocks on it
	if cfg.PrewarmOCR {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := ocrService.Warmup(ctx); err != nil {
				log.Printf("⚠️  OCR warm-up failed (ignored): %v", err)
			} else {
				log.Println("✅ OCR warm-up complete")
			}
		}()
	}

	// Setup Gin router
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("[%s] panic recovered: %v", utils.RequestID(c), recovered)
		utils.ErrorResponse(c, http.StatusInternalServerError, "recognition failed")
	}))

	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.ErrorHandlerMiddleware())

	// CORS Middleware. Registered before the body limit so even a 413
	// short-circuit carries the CORS headers.
	r.Use(cors.New(corsConfig(cfg)))

	r.Use(middleware.BodySizeLimitMiddleware(cfg.MaxBodySize))

	// Register all routes
	route.RegisterRoutes(r, ocrService)

	log.Printf("🚀 Captcha OCR service running on http://localhost:%s (engine=%s, concurrency=%d)",
		cfg.Port, cfg.Engine, cfg.OCRConcurrency)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

// corsConfig builds the CORS policy for the configured origin. The
// wildcard needs AllowAllOrigins, which forbids credentials; a concrete
// origin allows them.
func corsConfig(cfg *environment.Config) cors.Config {
	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	if cfg.AllowedOrigin == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = []string{cfg.AllowedOrigin}
		corsCfg.AllowCredentials = true
	}
	return corsCfg
}

// buildEngine picks the recognition engine from the configuration.
func buildEngine(cfg *environment.Config) services.Recognizer {
	switch cfg.Engine {
	case environment.EngineOpenAI:
		if cfg.OpenAIAPIKey == "" {
			log.Fatal("OCR_ENGINE=openai requires OPENAI_API_KEY")
		}
		return services.NewOpenAIEngine(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	case environment.EngineTesseract:
		return services.NewTesseractEngine(cfg.OCRLanguage)
	default:
		log.Printf("⚠️  unknown OCR_ENGINE %q, using %s", cfg.Engine, environment.EngineTesseract)
		return services.NewTesseractEngine(cfg.OCRLanguage)
	}
}
