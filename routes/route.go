package route

import (
	"CaptchaOCR/controllers"
	"CaptchaOCR/handlers"
	"CaptchaOCR/services"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes initializes all routes
func RegisterRoutes(router *gin.Engine, ocrService *services.OCRService) {
	recognizeController := controllers.NewRecognizeController(ocrService)
	healthController := controllers.NewHealthController()

	root := router.Group("/")
	{
		handlers.RegisterHealthRoutes(root, healthController)
		handlers.RegisterRecognizeRoutes(root, recognizeController)
	}

	// Interactive documentation/test page
	router.Static("/docs", "./docs")
}
