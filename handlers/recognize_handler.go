package handlers

import (
	"CaptchaOCR/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterRecognizeRoutes(router *gin.RouterGroup, recognizeController *controllers.RecognizeController) {
	router.POST("/recognize", recognizeController.Recognize)
}
