package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"CaptchaOCR/models"
	"CaptchaOCR/services"
	"CaptchaOCR/utils"

	"github.com/gin-gonic/gin"
)

// RecognizeController struct
type RecognizeController struct {
	OCRService *services.OCRService
}

// NewRecognizeController initializes RecognizeController with the service layer
func NewRecognizeController(ocrService *services.OCRService) *RecognizeController {
	return &RecognizeController{
		OCRService: ocrService,
	}
}

// Recognize handles POST /recognize: bind the JSON payload, run the
// recognition pipeline and map every failure to the envelope.
func (ctrl *RecognizeController) Recognize(c *gin.Context) {
	var req models.RecognizeRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			utils.ErrorResponse(c, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: base64 field is required")
		return
	}

	payload := strings.TrimSpace(req.Base64)
	if len(payload) < 10 {
		utils.ErrorResponse(c, http.StatusBadRequest, "base64 string invalid or too short")
		return
	}

	result, err := ctrl.OCRService.Recognize(c.Request.Context(), payload)
	if err != nil {
		ctrl.respondError(c, err)
		return
	}

	log.Printf("[%s] ✅ recognized %q in %.2fms", utils.RequestID(c), result.Captcha, result.TimeMS)
	utils.SuccessResponse(c, http.StatusOK, "recognition successful", result)
}

// respondError maps pipeline errors to status codes and hands them to
// the error handler middleware. Messages describe the failure category;
// internal error text stays in the server log.
func (ctrl *RecognizeController) respondError(c *gin.Context, err error) {
	log.Printf("[%s] recognition error: %v", utils.RequestID(c), err)

	switch {
	case errors.Is(err, services.ErrInvalidBase64):
		_ = c.Error(utils.NewCustomError(http.StatusBadRequest, "base64 decode failed"))
	case errors.Is(err, services.ErrImageTooLarge):
		_ = c.Error(utils.NewCustomError(http.StatusBadRequest, "decoded image too large"))
	case errors.Is(err, services.ErrUnreadableImage):
		_ = c.Error(utils.NewCustomError(http.StatusBadRequest, "unrecognizable image format"))
	case errors.Is(err, services.ErrServerBusy):
		_ = c.Error(utils.NewCustomError(http.StatusServiceUnavailable, "server busy, try again later"))
	default:
		_ = c.Error(utils.NewCustomError(http.StatusInternalServerError, "recognition failed"))
	}
}
