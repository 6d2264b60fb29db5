package controllers

import (
	"net/http"
	"time"

	"CaptchaOCR/models"

	"github.com/gin-gonic/gin"
)

const statusPage = `<!doctype html>
<html>
<head><meta charset="utf-8"><title>Captcha OCR Service</title></head>
<body>
<h1>Captcha OCR HTTP Service</h1>
<p>Service is running. Visit <a href="/docs/">/docs/</a> for the interactive API documentation and test page.</p>
<ul>
<li><code>GET  /health</code> - health check</li>
<li><code>POST /recognize</code> - captcha recognition</li>
</ul>
</body>
</html>
`

// HealthController serves the status page and the health check. Both
// are independent of the recognition pipeline.
type HealthController struct{}

func NewHealthController() *HealthController {
	return &HealthController{}
}

// Status handles GET / with a small HTML status page.
func (ctrl *HealthController) Status(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(statusPage))
}

// Health handles GET /health with a fixed healthy payload.
func (ctrl *HealthController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthStatus{
		Status:    "healthy",
		Service:   "captcha-ocr",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
