package models

// RecognizeRequest represents the request payload for POST /recognize.
// The base64 field may carry a raw base64 string or a full data URI
// (data:image/png;base64,...).
type RecognizeRequest struct {
	Base64 string `json:"base64" binding:"required"`
}

// RecognitionResult is the data payload returned on a successful
// recognition. Captcha only ever contains ASCII letters and digits.
type RecognitionResult struct {
	Captcha string  `json:"captcha"`
	TimeMS  float64 `json:"time_ms"`
	Length  int     `json:"length"`
}

// HealthStatus is the fixed payload of GET /health.
type HealthStatus struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp"`
}
