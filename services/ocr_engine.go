package services

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"

	"github.com/otiai10/gosseract/v2"
)

// Recognizer is the recognition engine as an injected capability. The
// pipeline only ever sees this interface, so tests run against a stub.
type Recognizer interface {
	Recognize(ctx context.Context, img image.Image) (string, error)
}

const captchaCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// TesseractEngine recognizes captchas with a local Tesseract install.
//
// A fresh gosseract client is created per call: the client is not safe
// for concurrent use and the concurrency gate already bounds how many
// calls run at once.
type TesseractEngine struct {
	Language string
}

// NewTesseractEngine creates a Tesseract-backed engine. language is a
// Tesseract language code such as "eng".
func NewTesseractEngine(language string) *TesseractEngine {
	if language == "" {
		language = "eng"
	}
	return &TesseractEngine{Language: language}
}

// Recognize runs the engine on an in-memory image and returns the raw
// recognized text. Captchas are single lines of alphanumerics, so the
// page segmentation mode and character whitelist are fixed accordingly.
func (e *TesseractEngine) Recognize(ctx context.Context, img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(e.Language); err != nil {
		return "", fmt.Errorf("failed to set language: %w", err)
	}
	if err := client.SetWhitelist(captchaCharset); err != nil {
		return "", fmt.Errorf("failed to set whitelist: %w", err)
	}
	if err := client.SetPageSegMode(gosseract.PSM_SINGLE_LINE); err != nil {
		return "", fmt.Errorf("failed to set page segmentation mode: %w", err)
	}
	if err := client.SetImageFromBytes(buf.Bytes()); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}
	return text, nil
}
