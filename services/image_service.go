package services

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder

	"CaptchaOCR/utils"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

var (
	// ErrInvalidBase64 reports a payload that is not valid base64.
	ErrInvalidBase64 = errors.New("invalid base64 payload")

	// ErrUnreadableImage reports decoded bytes that are not a supported
	// raster image format.
	ErrUnreadableImage = errors.New("unreadable image format")

	// ErrImageTooLarge reports a decoded blob above the configured cap.
	ErrImageTooLarge = errors.New("decoded image too large")
)

// ImageService turns base64 payloads into normalized in-memory images.
type ImageService struct {
	MaxBytes int64
}

// NewImageService creates an ImageService. maxBytes caps the size of the
// decoded blob, mirroring the request body limit.
func NewImageService(maxBytes int64) *ImageService {
	return &ImageService{MaxBytes: maxBytes}
}

// DecodeBase64Image decodes a base64 string (with or without a data URI
// header) into an image normalized to three 8-bit channels.
func (s *ImageService) DecodeBase64Image(payload string) (image.Image, error) {
	pure := utils.NormalizeBase64(payload)

	raw, err := base64.StdEncoding.DecodeString(pure)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBase64, err)
	}

	if s.MaxBytes > 0 && int64(len(raw)) > s.MaxBytes {
		return nil, ErrImageTooLarge
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableImage, err)
	}

	return toRGB(img), nil
}

// toRGB converts any source image (palette, grayscale, alpha) to an
// 8-bit-per-channel bitmap with the alpha channel forced opaque.
func toRGB(img image.Image) *image.NRGBA {
	rgb := imaging.Clone(img)
	for i := 3; i < len(rgb.Pix); i += 4 {
		rgb.Pix[i] = 0xff
	}
	return rgb
}
