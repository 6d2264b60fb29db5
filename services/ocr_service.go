package services

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"regexp"
	"strings"
	"time"

	"CaptchaOCR/config/environment"
	"CaptchaOCR/models"

	"golang.org/x/sync/semaphore"
)

var (
	// ErrRecognitionFailed reports an engine-level failure.
	ErrRecognitionFailed = errors.New("recognition engine failed")

	// ErrServerBusy reports that no permit freed within the configured
	// queue wait timeout.
	ErrServerBusy = errors.New("recognition queue is full")
)

// captchaChars matches the characters a captcha answer may contain.
// Everything else the engine returns is stripped, never an error.
var captchaChars = regexp.MustCompile(`[A-Za-z0-9]`)

// OCRService runs the recognition pipeline: decode the payload, wait
// for a permit on the concurrency gate, invoke the engine and filter
// the result.
type OCRService struct {
	Engine Recognizer
	Images *ImageService

	sem          *semaphore.Weighted
	queueTimeout time.Duration
}

// NewOCRService creates the pipeline around the given engine. The gate
// permit count and queue timeout come from the configuration.
func NewOCRService(cfg *environment.Config, engine Recognizer) *OCRService {
	return &OCRService{
		Engine:       engine,
		Images:       NewImageService(cfg.MaxBodySize),
		sem:          semaphore.NewWeighted(int64(cfg.OCRConcurrency)),
		queueTimeout: cfg.QueueTimeout,
	}
}

// Recognize decodes the base64 payload and runs it through the engine.
// The returned result only ever contains ASCII letters and digits; an
// empty string is a valid, degenerate result.
func (s *OCRService) Recognize(ctx context.Context, payload string) (*models.RecognitionResult, error) {
	img, err := s.Images.DecodeBase64Image(payload)
	if err != nil {
		return nil, err
	}

	if err := s.acquire(ctx); err != nil {
		return nil, err
	}
	defer s.sem.Release(1)

	start := time.Now()
	raw, err := s.Engine.Recognize(ctx, img)
	elapsed := time.Since(start)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRecognitionFailed, err)
	}

	captcha := strings.Join(captchaChars.FindAllString(raw, -1), "")
	return &models.RecognitionResult{
		Captcha: captcha,
		TimeMS:  roundMillis(elapsed),
		Length:  len(captcha),
	}, nil
}

// acquire blocks until a gate permit is available. With no queue
// timeout configured the wait is unbounded, matching the original
// service; otherwise an elapsed timeout surfaces as ErrServerBusy.
func (s *OCRService) acquire(ctx context.Context) error {
	acquireCtx := ctx
	if s.queueTimeout > 0 {
		var cancel context.CancelFunc
		acquireCtx, cancel = context.WithTimeout(ctx, s.queueTimeout)
		defer cancel()
	}

	if err := s.sem.Acquire(acquireCtx, 1); err != nil {
		if s.queueTimeout > 0 && errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			return ErrServerBusy
		}
		return fmt.Errorf("%w: %v", ErrRecognitionFailed, err)
	}
	return nil
}

// Warmup runs a tiny blank image through the engine so the first real
// request does not pay model initialization cost.
func (s *OCRService) Warmup(ctx context.Context) error {
	img := image.NewNRGBA(image.Rect(0, 0, 32, 12))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	img.Set(4, 4, color.NRGBA{A: 0xff})

	if err := s.acquire(ctx); err != nil {
		return err
	}
	defer s.sem.Release(1)

	_, err := s.Engine.Recognize(ctx, img)
	return err
}

func roundMillis(d time.Duration) float64 {
	ms := float64(d.Nanoseconds()) / float64(time.Millisecond)
	return math.Round(ms*100) / 100
}
