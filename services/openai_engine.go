package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/png"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const visionPrompt = "This image is a captcha. Reply with only the characters shown in the image, " +
	"nothing else. No explanations, no punctuation, no whitespace."

// OpenAIEngine recognizes captchas with an OpenAI vision model. It is
// an alternative to the local Tesseract engine for deployments without
// a Tesseract install.
type OpenAIEngine struct {
	client *openai.Client
	model  string
}

// NewOpenAIEngine creates a vision-LLM-backed engine.
func NewOpenAIEngine(apiKey, model string) *OpenAIEngine {
	return &OpenAIEngine{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (e *OpenAIEngine) Recognize(ctx context.Context, img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}
	dataURI := "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())

	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     e.model,
		MaxTokens: 32,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{
						Type: openai.ChatMessagePartTypeText,
						Text: visionPrompt,
					},
					{
						Type: openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{
							URL:    dataURI,
							Detail: openai.ImageURLDetailLow,
						},
					},
				},
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("vision request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("no valid response received")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
