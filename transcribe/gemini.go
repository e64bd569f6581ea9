package transcribe

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const geminiPrompt = "Transcribe the following Urdu voice command to plain text. Reply with the transcript only, no commentary."

// GeminiClient transcribes audio with the Gemini API, as an alternative to
// the Uplift provider.
type GeminiClient struct {
	apiKey string
	model  string
}

// NewGemini creates a Gemini-backed transcriber.
func NewGemini(apiKey, model string) *GeminiClient {
	return &GeminiClient{apiKey: apiKey, model: model}
}

// Transcribe sends the audio inline and extracts the candidate text.
func (c *GeminiClient) Transcribe(ctx context.Context, audio []byte, filename, contentType string) (string, error) {
	if contentType == "" {
		contentType = "audio/ogg"
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(c.apiKey))
	if err != nil {
		return "", fmt.Errorf("create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(c.model)
	resp, err := model.GenerateContent(ctx,
		genai.Text(geminiPrompt),
		genai.Blob{MIMEType: contentType, Data: audio},
	)
	if err != nil {
		return "", fmt.Errorf("gemini transcription: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no transcript received from gemini")
	}
	var text string
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			text += string(txt)
		}
	}
	return strings.TrimSpace(text), nil
}
