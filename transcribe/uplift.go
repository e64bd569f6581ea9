package transcribe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"
)

const speechToTextPath = "/v1/transcribe/speech-to-text"

// UpliftClient calls the Uplift AI speech-to-text API. The request mirrors
// the phone-commerce transcription setup: model scribe, language ur.
type UpliftClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewUplift creates a client for the given API base URL and key.
func NewUplift(baseURL, apiKey string, timeout time.Duration) *UpliftClient {
	return &UpliftClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
	}
}

// Transcribe uploads the audio payload and returns the transcript text.
func (c *UpliftClient) Transcribe(ctx context.Context, audio []byte, filename, contentType string) (string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	header.Set("Content-Type", contentType)
	part, err := w.CreatePart(header)
	if err != nil {
		return "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := part.Write(audio); err != nil {
		return "", fmt.Errorf("write audio payload: %w", err)
	}

	fields := map[string]string{
		"model":    "scribe",
		"language": "ur",
		"domain":   "phone-commerce",
	}
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return "", fmt.Errorf("write form field %s: %w", k, err)
		}
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("close multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+speechToTextPath, &buf)
	if err != nil {
		return "", fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("transcription http: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read transcription response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("transcription request failed: status=%d body=%s", resp.StatusCode, string(body))
	}

	var result struct {
		Transcript string `json:"transcript"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("decode transcription response: %w", err)
	}
	return strings.TrimSpace(result.Transcript), nil
}
