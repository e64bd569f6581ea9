package transcribe

import "context"

// Transcriber converts an audio payload into transcript text. An empty
// transcript is a valid result meaning no speech was recognized.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, filename, contentType string) (string, error)
}
