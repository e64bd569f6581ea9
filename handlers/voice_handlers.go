package handlers

import (
	"context"
	"io"
	"log"

	"github.com/gofiber/fiber/v2"

	"voicepos/metrics"
	"voicepos/nlp"
	"voicepos/pos"
	"voicepos/transcribe"
)

// Handlers bundles the HTTP handlers with their injected collaborators.
type Handlers struct {
	transcriber transcribe.Transcriber
	dispatcher  *pos.Dispatcher
	store       pos.Store
	lex         *nlp.Lexicon
	metrics     *metrics.Metrics
}

// New constructs the handler set.
func New(transcriber transcribe.Transcriber, dispatcher *pos.Dispatcher, st pos.Store, lex *nlp.Lexicon, m *metrics.Metrics) *Handlers {
	return &Handlers{
		transcriber: transcriber,
		dispatcher:  dispatcher,
		store:       st,
		lex:         lex,
		metrics:     m,
	}
}

// HandleRoot returns the service welcome message.
func (h *Handlers) HandleRoot(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Welcome to the VoiceAI API POS system"})
}

// HandleVoiceCommand accepts an audio upload, transcribes it and dispatches
// the resolved action. A transcription failure short-circuits the request;
// the dispatcher never runs without a transcript.
func (h *Handlers) HandleVoiceCommand(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Audio file is required"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Failed to open uploaded file"})
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Failed to read uploaded file"})
	}

	ctx := context.Background()
	transcript, err := h.transcriber.Transcribe(ctx, audio, fileHeader.Filename, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		log.Printf("Transcription failed: %v", err)
		h.metrics.Errors.WithLabelValues("transcription").Inc()
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"status": "error", "message": "Transcription service unavailable"})
	}

	resp, err := h.dispatcher.HandleVoiceCommand(ctx, transcript)
	if err != nil {
		log.Printf("Voice command failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to process voice command: " + err.Error()})
	}

	return c.JSON(resp)
}
