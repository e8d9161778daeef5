package controller

import (
	"io"
	"log"
	"net/http"

	"void-apparel/metrics"
	"void-apparel/service"
)

// PreviewController handles HTTP requests for AI garment previews
type PreviewController struct {
	previewService service.PreviewServiceInterface
	sessions       *SessionResolver
}

// NewPreviewController creates a new PreviewController
func NewPreviewController(previewService service.PreviewServiceInterface, sessions *SessionResolver) *PreviewController {
	return &PreviewController{
		previewService: previewService,
		sessions:       sessions,
	}
}

// GeneratePreview handles POST /api/generate-preview
// Validates the body, then makes a single image-generation call
func (c *PreviewController) GeneratePreview(w http.ResponseWriter, r *http.Request) {
	const op = "GeneratePreview"
	log.Printf("📥 %s: Received %s request to %s", op, r.Method, r.URL.Path)

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxJSONBodyBytes))
	if err != nil {
		log.Printf("❌ %s: Failed to read request body: %v", op, err)
		writeError(w, op, http.StatusBadRequest, errInvalidRequest, "body: "+err.Error())
		return
	}

	req, err := service.ParsePreviewRequest(body)
	if err != nil {
		metrics.RecordPreview(metrics.PreviewInvalid, 0)
		writeServiceError(w, op, err)
		return
	}

	resp, err := c.previewService.Generate(r.Context(), *req)
	if err != nil {
		writeServiceError(w, op, err)
		return
	}

	log.Printf("✅ %s: Preview ready", op)
	writeJSON(w, op, http.StatusOK, resp)
}

// GenerateSessionPreview handles POST /api/session/preview
// Renders the session's current customization and stores the result unless a newer preview won
func (c *PreviewController) GenerateSessionPreview(w http.ResponseWriter, r *http.Request) {
	const op = "GenerateSessionPreview"
	log.Printf("📥 %s: Received %s request to %s", op, r.Method, r.URL.Path)

	sessionID, st := c.sessions.Resolve(w, r)

	resp, err := c.previewService.GenerateForSession(r.Context(), st)
	if err != nil {
		writeServiceError(w, op, err)
		return
	}

	log.Printf("✅ %s: session=%s seq=%d applied=%t", op, sessionID, resp.Sequence, resp.Applied)
	writeJSON(w, op, http.StatusOK, resp)
}
