package controller

import (
	"errors"
	"io"
	"log"
	"net/http"

	"void-apparel/models"
	"void-apparel/service"
)

const (
	uploadFormField = "file"

	// Upload parts larger than this are buffered in temp files while parsing
	uploadMemoryBytes = 4 << 20
)

// GraphicController handles HTTP requests for artwork uploads and graphic placement
type GraphicController struct {
	uploadService  service.GraphicUploadServiceInterface
	studioService  service.StudioServiceInterface
	sessions       *SessionResolver
	maxUploadBytes int64
	memoryBytes    int64
}

// NewGraphicController creates a new GraphicController
func NewGraphicController(uploadService service.GraphicUploadServiceInterface, studioService service.StudioServiceInterface, sessions *SessionResolver, maxUploadBytes int64) *GraphicController {
	return &GraphicController{
		uploadService:  uploadService,
		studioService:  studioService,
		sessions:       sessions,
		maxUploadBytes: maxUploadBytes,
		memoryBytes:    min(maxUploadBytes, uploadMemoryBytes),
	}
}

// UploadGraphic handles POST /api/graphics/upload (multipart field "file")
// Returns the normalized PNG as a data URL
func (c *GraphicController) UploadGraphic(w http.ResponseWriter, r *http.Request) {
	const op = "UploadGraphic"
	log.Printf("📥 %s: Received %s request to %s", op, r.Method, r.URL.Path)

	upload, ok := c.readUpload(w, r, op)
	if !ok {
		return
	}
	writeJSON(w, op, http.StatusOK, upload)
}

// UploadSessionGraphic handles POST /api/session/graphics/upload
// Normalizes the upload and places it on the session's garment
func (c *GraphicController) UploadSessionGraphic(w http.ResponseWriter, r *http.Request) {
	const op = "UploadSessionGraphic"
	log.Printf("📥 %s: Received %s request to %s", op, r.Method, r.URL.Path)

	_, st := c.sessions.Resolve(w, r)

	upload, ok := c.readUpload(w, r, op)
	if !ok {
		return
	}
	writeJSON(w, op, http.StatusCreated, c.studioService.AddUpload(st, upload))
}

// AddPresetGraphic handles POST /api/session/graphics/preset
// Example body: {"presetId": "skull-roses"}
func (c *GraphicController) AddPresetGraphic(w http.ResponseWriter, r *http.Request) {
	const op = "AddPresetGraphic"
	log.Printf("📥 %s: Received %s request to %s", op, r.Method, r.URL.Path)

	_, st := c.sessions.Resolve(w, r)

	var req models.AddPresetRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, op, err)
		return
	}

	placed, err := c.studioService.AddPreset(r.Context(), st, req.PresetID)
	if err != nil {
		writeServiceError(w, op, err)
		return
	}
	writeJSON(w, op, http.StatusCreated, placed)
}

// AddGraphic handles POST /api/session/graphics
func (c *GraphicController) AddGraphic(w http.ResponseWriter, r *http.Request) {
	const op = "AddGraphic"
	log.Printf("📥 %s: Received %s request to %s", op, r.Method, r.URL.Path)

	_, st := c.sessions.Resolve(w, r)

	var req models.AddGraphicRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, op, err)
		return
	}

	placed, err := c.studioService.AddGraphic(st, req)
	if err != nil {
		writeServiceError(w, op, err)
		return
	}
	writeJSON(w, op, http.StatusCreated, placed)
}

// UpdateGraphic handles PATCH /api/session/graphics/{id}
// Example body: {"position": {"x": 30, "y": 60}, "rotation": 15}
func (c *GraphicController) UpdateGraphic(w http.ResponseWriter, r *http.Request) {
	const op = "UpdateGraphic"
	id := r.PathValue("id")
	log.Printf("📥 %s: Received %s request for id=%s", op, r.Method, id)

	_, st := c.sessions.Resolve(w, r)

	var update models.GraphicPlacementUpdate
	if err := decodeJSON(w, r, &update); err != nil {
		writeServiceError(w, op, err)
		return
	}

	updated, err := st.UpdateGraphic(id, update)
	if err != nil {
		writeServiceError(w, op, err)
		return
	}
	writeJSON(w, op, http.StatusOK, updated)
}

// RemoveGraphic handles DELETE /api/session/graphics/{id}
func (c *GraphicController) RemoveGraphic(w http.ResponseWriter, r *http.Request) {
	const op = "RemoveGraphic"
	id := r.PathValue("id")
	log.Printf("📥 %s: Received %s request for id=%s", op, r.Method, id)

	_, st := c.sessions.Resolve(w, r)

	if err := st.RemoveGraphic(id); err != nil {
		writeServiceError(w, op, err)
		return
	}
	log.Printf("✅ %s: Removed graphic %s", op, id)
	w.WriteHeader(http.StatusNoContent)
}

// readUpload reads the multipart "file" field and normalizes it.
// On failure the error response has been written and ok is false.
func (c *GraphicController) readUpload(w http.ResponseWriter, r *http.Request, op string) (upload *models.UploadedGraphic, ok bool) {
	r.Body = http.MaxBytesReader(w, r.Body, c.maxUploadBytes)
	if err := r.ParseMultipartForm(c.memoryBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			log.Printf("❌ %s: Upload exceeds %d bytes", op, c.maxUploadBytes)
			writeError(w, op, http.StatusRequestEntityTooLarge, errInvalidUpload, "File is too large")
			return nil, false
		}
		log.Printf("❌ %s: Failed to parse multipart form: %v", op, err)
		writeError(w, op, http.StatusBadRequest, errInvalidUpload, errNotAnImageMsg)
		return nil, false
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile(uploadFormField)
	if err != nil {
		log.Printf("❌ %s: Missing form field %q: %v", op, uploadFormField, err)
		writeError(w, op, http.StatusBadRequest, errInvalidUpload, errNotAnImageMsg)
		return nil, false
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Printf("❌ %s: Failed to read upload: %v", op, err)
		writeError(w, op, http.StatusBadRequest, errInvalidUpload, errNotAnImageMsg)
		return nil, false
	}

	upload, err = c.uploadService.Process(header.Filename, data)
	if err != nil {
		writeServiceError(w, op, err)
		return nil, false
	}
	return upload, true
}
