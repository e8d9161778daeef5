package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"void-apparel/models"
	"void-apparel/repository"
	"void-apparel/service"
	"void-apparel/store"
)

const maxJSONBodyBytes = 1 << 20

// Error titles used in JSON error bodies
const (
	errInvalidRequest   = "Invalid request"
	errNotConfigured    = "OpenAI API key not configured"
	errNotConfiguredMsg = "Please add your OpenAI API key to use AI preview generation"
	errGenerateFailed   = "Failed to generate preview"
	errNotFound         = "Not found"
	errInvalidUpload    = "Invalid upload"
	errNotAnImageMsg    = "Please upload an image file"
	errInternal         = "Internal server error"
)

// writeJSON encodes v as the response body
func writeJSON(w http.ResponseWriter, op string, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("❌ %s: Error encoding response: %v", op, err)
	}
}

// writeError writes a {"error", "message"} body
func writeError(w http.ResponseWriter, op string, status int, title, message string) {
	writeJSON(w, op, status, models.ErrorResponse{Error: title, Message: message})
}

// writeServiceError maps a service or store error to its HTTP response
func writeServiceError(w http.ResponseWriter, op string, err error) {
	var verr *service.ValidationError
	var genErr *service.GenerationError

	switch {
	case errors.As(err, &verr):
		log.Printf("❌ %s: Validation failed: %v", op, err)
		writeError(w, op, http.StatusBadRequest, errInvalidRequest, verr.Error())
	case errors.Is(err, service.ErrPreviewNotConfigured):
		log.Printf("❌ %s: %v", op, err)
		writeError(w, op, http.StatusBadRequest, errNotConfigured, errNotConfiguredMsg)
	case errors.As(err, &genErr):
		log.Printf("❌ %s: Generation failed: %v", op, err)
		writeError(w, op, http.StatusInternalServerError, errGenerateFailed, genErr.Error())
	case errors.Is(err, service.ErrNotAnImage):
		log.Printf("❌ %s: %v", op, err)
		writeError(w, op, http.StatusBadRequest, errInvalidUpload, errNotAnImageMsg)
	case errors.Is(err, service.ErrEmptyCart), errors.Is(err, service.ErrInvalidShippingMethod):
		log.Printf("❌ %s: %v", op, err)
		writeError(w, op, http.StatusBadRequest, errInvalidRequest, err.Error())
	case errors.Is(err, store.ErrItemNotFound),
		errors.Is(err, store.ErrGraphicNotFound),
		errors.Is(err, service.ErrPresetNotFound),
		errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, repository.ErrOrderNotFound):
		log.Printf("❌ %s: %v", op, err)
		writeError(w, op, http.StatusNotFound, errNotFound, err.Error())
	default:
		log.Printf("❌ %s: Unexpected error: %v", op, err)
		writeError(w, op, http.StatusInternalServerError, errInternal, err.Error())
	}
}

// decodeJSON decodes a bounded JSON body into dst. An empty body leaves dst untouched.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return &service.ValidationError{Issues: []string{fmt.Sprintf("body: %v", err)}}
	}
	return nil
}
