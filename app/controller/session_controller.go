package controller

import (
	"log"
	"net/http"

	"void-apparel/models"
	"void-apparel/service"
)

// SessionController handles HTTP requests for the shopper session state
type SessionController struct {
	studioService service.StudioServiceInterface
	sessions      *SessionResolver
}

// NewSessionController creates a new SessionController
func NewSessionController(studioService service.StudioServiceInterface, sessions *SessionResolver) *SessionController {
	return &SessionController{
		studioService: studioService,
		sessions:      sessions,
	}
}

// GetSession handles GET /api/session
// Returns a snapshot of the whole session state
func (c *SessionController) GetSession(w http.ResponseWriter, r *http.Request) {
	const op = "GetSession"
	log.Printf("📥 %s: Received %s request to %s", op, r.Method, r.URL.Path)

	sessionID, st := c.sessions.Resolve(w, r)
	state := st.Snapshot()
	state.SessionID = sessionID

	writeJSON(w, op, http.StatusOK, state)
}

// UpdateCustomization handles PATCH /api/session/customization
// Example body: {"garmentType": "tee", "baseColor": "#dc2626"}
func (c *SessionController) UpdateCustomization(w http.ResponseWriter, r *http.Request) {
	const op = "UpdateCustomization"
	log.Printf("📥 %s: Received %s request to %s", op, r.Method, r.URL.Path)

	_, st := c.sessions.Resolve(w, r)

	var update models.CustomizationUpdate
	if err := decodeJSON(w, r, &update); err != nil {
		writeServiceError(w, op, err)
		return
	}

	updated, err := c.studioService.UpdateCustomization(st, update)
	if err != nil {
		writeServiceError(w, op, err)
		return
	}
	writeJSON(w, op, http.StatusOK, updated)
}

// ResetCustomization handles POST /api/session/customization/reset
func (c *SessionController) ResetCustomization(w http.ResponseWriter, r *http.Request) {
	const op = "ResetCustomization"
	log.Printf("📥 %s: Received %s request to %s", op, r.Method, r.URL.Path)

	_, st := c.sessions.Resolve(w, r)
	writeJSON(w, op, http.StatusOK, st.ResetCustomization())
}

// UpdateUI handles PUT /api/session/ui
// Example body: {"cartOpen": true, "currentPage": "studio"}
func (c *SessionController) UpdateUI(w http.ResponseWriter, r *http.Request) {
	const op = "UpdateUI"
	log.Printf("📥 %s: Received %s request to %s", op, r.Method, r.URL.Path)

	sessionID, st := c.sessions.Resolve(w, r)

	var update models.UIStateUpdate
	if err := decodeJSON(w, r, &update); err != nil {
		writeServiceError(w, op, err)
		return
	}

	if update.CartOpen != nil {
		st.SetCartOpen(*update.CartOpen)
	}
	if update.MobileMenuOpen != nil {
		st.SetMobileMenuOpen(*update.MobileMenuOpen)
	}
	if update.CurrentPage != nil {
		st.SetCurrentPage(*update.CurrentPage)
	}

	state := st.Snapshot()
	state.SessionID = sessionID
	writeJSON(w, op, http.StatusOK, state)
}

// EndSession handles DELETE /api/session
// Forgets the session and expires its cookie
func (c *SessionController) EndSession(w http.ResponseWriter, r *http.Request) {
	const op = "EndSession"
	log.Printf("📥 %s: Received %s request to %s", op, r.Method, r.URL.Path)

	c.sessions.Forget(w, r)
	w.WriteHeader(http.StatusNoContent)
}
