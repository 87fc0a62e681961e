package http

import (
	"encoding/json"
	"net/http"

	"carshowroom-backend/internal/domain"
	"carshowroom-backend/internal/service"
)

type VisitHandler struct {
	visitSvc service.VisitService
}

func NewVisitHandler(visitSvc service.VisitService) *VisitHandler {
	return &VisitHandler{visitSvc: visitSvc}
}

// NewVisit handles POST /customers/recentlyVisitedShowrooms with a JSON
// body {ownerId}.
func (h *VisitHandler) NewVisit(w http.ResponseWriter, r *http.Request) {
	claims, ok := mustClaims(w, r)
	if !ok {
		return
	}

	var req struct {
		OwnerID int32 `json:"ownerId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.NewValidationError("invalid request body"))
		return
	}
	if req.OwnerID <= 0 {
		writeError(w, domain.NewValidationError("ownerId is required"))
		return
	}

	visits, err := h.visitSvc.RecordVisit(r.Context(), claims.UserID, req.OwnerID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":          "Showroom Visited Successfully",
		"visitedShowrooms": visits,
	})
}

// AllVisits handles GET /customers/allVisitedShowrooms.
func (h *VisitHandler) AllVisits(w http.ResponseWriter, r *http.Request) {
	claims, ok := mustClaims(w, r)
	if !ok {
		return
	}

	visits, err := h.visitSvc.ListVisits(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"visitedShowrooms": visits})
}

// RemoveVisit handles DELETE /customers/removeVisitedShowroom?ownerId=N.
func (h *VisitHandler) RemoveVisit(w http.ResponseWriter, r *http.Request) {
	claims, ok := mustClaims(w, r)
	if !ok {
		return
	}

	ownerID := parseInt32(r.URL.Query().Get("ownerId"))
	if ownerID <= 0 {
		writeError(w, domain.NewValidationError("ownerId is required"))
		return
	}

	visits, err := h.visitSvc.RemoveVisit(r.Context(), claims.UserID, ownerID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":          "The visit for showroom has been deleted successfully!",
		"visitedShowrooms": visits,
	})
}
