package handlers

import (
	"net/http"

	"se-server/cable"
)

// CableHandler serves cable sizing calculations. The math is pure, so the
// handler only validates and delegates.
type CableHandler struct{}

func NewCableHandler() *CableHandler {
	return &CableHandler{}
}

// Size handles POST /v1/cable/size.
func (h *CableHandler) Size(w http.ResponseWriter, r *http.Request) {
	var req cable.Request
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := cable.Size(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Sizes handles GET /v1/cable/sizes, listing the standard conductor sizes.
func (h *CableHandler) Sizes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"sizes": cable.AvailableSizes()})
}
