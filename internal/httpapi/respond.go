// Package httpapi exposes the four stores over HTTP. Handlers translate
// store outcomes to status codes and perform no data-shape logic of their
// own.
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

type errorBody struct {
	Error string `json:"error"`
}

type messageBody struct {
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, errorBody{Error: msg})
}

// respondStoreError maps store errors to status codes: expected outcomes
// become 4xx, a broken store becomes 503 so callers can tell "no data"
// from "store unavailable".
func respondStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, types.ErrNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, types.ErrDuplicateName):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, types.ErrInvalidStatus):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, types.ErrStoreUnavailable):
		respondError(w, http.StatusServiceUnavailable, "store unavailable")
	default:
		respondError(w, http.StatusInternalServerError, err.Error())
	}
}

// pathID extracts the {id} route variable and requires it to be a
// positive integer.
func pathID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		return 0, types.ErrInvalidID
	}
	return id, nil
}

// queryInt parses a required integer query parameter.
func queryInt(r *http.Request, name string) (int, bool) {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return 0, false
	}
	return v, true
}
