package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avoronins/scoreboard/internal/common"
)

type okResponse struct {
	OK bool `json:"ok"`
}

// detailResponse matches the error shape the frontend already consumes.
type detailResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeOK(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, okResponse{OK: true})
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, detailResponse{Detail: detail})
}

// writeError maps service sentinel errors to statuses. The invalid-
// credentials response is a single value regardless of whether the username
// was unknown or the password wrong, so the two replies are byte-identical.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, common.ErrInvalidCredentials):
		writeDetail(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, common.ErrEmailInUse):
		writeDetail(w, http.StatusBadRequest, "Email already in use")
	case errors.Is(err, common.ErrInvalidToken):
		writeDetail(w, http.StatusBadRequest, "Invalid token")
	case errors.Is(err, common.ErrTokenAlreadyUsed):
		writeDetail(w, http.StatusBadRequest, "Token already used")
	case errors.Is(err, common.ErrTokenExpired):
		writeDetail(w, http.StatusBadRequest, "Token expired")
	case errors.Is(err, common.ErrValidation):
		writeDetail(w, http.StatusBadRequest, "Invalid request")
	default:
		writeDetail(w, http.StatusInternalServerError, "Internal error")
	}
}
