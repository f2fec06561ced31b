package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
)

type Message struct {
	Message string `json:"message"`
}

// Detail is the body of every error response.
type Detail struct {
	Detail string `json:"detail"`
}

// StatusCoder is implemented by domain errors that carry their HTTP status.
type StatusCoder interface {
	StatusCode() int
}

func WriteJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Warn("write json failed", "err", err)
	}
}

func Success(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusOK, data)
}

func Created(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusCreated, data)
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func Fail(w http.ResponseWriter, status int, detail string) {
	WriteJSON(w, status, Detail{Detail: detail})
}

// StatusOf returns the status carried by err, or 500.
func StatusOf(err error) int {
	var sc StatusCoder
	if errors.As(err, &sc) {
		return sc.StatusCode()
	}
	return http.StatusInternalServerError
}

// FailErr writes err as a detail response. Errors without a status are
// reported as 500 without leaking their text.
func FailErr(w http.ResponseWriter, err error) {
	status := StatusOf(err)
	if status == http.StatusInternalServerError {
		Fail(w, status, "Internal server error")
		return
	}
	Fail(w, status, err.Error())
}
