package main

import (
	"fmt"
	"net/http"
	"runtime/debug"
)

func (app *application) serverError(w http.ResponseWriter, err error) {
	trace := fmt.Sprintf("%s\n%s", err.Error(), debug.Stack())
	app.errorLog.Output(2, trace)

	writeErrorJSON(w, http.StatusInternalServerError, "internal server error")
}

func (app *application) unauthorized(w http.ResponseWriter, message string) {
	writeErrorJSON(w, http.StatusUnauthorized, message)
}

func (app *application) forbidden(w http.ResponseWriter, message string) {
	writeErrorJSON(w, http.StatusForbidden, message)
}

// writeErrorJSON mirrors the uniform error body the handlers produce.
func writeErrorJSON(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	fmt.Fprintf(w, "{\"error\": %q}", message)
}
