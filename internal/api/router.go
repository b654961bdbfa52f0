package api

import (
	"net/http"

	"courier-print-service/internal/api/handlers"
	"courier-print-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(svc *services.PrintService, session *services.PrinterSession) http.Handler {
	mux := http.NewServeMux()

	printHandler := &handlers.PrintHandler{Service: svc}
	statusHandler := &handlers.StatusHandler{Session: session}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/print", printHandler.Print)
	mux.HandleFunc("/print/test", printHandler.TestPrint)
	mux.HandleFunc("/printer", statusHandler.Status)

	return requestIDMiddleware(loggingMiddleware(mux))
}
