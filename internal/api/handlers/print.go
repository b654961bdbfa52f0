package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"courier-print-service/internal/api/dto"
	"courier-print-service/internal/domain"
	"courier-print-service/internal/services"
)

// PrintHandler exposes the print orchestrator over HTTP.
type PrintHandler struct {
	Service *services.PrintService
}

// Print handles POST /print: one print attempt for a package record.
// The response mirrors the PrintResult; HTTP status stays 200 even for a
// failed attempt because the attempt itself completed.
func (h *PrintHandler) Print(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.PrintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(req.Code) == "" {
		writeError(w, r, http.StatusBadRequest, "code is required")
		return
	}

	result := h.Service.Print(r.Context(), toRecord(req), toOptions(req.Options))
	writeJSON(w, r, http.StatusOK, toResponse(result))
}

// TestPrint handles POST /print/test: a diagnostic page on the paired printer.
func (h *PrintHandler) TestPrint(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var opts dto.PrintOptionsRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&opts); err != nil {
			writeError(w, r, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	result := h.Service.TestPrint(r.Context(), toOptions(opts))
	writeJSON(w, r, http.StatusOK, toResponse(result))
}

func toRecord(req dto.PrintRequest) domain.PackageRecord {
	return domain.PackageRecord{
		Code:                req.Code,
		ReceiverName:        req.ReceiverName,
		ReceiverPhone:       req.ReceiverPhone,
		RouteDescription:    req.RouteDescription,
		DeliveryLocation:    req.DeliveryLocation,
		Weight:              req.Weight,
		Dimensions:          req.Dimensions,
		SpecialInstructions: req.SpecialInstructions,
		PaymentStatus:       domain.PaymentStatus(req.PaymentStatus),
		AgentName:           req.AgentName,
	}
}

func toOptions(req dto.PrintOptionsRequest) domain.PrintOptions {
	return domain.PrintOptions{
		Copies:    req.Copies,
		IncludeQR: req.IncludeQR,
		LabelSize: domain.LabelSize(req.LabelSize),
		PrintType: domain.PrintType(req.PrintType),
	}
}

func toResponse(result domain.PrintResult) dto.PrintResponse {
	return dto.PrintResponse{
		Success:     result.Success,
		Message:     result.Message,
		Timestamp:   result.Timestamp,
		PrinterName: result.PrinterName,
		ErrorCode:   string(result.ErrorCode),
	}
}
