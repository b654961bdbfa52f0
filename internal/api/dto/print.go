package dto

import "time"

// Inbound print request: the package record plus per-call options.
type PrintRequest struct {
	Code                string `json:"code"`
	ReceiverName        string `json:"receiver_name"`
	ReceiverPhone       string `json:"receiver_phone,omitempty"`
	RouteDescription    string `json:"route_description,omitempty"`
	DeliveryLocation    string `json:"delivery_location,omitempty"`
	Weight              string `json:"weight,omitempty"`
	Dimensions          string `json:"dimensions,omitempty"`
	SpecialInstructions string `json:"special_instructions,omitempty"`
	PaymentStatus       string `json:"payment_status"`
	AgentName           string `json:"agent_name,omitempty"`

	Options PrintOptionsRequest `json:"options"`
}

type PrintOptionsRequest struct {
	Copies    int    `json:"copies,omitempty"`
	IncludeQR bool   `json:"include_qr,omitempty"`
	LabelSize string `json:"label_size,omitempty"`
	PrintType string `json:"print_type,omitempty"`
}

type PrintResponse struct {
	Success     bool      `json:"success"`
	Message     string    `json:"message"`
	Timestamp   time.Time `json:"timestamp"`
	PrinterName string    `json:"printer_name,omitempty"`
	ErrorCode   string    `json:"error_code,omitempty"`
}

type PrinterStatusResponse struct {
	Configured bool   `json:"configured"`
	Name       string `json:"name,omitempty"`
	Address    string `json:"address,omitempty"`
	State      string `json:"state"`
}
