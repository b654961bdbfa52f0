package domain

import "time"

// Label size tier, driving the QR module size on paper.
type LabelSize string

const (
	LabelSmall  LabelSize = "small"
	LabelMedium LabelSize = "medium"
	LabelLarge  LabelSize = "large"
)

// Kind of document to print. All kinds share the receipt pipeline; the
// kind only selects the banner wording.
type PrintType string

const (
	PrintReceipt PrintType = "receipt"
	PrintLabel   PrintType = "label"
	PrintInvoice PrintType = "invoice"
)

// Per-call print settings.
type PrintOptions struct {
	Copies    int
	IncludeQR bool
	LabelSize LabelSize
	PrintType PrintType
}

// Fill unset fields with usable defaults.
func (o PrintOptions) Normalized() PrintOptions {
	if o.Copies < 1 {
		o.Copies = 1
	}
	switch o.LabelSize {
	case LabelSmall, LabelMedium, LabelLarge:
	default:
		o.LabelSize = LabelMedium
	}
	switch o.PrintType {
	case PrintReceipt, PrintLabel, PrintInvoice:
	default:
		o.PrintType = PrintReceipt
	}
	return o
}

// Where a QR payload came from.
type QRSource string

const (
	// Thermal-optimized payload from the primary remote endpoint.
	QRSourceOptimized QRSource = "optimized"
	// Generic package payload from the secondary remote endpoint.
	QRSourceGeneric QRSource = "generic"
	// Deterministic locally-built tracking URL.
	QRSourceFallback QRSource = "fallback"
)

// The string embedded in the printed QR symbol and its provenance.
// Payload is never empty.
type QRResolution struct {
	Payload string
	Source  QRSource
}

// Outcome of a print attempt. This is the only type that crosses the
// orchestrator boundary; failures are carried as Message + ErrorCode,
// never as a raised error.
type PrintResult struct {
	Success     bool
	Message     string
	Timestamp   time.Time
	PrinterName string
	ErrorCode   ErrorCode
}
