package domain

// Settlement state of a package at print time.
type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "paid"
	PaymentNotPaid PaymentStatus = "not_paid"
	PaymentPending PaymentStatus = "pending"
)

// Represents the logistics record a receipt is printed for.
// A PackageRecord is supplied by the external order-management collaborator
// and is immutable for the duration of a single print call. Only Code is
// mandatory; everything else is best-effort display data.
type PackageRecord struct {
	Code                string
	ReceiverName        string
	ReceiverPhone       string
	RouteDescription    string
	DeliveryLocation    string
	Weight              string
	Dimensions          string
	SpecialInstructions string
	PaymentStatus       PaymentStatus
	AgentName           string
}
