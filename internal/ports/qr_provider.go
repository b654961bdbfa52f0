package ports

import "context"

// Payload returned by the thermal-optimized QR endpoint.
type ThermalQRResult struct {
	Success     bool
	QRData      string
	TrackingURL string
	PackageCode string
	QRType      string
}

// Payload returned by the generic package QR endpoint.
type PackageQRResult struct {
	TrackingURL string
	QRCodeData  string
	URL         string
}

// Port: primary remote source of QR payloads, tuned for thermal symbols.
type ThermalQRProvider interface {
	// Fetch a thermal-optimized QR payload for a package code.
	FetchThermalQR(ctx context.Context, code string) (ThermalQRResult, error)
}

// Port: secondary remote source exposing generic package QR fields.
type PackageQRProvider interface {
	// Fetch the generic QR payload fields for a package code.
	FetchPackageQR(ctx context.Context, code string) (PackageQRResult, error)
}
