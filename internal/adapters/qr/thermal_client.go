package qr

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"courier-print-service/internal/platform/obs"
	"courier-print-service/internal/ports"
)

type thermalQRResponse struct {
	Success bool `json:"success"`
	Data    struct {
		QRData         string `json:"qr_data"`
		TrackingURL    string `json:"tracking_url"`
		ThermalQRImage string `json:"thermal_qr_image"`
		PackageCode    string `json:"package_code"`
		QRType         string `json:"qr_type"`
	} `json:"data"`
	Error string `json:"error"`
}

// FetchThermalQR requests a thermal-optimized QR payload for a package code
// (GET /qr/thermal/{code}).
func (c *Client) FetchThermalQR(ctx context.Context, code string) (_ ports.ThermalQRResult, err error) {
	defer obs.Time(ctx, "qr.thermal.fetch")(&err)

	if code == "" {
		return ports.ThermalQRResult{}, errors.New("fetch thermal qr: code must be non-empty")
	}

	endpoint := c.endpoint("qr", "thermal", code)

	resp, err := c.doWithRetry(ctx, func() (*http.Request, error) {
		return c.newRequest(ctx, http.MethodGet, endpoint, nil)
	})
	if err != nil {
		return ports.ThermalQRResult{}, fmt.Errorf("fetch thermal qr for %q: %w", code, err)
	}
	defer resp.Body.Close()

	var decoded thermalQRResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return ports.ThermalQRResult{}, fmt.Errorf("decode thermal qr response: %w", err)
	}

	if !decoded.Success {
		return ports.ThermalQRResult{}, fmt.Errorf("thermal qr endpoint refused %q: %s", code, decoded.Error)
	}

	return ports.ThermalQRResult{
		Success:     decoded.Success,
		QRData:      decoded.Data.QRData,
		TrackingURL: decoded.Data.TrackingURL,
		PackageCode: decoded.Data.PackageCode,
		QRType:      decoded.Data.QRType,
	}, nil
}
