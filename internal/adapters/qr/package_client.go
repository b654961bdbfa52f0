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

type packageQRResponse struct {
	Data struct {
		TrackingURL string `json:"tracking_url"`
		QRCodeData  string `json:"qr_code_data"`
		URL         string `json:"url"`
	} `json:"data"`
}

// FetchPackageQR requests the generic QR payload fields for a package code
// (GET /packages/{code}/qr).
func (c *Client) FetchPackageQR(ctx context.Context, code string) (_ ports.PackageQRResult, err error) {
	defer obs.Time(ctx, "qr.package.fetch")(&err)

	if code == "" {
		return ports.PackageQRResult{}, errors.New("fetch package qr: code must be non-empty")
	}

	endpoint := c.endpoint("packages", code, "qr")

	resp, err := c.doWithRetry(ctx, func() (*http.Request, error) {
		return c.newRequest(ctx, http.MethodGet, endpoint, nil)
	})
	if err != nil {
		return ports.PackageQRResult{}, fmt.Errorf("fetch package qr for %q: %w", code, err)
	}
	defer resp.Body.Close()

	var decoded packageQRResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return ports.PackageQRResult{}, fmt.Errorf("decode package qr response: %w", err)
	}

	return ports.PackageQRResult{
		TrackingURL: decoded.Data.TrackingURL,
		QRCodeData:  decoded.Data.QRCodeData,
		URL:         decoded.Data.URL,
	}, nil
}
