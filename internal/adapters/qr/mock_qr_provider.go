package qr

import (
	"context"

	"courier-print-service/internal/ports"
)

// MockThermalProvider serves a canned thermal QR result for tests.
type MockThermalProvider struct {
	Result ports.ThermalQRResult
	Err    error
	Calls  int
}

func (m *MockThermalProvider) FetchThermalQR(ctx context.Context, code string) (ports.ThermalQRResult, error) {
	m.Calls++
	if m.Err != nil {
		return ports.ThermalQRResult{}, m.Err
	}
	return m.Result, nil
}

// MockPackageProvider serves a canned generic QR result for tests.
type MockPackageProvider struct {
	Result ports.PackageQRResult
	Err    error
	Calls  int
}

func (m *MockPackageProvider) FetchPackageQR(ctx context.Context, code string) (ports.PackageQRResult, error) {
	m.Calls++
	if m.Err != nil {
		return ports.PackageQRResult{}, m.Err
	}
	return m.Result, nil
}
