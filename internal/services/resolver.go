package services

import (
	"context"
	"log"
	"strings"
	"time"

	"courier-print-service/internal/domain"
	"courier-print-service/internal/ports"
)

// Base of the deterministic tracking URL used when every remote source
// fails. Overridable at construction so tests and deployments can pin it.
const DefaultTrackingBaseURL = "https://track.sendy.app/p"

// Per-source deadline for a remote QR lookup. The chain is sequential, so
// this also bounds how long a dead endpoint can delay the next source.
const resolveSourceTimeout = 5 * time.Second

// QRPayloadResolver produces the string embedded in the printed QR symbol.
//
// Sources are tried in a fixed priority order and the first usable payload
// wins; the final source is a pure local construction, so resolution always
// terminates with a non-empty payload and a remote outage can degrade a QR
// but never fail a print. The resolver itself performs no retries — bounded
// retrying is a transport concern inside the HTTP clients.
type QRPayloadResolver struct {
	thermal ports.ThermalQRProvider
	generic ports.PackageQRProvider
	baseURL string
}

func NewQRPayloadResolver(thermal ports.ThermalQRProvider, generic ports.PackageQRProvider, baseURL string) *QRPayloadResolver {
	if baseURL == "" {
		baseURL = DefaultTrackingBaseURL
	}
	return &QRPayloadResolver{
		thermal: thermal,
		generic: generic,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

type resolverStrategy struct {
	source domain.QRSource
	fetch  func(ctx context.Context, code string) (string, bool)
}

// Resolve returns the QR payload for a package code. The result is never
// empty.
func (r *QRPayloadResolver) Resolve(ctx context.Context, code string) domain.QRResolution {
	strategies := []resolverStrategy{
		{domain.QRSourceOptimized, r.fetchOptimized},
		{domain.QRSourceGeneric, r.fetchGeneric},
	}

	for _, s := range strategies {
		sctx, cancel := context.WithTimeout(ctx, resolveSourceTimeout)
		payload, ok := s.fetch(sctx, code)
		cancel()
		if ok {
			return domain.QRResolution{Payload: payload, Source: s.source}
		}
	}

	// Degraded but never fatal: fall back to the deterministic URL.
	log.Printf("qr.resolve code=%s source=%s", code, domain.QRSourceFallback)
	return domain.QRResolution{
		Payload: r.fallbackURL(code),
		Source:  domain.QRSourceFallback,
	}
}

func (r *QRPayloadResolver) fetchOptimized(ctx context.Context, code string) (string, bool) {
	if r.thermal == nil {
		return "", false
	}

	res, err := r.thermal.FetchThermalQR(ctx, code)
	if err != nil {
		log.Printf("qr.resolve code=%s source=%s err=%v", code, domain.QRSourceOptimized, err)
		return "", false
	}
	if !res.Success {
		return "", false
	}

	if res.QRData != "" {
		return res.QRData, true
	}
	if res.TrackingURL != "" {
		return res.TrackingURL, true
	}
	return "", false
}

func (r *QRPayloadResolver) fetchGeneric(ctx context.Context, code string) (string, bool) {
	if r.generic == nil {
		return "", false
	}

	res, err := r.generic.FetchPackageQR(ctx, code)
	if err != nil {
		log.Printf("qr.resolve code=%s source=%s err=%v", code, domain.QRSourceGeneric, err)
		return "", false
	}

	// Priority order within the generic shape.
	if res.TrackingURL != "" {
		return res.TrackingURL, true
	}
	if res.QRCodeData != "" {
		return res.QRCodeData, true
	}
	if res.URL != "" {
		return res.URL, true
	}
	return "", false
}

func (r *QRPayloadResolver) fallbackURL(code string) string {
	return r.baseURL + "/" + code
}
