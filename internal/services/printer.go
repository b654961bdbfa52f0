package services

import (
	"bytes"
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"courier-print-service/internal/domain"
	"courier-print-service/internal/platform/obs"
	"courier-print-service/internal/ports"
)

// PrintService is the public entry point of the printing subsystem. It
// wires the session, resolver and composer together and always reports
// through a PrintResult: no error, panic or internal trace ever crosses
// this boundary, and the notifier fires exactly once per attempt.
type PrintService struct {
	session  *PrinterSession
	resolver *QRPayloadResolver
	notifier ports.Notifier
	now      func() time.Time
}

func NewPrintService(session *PrinterSession, resolver *QRPayloadResolver, notifier ports.Notifier, now func() time.Time) *PrintService {
	if now == nil {
		now = time.Now
	}
	return &PrintService{
		session:  session,
		resolver: resolver,
		notifier: notifier,
		now:      now,
	}
}

// Print composes and prints one document for a package record.
func (s *PrintService) Print(ctx context.Context, record domain.PackageRecord, opts domain.PrintOptions) (result domain.PrintResult) {
	var err error
	defer obs.Time(ctx, "print")(&err)

	defer func() {
		if r := recover(); r != nil {
			log.Printf("print.panic code=%s panic=%v", record.Code, r)
			result = s.failure(errors.New("unexpected internal failure"))
		}
		s.notify(ctx, result)
	}()

	if strings.TrimSpace(record.Code) == "" {
		err = errors.New("package record has no tracking code")
		return s.failure(err)
	}
	opts = opts.Normalized()

	// Readiness comes first so a misconfigured or unreachable printer does
	// not cost two remote QR calls.
	if err = s.session.EnsureReady(ctx); err != nil {
		return s.failure(err)
	}

	var qr *domain.QRResolution
	if opts.IncludeQR {
		res := s.resolver.Resolve(ctx, record.Code)
		qr = &res
	}

	var data []byte
	data, err = ComposeReceipt(record, qr, opts, s.now())
	if err != nil {
		// Encoding failures leave the session untouched for the next call.
		return s.failure(err)
	}

	// Copies share one busy period so another caller can never interleave
	// between them.
	if opts.Copies > 1 {
		data = bytes.Repeat(data, opts.Copies)
	}

	if err = s.session.Write(ctx, data); err != nil {
		return s.failure(err)
	}

	identity := s.session.Identity()
	return domain.PrintResult{
		Success:     true,
		Message:     "Printed " + record.Code + " on " + identity.Name,
		Timestamp:   s.now(),
		PrinterName: identity.Name,
	}
}

// TestPrint prints a synthetic diagnostic record with the given options.
func (s *PrintService) TestPrint(ctx context.Context, opts domain.PrintOptions) domain.PrintResult {
	now := s.now()
	record := domain.PackageRecord{
		Code:             "TEST-" + now.Format("20060102-150405"),
		ReceiverName:     "Test Print",
		RouteDescription: "Printer diagnostics",
		PaymentStatus:    domain.PaymentPaid,
	}
	return s.Print(ctx, record, opts)
}

func (s *PrintService) failure(err error) domain.PrintResult {
	return domain.PrintResult{
		Success:     false,
		Message:     domain.UserMessage(err),
		Timestamp:   s.now(),
		PrinterName: s.session.Identity().Name,
		ErrorCode:   domain.CodeOf(err),
	}
}

func (s *PrintService) notify(ctx context.Context, result domain.PrintResult) {
	if s.notifier == nil {
		return
	}
	s.notifier.Notify(ctx, result)
}
