package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"courier-print-service/internal/domain"
	"courier-print-service/internal/platform/retry"
	"courier-print-service/internal/ports"
)

// Session lifecycle for one physical printer.
type SessionState int

const (
	StateUnconfigured SessionState = iota
	StateDisconnected
	StateAdapterOff
	StateConnecting
	StateConnected
	StateBusy
)

func (s SessionState) String() string {
	switch s {
	case StateUnconfigured:
		return "unconfigured"
	case StateDisconnected:
		return "disconnected"
	case StateAdapterOff:
		return "adapter_off"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateBusy:
		return "busy"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

type SessionConfig struct {
	ConnectAttempts int
	ConnectDelay    time.Duration
	WriteTimeout    time.Duration
}

func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		ConnectAttempts: 3,
		ConnectDelay:    time.Second,
		WriteTimeout:    30 * time.Second,
	}
}

// PrinterSession owns the link to the single paired printer and its state
// machine:
//
//	Unconfigured -> Disconnected -> {AdapterOff | Connecting -> {Connected | Disconnected}}
//	Connected -> Busy -> Connected
//
// The physical link has no framing to recover from interleaved writes, so
// at most one operation is in flight at a time; concurrent callers queue on
// the operation mutex. Reconnection is bounded (no unbounded retries) and
// sequential, and every blocking step carries a deadline. Cancellation
// leaves the session Disconnected, a safe retryable state — never Busy.
type PrinterSession struct {
	store     ports.IdentityStore
	transport ports.Transport
	cfg       SessionConfig

	// opMu serializes EnsureReady/Write; mu guards the fields below.
	opMu sync.Mutex
	mu   sync.Mutex

	state    SessionState
	identity domain.PrinterIdentity
}

func NewPrinterSession(store ports.IdentityStore, transport ports.Transport, cfg SessionConfig) *PrinterSession {
	if cfg.ConnectAttempts < 1 {
		cfg.ConnectAttempts = DefaultSessionConfig().ConnectAttempts
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = DefaultSessionConfig().WriteTimeout
	}
	return &PrinterSession{
		store:     store,
		transport: transport,
		cfg:       cfg,
		state:     StateUnconfigured,
	}
}

func (s *PrinterSession) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Identity returns the pairing loaded by the last EnsureReady, if any.
func (s *PrinterSession) Identity() domain.PrinterIdentity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity
}

func (s *PrinterSession) setState(next SessionState) {
	s.mu.Lock()
	prev := s.state
	s.state = next
	s.mu.Unlock()

	if prev != next {
		log.Printf("printer.session from=%s to=%s", prev, next)
	}
}

func (s *PrinterSession) setIdentity(id domain.PrinterIdentity) {
	s.mu.Lock()
	s.identity = id
	s.mu.Unlock()
}

// EnsureReady brings the session to Connected: loads the pairing, checks
// the radio adapter and reconnects with bounded attempts. Errors carry the
// taxonomy code for the first obstacle found.
func (s *PrinterSession) EnsureReady(ctx context.Context) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()
	return s.ensureReadyLocked(ctx)
}

func (s *PrinterSession) ensureReadyLocked(ctx context.Context) error {
	// The pairing is re-read on every print; it is persisted out-of-band
	// and may appear or change between calls.
	id, err := s.store.Load(ctx)
	if errors.Is(err, ports.ErrNoPairing) {
		s.setState(StateUnconfigured)
		return domain.NewConfigurationError()
	}
	if err != nil {
		s.setState(StateUnconfigured)
		return &domain.PrintError{
			Code:    domain.CodeConfiguration,
			Message: "Could not read the printer pairing.",
			Err:     err,
		}
	}
	s.setIdentity(id)

	if !s.transport.AdapterEnabled() {
		// Terminal until the radio is re-enabled outside this process.
		s.setState(StateAdapterOff)
		return domain.NewAdapterError()
	}

	if s.transport.Connected() {
		s.setState(StateConnected)
		return nil
	}

	s.setState(StateConnecting)
	err = retry.Do(ctx, s.cfg.ConnectAttempts, s.cfg.ConnectDelay, func(ctx context.Context) error {
		if err := s.transport.Connect(ctx); err != nil {
			return err
		}
		// Some stacks report success before the link is actually up.
		if !s.transport.Connected() {
			return errors.New("link did not come up after connect")
		}
		return nil
	})
	if err != nil {
		s.setState(StateDisconnected)
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return domain.NewTimeoutError("connection", err)
		}
		return domain.NewConnectionError(s.cfg.ConnectAttempts, err)
	}

	s.setState(StateConnected)
	return nil
}

// Write sends one fully composed byte stream to the printer. The session is
// Busy for the duration; the physical write is bounded by WriteTimeout,
// which is reported as a timeout rather than a connection failure because
// the device may still complete the job.
func (s *PrinterSession) Write(ctx context.Context, data []byte) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	if err := s.ensureReadyLocked(ctx); err != nil {
		return err
	}

	s.setState(StateBusy)

	wctx, cancel := context.WithTimeout(ctx, s.cfg.WriteTimeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		_, err := s.transport.Write(wctx, data)
		done <- err
	}()

	select {
	case <-wctx.Done():
		// Closing the transport unblocks the writer goroutine.
		s.transport.Close()
		s.setState(StateDisconnected)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return domain.NewTimeoutError("write", wctx.Err())
	case err := <-done:
		if err != nil {
			s.transport.Close()
			s.setState(StateDisconnected)
			return domain.NewLinkLostError(err)
		}
	}

	s.setState(StateConnected)
	return nil
}
