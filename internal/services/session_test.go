package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"courier-print-service/internal/domain"
	"courier-print-service/internal/ports"
)

type stubIdentityStore struct {
	identity domain.PrinterIdentity
	err      error
}

func (s *stubIdentityStore) Load(ctx context.Context) (domain.PrinterIdentity, error) {
	if s.err != nil {
		return domain.PrinterIdentity{}, s.err
	}
	return s.identity, nil
}

// fakeTransport scripts adapter/connect/write behavior for session tests.
type fakeTransport struct {
	mu           sync.Mutex
	adapterOff   bool
	failConnects int
	connectCalls int
	connected    bool
	writeErr     error
	blockWrites  bool
	writes       [][]byte
}

func (t *fakeTransport) AdapterEnabled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return !t.adapterOff
}

func (t *fakeTransport) Connect(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.connectCalls++
	if t.connectCalls <= t.failConnects {
		return errors.New("connect refused")
	}
	t.connected = true
	return nil
}

func (t *fakeTransport) Connected() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.connected
}

func (t *fakeTransport) Write(ctx context.Context, data []byte) (int, error) {
	if t.blockWrites {
		<-ctx.Done()
		return 0, ctx.Err()
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.writeErr != nil {
		return 0, t.writeErr
	}
	t.writes = append(t.writes, append([]byte(nil), data...))
	return len(data), nil
}

func (t *fakeTransport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.connected = false
	return nil
}

func testSessionConfig() SessionConfig {
	return SessionConfig{
		ConnectAttempts: 3,
		ConnectDelay:    time.Millisecond,
		WriteTimeout:    50 * time.Millisecond,
	}
}

func pairedStore() *stubIdentityStore {
	return &stubIdentityStore{
		identity: domain.PrinterIdentity{Name: "BlueTooth Printer 58", Address: "66:22:B1:9E:30:11"},
	}
}

func TestEnsureReadyWithoutPairing(t *testing.T) {
	session := NewPrinterSession(&stubIdentityStore{err: ports.ErrNoPairing}, &fakeTransport{}, testSessionConfig())

	err := session.EnsureReady(context.Background())
	if domain.CodeOf(err) != domain.CodeConfiguration {
		t.Fatalf("code = %q, want %q", domain.CodeOf(err), domain.CodeConfiguration)
	}
	if session.State() != StateUnconfigured {
		t.Fatalf("state = %v, want %v", session.State(), StateUnconfigured)
	}
}

func TestEnsureReadyAdapterOff(t *testing.T) {
	transport := &fakeTransport{adapterOff: true}
	session := NewPrinterSession(pairedStore(), transport, testSessionConfig())

	err := session.EnsureReady(context.Background())
	if domain.CodeOf(err) != domain.CodeAdapterOff {
		t.Fatalf("code = %q, want %q", domain.CodeOf(err), domain.CodeAdapterOff)
	}
	if session.State() != StateAdapterOff {
		t.Fatalf("state = %v, want %v", session.State(), StateAdapterOff)
	}
	if transport.connectCalls != 0 {
		t.Fatalf("connectCalls = %d, want 0 (no connect with the radio off)", transport.connectCalls)
	}
}

func TestEnsureReadySucceedsOnThirdAttempt(t *testing.T) {
	transport := &fakeTransport{failConnects: 2}
	session := NewPrinterSession(pairedStore(), transport, testSessionConfig())

	if err := session.EnsureReady(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if transport.connectCalls != 3 {
		t.Fatalf("connectCalls = %d, want exactly 3", transport.connectCalls)
	}
	if session.State() != StateConnected {
		t.Fatalf("state = %v, want %v", session.State(), StateConnected)
	}
}

func TestEnsureReadyExhaustsBoundedAttempts(t *testing.T) {
	transport := &fakeTransport{failConnects: 100}
	session := NewPrinterSession(pairedStore(), transport, testSessionConfig())

	err := session.EnsureReady(context.Background())
	if domain.CodeOf(err) != domain.CodeConnection {
		t.Fatalf("code = %q, want %q", domain.CodeOf(err), domain.CodeConnection)
	}
	if transport.connectCalls != 3 {
		t.Fatalf("connectCalls = %d, want exactly 3 (never unbounded)", transport.connectCalls)
	}
	if session.State() != StateDisconnected {
		t.Fatalf("state = %v, want %v", session.State(), StateDisconnected)
	}
}

func TestWriteDeliversBytes(t *testing.T) {
	transport := &fakeTransport{}
	session := NewPrinterSession(pairedStore(), transport, testSessionConfig())

	payload := []byte{0x1B, '@', 'h', 'i'}
	if err := session.Write(context.Background(), payload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(transport.writes) != 1 || string(transport.writes[0]) != string(payload) {
		t.Fatalf("writes = %v, want one exact payload", transport.writes)
	}
	if session.State() != StateConnected {
		t.Fatalf("state = %v, want %v after a completed write", session.State(), StateConnected)
	}
}

func TestWriteTimeoutIsDistinctFromConnectionFailure(t *testing.T) {
	transport := &fakeTransport{blockWrites: true}
	session := NewPrinterSession(pairedStore(), transport, testSessionConfig())

	err := session.Write(context.Background(), []byte("data"))
	if domain.CodeOf(err) != domain.CodeTimeout {
		t.Fatalf("code = %q, want %q", domain.CodeOf(err), domain.CodeTimeout)
	}
	if session.State() != StateDisconnected {
		t.Fatalf("state = %v, want %v", session.State(), StateDisconnected)
	}
}

func TestWriteLinkLossSurfacesAsConnectionError(t *testing.T) {
	transport := &fakeTransport{writeErr: errors.New("broken pipe")}
	session := NewPrinterSession(pairedStore(), transport, testSessionConfig())

	err := session.Write(context.Background(), []byte("data"))
	if domain.CodeOf(err) != domain.CodeConnection {
		t.Fatalf("code = %q, want %q", domain.CodeOf(err), domain.CodeConnection)
	}
}

func TestCancellationLeavesSessionDisconnected(t *testing.T) {
	transport := &fakeTransport{blockWrites: true}
	session := NewPrinterSession(pairedStore(), transport, testSessionConfig())

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(5 * time.Millisecond)
		cancel()
	}()

	err := session.Write(ctx, []byte("data"))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if session.State() != StateDisconnected {
		t.Fatalf("state = %v, want %v (never Busy after cancel)", session.State(), StateDisconnected)
	}
}
