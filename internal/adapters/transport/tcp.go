package transport

import (
	"context"
	"fmt"
	"net"
	"sync"
	"time"
)

// tcpTransport reaches printers exposed over a TCP serial bridge
// (host:port, conventionally port 9100).
type tcpTransport struct {
	address        string
	connectTimeout time.Duration

	mu   sync.Mutex
	conn net.Conn
}

func NewTCP(address string) *tcpTransport {
	return &tcpTransport{
		address:        address,
		connectTimeout: 5 * time.Second,
	}
}

// The network stack has no radio to switch off.
func (t *tcpTransport) AdapterEnabled() bool { return true }

func (t *tcpTransport) Connect(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.conn != nil {
		return nil
	}

	d := net.Dialer{Timeout: t.connectTimeout}
	conn, err := d.DialContext(ctx, "tcp", t.address)
	if err != nil {
		return fmt.Errorf("dial %s: %w", t.address, err)
	}

	t.conn = conn
	return nil
}

func (t *tcpTransport) Connected() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.conn != nil
}

func (t *tcpTransport) Write(ctx context.Context, data []byte) (int, error) {
	t.mu.Lock()
	conn := t.conn
	t.mu.Unlock()

	if conn == nil {
		return 0, fmt.Errorf("printer %s is not connected", t.address)
	}

	// Mirror the context deadline onto the socket so a stuck peripheral
	// cannot block the write forever.
	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetWriteDeadline(deadline); err != nil {
			return 0, fmt.Errorf("set write deadline: %w", err)
		}
	}

	n, err := conn.Write(data)
	if err != nil {
		t.Close()
		return n, fmt.Errorf("write to %s: %w", t.address, err)
	}
	return n, nil
}

func (t *tcpTransport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.conn == nil {
		return nil
	}
	err := t.conn.Close()
	t.conn = nil
	return err
}
