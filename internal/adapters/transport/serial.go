package transport

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"go.bug.st/serial"
)

// serialTransport drives a paired short-range printer through its bound
// serial device node (e.g. /dev/rfcomm0). Thermal printers default to
// 9600 baud, 8N1.
type serialTransport struct {
	device string
	baud   int

	mu   sync.Mutex
	port serial.Port
}

// NewSerial creates a transport for a serial device node. baud of 0 selects
// the common thermal-printer default.
func NewSerial(device string, baud int) *serialTransport {
	if baud == 0 {
		baud = 9600
	}
	return &serialTransport{device: device, baud: baud}
}

// AdapterEnabled reports whether the serial stack is usable. When the radio
// is off the bound device node disappears, so a missing node counts as a
// disabled adapter rather than a connection failure.
func (t *serialTransport) AdapterEnabled() bool {
	if _, err := serial.GetPortsList(); err != nil {
		return false
	}
	_, err := os.Stat(t.device)
	return err == nil
}

func (t *serialTransport) Connect(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.port != nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	mode := &serial.Mode{
		BaudRate: t.baud,
		Parity:   serial.NoParity,
		DataBits: 8,
		StopBits: serial.OneStopBit,
	}

	port, err := serial.Open(t.device, mode)
	if err != nil {
		return fmt.Errorf("open serial device %s: %w", t.device, err)
	}
	port.SetReadTimeout(100 * time.Millisecond)

	t.port = port
	return nil
}

func (t *serialTransport) Connected() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.port != nil
}

func (t *serialTransport) Write(ctx context.Context, data []byte) (int, error) {
	t.mu.Lock()
	port := t.port
	t.mu.Unlock()

	if port == nil {
		return 0, fmt.Errorf("serial device %s is not connected", t.device)
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	n, err := port.Write(data)
	if err != nil {
		// A failed write usually means the link dropped; force a reconnect.
		t.Close()
		return n, fmt.Errorf("write to serial device %s: %w", t.device, err)
	}
	return n, nil
}

func (t *serialTransport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.port == nil {
		return nil
	}
	err := t.port.Close()
	t.port = nil
	return err
}
