package transport

import (
	"context"
	"fmt"

	"courier-print-service/internal/ports"
)

// nullTransport accepts and discards everything, for environments without
// printer hardware.
type nullTransport struct{ connected bool }

func (t *nullTransport) AdapterEnabled() bool                              { return true }
func (t *nullTransport) Connect(ctx context.Context) error                 { t.connected = true; return nil }
func (t *nullTransport) Connected() bool                                   { return t.connected }
func (t *nullTransport) Write(ctx context.Context, data []byte) (int, error) { return len(data), nil }
func (t *nullTransport) Close() error                                      { t.connected = false; return nil }

// NewFromConfig selects the transport for a printer address.
//
//	kind: "serial", "tcp", or "none"
//	address: device node for serial (e.g. /dev/rfcomm0), host:port for tcp
func NewFromConfig(kind, address string) (ports.Transport, error) {
	switch kind {
	case "serial":
		if address == "" {
			return nil, fmt.Errorf("transport: serial requires a device path")
		}
		return NewSerial(address, 0), nil
	case "tcp":
		if address == "" {
			return nil, fmt.Errorf("transport: tcp requires host:port")
		}
		return NewTCP(address), nil
	case "none", "":
		return &nullTransport{}, nil
	default:
		return nil, fmt.Errorf("transport: unknown kind %q (use serial, tcp, or none)", kind)
	}
}
