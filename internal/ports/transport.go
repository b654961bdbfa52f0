package ports

import "context"

// Port: the connection-oriented short-range link to one physical printer.
// Raw protocol bytes go over it with no higher-level envelope. A Transport
// is bound to a single device address; the session layer serializes access.
type Transport interface {
	// AdapterEnabled reports whether the local radio adapter is usable at
	// all. When false, connecting is pointless until it is re-enabled
	// outside this process.
	AdapterEnabled() bool

	// Connect establishes the link. Safe to call when already connected.
	Connect(ctx context.Context) error

	// Connected reports the current link state.
	Connected() bool

	// Write sends raw bytes over the established link.
	Write(ctx context.Context, data []byte) (int, error)

	// Close tears the link down.
	Close() error
}
