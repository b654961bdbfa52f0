package domain

// Identity of the paired thermal printer.
// Written once at pairing time (outside this service), read on every print
// and never mutated here. Address is the short-range wireless address the
// transport dials; it also keys the per-printer session.
type PrinterIdentity struct {
	Name    string
	Address string
}

// Reports whether a pairing has been loaded.
func (p PrinterIdentity) Configured() bool {
	return p.Address != ""
}
