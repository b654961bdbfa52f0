package escpos

import "fmt"

// QR module sizes in dots, one per label tier. Larger modules scan more
// reliably but leave room for fewer of them across the 384-dot print width.
const (
	QRModuleSmall  byte = 3
	QRModuleMedium byte = 4
	QRModuleLarge  byte = 6
)

// Error correction level M (15% recovery), function 69 operand.
const qrErrorCorrectionM byte = 49

// Byte-mode capacity at error correction level M for the largest Model 2
// symbol that still fits the 384-dot printable width at each module size
// (versions 27, 19 and 11 respectively).
var qrCapacityByModule = map[byte]int{
	QRModuleSmall:  1125,
	QRModuleMedium: 624,
	QRModuleLarge:  251,
}

// QRCapacity returns the maximum payload length in bytes for a module size.
func QRCapacity(moduleSize byte) (int, error) {
	capacity, ok := qrCapacityByModule[moduleSize]
	if !ok {
		return 0, fmt.Errorf("unsupported qr module size %d", moduleSize)
	}
	return capacity, nil
}

// QRCode builds the five-step command group that stores and prints a Model 2
// QR symbol: select model, set module size, set error correction, store the
// data, trigger the print.
//
// The payload is validated against the symbol capacity for the module size
// before any command is built; an oversized payload is an error, never a
// truncated or corrupt store command.
func QRCode(payload string, moduleSize byte) ([]Command, error) {
	capacity, err := QRCapacity(moduleSize)
	if err != nil {
		return nil, err
	}
	if payload == "" {
		return nil, fmt.Errorf("qr payload is empty")
	}
	if len(payload) > capacity {
		return nil, fmt.Errorf("qr payload is %d bytes, exceeds %d-byte capacity at module size %d",
			len(payload), capacity, moduleSize)
	}

	return []Command{
		{kind: kindQRModel},
		{kind: kindQRModuleSize, arg: moduleSize},
		{kind: kindQRErrorCorrection, arg: qrErrorCorrectionM},
		{kind: kindQRStore, text: payload},
		{kind: kindQRPrint},
	}, nil
}
