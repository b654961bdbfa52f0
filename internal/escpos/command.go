// Package escpos builds ESC/POS byte streams for thermal receipt printers.
//
// Each printer instruction is a value in a small closed command set; Marshal
// is the single serializer that turns a typed sequence into wire bytes, so
// all length-field arithmetic lives in one audited place.
package escpos

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// Control bytes shared by every command.
const (
	esc byte = 0x1B
	gs  byte = 0x1D
)

// Text alignment (ESC a).
type Alignment byte

const (
	AlignLeft   Alignment = 0
	AlignCenter Alignment = 1
)

// Character size (GS !): low nibble is height multiplier, high nibble width.
type TextSize byte

const (
	SizeNormal       TextSize = 0x00
	SizeDoubleHeight TextSize = 0x01
	SizeDoubleWidth  TextSize = 0x10
	SizeQuad         TextSize = 0x11
)

type cmdKind int

const (
	kindInitialize cmdKind = iota
	kindBold
	kindAlign
	kindSize
	kindFeed
	kindCut
	kindText
	kindQRModel
	kindQRModuleSize
	kindQRErrorCorrection
	kindQRStore
	kindQRPrint
)

// A single printer instruction. Construct values through the package
// functions; the zero Command is not valid.
type Command struct {
	kind cmdKind
	arg  byte
	text string
}

// Initialize resets the printer to its power-on state (ESC @).
func Initialize() Command { return Command{kind: kindInitialize} }

// Bold toggles emphasized printing. Callers bracket a styled run with
// on/off so no style leaks into the next block.
func Bold(on bool) Command { return Command{kind: kindBold, arg: boolToByte(on)} }

// Align sets line justification.
func Align(a Alignment) Command { return Command{kind: kindAlign, arg: byte(a)} }

// Size sets the character size.
func Size(s TextSize) Command { return Command{kind: kindSize, arg: byte(s)} }

// Feed advances the paper n lines (ESC d).
func Feed(n byte) Command { return Command{kind: kindFeed, arg: n} }

// Cut feeds to the cutting position and performs a full cut.
func Cut() Command { return Command{kind: kindCut} }

// Text emits literal text. The serializer transcodes it to CP437 because
// the firmware charset is single-byte; unsupported runes are replaced.
func Text(s string) Command { return Command{kind: kindText, text: s} }

// Marshal serializes a command sequence into the exact bytes sent to the
// printer. It fails rather than emit a stream with a corrupt length field.
func Marshal(cmds []Command) ([]byte, error) {
	out := make([]byte, 0, 64)
	for _, c := range cmds {
		switch c.kind {
		case kindInitialize:
			out = append(out, esc, '@')
		case kindBold:
			out = append(out, esc, 'E', c.arg)
		case kindAlign:
			out = append(out, esc, 'a', c.arg)
		case kindSize:
			out = append(out, gs, '!', c.arg)
		case kindFeed:
			out = append(out, esc, 'd', c.arg)
		case kindCut:
			out = append(out, gs, 'V', 'A', 0x00)
		case kindText:
			encoded, err := encodeText(c.text)
			if err != nil {
				return nil, fmt.Errorf("encode text %q: %w", c.text, err)
			}
			out = append(out, encoded...)
		case kindQRModel:
			// Function 65: select Model 2.
			out = append(out, gs, '(', 'k', 4, 0, 49, 65, 50, 0)
		case kindQRModuleSize:
			// Function 67: module size in dots.
			out = append(out, gs, '(', 'k', 3, 0, 49, 67, c.arg)
		case kindQRErrorCorrection:
			// Function 69: error correction level.
			out = append(out, gs, '(', 'k', 3, 0, 49, 69, c.arg)
		case kindQRStore:
			// Function 80: store symbol data. The length field counts the
			// three function bytes plus the payload and must round-trip.
			n := len(c.text) + 3
			if n > 0xFFFF {
				return nil, fmt.Errorf("qr store length %d exceeds the two-byte length field", n)
			}
			pL := byte(n & 0xFF)
			pH := byte((n >> 8) & 0xFF)
			out = append(out, gs, '(', 'k', pL, pH, 49, 80, 48)
			out = append(out, []byte(c.text)...)
		case kindQRPrint:
			// Function 81: print the stored symbol.
			out = append(out, gs, '(', 'k', 3, 0, 49, 81, 48)
		default:
			return nil, fmt.Errorf("unknown command kind %d", c.kind)
		}
	}
	return out, nil
}

var cp437 = charmap.CodePage437

func encodeText(s string) ([]byte, error) {
	enc := encoding.ReplaceUnsupported(cp437.NewEncoder())
	return enc.Bytes([]byte(s))
}

func boolToByte(b bool) byte {
	if b {
		return 0x01
	}
	return 0x00
}
