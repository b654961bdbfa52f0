package escpos

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMarshalStyleCommands verifies the fixed control-byte fragments.
func TestMarshalStyleCommands(t *testing.T) {
	cases := []struct {
		name string
		cmd  Command
		want []byte
	}{
		{"initialize", Initialize(), []byte{0x1B, '@'}},
		{"bold on", Bold(true), []byte{0x1B, 'E', 0x01}},
		{"bold off", Bold(false), []byte{0x1B, 'E', 0x00}},
		{"align center", Align(AlignCenter), []byte{0x1B, 'a', 0x01}},
		{"align left", Align(AlignLeft), []byte{0x1B, 'a', 0x00}},
		{"size normal", Size(SizeNormal), []byte{0x1D, '!', 0x00}},
		{"size double height", Size(SizeDoubleHeight), []byte{0x1D, '!', 0x01}},
		{"size double width", Size(SizeDoubleWidth), []byte{0x1D, '!', 0x10}},
		{"size quad", Size(SizeQuad), []byte{0x1D, '!', 0x11}},
		{"feed", Feed(3), []byte{0x1B, 'd', 0x03}},
		{"cut", Cut(), []byte{0x1D, 'V', 'A', 0x00}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Marshal([]Command{tc.cmd})
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestMarshalText(t *testing.T) {
	got, err := Marshal([]Command{Text("PARCEL RECEIPT\n")})
	require.NoError(t, err)
	assert.Equal(t, []byte("PARCEL RECEIPT\n"), got)
}

// Runes outside CP437 must be replaced, not emitted as multibyte UTF-8.
func TestMarshalTextReplacesUnsupportedRunes(t *testing.T) {
	got, err := Marshal([]Command{Text("A→B")})
	require.NoError(t, err)
	assert.Len(t, got, 3)
	assert.Equal(t, byte('A'), got[0])
	assert.Equal(t, byte('B'), got[2])
}

func TestMarshalSequenceIsConcatenated(t *testing.T) {
	got, err := Marshal([]Command{Bold(true), Text("HI"), Bold(false)})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x1B, 'E', 0x01, 'H', 'I', 0x1B, 'E', 0x00}, got)
}
