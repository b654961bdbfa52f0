package escpos

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRCodeCommandGroup(t *testing.T) {
	payload := "https://track.sendy.app/p/PKG-AB12"
	cmds, err := QRCode(payload, QRModuleMedium)
	require.NoError(t, err)
	require.Len(t, cmds, 5)

	data, err := Marshal(cmds)
	require.NoError(t, err)

	// Model 2 selection.
	assert.Equal(t, []byte{0x1D, '(', 'k', 4, 0, 49, 65, 50, 0}, data[:9])
	// Module size.
	assert.Equal(t, []byte{0x1D, '(', 'k', 3, 0, 49, 67, 4}, data[9:17])
	// Error correction level M.
	assert.Equal(t, []byte{0x1D, '(', 'k', 3, 0, 49, 69, 49}, data[17:25])
	// Store step carries the payload verbatim.
	assert.Contains(t, string(data), payload)
	// Print trigger closes the group.
	assert.Equal(t, []byte{0x1D, '(', 'k', 3, 0, 49, 81, 48}, data[len(data)-8:])
}

// The store step's length field must equal len(payload)+3 after
// reassembling the low and high bytes.
func TestQRCodeStoreLengthRoundTrip(t *testing.T) {
	for _, n := range []int{1, 42, 252, 253, 300, 624} {
		payload := strings.Repeat("x", n)
		cmds, err := QRCode(payload, QRModuleMedium)
		require.NoError(t, err)

		data, err := Marshal(cmds)
		require.NoError(t, err)

		// Locate the store step: GS ( k pL pH 49 80 48.
		idx := strings.Index(string(data), string([]byte{49, 80, 48})) - 2
		require.GreaterOrEqual(t, idx, 0)
		pL, pH := int(data[idx]), int(data[idx+1])
		assert.Equal(t, n+3, pL|pH<<8, "payload length %d", n)
	}
}

func TestQRCodeCapacityBound(t *testing.T) {
	cases := []struct {
		module   byte
		capacity int
	}{
		{QRModuleSmall, 1125},
		{QRModuleMedium, 624},
		{QRModuleLarge, 251},
	}

	for _, tc := range cases {
		atBound := strings.Repeat("x", tc.capacity)
		_, err := QRCode(atBound, tc.module)
		assert.NoError(t, err, "module %d at capacity", tc.module)

		_, err = QRCode(atBound+"x", tc.module)
		assert.Error(t, err, "module %d over capacity", tc.module)
	}
}

func TestQRCodeRejectsEmptyPayload(t *testing.T) {
	_, err := QRCode("", QRModuleSmall)
	assert.Error(t, err)
}

func TestQRCodeRejectsUnknownModuleSize(t *testing.T) {
	_, err := QRCode("data", 9)
	assert.Error(t, err)
}
