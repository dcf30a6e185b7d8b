package input

import (
	"net/netip"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	v, err := String("  anything goes  ")
	require.NoError(t, err)
	assert.Equal(t, "  anything goes  ", v)

	v, err = String("")
	require.NoError(t, err)
	assert.Empty(t, v)
}

func TestBool(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
		wantErr  bool
	}{
		{input: "true", expected: true},
		{input: "TRUE", expected: true},
		{input: "1", expected: true},
		{input: "false", expected: false},
		{input: "0", expected: false},
		{input: "yes", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := Bool(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v)
		})
	}
}

func TestInt(t *testing.T) {
	t.Run("int32", func(t *testing.T) {
		v, err := Int[int32]("-12345")
		require.NoError(t, err)
		assert.Equal(t, int32(-12345), v)
	})

	t.Run("int8 overflow", func(t *testing.T) {
		_, err := Int[int8]("200")
		assert.ErrorIs(t, err, strconv.ErrRange)
	})

	t.Run("not a number", func(t *testing.T) {
		_, err := Int[int]("abc")
		assert.ErrorIs(t, err, strconv.ErrSyntax)
	})

	t.Run("surrounding whitespace rejected", func(t *testing.T) {
		_, err := Int[int]("  42  ")
		assert.ErrorIs(t, err, strconv.ErrSyntax)
	})
}

func TestUint(t *testing.T) {
	t.Run("uint8", func(t *testing.T) {
		v, err := Uint[uint8]("7")
		require.NoError(t, err)
		assert.Equal(t, uint8(7), v)
	})

	t.Run("uint8 overflow", func(t *testing.T) {
		_, err := Uint[uint8]("256")
		assert.ErrorIs(t, err, strconv.ErrRange)
	})

	t.Run("negative rejected", func(t *testing.T) {
		_, err := Uint[uint32]("-1")
		assert.Error(t, err)
	})
}

func TestFloat(t *testing.T) {
	v, err := Float[float64]("3.25")
	require.NoError(t, err)
	assert.Equal(t, 3.25, v)

	v32, err := Float[float32]("0.5")
	require.NoError(t, err)
	assert.Equal(t, float32(0.5), v32)

	_, err = Float[float64]("pi")
	assert.Error(t, err)
}

func TestUnmarshal(t *testing.T) {
	t.Run("netip.Addr", func(t *testing.T) {
		addr, err := Unmarshal[netip.Addr]("192.168.1.1")
		require.NoError(t, err)
		assert.Equal(t, netip.MustParseAddr("192.168.1.1"), addr)
	})

	t.Run("invalid text", func(t *testing.T) {
		_, err := Unmarshal[netip.Addr]("not-an-address")
		assert.Error(t, err)
	})
}
