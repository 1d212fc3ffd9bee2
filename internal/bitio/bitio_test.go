package bitio

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSentinelWriterFramesAndPads(t *testing.T) {
	w := NewSentinelWriter()
	// "aaaabbc" with table {a:"0", b:"10", c:"11"} -> 0 0 0 0 10 10 11
	for _, code := range []string{"0", "0", "0", "0", "10", "10", "11"} {
		require.NoError(t, w.WriteCode(code))
	}
	payload, err := w.Bytes()
	require.NoError(t, err)

	// sentinel(1) + 0000101011 (10 bits) = 11 bits, padded to 16 -> 2 bytes
	require.Len(t, payload, 2)
	require.Equal(t, byte(0b10000101), payload[0])
	require.Equal(t, byte(0b01100000), payload[1])
}

func TestSentinelReaderRoundTrips(t *testing.T) {
	w := NewSentinelWriter()
	codes := []string{"0", "10", "110", "111"}
	for _, c := range codes {
		require.NoError(t, w.WriteCode(c))
	}
	payload, err := w.Bytes()
	require.NoError(t, err)

	r := NewSentinelReader(payload)
	require.NoError(t, r.DiscardSentinel())

	table := map[string]rune{"0": 'a', "10": 'b', "110": 'c', "111": 'd'}
	var got []rune
	window := ""
	for len(got) < len(codes) {
		bit, err := r.ReadBit()
		require.NoError(t, err)
		window += string(bit)
		if symbol, ok := table[window]; ok {
			got = append(got, symbol)
			window = ""
		}
	}
	require.Equal(t, []rune{'a', 'b', 'c', 'd'}, got)
}

func TestSentinelWriterEmptyStillFramesSentinel(t *testing.T) {
	w := NewSentinelWriter()
	payload, err := w.Bytes()
	require.NoError(t, err)
	require.Len(t, payload, 1)
	require.Equal(t, byte(0b10000000), payload[0])
}
