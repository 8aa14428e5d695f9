package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEngines(t *testing.T) {
	little := GetLittleEndianEngine()
	big := GetBigEndianEngine()

	require.Equal(t, binary.LittleEndian, little)
	require.Equal(t, binary.BigEndian, big)

	buf := make([]byte, 4)
	little.PutUint32(buf, 0x01020304)
	require.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, buf)

	big.PutUint32(buf, 0x01020304)
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, buf)

	require.Equal(t, []byte{0x00, 0x01}, big.AppendUint16(nil, 1))
	require.Equal(t, []byte{0x01, 0x00}, little.AppendUint16(nil, 1))
}

func TestEngines_Uint64(t *testing.T) {
	const v = uint64(0x0102030405060708)
	for _, engine := range []EndianEngine{GetLittleEndianEngine(), GetBigEndianEngine()} {
		buf := engine.AppendUint64(nil, v)
		require.Len(t, buf, 8)
		require.Equal(t, v, engine.Uint64(buf))
	}
}
