package codec

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waltzrobotics/statebank/pkg/space"
)

// headerBytes builds a valid serialized header followed by body bytes.
func headerBytes(t *testing.T, sig space.Signature, count uint64, body []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, WriteHeader(&buf, sig, count))
	buf.Write(body)
	return buf.Bytes()
}

func TestWriteHeader_Layout(t *testing.T) {
	sig := space.NewSignature(space.TypeRealVector, 2)

	var buf bytes.Buffer
	require.NoError(t, WriteHeader(&buf, sig, 5))
	data := buf.Bytes()

	// marker(4) + 3 signature ints(12) + count(8) + metadata(8)
	require.Len(t, data, 32)
	assert.Equal(t, Marker, binary.LittleEndian.Uint32(data[0:4]))
	assert.Equal(t, uint32(2), binary.LittleEndian.Uint32(data[4:8]))
	assert.Equal(t, uint32(space.TypeRealVector), binary.LittleEndian.Uint32(data[8:12]))
	assert.Equal(t, uint32(2), binary.LittleEndian.Uint32(data[12:16]))
	assert.Equal(t, uint64(5), binary.LittleEndian.Uint64(data[16:24]))
	assert.Equal(t, uint64(0), binary.LittleEndian.Uint64(data[24:32]))
}

func TestReadHeader_RoundTrip(t *testing.T) {
	sig := space.NewSignature(space.TypeRealVector, 2)
	data := headerBytes(t, sig, 3, make([]byte, 48))

	header, err := ReadHeader(bufio.NewReader(bytes.NewReader(data)), sig)
	require.NoError(t, err)
	assert.Equal(t, sig, header.Signature)
	assert.Equal(t, uint64(3), header.StateCount)
	assert.Equal(t, uint64(0), header.MetadataSize)
}

func TestReadHeader_EmptyStream(t *testing.T) {
	sig := space.NewSignature(space.TypeSO2)

	_, err := ReadHeader(bufio.NewReader(bytes.NewReader(nil)), sig)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestReadHeader_BadMagic(t *testing.T) {
	sig := space.NewSignature(space.TypeRealVector, 2)
	data := headerBytes(t, sig, 1, make([]byte, 16))
	data[0] ^= 0xFF

	_, err := ReadHeader(bufio.NewReader(bytes.NewReader(data)), sig)
	assert.ErrorIs(t, err, ErrBadMagic)
}

func TestReadHeader_PartialMarker(t *testing.T) {
	sig := space.NewSignature(space.TypeSO2)
	data := headerBytes(t, sig, 0, nil)

	_, err := ReadHeader(bufio.NewReader(bytes.NewReader(data[:2])), sig)
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestReadHeader_SignatureLengthMismatch(t *testing.T) {
	stored := space.NewSignature(space.TypeSO2)            // 1 element
	current := space.NewSignature(space.TypeRealVector, 2) // 2 elements
	data := headerBytes(t, stored, 1, make([]byte, 8))

	_, err := ReadHeader(bufio.NewReader(bytes.NewReader(data)), current)
	assert.ErrorIs(t, err, ErrSignatureMismatch)
}

func TestReadHeader_SignatureElementMismatch(t *testing.T) {
	stored := space.NewSignature(space.TypeRealVector, 2)
	current := space.NewSignature(space.TypeRealVector, 3)
	data := headerBytes(t, stored, 1, make([]byte, 16))

	_, err := ReadHeader(bufio.NewReader(bytes.NewReader(data)), current)
	assert.ErrorIs(t, err, ErrSignatureMismatch)
}

func TestReadHeader_ShortSignature(t *testing.T) {
	sig := space.NewSignature(space.TypeRealVector, 2)
	data := headerBytes(t, sig, 0, nil)

	// Cut inside the signature block.
	_, err := ReadHeader(bufio.NewReader(bytes.NewReader(data[:10])), sig)
	assert.ErrorIs(t, err, ErrSignatureMismatch)
}

func TestReadHeader_MissingCounts(t *testing.T) {
	sig := space.NewSignature(space.TypeRealVector, 2)
	data := headerBytes(t, sig, 0, nil)

	t.Run("missing state count", func(t *testing.T) {
		_, err := ReadHeader(bufio.NewReader(bytes.NewReader(data[:16])), sig)
		assert.ErrorIs(t, err, ErrTruncated)
	})

	t.Run("missing metadata size", func(t *testing.T) {
		_, err := ReadHeader(bufio.NewReader(bytes.NewReader(data[:24])), sig)
		assert.ErrorIs(t, err, ErrTruncated)
	})
}

func TestReadHeader_DeclaredStatesButNoBody(t *testing.T) {
	sig := space.NewSignature(space.TypeRealVector, 2)
	data := headerBytes(t, sig, 4, nil)

	_, err := ReadHeader(bufio.NewReader(bytes.NewReader(data)), sig)
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestReadHeader_ZeroStatesNoBody(t *testing.T) {
	sig := space.NewSignature(space.TypeRealVector, 2)
	data := headerBytes(t, sig, 0, nil)

	header, err := ReadHeader(bufio.NewReader(bytes.NewReader(data)), sig)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), header.StateCount)
}

func TestInspectHeader(t *testing.T) {
	sig := space.NewSignature(space.TypeRealVector, 7)
	data := headerBytes(t, sig, 9, make([]byte, 9*56))

	header, err := InspectHeader(bufio.NewReader(bytes.NewReader(data)))
	require.NoError(t, err)
	assert.Equal(t, sig, header.Signature)
	assert.Equal(t, uint64(9), header.StateCount)
	assert.Equal(t, uint64(0), header.MetadataSize)
}

func TestInspectHeader_BadMagic(t *testing.T) {
	data := headerBytes(t, space.NewSignature(space.TypeSO2), 0, nil)
	data[3] ^= 0x01

	_, err := InspectHeader(bufio.NewReader(bytes.NewReader(data)))
	assert.ErrorIs(t, err, ErrBadMagic)
}

func TestInspectHeader_ImplausibleSignatureLength(t *testing.T) {
	var buf bytes.Buffer
	b := make([]byte, 8)
	binary.LittleEndian.PutUint32(b[0:], Marker)
	binary.LittleEndian.PutUint32(b[4:], 0xFFFFFFFF) // length -1
	buf.Write(b)

	_, err := InspectHeader(bufio.NewReader(bytes.NewReader(buf.Bytes())))
	assert.ErrorIs(t, err, ErrTruncated)
}
