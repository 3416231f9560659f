package codec

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/waltzrobotics/statebank/pkg/space"
)

// Marker is the fixed constant every archive starts with (spells "OMPL"
// when read as little-endian ASCII).
const Marker uint32 = 0x4C504D4F

// maxSignatureLen bounds the signature length accepted from an archive so a
// corrupt length field cannot drive a huge allocation.
const maxSignatureLen = 1 << 16

// Header is the validated preamble of an archive: the signature of the
// space that wrote it, the number of serialized states that follow, and the
// per-state metadata size. MetadataSize is reserved; this package always
// writes it as 0 and skips any nonzero metadata on load.
type Header struct {
	Signature    space.Signature
	StateCount   uint64
	MetadataSize uint64
}

// WriteHeader emits the archive preamble: marker, the full signature slice
// as one contiguous block (the leading element count included), state
// count, and a zero metadata size. The header is encoded into a single
// buffer and issued as one write.
func WriteHeader(w io.Writer, sig space.Signature, count uint64) error {
	buf := make([]byte, 4+4*len(sig)+16)
	binary.LittleEndian.PutUint32(buf[0:], Marker)
	off := 4
	for _, v := range sig {
		binary.LittleEndian.PutUint32(buf[off:], uint32(v))
		off += 4
	}
	binary.LittleEndian.PutUint64(buf[off:], count)
	binary.LittleEndian.PutUint64(buf[off+8:], 0)
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// ReadHeader reads and validates the archive preamble against the current
// signature of the space that will deserialize the body. Validation fails
// closed: the marker is checked before the signature, the signature before
// any length fields, and no body byte is consumed. The stored length field
// is cross-checked against sig[0] rather than trusted on its own.
func ReadHeader(r *bufio.Reader, sig space.Signature) (*Header, error) {
	var marker [4]byte
	if _, err := io.ReadFull(r, marker[:]); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: empty stream", ErrUnavailable)
		}
		return nil, fmt.Errorf("%w: reading marker: %v", ErrTruncated, err)
	}
	if m := binary.LittleEndian.Uint32(marker[:]); m != Marker {
		return nil, fmt.Errorf("%w: found 0x%08X, want 0x%08X", ErrBadMagic, m, Marker)
	}

	length, err := readInt32(r)
	if err != nil {
		return nil, fmt.Errorf("%w: reading signature length: %v", ErrSignatureMismatch, err)
	}
	if length != sig[0] {
		return nil, fmt.Errorf("%w: stored signature has %d elements, space declares %d",
			ErrSignatureMismatch, length, sig[0])
	}
	for i := int32(0); i < length; i++ {
		v, err := readInt32(r)
		if err != nil {
			return nil, fmt.Errorf("%w: reading signature element %d: %v", ErrSignatureMismatch, i, err)
		}
		if v != sig[i+1] {
			return nil, fmt.Errorf("%w: element %d is %d, space has %d",
				ErrSignatureMismatch, i, v, sig[i+1])
		}
	}

	count, err := readUint64(r)
	if err != nil {
		return nil, fmt.Errorf("%w: expected state count: %v", ErrTruncated, err)
	}
	meta, err := readUint64(r)
	if err != nil {
		return nil, fmt.Errorf("%w: expected metadata size: %v", ErrTruncated, err)
	}
	if count > 0 {
		if _, err := r.Peek(1); err != nil {
			return nil, fmt.Errorf("%w: expected state data", ErrTruncated)
		}
	}

	stored := make(space.Signature, len(sig))
	copy(stored, sig)
	return &Header{Signature: stored, StateCount: count, MetadataSize: meta}, nil
}

// InspectHeader reads an archive preamble without a target space, trusting
// the stored length field. It is a diagnostic path for inspection tooling;
// loading states still goes through ReadHeader's cross-check.
func InspectHeader(r *bufio.Reader) (*Header, error) {
	var marker [4]byte
	if _, err := io.ReadFull(r, marker[:]); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: empty stream", ErrUnavailable)
		}
		return nil, fmt.Errorf("%w: reading marker: %v", ErrTruncated, err)
	}
	if m := binary.LittleEndian.Uint32(marker[:]); m != Marker {
		return nil, fmt.Errorf("%w: found 0x%08X, want 0x%08X", ErrBadMagic, m, Marker)
	}

	length, err := readInt32(r)
	if err != nil {
		return nil, fmt.Errorf("%w: reading signature length: %v", ErrTruncated, err)
	}
	if length < 0 || length > maxSignatureLen {
		return nil, fmt.Errorf("%w: implausible signature length %d", ErrTruncated, length)
	}
	sig := make(space.Signature, 0, length+1)
	sig = append(sig, length)
	for i := int32(0); i < length; i++ {
		v, err := readInt32(r)
		if err != nil {
			return nil, fmt.Errorf("%w: reading signature element %d: %v", ErrTruncated, i, err)
		}
		sig = append(sig, v)
	}

	count, err := readUint64(r)
	if err != nil {
		return nil, fmt.Errorf("%w: expected state count: %v", ErrTruncated, err)
	}
	meta, err := readUint64(r)
	if err != nil {
		return nil, fmt.Errorf("%w: expected metadata size: %v", ErrTruncated, err)
	}
	return &Header{Signature: sig, StateCount: count, MetadataSize: meta}, nil
}

func readInt32(r io.Reader) (int32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(buf[:])), nil
}

func readUint64(r io.Reader) (uint64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}
