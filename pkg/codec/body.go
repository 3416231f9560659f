package codec

import (
	"fmt"
	"io"
	"math"

	"github.com/waltzrobotics/statebank/pkg/space"
)

// ReadBody reads the raw state body that follows a validated header: one
// bulk read of StateCount strides, where each stride is the space's
// serialization length plus the header's metadata size. A zero-length body
// reads nothing and returns nil. A short read fails with ErrTruncated and
// no partial buffer is returned. A stored count whose body length would
// overflow is rejected with ErrTruncated before any allocation, so a forged
// header cannot crash the loader.
func ReadBody(r io.Reader, h *Header, serializationLength int) ([]byte, error) {
	stride := uint64(serializationLength) + h.MetadataSize
	if stride != 0 && h.StateCount > math.MaxUint64/stride {
		return nil, fmt.Errorf("%w: state count %d overflows the body length", ErrTruncated, h.StateCount)
	}
	length := h.StateCount * stride
	if length == 0 {
		return nil, nil
	}
	buf := make([]byte, length)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("%w: want %d body bytes: %v", ErrTruncated, length, err)
	}
	return buf, nil
}

// DecodeBody deserializes every state slot of a body buffer previously
// returned by ReadBody. Each state is freshly allocated by the space; any
// metadata bytes trailing a state inside its stride are skipped, not
// interpreted. The buffer length is assumed validated by ReadBody.
func DecodeBody(buf []byte, h *Header, sp space.Space) []space.State {
	l := sp.SerializationLength()
	stride := l + int(h.MetadataSize)
	states := make([]space.State, 0, h.StateCount)
	for i := uint64(0); i < h.StateCount; i++ {
		off := int(i) * stride
		s := sp.Alloc()
		sp.Deserialize(s, buf[off:off+l])
		states = append(states, s)
	}
	return states
}

// WriteBody serializes every state back-to-back at a fixed stride equal to
// the space's serialization length and issues one bulk write. Metadata is
// never emitted, matching the zero metadata size WriteHeader records.
func WriteBody(w io.Writer, sp space.Space, states []space.State) error {
	l := sp.SerializationLength()
	buf := make([]byte, l*len(states))
	for i, s := range states {
		sp.Serialize(buf[i*l:(i+1)*l], s)
	}
	if len(buf) == 0 {
		return nil
	}
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}
