package space

import (
	"fmt"
	"io"
	"strings"
)

// State is one opaque state value. The concrete representation belongs to
// the Space that allocated it; callers treat states as handles and never
// inspect them directly.
type State interface{}

// Sampler produces state values by filling a caller-allocated state.
type Sampler interface {
	// SampleUniform overwrites s with a uniformly drawn state.
	SampleUniform(s State)
}

// SamplerAllocator builds a sampler for the given space. Allocators returned
// by storage bind the sampler to previously stored states and may refuse
// spaces whose signature does not match the stored data.
type SamplerAllocator func(Space) (Sampler, error)

// Space describes a state space: a fixed-width binary encoding for its
// states plus allocation, sampling and printing primitives. Implementations
// must keep SerializationLength constant for the lifetime of the space.
type Space interface {
	// Name identifies the space in diagnostics.
	Name() string

	// Signature returns the structural signature of the space. Two spaces
	// can exchange serialized states iff their signatures are equal.
	Signature() Signature

	// SerializationLength is the exact number of bytes Serialize writes
	// for one state.
	SerializationLength() int

	// Serialize writes s into dst, which must be at least
	// SerializationLength bytes long.
	Serialize(dst []byte, s State)

	// Deserialize overwrites s from src, which must hold at least
	// SerializationLength bytes.
	Deserialize(s State, src []byte)

	// Alloc returns a new zero state owned by the caller.
	Alloc() State

	// Free releases a state previously returned by Alloc.
	Free(s State)

	// Copy overwrites dst with the value of src.
	Copy(dst, src State)

	// NewSampler returns a fresh uniform sampler for this space.
	NewSampler() Sampler

	// Print writes a one-line human-readable form of s to w.
	Print(w io.Writer, s State)
}

// Signature is the structural signature of a state space. Element 0 holds
// the number of elements that follow; the remaining elements encode the
// composition of the space (type tags, dimensions). The leading count is
// part of the on-disk representation and must be preserved verbatim.
type Signature []int32

// NewSignature builds a signature from its payload elements, prepending
// the element count.
func NewSignature(elems ...int32) Signature {
	sig := make(Signature, 0, len(elems)+1)
	sig = append(sig, int32(len(elems)))
	return append(sig, elems...)
}

// Equal reports whether two signatures match element-wise.
func (s Signature) Equal(other Signature) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// String renders the signature as space-separated integers for diagnostics.
func (s Signature) String() string {
	parts := make([]string, len(s))
	for i, v := range s {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(parts, " ")
}

// Type tags used in signatures.
const (
	TypeRealVector int32 = 1
	TypeSO2        int32 = 2
)
