// Package storage holds ordered collections of precomputed states and
// persists them as binary archives. A StateStorage is bound to one state
// space for its whole lifetime; states are populated either by uniform
// generation or by loading an archive written for a space with the same
// signature, and can later back a sampler so stored states substitute for
// live sampling.
//
// StateStorage is not safe for concurrent use; callers needing shared
// access must serialize it externally. Load and store are blocking and run
// to completion. StoreFile truncates the target in place with no
// atomic-rename step, so a failed store may leave a partial file behind.
package storage

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/waltzrobotics/statebank/pkg/codec"
	"github.com/waltzrobotics/statebank/pkg/space"
)

// StateStorage is an ordered collection of states owned by one space. Every
// state in the collection was allocated by that space and is freed through
// it on Clear.
type StateStorage struct {
	space  space.Space
	states []space.State
}

// New creates an empty collection bound to the given space.
func New(sp space.Space) *StateStorage {
	return &StateStorage{space: sp}
}

// Space returns the space the collection is bound to.
func (ss *StateStorage) Space() space.Space {
	return ss.space
}

// Add appends a state, taking ownership. The state must have been allocated
// by the collection's space.
func (ss *StateStorage) Add(s space.State) {
	ss.states = append(ss.states, s)
}

// Generate allocates count fresh states, fills each by uniform sampling and
// appends them. Capacity for the new states is reserved up front.
func (ss *StateStorage) Generate(count int) {
	sampler := ss.space.NewSampler()
	if need := len(ss.states) + count; cap(ss.states) < need {
		grown := make([]space.State, len(ss.states), need)
		copy(grown, ss.states)
		ss.states = grown
	}
	for i := 0; i < count; i++ {
		s := ss.space.Alloc()
		sampler.SampleUniform(s)
		ss.Add(s)
	}
}

// Clear frees every owned state through the space and empties the
// collection. Safe to call repeatedly.
func (ss *StateStorage) Clear() {
	for _, s := range ss.states {
		ss.space.Free(s)
	}
	ss.states = nil
}

// Len returns the number of stored states.
func (ss *StateStorage) Len() int {
	return len(ss.states)
}

// States returns the stored states in order. The slice is a read-only view;
// the collection keeps ownership of every state.
func (ss *StateStorage) States() []space.State {
	return ss.states
}

// Print writes the human-readable form of every state, in order.
func (ss *StateStorage) Print(w io.Writer) {
	for _, s := range ss.states {
		ss.space.Print(w, s)
	}
}

// Load clears the collection and repopulates it from an archive stream.
// The header is validated against the bound space's current signature
// before any state is deserialized, and the body is read all-or-nothing:
// on any failure the collection is left empty, never partially populated.
func (ss *StateStorage) Load(r io.Reader) error {
	ss.Clear()
	br := bufio.NewReader(r)

	header, err := codec.ReadHeader(br, ss.space.Signature())
	if err != nil {
		return err
	}
	buf, err := codec.ReadBody(br, header, ss.space.SerializationLength())
	if err != nil {
		return err
	}
	for _, s := range codec.DecodeBody(buf, header, ss.space) {
		ss.Add(s)
	}
	return nil
}

// LoadFile loads an archive from a file. The handle is released on every
// exit path, including validation failures.
func (ss *StateStorage) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %v", codec.ErrUnavailable, err)
	}
	defer f.Close()
	return ss.Load(f)
}

// Store writes the collection as an archive: header first, then every state
// serialized into one contiguous buffer and flushed with a single write.
func (ss *StateStorage) Store(w io.Writer) error {
	if err := codec.WriteHeader(w, ss.space.Signature(), uint64(len(ss.states))); err != nil {
		return err
	}
	return codec.WriteBody(w, ss.space, ss.states)
}

// StoreFile writes the collection to a file, truncating any existing
// content.
func (ss *StateStorage) StoreFile(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("%w: %v", codec.ErrUnavailable, err)
	}
	if err := ss.Store(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
