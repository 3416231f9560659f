package storage

import (
	"fmt"
	"math/rand"

	"github.com/waltzrobotics/statebank/pkg/space"
)

// Errors
var (
	ErrIncompatibleSpace = &SamplerError{"state space signature does not match the stored states"}
	ErrNoStates          = &SamplerError{"no stored states to sample from"}
)

// SamplerError represents a failure to build a sampler over stored states
type SamplerError struct {
	Message string
}

func (e *SamplerError) Error() string {
	return e.Message
}

// PrecomputedSampler draws uniformly from a fixed set of previously stored
// states, copying the chosen state into the caller's state. It holds a
// non-owning view of the states: the collection they came from must outlive
// the sampler, and sampling after the collection is cleared is undefined.
type PrecomputedSampler struct {
	space  space.Space
	states []space.State
	rng    *rand.Rand
}

// NewPrecomputedSampler builds a sampler over the given states. Fails with
// ErrNoStates when there is nothing to draw from.
func NewPrecomputedSampler(sp space.Space, states []space.State) (*PrecomputedSampler, error) {
	if len(states) == 0 {
		return nil, ErrNoStates
	}
	return &PrecomputedSampler{
		space:  sp,
		states: states,
		rng:    rand.New(rand.NewSource(rand.Int63())),
	}, nil
}

// SampleUniform copies a uniformly chosen stored state into s.
func (ps *PrecomputedSampler) SampleUniform(s space.State) {
	ps.space.Copy(s, ps.states[ps.rng.Intn(len(ps.states))])
}

// SamplerAllocator captures the bound space's current signature and returns
// a factory that builds samplers over the stored states. The factory
// recomputes the target space's signature at construction time and fails
// with ErrIncompatibleSpace on any difference, listing both signatures;
// states serialized under one signature cannot be reinterpreted by a space
// with another. On a match the sampler sees exactly the states present in
// the collection at construction time.
func (ss *StateStorage) SamplerAllocator() space.SamplerAllocator {
	expected := ss.space.Signature()
	return func(target space.Space) (space.Sampler, error) {
		sig := target.Signature()
		if !sig.Equal(expected) {
			return nil, fmt.Errorf("%w: stored states have signature [%s] but space %q has signature [%s]",
				ErrIncompatibleSpace, expected, target.Name(), sig)
		}
		return NewPrecomputedSampler(target, ss.states)
	}
}
