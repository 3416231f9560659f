package space

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"math/rand"
	"strconv"
	"strings"
)

// RealVectorState holds one point in R^n.
type RealVectorState struct {
	Values []float64
}

// RealVectorSpace is an n-dimensional Euclidean space with axis-aligned
// bounds. States serialize to n little-endian float64 values.
type RealVectorSpace struct {
	name string
	low  []float64
	high []float64
}

// NewRealVectorSpace creates a space of the given dimension with every axis
// bounded to [low, high].
func NewRealVectorSpace(dimension int, low, high float64) *RealVectorSpace {
	lo := make([]float64, dimension)
	hi := make([]float64, dimension)
	for i := 0; i < dimension; i++ {
		lo[i] = low
		hi[i] = high
	}
	return &RealVectorSpace{
		name: fmt.Sprintf("RealVector%d", dimension),
		low:  lo,
		high: hi,
	}
}

// Dimension returns the number of axes.
func (sp *RealVectorSpace) Dimension() int {
	return len(sp.low)
}

// Bounds returns the lower and upper bound for one axis.
func (sp *RealVectorSpace) Bounds(axis int) (low, high float64) {
	return sp.low[axis], sp.high[axis]
}

// SetBounds replaces the bounds of one axis.
func (sp *RealVectorSpace) SetBounds(axis int, low, high float64) {
	sp.low[axis] = low
	sp.high[axis] = high
}

func (sp *RealVectorSpace) Name() string {
	return sp.name
}

func (sp *RealVectorSpace) Signature() Signature {
	return NewSignature(TypeRealVector, int32(len(sp.low)))
}

func (sp *RealVectorSpace) SerializationLength() int {
	return 8 * len(sp.low)
}

func (sp *RealVectorSpace) Serialize(dst []byte, s State) {
	rv := s.(*RealVectorState)
	for i, v := range rv.Values {
		binary.LittleEndian.PutUint64(dst[8*i:], math.Float64bits(v))
	}
}

func (sp *RealVectorSpace) Deserialize(s State, src []byte) {
	rv := s.(*RealVectorState)
	for i := range rv.Values {
		rv.Values[i] = math.Float64frombits(binary.LittleEndian.Uint64(src[8*i:]))
	}
}

func (sp *RealVectorSpace) Alloc() State {
	return &RealVectorState{Values: make([]float64, len(sp.low))}
}

// Free releases a state. Memory is reclaimed by the garbage collector; the
// method exists so collections can hand back ownership explicitly.
func (sp *RealVectorSpace) Free(s State) {}

func (sp *RealVectorSpace) Copy(dst, src State) {
	copy(dst.(*RealVectorState).Values, src.(*RealVectorState).Values)
}

// NewSampler returns an independent uniform sampler. Seeds come from the
// package-level source so samplers built in the same instant do not share a
// stream.
func (sp *RealVectorSpace) NewSampler() Sampler {
	return &realVectorSampler{
		space: sp,
		rng:   rand.New(rand.NewSource(rand.Int63())),
	}
}

func (sp *RealVectorSpace) Print(w io.Writer, s State) {
	rv := s.(*RealVectorState)
	parts := make([]string, len(rv.Values))
	for i, v := range rv.Values {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	fmt.Fprintf(w, "RealVectorState [%s]\n", strings.Join(parts, " "))
}

type realVectorSampler struct {
	space *RealVectorSpace
	rng   *rand.Rand
}

func (s *realVectorSampler) SampleUniform(st State) {
	rv := st.(*RealVectorState)
	for i := range rv.Values {
		lo, hi := s.space.low[i], s.space.high[i]
		rv.Values[i] = lo + s.rng.Float64()*(hi-lo)
	}
}
