package space

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"math/rand"
)

// SO2State holds one planar rotation as an angle in [-π, π).
type SO2State struct {
	Value float64
}

// SO2Space is the space of planar rotations. States serialize to one
// little-endian float64.
type SO2Space struct{}

// NewSO2Space creates a planar rotation space.
func NewSO2Space() *SO2Space {
	return &SO2Space{}
}

func (sp *SO2Space) Name() string {
	return "SO2"
}

func (sp *SO2Space) Signature() Signature {
	return NewSignature(TypeSO2)
}

func (sp *SO2Space) SerializationLength() int {
	return 8
}

func (sp *SO2Space) Serialize(dst []byte, s State) {
	binary.LittleEndian.PutUint64(dst, math.Float64bits(s.(*SO2State).Value))
}

func (sp *SO2Space) Deserialize(s State, src []byte) {
	s.(*SO2State).Value = math.Float64frombits(binary.LittleEndian.Uint64(src))
}

func (sp *SO2Space) Alloc() State {
	return &SO2State{}
}

func (sp *SO2Space) Free(s State) {}

func (sp *SO2Space) Copy(dst, src State) {
	dst.(*SO2State).Value = src.(*SO2State).Value
}

func (sp *SO2Space) NewSampler() Sampler {
	return &so2Sampler{rng: rand.New(rand.NewSource(rand.Int63()))}
}

func (sp *SO2Space) Print(w io.Writer, s State) {
	fmt.Fprintf(w, "SO2State [%g]\n", s.(*SO2State).Value)
}

type so2Sampler struct {
	rng *rand.Rand
}

func (s *so2Sampler) SampleUniform(st State) {
	st.(*SO2State).Value = s.rng.Float64()*2*math.Pi - math.Pi
}
