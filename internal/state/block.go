package state

import (
	"maps"

	"github.com/gogpu/nine/d3d9"
)

// unit is the sampler and combiner state of one texture unit.
type unit struct {
	sampler sampler
	stage   stage
}

// Block holds the render states and texture units consumed by one pipeline
// stage.
type Block struct {
	rs    map[d3d9.RenderStateType]uint32
	units []unit
}

func newBlock(defaults map[d3d9.RenderStateType]uint32, units int) Block {
	b := Block{rs: maps.Clone(defaults), units: make([]unit, units)}
	for i := range b.units {
		b.units[i] = unit{sampler: defaultSampler(), stage: defaultStage(uint32(i))}
	}
	return b
}

func (b *Block) clone() Block {
	return Block{rs: maps.Clone(b.rs), units: append([]unit(nil), b.units...)}
}

// SetRenderState stores v if the block owns state k.
func (b *Block) SetRenderState(k d3d9.RenderStateType, v uint32) bool {
	if _, ok := b.rs[k]; !ok {
		return false
	}
	b.rs[k] = v
	return true
}

// RenderState returns the value of k if the block owns it.
func (b *Block) RenderState(k d3d9.RenderStateType) (uint32, bool) {
	v, ok := b.rs[k]
	return v, ok
}

// Units returns the number of texture units of the block.
func (b *Block) Units() int { return len(b.units) }

// SetSamplerState sets sampler state t of unit i.
func (b *Block) SetSamplerState(i uint32, t d3d9.SamplerStateType, v uint32) bool {
	if int(i) >= len(b.units) || t == 0 || t > maxSamplerState {
		return false
	}
	b.units[i].sampler[t] = v
	return true
}

// SamplerState returns sampler state t of unit i.
func (b *Block) SamplerState(i uint32, t d3d9.SamplerStateType) (uint32, bool) {
	if int(i) >= len(b.units) || t == 0 || t > maxSamplerState {
		return 0, false
	}
	return b.units[i].sampler[t], true
}

// SetTextureStageState sets combiner state t of unit i.
func (b *Block) SetTextureStageState(i uint32, t d3d9.TextureStageStateType, v uint32) bool {
	if int(i) >= len(b.units) || t == 0 || t > maxStageState {
		return false
	}
	b.units[i].stage[t] = v
	return true
}

// TextureStageState returns combiner state t of unit i.
func (b *Block) TextureStageState(i uint32, t d3d9.TextureStageStateType) (uint32, bool) {
	if int(i) >= len(b.units) || t == 0 || t > maxStageState {
		return 0, false
	}
	return b.units[i].stage[t], true
}
