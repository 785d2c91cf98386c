package nine

import (
	"github.com/gogpu/nine/d3d9"
	"github.com/gogpu/nine/internal/state"
)

// target returns the store that setters write to: the state block being
// recorded, or the device state.
func (d *Device) target() *state.Store {
	if d.recording != nil {
		return d.recording.store
	}
	return d.state
}

// SetRenderState sets render state k.
func (d *Device) SetRenderState(k d3d9.RenderStateType, v uint32) error {
	if !d.target().SetRenderState(k, v) {
		return invalidCall("SetRenderState", "unknown state", "state", k)
	}
	return nil
}

// RenderState returns render state k.
func (d *Device) RenderState(k d3d9.RenderStateType) (uint32, error) {
	v, ok := d.state.RenderState(k)
	if !ok {
		return 0, invalidCall("RenderState", "unknown state", "state", k)
	}
	return v, nil
}

// SetSamplerState sets state t of sampler s. Samplers 0 to 15 are pixel
// samplers and VertexTextureSampler0 to 3 are vertex samplers.
func (d *Device) SetSamplerState(s uint32, t d3d9.SamplerStateType, v uint32) error {
	if !d.target().SetSamplerState(s, t, v) {
		return invalidCall("SetSamplerState", "unknown sampler or state", "sampler", s, "state", t)
	}
	return nil
}

// SamplerState returns state t of sampler s.
func (d *Device) SamplerState(s uint32, t d3d9.SamplerStateType) (uint32, error) {
	v, ok := d.state.SamplerState(s, t)
	if !ok {
		return 0, invalidCall("SamplerState", "unknown sampler or state", "sampler", s, "state", t)
	}
	return v, nil
}

// SetTextureStageState sets combiner state t of a texture stage.
func (d *Device) SetTextureStageState(stage uint32, t d3d9.TextureStageStateType, v uint32) error {
	if !d.target().SetTextureStageState(stage, t, v) {
		return invalidCall("SetTextureStageState", "unknown stage or state", "stage", stage, "state", t)
	}
	return nil
}

// TextureStageState returns combiner state t of a texture stage.
func (d *Device) TextureStageState(stage uint32, t d3d9.TextureStageStateType) (uint32, error) {
	v, ok := d.state.TextureStageState(stage, t)
	if !ok {
		return 0, invalidCall("TextureStageState", "unknown stage or state", "stage", stage, "state", t)
	}
	return v, nil
}

// SetTexture binds t to sampler s; nil unbinds.
func (d *Device) SetTexture(s uint32, t BaseTexture) error {
	const op = "SetTexture"
	var shared state.Shared
	if t != nil {
		if owner, err := t.Device(); err != nil || owner != d {
			return invalidCall(op, "texture belongs to another device")
		}
		shared = t
	}
	if !d.target().SetTexture(s, shared) {
		return invalidCall(op, "unknown sampler", "sampler", s)
	}
	return nil
}

// Texture returns the texture bound to sampler s, or nil.
func (d *Device) Texture(s uint32) (BaseTexture, error) {
	t, ok := d.state.Texture(s)
	if !ok {
		return nil, invalidCall("Texture", "unknown sampler", "sampler", s)
	}
	if t == nil {
		return nil, nil
	}
	t.AddRef()
	return t.(BaseTexture), nil
}

// SetTransform sets matrix t.
func (d *Device) SetTransform(t d3d9.TransformStateType, m d3d9.Matrix) error {
	if !d.target().SetTransform(t, m) {
		return invalidCall("SetTransform", "unknown transform", "transform", t)
	}
	return nil
}

// Transform returns matrix t; matrices never set are the identity.
func (d *Device) Transform(t d3d9.TransformStateType) (d3d9.Matrix, error) {
	m, ok := d.state.Transform(t)
	if !ok {
		return d3d9.Matrix{}, invalidCall("Transform", "unknown transform", "transform", t)
	}
	return m, nil
}

// MultiplyTransform premultiplies matrix t by m.
func (d *Device) MultiplyTransform(t d3d9.TransformStateType, m d3d9.Matrix) error {
	if !d.target().MultiplyTransform(t, m) {
		return invalidCall("MultiplyTransform", "unknown transform", "transform", t)
	}
	return nil
}

// SetMaterial sets the lighting material.
func (d *Device) SetMaterial(m d3d9.Material) error {
	d.target().SetMaterial(m)
	return nil
}

// Material returns the lighting material.
func (d *Device) Material() d3d9.Material { return d.state.Material() }

// SetViewport sets the viewport. It must lie inside render target 0.
func (d *Device) SetViewport(vp d3d9.Viewport) error {
	if err := d.live("SetViewport"); err != nil {
		return err
	}
	if !d.fitsTarget(vp) {
		return invalidCall("SetViewport", "viewport outside render target 0", "viewport", vp)
	}
	d.target().SetViewport(vp)
	if d.recording == nil {
		d.applyViewport()
	}
	return nil
}

func (d *Device) fitsTarget(vp d3d9.Viewport) bool {
	w, h := d.renderTargets[0].size()
	return uint64(vp.X)+uint64(vp.Width) <= uint64(w) && uint64(vp.Y)+uint64(vp.Height) <= uint64(h)
}

// clampViewport shrinks the device viewport to render target 0.
func (d *Device) clampViewport() {
	vp := d.state.Viewport()
	if d.fitsTarget(vp) {
		return
	}
	w, h := d.renderTargets[0].size()
	vp.X, vp.Y = min(vp.X, w), min(vp.Y, h)
	vp.Width, vp.Height = min(vp.Width, w-vp.X), min(vp.Height, h-vp.Y)
	Logger().Debug("nine: viewport clamped to render target 0", "viewport", vp)
	d.state.SetViewport(vp)
}

// Viewport returns the viewport.
func (d *Device) Viewport() d3d9.Viewport { return d.state.Viewport() }

// SetScissorRect sets the scissor rectangle.
func (d *Device) SetScissorRect(r d3d9.Rect) error {
	d.target().SetScissorRect(r)
	return nil
}

// ScissorRect returns the scissor rectangle.
func (d *Device) ScissorRect() d3d9.Rect { return d.state.ScissorRect() }

// SetVertexDeclaration binds v; nil unbinds.
func (d *Device) SetVertexDeclaration(v *VertexDeclaration) error {
	if v == nil {
		d.target().SetVertexDeclaration(nil)
		return nil
	}
	if v.dev != d.id {
		return invalidCall("SetVertexDeclaration", "declaration belongs to another device")
	}
	d.target().SetVertexDeclaration(v)
	return nil
}

// VertexDeclaration returns the bound declaration, or nil.
func (d *Device) VertexDeclaration() (*VertexDeclaration, error) {
	v, _ := d.state.VertexDeclaration().(*VertexDeclaration)
	if v != nil {
		v.AddRef()
	}
	return v, nil
}

// SetFVF sets the flexible vertex format.
func (d *Device) SetFVF(fvf uint32) error {
	d.target().SetFVF(fvf)
	return nil
}

// FVF returns the flexible vertex format.
func (d *Device) FVF() uint32 { return d.state.FVF() }

// --- state blocks ---

// StateBlock is a saved copy of device state. A recorded block holds only
// the states set while it was recorded.
type StateBlock struct {
	dev   DeviceID
	kind  d3d9.StateBlockType
	store *state.Store
	mask  *state.Mask
	refs  uint32
}

func validBlockType(k d3d9.StateBlockType) bool {
	switch k {
	case d3d9.SBTAll, d3d9.SBTPixelState, d3d9.SBTVertexState:
		return true
	}
	return false
}

// CreateStateBlock captures the current states of kind.
func (d *Device) CreateStateBlock(kind d3d9.StateBlockType) (*StateBlock, error) {
	if !validBlockType(kind) {
		return nil, invalidCall("CreateStateBlock", "unknown state block type", "type", kind)
	}
	return &StateBlock{dev: d.id, kind: kind, store: d.state.Clone(), refs: 1}, nil
}

// BeginStateBlock starts recording: until EndStateBlock, setters write to
// the recorded block instead of the device.
func (d *Device) BeginStateBlock() error {
	if d.recording != nil {
		return invalidCall("BeginStateBlock", "already recording")
	}
	sb := &StateBlock{dev: d.id, kind: d3d9.SBTAll, store: d.state.Clone(), mask: state.NewMask(), refs: 1}
	sb.store.Track(sb.mask)
	d.recording = sb
	return nil
}

// EndStateBlock stops recording and returns the recorded block.
func (d *Device) EndStateBlock() (*StateBlock, error) {
	if d.recording == nil {
		return nil, invalidCall("EndStateBlock", "not recording")
	}
	sb := d.recording
	sb.store.Track(nil)
	d.recording = nil
	return sb, nil
}

// Capture refreshes the block from the current device state.
func (sb *StateBlock) Capture() error {
	d, err := lookupDevice(sb.dev)
	if err != nil {
		return err
	}
	if sb.mask != nil {
		sb.store.CopyMasked(d.state, sb.mask)
		return nil
	}
	sb.store.Apply(d.state, sb.kind)
	return nil
}

// Apply copies the block into the device state.
func (sb *StateBlock) Apply() error {
	d, err := lookupDevice(sb.dev)
	if err != nil {
		return err
	}
	viewport := sb.kind == d3d9.SBTAll
	if sb.mask != nil {
		d.target().CopyMasked(sb.store, sb.mask)
		viewport = sb.mask.Viewport()
	} else {
		d.target().Apply(sb.store, sb.kind)
	}
	if viewport && d.recording == nil {
		d.clampViewport()
		d.applyViewport()
	}
	return nil
}

// Device returns the device that created the block.
func (sb *StateBlock) Device() (*Device, error) { return lookupDevice(sb.dev) }

// AddRef increments the reference count.
func (sb *StateBlock) AddRef() uint32 {
	sb.refs++
	return sb.refs
}

// Release decrements the reference count and drops the references the
// block holds on textures and declarations.
func (sb *StateBlock) Release() uint32 {
	if sb.refs == 0 {
		return 0
	}
	sb.refs--
	if sb.refs == 0 {
		sb.store.Reset()
	}
	return sb.refs
}
