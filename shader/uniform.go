package shader

import (
	"encoding/binary"
	"fmt"
	"math"
)

// UniformKind discriminates uniform values and definitions.
type UniformKind uint8

const (
	// KindF32 is a single 32-bit float.
	KindF32 UniformKind = iota

	// KindCustom is raw bytes laid out as a caller-declared WGSL type.
	KindCustom
)

// String implements fmt.Stringer.
func (k UniformKind) String() string {
	switch k {
	case KindF32:
		return "F32"
	case KindCustom:
		return "Custom"
	default:
		return fmt.Sprintf("UniformKind(%d)", uint8(k))
	}
}

// wgslF32 is the WGSL token for a 32-bit float.
const wgslF32 = "f32"

// canonicalNaN is the bit pattern every NaN is folded to.
const canonicalNaN uint32 = 0x7fc00000

// OrderedF32 is a float32 with a total order, usable as a map key.
//
// All NaN payloads are equal to each other and sort above every number.
// Negative zero equals positive zero.
type OrderedF32 struct {
	bits uint32
}

// NewOrderedF32 wraps v.
func NewOrderedF32(v float32) OrderedF32 {
	switch {
	case v != v:
		return OrderedF32{bits: canonicalNaN}
	case v == 0:
		return OrderedF32{}
	}
	return OrderedF32{bits: math.Float32bits(v)}
}

// Float32 returns the wrapped value.
func (f OrderedF32) Float32() float32 { return math.Float32frombits(f.bits) }

// IsNaN reports whether the wrapped value is NaN.
func (f OrderedF32) IsNaN() bool { return f.bits == canonicalNaN }

// Compare returns -1, 0 or +1 depending on whether f is less than, equal to,
// or greater than g.
func (f OrderedF32) Compare(g OrderedF32) int {
	fn, gn := f.IsNaN(), g.IsNaN()
	switch {
	case fn && gn:
		return 0
	case fn:
		return 1
	case gn:
		return -1
	}
	a, b := f.Float32(), g.Float32()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Uniform is a runtime value bound to a shader's uniform slot.
//
// Uniform is comparable and may be used as a map key. Nothing ties a
// Uniform's kind to the UniformDef it is meant to satisfy; matching them
// is the caller's job.
type Uniform struct {
	kind UniformKind
	f32  OrderedF32
	data string
}

// F32Uniform returns a float uniform.
func F32Uniform(v float32) Uniform {
	return Uniform{kind: KindF32, f32: NewOrderedF32(v)}
}

// CustomUniform returns a uniform holding a copy of data.
func CustomUniform(data []byte) Uniform {
	return Uniform{kind: KindCustom, data: string(data)}
}

// Kind returns the uniform's kind.
func (u Uniform) Kind() UniformKind { return u.kind }

// F32 returns the float value. The second result is false for custom uniforms.
func (u Uniform) F32() (OrderedF32, bool) {
	if u.kind != KindF32 {
		return OrderedF32{}, false
	}
	return u.f32, true
}

// Bytes returns the value as it would be written into a uniform buffer:
// little-endian IEEE 754 for F32, a copy of the raw bytes for Custom.
func (u Uniform) Bytes() []byte {
	if u.kind == KindF32 {
		return binary.LittleEndian.AppendUint32(nil, math.Float32bits(u.f32.Float32()))
	}
	return []byte(u.data)
}

// String implements fmt.Stringer.
func (u Uniform) String() string {
	if u.kind == KindF32 {
		return fmt.Sprintf("F32(%g)", u.f32.Float32())
	}
	return fmt.Sprintf("Custom(%d bytes)", len(u.data))
}

// UniformDef declares the shape of a uniform slot before any value exists.
//
// For KindCustom the WGSL type descriptor must describe the same byte
// layout as the default data, if any. This is not checked.
type UniformDef struct {
	kind       UniformKind
	f32        float32
	hasDefault bool
	data       []byte
	wgslDecl   string
}

// F32Def declares a float uniform without a default.
func F32Def() UniformDef {
	return UniformDef{kind: KindF32}
}

// F32DefWithDefault declares a float uniform defaulting to v.
func F32DefWithDefault(v float32) UniformDef {
	return UniformDef{kind: KindF32, f32: v, hasDefault: true}
}

// CustomDef declares a uniform of WGSL type wgslDecl, for example
// "vec4<f32>" or the name of a struct declared in the shader body.
// A nil defaultData means no default; otherwise the bytes are copied.
func CustomDef(wgslDecl string, defaultData []byte) UniformDef {
	d := UniformDef{kind: KindCustom, wgslDecl: wgslDecl}
	if defaultData != nil {
		d.data = append([]byte{}, defaultData...)
		d.hasDefault = true
	}
	return d
}

// Kind returns the definition's kind.
func (d UniformDef) Kind() UniformKind { return d.kind }

// WGSLType returns the WGSL type token used in the binding declaration:
// "f32" for float uniforms, the stored descriptor verbatim for custom ones.
func (d UniformDef) WGSLType() string {
	if d.kind == KindCustom {
		return d.wgslDecl
	}
	return wgslF32
}

// DefaultF32 returns the default of a float definition.
func (d UniformDef) DefaultF32() (float32, bool) {
	if d.kind != KindF32 || !d.hasDefault {
		return 0, false
	}
	return d.f32, true
}

// DefaultData returns a copy of the default bytes of a custom definition.
func (d UniformDef) DefaultData() ([]byte, bool) {
	if d.kind != KindCustom || !d.hasDefault {
		return nil, false
	}
	return append([]byte{}, d.data...), true
}

// DefaultUniform converts the definition's default into a Uniform.
// The second result is false when no default was declared.
func (d UniformDef) DefaultUniform() (Uniform, bool) {
	if !d.hasDefault {
		return Uniform{}, false
	}
	if d.kind == KindCustom {
		return CustomUniform(d.data), true
	}
	return F32Uniform(d.f32), true
}

// MinBindingSize returns the minimum uniform buffer size for the slot:
// 4 for F32, the default data length for Custom, and 0 when unknown.
func (d UniformDef) MinBindingSize() uint64 {
	if d.kind == KindF32 {
		return 4
	}
	return uint64(len(d.data))
}
