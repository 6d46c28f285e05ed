package shader

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/gogpu/gputypes"
)

// DefaultBindGroup is the bind group index uniform declarations are placed
// in unless a registry is configured otherwise.
const DefaultBindGroup uint32 = 3

// Binding is one uniform slot of a shader: the resource index assigned to
// a named uniform within the shader's uniform bind group.
type Binding struct {
	Group uint32
	Index uint32
	Name  string
	Def   UniformDef
}

// Declaration returns the WGSL line declaring the binding, without a
// trailing newline.
func (b Binding) Declaration() string {
	return fmt.Sprintf("@group(%d) @binding(%d) var<uniform> %s: %s;",
		b.Group, b.Index, b.Name, b.Def.WGSLType())
}

// Bindings assigns binding indices to defs.
//
// Names are sorted lexicographically before indices are assigned, so the
// result only depends on the set of names, never on map iteration order.
func Bindings(group uint32, defs map[string]UniformDef) []Binding {
	names := slices.Sorted(maps.Keys(defs))
	out := make([]Binding, len(names))
	for i, name := range names {
		out[i] = Binding{
			Group: group,
			Index: uint32(i), //nolint:gosec // G115: bounded by map size
			Name:  name,
			Def:   defs[name],
		}
	}
	return out
}

// GenerateBindings returns the WGSL declaration block for defs: one line per
// uniform, each terminated by a newline. An empty map yields "".
func GenerateBindings(group uint32, defs map[string]UniformDef) string {
	return declarations(Bindings(group, defs))
}

func declarations(bindings []Binding) string {
	var sb strings.Builder
	for _, b := range bindings {
		sb.WriteString(b.Declaration())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// LayoutEntries converts bindings into bind group layout entries for a
// WebGPU backend. Every entry is a uniform buffer visible to the vertex and
// fragment stages.
func LayoutEntries(bindings []Binding) []gputypes.BindGroupLayoutEntry {
	entries := make([]gputypes.BindGroupLayoutEntry, len(bindings))
	for i, b := range bindings {
		entries[i] = gputypes.BindGroupLayoutEntry{
			Binding:    b.Index,
			Visibility: gputypes.ShaderStageVertex | gputypes.ShaderStageFragment,
			Buffer: &gputypes.BufferBindingLayout{
				Type:           gputypes.BufferBindingTypeUniform,
				MinBindingSize: b.Def.MinBindingSize(),
			},
		}
	}
	return entries
}
