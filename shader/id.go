package shader

import (
	"fmt"
	"log/slog"
	"sync/atomic"
)

// ShaderID is an opaque handle to a shader stored in a Registry.
//
// IDs are issued by an Allocator. The numeric value is exposed for
// debugging; converting arbitrary integers to ShaderID is possible but
// nothing guarantees such a value refers to a registered shader.
type ShaderID uint64

// String implements fmt.Stringer.
func (id ShaderID) String() string {
	return fmt.Sprintf("ShaderID(%d)", uint64(id))
}

// RenderTargetID identifies a render target either by a caller-supplied
// name or by a number issued from an Allocator.
//
// The zero value is the named target "". Named and generated IDs never
// compare equal to each other.
type RenderTargetID struct {
	name      string
	seq       uint64
	generated bool
}

// NamedRenderTarget returns a RenderTargetID for a logical name.
// Names are not interned or deduplicated.
func NamedRenderTarget(name string) RenderTargetID {
	return RenderTargetID{name: name}
}

// IsGenerated reports whether the ID was issued by an Allocator.
func (r RenderTargetID) IsGenerated() bool { return r.generated }

// Name returns the logical name of a named target.
// The second result is false for generated targets.
func (r RenderTargetID) Name() (string, bool) {
	if r.generated {
		return "", false
	}
	return r.name, true
}

// Seq returns the allocator-issued number of a generated target.
// The second result is false for named targets.
func (r RenderTargetID) Seq() (uint64, bool) {
	if !r.generated {
		return 0, false
	}
	return r.seq, true
}

// String implements fmt.Stringer.
func (r RenderTargetID) String() string {
	if r.generated {
		return fmt.Sprintf("Generated(%d)", r.seq)
	}
	return fmt.Sprintf("Named(%q)", r.name)
}

// Allocator issues unique shader and render target IDs.
//
// Each counter starts at 0 and only grows. Allocator is safe for
// concurrent use; allocation is a single atomic increment and never blocks.
// The zero value is ready to use.
type Allocator struct {
	shaders atomic.Uint64
	targets atomic.Uint64
}

// NewAllocator returns an Allocator with both counters at 0.
func NewAllocator() *Allocator {
	return &Allocator{}
}

// NextShaderID returns a ShaderID greater than every ShaderID previously
// returned by a.
func (a *Allocator) NextShaderID() ShaderID {
	id := a.nextShaderID()
	logShaderID(id)
	return id
}

// nextShaderID allocates without logging, for callers holding a lock.
func (a *Allocator) nextShaderID() ShaderID {
	return ShaderID(a.shaders.Add(1) - 1)
}

func logShaderID(id ShaderID) {
	slogger().Info("shader: generated id", slog.Uint64("id", uint64(id)))
}

// NextRenderTargetID returns a number greater than every number previously
// returned by a.NextRenderTargetID.
func (a *Allocator) NextRenderTargetID() uint64 {
	return a.targets.Add(1) - 1
}

// GenRenderTarget allocates a new generated render target ID.
//
// The label is reserved for attaching a debug name in graphics debuggers.
// It is currently only logged; callers must not rely on it surfacing
// anywhere else. Pass "" for no label.
func (a *Allocator) GenRenderTarget(label string) RenderTargetID {
	seq := a.NextRenderTargetID()
	if label != "" {
		slogger().Debug("shader: generated render target",
			slog.Uint64("id", seq), slog.String("label", label))
	}
	return RenderTargetID{seq: seq, generated: true}
}
