package shader

import (
	"log/slog"
	"maps"
	"sync"
)

// ShaderInstance is a shader bound with specific uniform override values.
//
// Nothing checks that ID refers to a registered shader.
type ShaderInstance struct {
	ID       ShaderID
	Uniforms map[string]Uniform
}

// Clone returns a deep copy of the instance.
func (si ShaderInstance) Clone() ShaderInstance {
	u := maps.Clone(si.Uniforms)
	if u == nil {
		u = make(map[string]Uniform)
	}
	return ShaderInstance{ID: si.ID, Uniforms: u}
}

// Equal reports whether both instances bind the same shader with the same
// overrides.
func (si ShaderInstance) Equal(other ShaderInstance) bool {
	return si.ID == other.ID && maps.Equal(si.Uniforms, other.Uniforms)
}

// Current tracks which shader is active for upcoming draw calls.
//
// It holds at most one ShaderInstance; no instance means the renderer's
// default shader. Readers always receive a copy, so no reference into the
// shared state escapes. The zero value is ready to use and holds no shader.
//
// Thread Safety: Current is safe for concurrent use.
type Current struct {
	mu   sync.Mutex
	inst *ShaderInstance
}

// Set makes id the active shader with no uniform overrides, discarding
// any overrides set for the previous shader.
func (c *Current) Set(id ShaderID) {
	c.mu.Lock()
	c.inst = &ShaderInstance{ID: id, Uniforms: make(map[string]Uniform)}
	c.mu.Unlock()
	slogger().Debug("shader: current shader set", slog.Uint64("id", uint64(id)))
}

// SetDefault clears the active shader so the default shader is used.
func (c *Current) SetDefault() {
	c.mu.Lock()
	c.inst = nil
	c.mu.Unlock()
}

// Get returns a copy of the active instance.
// The second result is false when the default shader is active.
func (c *Current) Get() (ShaderInstance, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inst == nil {
		return ShaderInstance{}, false
	}
	return c.inst.Clone(), true
}

// SetUniform sets an override for the named uniform on the active instance
// and reports whether it was applied. With the default shader active there
// is nothing to attach to, and false is returned.
//
// The override lasts until the next Set or SetDefault.
func (c *Current) SetUniform(name string, value Uniform) bool {
	c.mu.Lock()
	ok := c.inst != nil
	if ok {
		c.inst.Uniforms[name] = value
	}
	c.mu.Unlock()

	if !ok {
		slogger().Debug("shader: uniform ignored, no active shader", slog.String("name", name))
	}
	return ok
}
