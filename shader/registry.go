package shader

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/gogpu/gputypes"
)

// Shader is a registered shader program: its assembled WGSL source and the
// uniform definitions the binding declarations were generated from.
//
// A Shader never changes after Registry.CreateShader returns it.
type Shader struct {
	id       ShaderID
	name     string
	source   string
	defs     map[string]UniformDef
	bindings []Binding
}

// ID returns the shader's ID.
func (s *Shader) ID() ShaderID { return s.id }

// Name returns the display name, "<name> Shader".
func (s *Shader) Name() string { return s.name }

// Source returns the binding declarations followed by the shader body.
func (s *Shader) Source() string { return s.source }

// UniformDefs returns a copy of the uniform definitions.
func (s *Shader) UniformDefs() map[string]UniformDef { return maps.Clone(s.defs) }

// Bindings returns the uniform bindings in binding index order.
func (s *Shader) Bindings() []Binding { return slices.Clone(s.bindings) }

// LayoutEntries returns the bind group layout entries a backend needs to
// create the uniform bind group layout for this shader.
func (s *Shader) LayoutEntries() []gputypes.BindGroupLayoutEntry {
	return LayoutEntries(s.bindings)
}

// RegistryOption configures a Registry during creation.
type RegistryOption func(*registryOptions)

type registryOptions struct {
	group uint32
}

// WithBindGroup sets the bind group index used in generated uniform
// declarations. The default is DefaultBindGroup.
func WithBindGroup(group uint32) RegistryOption {
	return func(o *registryOptions) {
		o.group = group
	}
}

// Registry stores shaders keyed by ShaderID.
//
// Entries are only ever added; there is no update or removal, and every
// shader lives as long as the registry. Shader names are unique within a
// registry.
//
// Thread Safety: Registry is safe for concurrent use. CreateShader calls
// are serialized by an internal lock.
type Registry struct {
	mu      sync.RWMutex
	ids     *Allocator
	group   uint32
	shaders map[ShaderID]*Shader
	byName  map[string]ShaderID
}

// NewRegistry creates an empty registry that draws IDs from ids.
// A nil ids gives the registry its own Allocator.
func NewRegistry(ids *Allocator, opts ...RegistryOption) *Registry {
	o := registryOptions{group: DefaultBindGroup}
	for _, opt := range opts {
		opt(&o)
	}
	if ids == nil {
		ids = NewAllocator()
	}
	return &Registry{
		ids:     ids,
		group:   o.group,
		shaders: make(map[ShaderID]*Shader),
		byName:  make(map[string]ShaderID),
	}
}

// BindGroup returns the bind group index used for uniform declarations.
func (r *Registry) BindGroup() uint32 { return r.group }

// CreateShader registers a shader and returns its new ID.
//
// The stored source is the generated uniform declarations, a newline, and
// body. Binding indices follow the lexicographic order of the uniform names.
// defs is copied; the caller may reuse it.
//
// A *CompileError (matching ErrCompile) is returned when a shader with the
// same name is already registered. The error carries the existing ID.
func (r *Registry) CreateShader(name, body string, defs map[string]UniformDef) (ShaderID, error) {
	s, err := r.insert(name, body, defs)
	// Logging happens after the lock is released: handlers may read the registry.
	if err != nil {
		var ce *CompileError
		if errors.As(err, &ce) {
			slogger().Warn("shader: rejected shader",
				slog.String("name", name), slog.Uint64("existing", uint64(ce.Existing)))
		}
		return 0, err
	}

	logShaderID(s.id)
	slogger().Info("shader: created",
		slog.Uint64("id", uint64(s.id)),
		slog.String("name", s.name),
		slog.Int("uniforms", len(s.bindings)))
	return s.id, nil
}

// insert builds and stores the shader under r.mu. It must not log.
func (r *Registry) insert(name, body string, defs map[string]UniformDef) (*Shader, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.byName[name]; ok {
		return nil, &CompileError{
			Name:     name,
			Existing: existing,
			Reason:   fmt.Sprintf("shader with name '%s' already exists", name),
		}
	}

	id := r.ids.nextShaderID()
	if prev, ok := r.shaders[id]; ok {
		// Only reachable if IDs were forged or the allocator was replaced.
		return nil, &CompileError{
			Name:     name,
			Existing: prev.id,
			Reason:   fmt.Sprintf("%v is already registered to %s", id, prev.name),
		}
	}

	bindings := Bindings(r.group, defs)
	s := &Shader{
		id:       id,
		name:     name + " Shader",
		source:   declarations(bindings) + "\n" + body,
		defs:     maps.Clone(defs),
		bindings: bindings,
	}
	if s.defs == nil {
		s.defs = make(map[string]UniformDef)
	}
	r.shaders[id] = s
	r.byName[name] = id
	return s, nil
}

// Shader returns the shader registered under id.
func (r *Registry) Shader(id ShaderID) (*Shader, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.shaders[id]
	return s, ok
}

// Len returns the number of registered shaders.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.shaders)
}

// IDs returns the IDs of all registered shaders in ascending order.
func (r *Registry) IDs() []ShaderID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.shaders))
}
