package shaderreg

import "github.com/gogpu/shaderreg/shader"

// Context owns one ID allocator, one shader registry and one current-shader
// cell. Renderers typically create a single Context at startup and pass it
// to the code that creates shaders and issues draws.
//
// Context is safe for concurrent use.
type Context struct {
	ids     *shader.Allocator
	shaders *shader.Registry
	current *shader.Current
}

// NewContext creates a Context with an empty registry and no active shader.
//
// Example:
//
//	ctx := shaderreg.NewContext()
//	id, err := ctx.CreateShader("glow", body, map[string]shader.UniformDef{
//	    "intensity": shader.F32DefWithDefault(1),
//	})
func NewContext(opts ...Option) *Context {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.ids == nil {
		o.ids = shader.NewAllocator()
	}
	return &Context{
		ids:     o.ids,
		shaders: shader.NewRegistry(o.ids, shader.WithBindGroup(o.group)),
		current: &shader.Current{},
	}
}

// Allocator returns the Context's ID allocator.
func (c *Context) Allocator() *shader.Allocator { return c.ids }

// Registry returns the Context's shader registry.
func (c *Context) Registry() *shader.Registry { return c.shaders }

// Current returns the Context's current-shader cell.
func (c *Context) Current() *shader.Current { return c.current }

// CreateShader registers a shader. See shader.Registry.CreateShader.
func (c *Context) CreateShader(name, body string, defs map[string]shader.UniformDef) (shader.ShaderID, error) {
	return c.shaders.CreateShader(name, body, defs)
}

// Shader returns the shader registered under id.
func (c *Context) Shader(id shader.ShaderID) (*shader.Shader, bool) {
	return c.shaders.Shader(id)
}

// GenRenderTarget allocates a generated render target ID. The label is
// reserved for debug naming and currently has no effect.
func (c *Context) GenRenderTarget(label string) shader.RenderTargetID {
	return c.ids.GenRenderTarget(label)
}

// SetShader makes id the active shader with no uniform overrides.
func (c *Context) SetShader(id shader.ShaderID) { c.current.Set(id) }

// SetDefaultShader switches back to the default shader.
func (c *Context) SetDefaultShader() { c.current.SetDefault() }

// CurrentShader returns a copy of the active shader instance, or false when
// the default shader is active.
func (c *Context) CurrentShader() (shader.ShaderInstance, bool) { return c.current.Get() }

// SetUniform overrides a uniform on the active shader instance and reports
// whether there was one to apply it to.
func (c *Context) SetUniform(name string, value shader.Uniform) bool {
	return c.current.SetUniform(name, value)
}
