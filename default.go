package shaderreg

import (
	"sync"

	"github.com/gogpu/shaderreg/shader"
)

// defaultContext backs the package-level helpers.
var defaultContext = sync.OnceValue(func() *Context { return NewContext() })

// Default returns the process-wide Context used by the package-level
// functions. It is created on first use.
//
// Code that needs isolated state, such as tests, should create its own
// Context with NewContext instead.
func Default() *Context { return defaultContext() }

// CreateShader registers a shader in the default Context.
func CreateShader(name, body string, defs map[string]shader.UniformDef) (shader.ShaderID, error) {
	return Default().CreateShader(name, body, defs)
}

// GenRenderTarget allocates a render target ID from the default Context.
func GenRenderTarget(label string) shader.RenderTargetID {
	return Default().GenRenderTarget(label)
}

// SetShader makes id the active shader of the default Context.
func SetShader(id shader.ShaderID) { Default().SetShader(id) }

// SetDefaultShader clears the active shader of the default Context.
func SetDefaultShader() { Default().SetDefaultShader() }

// CurrentShader returns the active shader instance of the default Context.
func CurrentShader() (shader.ShaderInstance, bool) { return Default().CurrentShader() }

// SetUniform overrides a uniform on the default Context's active shader.
func SetUniform(name string, value shader.Uniform) bool {
	return Default().SetUniform(name, value)
}
