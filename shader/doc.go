// Package shader is a registry for WGSL shader programs and render target
// handles.
//
// It allocates opaque IDs, stores shader source together with its uniform
// definitions, tracks the shader that is active for upcoming draws, and
// generates the uniform binding declarations prepended to shader bodies.
// Nothing here talks to a GPU: the output is WGSL text plus bind group
// layout entries for a backend to compile and create pipelines from.
//
// # Uniform declarations
//
// For uniform definitions
//
//	map[string]shader.UniformDef{
//	    "time":  shader.F32Def(),
//	    "color": shader.CustomDef("vec4<f32>", nil),
//	}
//
// CreateShader prepends
//
//	@group(3) @binding(0) var<uniform> color: vec4<f32>;
//	@group(3) @binding(1) var<uniform> time: f32;
//
// followed by an empty line and the body. Binding indices follow the sorted
// uniform names.
//
// # Concurrency
//
// Allocator, Registry and Current are all safe for concurrent use.
package shader
