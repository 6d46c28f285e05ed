// Package shaderreg keeps track of the shaders and render targets of a
// WebGPU renderer.
//
// # Overview
//
// shaderreg sits between asset loading and the graphics backend. It hands
// out IDs, stores each shader's WGSL source together with its uniform
// definitions, and remembers which shader is active for the next draws.
// It never talks to a GPU itself.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/shaderreg"
//	    "github.com/gogpu/shaderreg/shader"
//	)
//
//	ctx := shaderreg.NewContext()
//
//	id, err := ctx.CreateShader("wave", body, map[string]shader.UniformDef{
//	    "time": shader.F32Def(),
//	})
//	if err != nil {
//	    return err
//	}
//
//	ctx.SetShader(id)
//	ctx.SetUniform("time", shader.F32Uniform(elapsed))
//	// ... draw ...
//	ctx.SetDefaultShader()
//
// Package-level functions such as CreateShader and SetShader operate on a
// process-wide Context returned by Default.
//
// # Architecture
//
//   - shader: IDs, uniform model, registry, current shader cell
//   - cmd/wgslgen: assembles a shader from the command line
//
// # Logging
//
// Logging is silent by default. See SetLogger.
package shaderreg
