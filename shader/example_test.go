package shader_test

import (
	"errors"
	"fmt"

	"github.com/gogpu/shaderreg/shader"
)

func ExampleRegistry_CreateShader() {
	r := shader.NewRegistry(nil)
	id, err := r.CreateShader("wave", "// body", map[string]shader.UniformDef{
		"time":  shader.F32Def(),
		"color": shader.CustomDef("vec4<f32>", nil),
	})
	if err != nil {
		panic(err)
	}

	s, _ := r.Shader(id)
	fmt.Println(s.Name())
	fmt.Print(s.Source())
	// Output:
	// wave Shader
	// @group(3) @binding(0) var<uniform> color: vec4<f32>;
	// @group(3) @binding(1) var<uniform> time: f32;
	//
	// // body
}

func ExampleCompileError() {
	r := shader.NewRegistry(nil)
	first, _ := r.CreateShader("sprite", "", nil)

	_, err := r.CreateShader("sprite", "", nil)
	var ce *shader.CompileError
	if errors.As(err, &ce) {
		fmt.Println(err)
		fmt.Println("reuse", ce.Existing == first)
	}
	// Output:
	// shader: compile error: shader with name 'sprite' already exists
	// reuse true
}

func ExampleCurrent() {
	var current shader.Current
	current.Set(7)
	current.SetUniform("time", shader.F32Uniform(0.5))

	inst, ok := current.Get()
	fmt.Println(inst.ID, ok, inst.Uniforms["time"])

	current.SetDefault()
	_, ok = current.Get()
	fmt.Println(ok)
	// Output:
	// ShaderID(7) true F32(0.5)
	// false
}
