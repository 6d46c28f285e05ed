package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/shaderreg/shader"
)

// uniformFlags collects uniform definitions from repeated flags.
type uniformFlags map[string]shader.UniformDef

func (u uniformFlags) add(name string, def shader.UniformDef) error {
	if name == "" {
		return fmt.Errorf("empty uniform name")
	}
	if _, dup := u[name]; dup {
		return fmt.Errorf("uniform %q declared twice", name)
	}
	u[name] = def
	return nil
}

// f32Flag parses "name" or "name=default".
type f32Flag struct{ u uniformFlags }

func (f f32Flag) String() string { return "" }

func (f f32Flag) Set(s string) error {
	name, value, hasDefault := strings.Cut(s, "=")
	if !hasDefault {
		return f.u.add(name, shader.F32Def())
	}
	v, err := strconv.ParseFloat(value, 32)
	if err != nil {
		return fmt.Errorf("uniform %q: %w", name, err)
	}
	return f.u.add(name, shader.F32DefWithDefault(float32(v)))
}

// customFlag parses "name:type".
type customFlag struct{ u uniformFlags }

func (f customFlag) String() string { return "" }

func (f customFlag) Set(s string) error {
	name, typ, ok := strings.Cut(s, ":")
	if !ok || typ == "" {
		return fmt.Errorf("custom uniform %q: want name:type", s)
	}
	return f.u.add(name, shader.CustomDef(typ, nil))
}
