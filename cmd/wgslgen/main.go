// Command wgslgen assembles a WGSL shader the way shaderreg does: it
// generates uniform binding declarations and prepends them to a body file.
//
// Usage:
//
//	wgslgen [options] <body.wgsl>
//
// Examples:
//
//	wgslgen -f32 time -custom tint:vec4<f32> wave.wgsl
//	wgslgen -f32 time=0.5 -check -o wave.full.wgsl wave.wgsl
//	wgslgen -f32 time -spirv wave.spv wave.wgsl
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gogpu/naga"
	"github.com/gogpu/shaderreg"
	"github.com/gogpu/shaderreg/shader"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// config is the parsed command line.
type config struct {
	name     string
	group    uint
	output   string
	spirv    string
	check    bool
	bodyPath string
	uniforms uniformFlags
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	cfg := &config{uniforms: uniformFlags{}}
	fs := flag.NewFlagSet("wgslgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.name, "name", "main", "shader name")
	fs.UintVar(&cfg.group, "group", uint(shader.DefaultBindGroup), "bind group for uniform declarations")
	fs.StringVar(&cfg.output, "o", "", "output file (default: stdout)")
	fs.StringVar(&cfg.spirv, "spirv", "", "also compile to SPIR-V and write it to this file")
	fs.BoolVar(&cfg.check, "check", false, "parse the assembled source with naga")
	fs.Var(f32Flag{cfg.uniforms}, "f32", "f32 uniform `name[=default]` (repeatable)")
	fs.Var(customFlag{cfg.uniforms}, "custom", "custom uniform `name:type` (repeatable)")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: wgslgen [options] <body.wgsl>")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return nil, fmt.Errorf("expected exactly one body file, got %d", fs.NArg())
	}
	if cfg.group > 1<<32-1 {
		return nil, fmt.Errorf("bind group %d out of range", cfg.group)
	}
	cfg.bodyPath = fs.Arg(0)
	return cfg, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	body, err := os.ReadFile(cfg.bodyPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error reading file: %v\n", err)
		return 1
	}

	source, err := assemble(cfg, string(body))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if cfg.check {
		if _, err := naga.Parse(source); err != nil {
			fmt.Fprintf(stderr, "Parse error: %v\n", err)
			return 1
		}
	}

	if cfg.spirv != "" {
		spirvBytes, err := naga.Compile(source)
		if err != nil {
			fmt.Fprintf(stderr, "Compilation error: %v\n", err)
			return 1
		}
		if err := os.WriteFile(cfg.spirv, spirvBytes, 0o644); err != nil { //nolint:gosec // output artifact
			fmt.Fprintf(stderr, "Error writing output: %v\n", err)
			return 1
		}
	}

	if cfg.output != "" {
		if err := os.WriteFile(cfg.output, []byte(source), 0o644); err != nil { //nolint:gosec // output artifact
			fmt.Fprintf(stderr, "Error writing output: %v\n", err)
			return 1
		}
		return 0
	}
	if _, err := io.WriteString(stdout, source); err != nil {
		fmt.Fprintf(stderr, "Error writing output: %v\n", err)
		return 1
	}
	return 0
}

// assemble registers the body in a fresh context and returns the full source.
func assemble(cfg *config, body string) (string, error) {
	ctx := shaderreg.NewContext(shaderreg.WithBindGroup(uint32(cfg.group))) //nolint:gosec // G115: range checked in parseFlags
	id, err := ctx.CreateShader(cfg.name, body, cfg.uniforms)
	if err != nil {
		return "", fmt.Errorf("create shader: %w", err)
	}
	s, _ := ctx.Shader(id)
	return s.Source(), nil
}
