package main

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/shaderreg/shader"
)

const testBody = `@fragment
fn fs_main() -> @location(0) vec4<f32> {
    return vec4<f32>(time, time, time, 1.0);
}
`

func writeBody(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "body.wgsl")
	if err := os.WriteFile(path, []byte(testBody), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseFlags(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-name", "wave",
		"-group", "1",
		"-f32", "time",
		"-f32", "speed=2.5",
		"-custom", "tint:vec4<f32>",
		"body.wgsl",
	}, io.Discard)
	if err != nil {
		t.Fatalf("parseFlags() = %v", err)
	}
	if cfg.name != "wave" || cfg.group != 1 || cfg.bodyPath != "body.wgsl" {
		t.Errorf("cfg = %+v", cfg)
	}
	if len(cfg.uniforms) != 3 {
		t.Fatalf("uniforms = %v, want 3 entries", cfg.uniforms)
	}
	if v, ok := cfg.uniforms["speed"].DefaultF32(); !ok || v != 2.5 {
		t.Errorf("speed default = %v, %v; want 2.5, true", v, ok)
	}
	if _, ok := cfg.uniforms["time"].DefaultF32(); ok {
		t.Error("time should have no default")
	}
	if got := cfg.uniforms["tint"].WGSLType(); got != "vec4<f32>" {
		t.Errorf("tint type = %q, want vec4<f32>", got)
	}
}

func TestParseFlagsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no body", []string{"-f32", "t"}},
		{"two bodies", []string{"a.wgsl", "b.wgsl"}},
		{"bad default", []string{"-f32", "t=abc", "a.wgsl"}},
		{"custom without type", []string{"-custom", "tint", "a.wgsl"}},
		{"duplicate uniform", []string{"-f32", "t", "-custom", "t:u32", "a.wgsl"}},
		{"empty name", []string{"-f32", "=1", "a.wgsl"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseFlags(tt.args, io.Discard); err == nil {
				t.Errorf("parseFlags(%v) succeeded, want error", tt.args)
			}
		})
	}
}

func TestRunStdout(t *testing.T) {
	body := writeBody(t)
	var stdout, stderr bytes.Buffer

	code := run([]string{"-f32", "time", "-custom", "tint:vec4<f32>", body}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run() = %d, stderr: %s", code, stderr.String())
	}

	want := shader.GenerateBindings(shader.DefaultBindGroup, map[string]shader.UniformDef{
		"time": shader.F32Def(),
		"tint": shader.CustomDef("vec4<f32>", nil),
	}) + "\n" + testBody
	if stdout.String() != want {
		t.Errorf("output =\n%s\nwant\n%s", stdout.String(), want)
	}
}

func TestRunOutputFile(t *testing.T) {
	body := writeBody(t)
	out := filepath.Join(t.TempDir(), "full.wgsl")
	var stdout, stderr bytes.Buffer

	if code := run([]string{"-o", out, "-f32", "time", body}, &stdout, &stderr); code != 0 {
		t.Fatalf("run() = %d, stderr: %s", code, stderr.String())
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout should be empty with -o, got %q", stdout.String())
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "@group(3) @binding(0) var<uniform> time: f32;\n\n@fragment") {
		t.Errorf("output file = %q", data)
	}
}

func TestRunCheck(t *testing.T) {
	body := writeBody(t)
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-check", "-f32", "time", body}, &stdout, &stderr); code != 0 {
		t.Fatalf("run(-check) = %d, stderr: %s", code, stderr.String())
	}

	bad := filepath.Join(t.TempDir(), "bad.wgsl")
	if err := os.WriteFile(bad, []byte("fn broken( {"), 0o600); err != nil {
		t.Fatal(err)
	}
	stderr.Reset()
	if code := run([]string{"-check", bad}, io.Discard, &stderr); code != 1 {
		t.Errorf("run(-check) on invalid source = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "Parse error") {
		t.Errorf("stderr = %q, want parse error", stderr.String())
	}
}

func TestRunMissingFile(t *testing.T) {
	var stderr bytes.Buffer
	missing := filepath.Join(t.TempDir(), "missing.wgsl")
	if code := run([]string{missing}, io.Discard, &stderr); code != 1 {
		t.Errorf("run() = %d, want 1", code)
	}
	if code := run(nil, io.Discard, io.Discard); code != 2 {
		t.Errorf("run(nil) = %d, want 2", code)
	}
}

func TestRunSPIRV(t *testing.T) {
	body := writeBody(t)
	out := filepath.Join(t.TempDir(), "out.spv")
	var stderr bytes.Buffer

	if code := run([]string{"-f32", "time", "-spirv", out, body}, io.Discard, &stderr); code != 0 {
		t.Fatalf("run(-spirv) = %d, stderr: %s", code, stderr.String())
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) < 4 {
		t.Fatalf("SPIR-V output is %d bytes, want a module", len(data))
	}
	magic := binary.LittleEndian.Uint32(data)
	if magic != 0x07230203 {
		t.Errorf("SPIR-V magic = 0x%08x, want 0x07230203", magic)
	}
}

func TestRunSPIRVInvalidBody(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "bad.wgsl")
	if err := os.WriteFile(bad, []byte("fn broken( {"), 0o600); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(t.TempDir(), "out.spv")
	var stderr bytes.Buffer

	if code := run([]string{"-spirv", out, bad}, io.Discard, &stderr); code != 1 {
		t.Errorf("run(-spirv) on invalid source = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "Compilation error") {
		t.Errorf("stderr = %q, want compilation error", stderr.String())
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("SPIR-V file written despite compile failure (stat err %v)", err)
	}
}
