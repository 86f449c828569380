package cli

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/glm"
)

func TestDefaultSceneValid(t *testing.T) {
	s := DefaultScene()
	if err := s.Validate(); err != nil {
		t.Fatalf("DefaultScene().Validate() = %v", err)
	}
	if s.StackCapacity != defaultStackCapacity {
		t.Errorf("StackCapacity = %d, want %d", s.StackCapacity, defaultStackCapacity)
	}
}

func TestDecodeScene(t *testing.T) {
	const src = `
stack_capacity = 4

[camera]
eye = [0, 0, 10]
center = [0, 0, 0]
up = [0, 1, 0]

[projection]
kind = "ortho"
left = -2
right = 2
bottom = -1
top = 1
near = 0.5
far = 20

[[model]]
op = "translate"
args = [1, 2, 3]

[[model]]
op = "scale"
args = [2]
`
	s, err := DecodeScene(strings.NewReader(src))
	if err != nil {
		t.Fatalf("DecodeScene() error: %v", err)
	}
	if s.StackCapacity != 4 {
		t.Errorf("StackCapacity = %d, want 4", s.StackCapacity)
	}
	if s.Projection.Kind != projOrtho || s.Projection.Left != -2 {
		t.Errorf("Projection = %+v", s.Projection)
	}
	if len(s.Model) != 2 || s.Model[1].Op != "scale" {
		t.Fatalf("Model = %+v", s.Model)
	}

	model, view, proj, err := s.Matrices()
	if err != nil {
		t.Fatalf("Matrices() error: %v", err)
	}

	var want glm.Mat4d
	want.Translation(1, 2, 3)
	var sc glm.Mat4d
	want.Mul(sc.Scaling(2, 2, 2))
	if model != want {
		t.Errorf("model =\n%v\nwant\n%v", model, want)
	}

	want.Translation(0, 0, -10)
	if !view.ApproxEqual(&want, 1e-12) {
		t.Errorf("view =\n%v\nwant\n%v", view, want)
	}

	want.Ortho(-2, 2, -1, 1, 0.5, 20)
	if proj != want {
		t.Errorf("proj =\n%v\nwant\n%v", proj, want)
	}
}

func TestDecodeSceneKeepsDefaults(t *testing.T) {
	s, err := DecodeScene(strings.NewReader("[camera]\neye = [1, 1, 1]\n"))
	if err != nil {
		t.Fatalf("DecodeScene() error: %v", err)
	}
	def := DefaultScene()
	if s.Projection != def.Projection {
		t.Errorf("Projection = %+v, want default %+v", s.Projection, def.Projection)
	}
	if s.Camera.Up != def.Camera.Up {
		t.Errorf("Camera.Up = %v, want default %v", s.Camera.Up, def.Camera.Up)
	}
	if s.Camera.Eye != [3]float64{1, 1, 1} {
		t.Errorf("Camera.Eye = %v", s.Camera.Eye)
	}
}

func TestDecodeSceneErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr string
	}{
		{"syntax", "[camera\n", "parse scene"},
		{"unknown key", "[camera]\neyes = [0, 0, 1]\n", "unknown keys"},
		{"unknown kind", "[projection]\nkind = \"fisheye\"\n", "unknown kind"},
		{"fovy", "[projection]\nfovy = 180\n", "fovy"},
		{"aspect", "[projection]\naspect = 0\n", "aspect"},
		{"near far", "[projection]\nnear = 10\nfar = 1\n", "near < far"},
		{"ortho box", "[projection]\nkind = \"ortho\"\nleft = 1\nright = 1\nbottom = -1\ntop = 1\n", "degenerate"},
		{"capacity", "stack_capacity = 0\n", "stack_capacity"},
		{"bad op", "[[model]]\nop = \"shear\"\n", "unknown op"},
		{"bad arity", "[[model]]\nop = \"translate\"\nargs = [1, 2]\n", "arguments"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeScene(strings.NewReader(tt.src))
			if err == nil {
				t.Fatal("DecodeScene() expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadScene(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.toml")
	if err := os.WriteFile(path, []byte("[[model]]\nop = \"push\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	s, err := LoadScene(path)
	if err != nil {
		t.Fatalf("LoadScene() error: %v", err)
	}
	if len(s.Model) != 1 || s.Model[0].Op != "push" {
		t.Errorf("Model = %+v", s.Model)
	}

	if _, err := LoadScene(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadScene(missing) error = %v, want ErrNotExist", err)
	}
}

func TestParseStep(t *testing.T) {
	tests := []struct {
		in      string
		want    Step
		wantErr bool
	}{
		{in: "push", want: Step{Op: "push"}},
		{in: "Pop", want: Step{Op: "pop"}},
		{in: "identity:", want: Step{Op: "identity"}},
		{in: "translate:1,0,-2", want: Step{Op: "translate", Args: []float64{1, 0, -2}}},
		{in: "scale:2", want: Step{Op: "scale", Args: []float64{2}}},
		{in: "scale: 1, 2, 3", want: Step{Op: "scale", Args: []float64{1, 2, 3}}},
		{in: "rotate:90,0,1,0", want: Step{Op: "rotate", Args: []float64{90, 0, 1, 0}}},
		{in: "translate:1,2", wantErr: true},
		{in: "scale:1,2", wantErr: true},
		{in: "push:1", wantErr: true},
		{in: "rotate:a,b,c,d", wantErr: true},
		{in: "twist:1", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStep(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseStep(%q) = %+v, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseStep(%q) error: %v", tt.in, err)
			}
			if got.Op != tt.want.Op || len(got.Args) != len(tt.want.Args) {
				t.Fatalf("ParseStep(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
			for i := range got.Args {
				if got.Args[i] != tt.want.Args[i] {
					t.Errorf("ParseStep(%q).Args[%d] = %g, want %g", tt.in, i, got.Args[i], tt.want.Args[i])
				}
			}
		})
	}
}

func TestReplay(t *testing.T) {
	stack, err := glm.NewMatrixStack[float64](4)
	if err != nil {
		t.Fatal(err)
	}
	steps := []Step{
		{Op: "translate", Args: []float64{1, 0, 0}},
		{Op: "push"},
		{Op: "rotate", Args: []float64{90, 0, 0, 2}},
		{Op: "scale", Args: []float64{3}},
	}
	if err := replay(stack, steps); err != nil {
		t.Fatalf("replay() error: %v", err)
	}
	if stack.Depth() != 1 {
		t.Errorf("Depth() = %d, want 1", stack.Depth())
	}

	// T · R · S applied to (1, 0, 0): scale to (3, 0, 0), rotate to
	// (0, 3, 0), translate to (1, 3, 0).
	var m glm.Mat4d
	stack.Get(&m)
	p := glm.V3(1.0, 0, 0)
	m.TransformPosition(&p)
	if !p.Approx(glm.V3(1.0, 3, 0), 1e-12) {
		t.Errorf("transformed point = %v, want (1, 3, 0)", p)
	}

	if err := replay(stack, []Step{{Op: "pop"}, {Op: "identity"}}); err != nil {
		t.Fatalf("replay() error: %v", err)
	}
	stack.Get(&m)
	if m != glm.Ident4[float64]() {
		t.Errorf("after identity:\n%v", m)
	}
}

func TestReplayErrors(t *testing.T) {
	tests := []struct {
		name    string
		steps   []Step
		wantErr error
		wantMsg string
	}{
		{
			name:    "underflow",
			steps:   []Step{{Op: "push"}, {Op: "pop"}, {Op: "pop"}},
			wantErr: glm.ErrStackUnderflow,
			wantMsg: "step 3 (pop)",
		},
		{
			name:    "overflow",
			steps:   []Step{{Op: "push"}, {Op: "push"}},
			wantErr: glm.ErrStackOverflow,
			wantMsg: "step 2 (push)",
		},
		{
			name:    "malformed",
			steps:   []Step{{Op: "translate", Args: []float64{1}}},
			wantMsg: "step 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stack, err := glm.NewMatrixStack[float64](2)
			if err != nil {
				t.Fatal(err)
			}
			err = replay(stack, tt.steps)
			if err == nil {
				t.Fatal("replay() expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("replay() error = %v, want %v", err, tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantMsg)
			}
		})
	}
}

func TestRadians(t *testing.T) {
	tests := []struct {
		deg, want float64
	}{
		{0, 0},
		{180, math.Pi},
		{-90, -math.Pi / 2},
		{45, math.Pi / 4},
	}
	for _, tt := range tests {
		if got := radians(tt.deg); math.Abs(got-tt.want) > 1e-15 {
			t.Errorf("radians(%g) = %g, want %g", tt.deg, got, tt.want)
		}
	}
}
