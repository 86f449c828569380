package cli

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/glm"
)

// Projection kinds accepted in a scene file.
const (
	projPerspective = "perspective"
	projOrtho       = "ortho"
)

// defaultStackCapacity bounds push nesting while replaying model steps.
const defaultStackCapacity = 32

// Scene is the TOML description of a camera, a projection and a model
// transform. Angles are in degrees.
//
//	[camera]
//	eye = [0, 2, 5]
//	center = [0, 0, 0]
//	up = [0, 1, 0]
//
//	[projection]
//	kind = "perspective"
//	fovy = 45
//	aspect = 1.7778
//	near = 0.1
//	far = 100
//
//	[[model]]
//	op = "translate"
//	args = [1, 0, 0]
type Scene struct {
	Camera        Camera     `toml:"camera"`
	Projection    Projection `toml:"projection"`
	Model         []Step     `toml:"model"`
	StackCapacity int        `toml:"stack_capacity"`
}

// Camera places the viewer.
type Camera struct {
	Eye    [3]float64 `toml:"eye"`
	Center [3]float64 `toml:"center"`
	Up     [3]float64 `toml:"up"`
}

// Projection selects and parameterizes the projection matrix.
type Projection struct {
	Kind   string  `toml:"kind"`
	Fovy   float64 `toml:"fovy"`
	Aspect float64 `toml:"aspect"`
	Near   float64 `toml:"near"`
	Far    float64 `toml:"far"`

	// Ortho bounds.
	Left   float64 `toml:"left"`
	Right  float64 `toml:"right"`
	Bottom float64 `toml:"bottom"`
	Top    float64 `toml:"top"`
}

// Step is one matrix stack operation: push, pop, identity, translate,
// scale or rotate.
type Step struct {
	Op   string    `toml:"op"`
	Args []float64 `toml:"args"`
}

// DefaultScene looks at the origin from (0, 2, 5) through a 45° perspective.
func DefaultScene() Scene {
	return Scene{
		Camera: Camera{
			Eye: [3]float64{0, 2, 5},
			Up:  [3]float64{0, 1, 0},
		},
		Projection: Projection{
			Kind:   projPerspective,
			Fovy:   45,
			Aspect: 16.0 / 9.0,
			Near:   0.1,
			Far:    100,
		},
		StackCapacity: defaultStackCapacity,
	}
}

// LoadScene reads a scene file on top of DefaultScene.
func LoadScene(path string) (Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return Scene{}, fmt.Errorf("open scene: %w", err)
	}
	defer f.Close()
	return DecodeScene(f)
}

// DecodeScene parses TOML from r on top of DefaultScene. Unknown keys are
// rejected so typos do not silently fall back to defaults.
func DecodeScene(r io.Reader) (Scene, error) {
	s := DefaultScene()
	md, err := toml.NewDecoder(r).Decode(&s)
	if err != nil {
		return Scene{}, fmt.Errorf("parse scene: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Scene{}, fmt.Errorf("parse scene: unknown keys %v", undecoded)
	}
	if err := s.Validate(); err != nil {
		return Scene{}, err
	}
	return s, nil
}

// Validate checks the projection parameters and model steps.
func (s *Scene) Validate() error {
	p := s.Projection
	switch p.Kind {
	case projPerspective:
		if p.Fovy <= 0 || p.Fovy >= 180 {
			return fmt.Errorf("projection: fovy %g out of range (0, 180)", p.Fovy)
		}
		if p.Aspect <= 0 {
			return fmt.Errorf("projection: aspect must be positive, got %g", p.Aspect)
		}
		if p.Near <= 0 || p.Far <= p.Near {
			return fmt.Errorf("projection: need 0 < near < far, got near=%g far=%g", p.Near, p.Far)
		}
	case projOrtho:
		if p.Left == p.Right || p.Bottom == p.Top || p.Near == p.Far {
			return fmt.Errorf("projection: degenerate ortho box")
		}
	default:
		return fmt.Errorf("projection: unknown kind %q", p.Kind)
	}
	if s.StackCapacity < 1 {
		return fmt.Errorf("stack_capacity must be at least 1, got %d", s.StackCapacity)
	}
	for i, st := range s.Model {
		if err := st.validate(); err != nil {
			return fmt.Errorf("model step %d: %w", i, err)
		}
	}
	return nil
}

// Matrices builds the model, view and projection matrices of the scene.
func (s *Scene) Matrices() (model, view, proj glm.Mat4d, err error) {
	stack, err := glm.NewMatrixStack[float64](s.StackCapacity)
	if err != nil {
		return model, view, proj, err
	}
	if err = replay(stack, s.Model); err != nil {
		return model, view, proj, err
	}
	stack.Get(&model)

	c := s.Camera
	view.LookAt(vec3(c.Eye), vec3(c.Center), vec3(c.Up))

	p := s.Projection
	if p.Kind == projOrtho {
		proj.Ortho(p.Left, p.Right, p.Bottom, p.Top, p.Near, p.Far)
	} else {
		proj.Perspective(radians(p.Fovy), p.Aspect, p.Near, p.Far)
	}
	return model, view, proj, nil
}

func vec3(a [3]float64) glm.Vec3d {
	return glm.V3(a[0], a[1], a[2])
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// arity returns the accepted argument counts of op.
func arity(op string) ([]int, bool) {
	switch op {
	case "push", "pop", "identity":
		return []int{0}, true
	case "translate":
		return []int{3}, true
	case "scale":
		return []int{1, 3}, true
	case "rotate":
		return []int{4}, true
	}
	return nil, false
}

func (st Step) validate() error {
	counts, ok := arity(st.Op)
	if !ok {
		return fmt.Errorf("unknown op %q", st.Op)
	}
	for _, n := range counts {
		if len(st.Args) == n {
			return nil
		}
	}
	return fmt.Errorf("op %q takes %v arguments, got %d", st.Op, counts, len(st.Args))
}

// ParseStep parses the command-line form of a step: the op name, then an
// optional colon and comma-separated arguments, e.g. "translate:1,0,-2",
// "scale:2", "rotate:90,0,1,0" or "push".
func ParseStep(s string) (Step, error) {
	op, rest, hasArgs := strings.Cut(s, ":")
	st := Step{Op: strings.ToLower(strings.TrimSpace(op))}
	if hasArgs && rest != "" {
		for _, field := range strings.Split(rest, ",") {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return Step{}, fmt.Errorf("step %q: %w", s, err)
			}
			st.Args = append(st.Args, v)
		}
	}
	if err := st.validate(); err != nil {
		return Step{}, fmt.Errorf("step %q: %w", s, err)
	}
	return st, nil
}

// replay applies steps to stack in order. It stops at the first stack
// error, reporting which step failed.
func replay(stack *glm.MatrixStack[float64], steps []Step) error {
	for i, st := range steps {
		err := st.validate()
		if err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
		a := st.Args
		switch st.Op {
		case "push":
			err = stack.Push()
		case "pop":
			err = stack.Pop()
		case "identity":
			stack.LoadIdentity()
		case "translate":
			stack.Translate(a[0], a[1], a[2])
		case "scale":
			if len(a) == 1 {
				stack.Scale(a[0], a[0], a[0])
			} else {
				stack.Scale(a[0], a[1], a[2])
			}
		case "rotate":
			axis := glm.V3(a[1], a[2], a[3]).Normalize()
			stack.Rotate(radians(a[0]), axis.X, axis.Y, axis.Z)
		}
		if err != nil {
			return fmt.Errorf("step %d (%s): %w", i+1, st.Op, err)
		}
	}
	return nil
}
