package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gogpu/glm"
)

// quatTolerance bounds the disagreement between the matrix and quaternion
// rotation paths before a warning is printed.
const quatTolerance = 1e-9

// transformOpts holds the command-line flags for the transform command.
type transformOpts struct {
	angle float64   // degrees
	axis  []float64 // rotation axis, need not be unit length
	vec   []float64 // vector to rotate
}

func (c *CLI) transformCommand() *cobra.Command {
	opts := transformOpts{
		axis: []float64{0, 0, 1},
		vec:  []float64{1, 0, 0},
	}

	cmd := &cobra.Command{
		Use:   "transform",
		Short: "Rotate a vector about an axis",
		Long: `Rotate a vector by --angle degrees about --axis and print the rotation
matrix and the result. The axis is normalized first. The result is also
computed through a quaternion and the two are compared.`,
		Example: `  glm transform --angle 90 --axis 1,0,0 --vec 0,1,0
  glm transform --angle=-45 --axis=0,1,0 --vec=1,0,0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTransform(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().Float64VarP(&opts.angle, "angle", "a", 90, "rotation angle in degrees")
	cmd.Flags().Float64SliceVar(&opts.axis, "axis", opts.axis, "rotation axis x,y,z")
	cmd.Flags().Float64SliceVar(&opts.vec, "vec", opts.vec, "vector x,y,z to rotate")

	return cmd
}

func (c *CLI) runTransform(w io.Writer, opts transformOpts) error {
	if len(opts.axis) != 3 {
		return fmt.Errorf("axis needs 3 components, got %d", len(opts.axis))
	}
	if len(opts.vec) != 3 {
		return fmt.Errorf("vec needs 3 components, got %d", len(opts.vec))
	}
	axis := glm.V3(opts.axis[0], opts.axis[1], opts.axis[2])
	if axis.Length() == 0 {
		return fmt.Errorf("axis must be non-zero")
	}
	axis = axis.Normalize()
	v := glm.V3(opts.vec[0], opts.vec[1], opts.vec[2])
	angle := radians(opts.angle)

	var rot glm.Mat3d
	rot.RotationAxis(angle, axis)
	out := v
	rot.Transform(&out)

	viaQuat := glm.QuatAxisAngle(angle, axis).Rotate(v)
	c.Logger.Debug("rotated", "angle", opts.angle, "axis", axis, "matrix", out, "quat", viaQuat)

	printMat3(w, fmt.Sprintf("Rotation %s° about %s", formatElement(opts.angle), formatVec(axis)), &rot)
	fmt.Fprintln(w, StyleTitle.Render("Result")+" "+formatVec(out))

	if !out.Approx(viaQuat, quatTolerance) {
		printWarning(w, "quaternion path disagrees: %s", formatVec(viaQuat))
	}
	return nil
}
