package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gogpu/glm"
)

// stackOpts holds the command-line flags for the stack command.
type stackOpts struct {
	capacity int // matrix stack slots
}

func (c *CLI) stackCommand() *cobra.Command {
	opts := stackOpts{capacity: defaultStackCapacity}

	cmd := &cobra.Command{
		Use:   "stack <step>...",
		Short: "Replay matrix stack operations",
		Long: `Replay a sequence of operations on a matrix stack and print the current
matrix afterwards. Each step is an op name with optional comma-separated
arguments after a colon:

  push                  save the current matrix
  pop                   restore the last saved matrix
  identity              reset the current matrix
  translate:x,y,z       compose a translation
  scale:s or scale:x,y,z
  rotate:deg,x,y,z      compose a rotation about an axis

Operations compose on the right, so the last step is applied to vertices
first. Pushing past --capacity or popping an empty stack is an error.`,
		Example: `  glm stack push translate:1,0,0 rotate:90,0,0,1 scale:2
  glm stack --capacity 1 push push`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			steps := make([]Step, 0, len(args))
			for _, a := range args {
				st, err := ParseStep(a)
				if err != nil {
					return err
				}
				steps = append(steps, st)
			}
			return c.runStack(cmd.OutOrStdout(), steps, opts)
		},
	}

	cmd.Flags().IntVar(&opts.capacity, "capacity", opts.capacity, "number of matrix stack slots")

	return cmd
}

func (c *CLI) runStack(w io.Writer, steps []Step, opts stackOpts) error {
	stack, err := glm.NewMatrixStack[float64](opts.capacity)
	if err != nil {
		return err
	}
	c.Logger.Debug("replaying", "steps", len(steps), "capacity", stack.Capacity())

	if err := replay(stack, steps); err != nil {
		c.Logger.Error("replay stopped", "depth", stack.Depth(), "err", err)
		return err
	}

	var m glm.Mat4d
	stack.Get(&m)
	printMat4(w, "Current", &m)
	printSuccess(w, "%d steps, depth %d of %d", len(steps), stack.Depth(), stack.Capacity())
	return nil
}
