package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/glm/gpulayout"
)

// shaderOpts holds the command-line flags for the shader command.
type shaderOpts struct {
	compile bool   // compile to SPIR-V instead of printing WGSL
	output  string // SPIR-V output path; empty means stdout
}

func (c *CLI) shaderCommand() *cobra.Command {
	var opts shaderOpts

	cmd := &cobra.Command{
		Use:   "shader",
		Short: "Print or compile the WGSL transform shader",
		Long: `Print the WGSL shader that consumes the Transforms uniform and per-instance
model matrices, or compile it to SPIR-V with --compile.`,
		Example: `  glm shader
  glm shader --compile -o transform.spv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runShader(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().BoolVar(&opts.compile, "compile", false, "compile to SPIR-V")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "SPIR-V output file (default stdout)")

	return cmd
}

func (c *CLI) runShader(w io.Writer, opts shaderOpts) error {
	if !opts.compile {
		if opts.output != "" {
			return fmt.Errorf("--output requires --compile")
		}
		_, err := io.WriteString(w, gpulayout.ShaderSource())
		return err
	}

	spirv, err := gpulayout.CompileShader()
	if err != nil {
		return err
	}
	if opts.output == "" {
		_, err = w.Write(spirv)
		return err
	}
	if err := os.WriteFile(opts.output, spirv, 0o644); err != nil {
		return fmt.Errorf("write shader: %w", err)
	}
	c.Logger.Info("wrote SPIR-V", "path", opts.output, "bytes", len(spirv))
	printSuccess(w, "%s (%d bytes)", opts.output, len(spirv))
	return nil
}
