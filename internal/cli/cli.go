// Package cli implements the glm command-line interface.
//
// The commands are thin drivers over the glm packages, useful for checking
// a transform by hand:
//   - mvp: build model, view and projection matrices from a TOML scene
//   - invert: invert a 3x3 or 4x4 matrix given on the command line
//   - transform: rotate a vector about an axis
//   - stack: replay push/pop/translate/scale/rotate steps on a MatrixStack
//   - shader: print or compile the WGSL transform shader
//
// All commands support --verbose (-v) for debug-level logging, which also
// routes the library's own slog output to the same logger.
package cli

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gogpu/glm"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger  *log.Logger
	verbose bool
}

// New creates a CLI whose logger writes to w, and routes glm's library
// logging through it.
func New(w io.Writer, level log.Level) *CLI {
	c := &CLI{Logger: newLogger(w, level)}
	glm.SetLogger(slog.New(c.Logger))
	return c
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "glm",
		Short:        "glm inspects 3D transformation matrices",
		Long:         `glm builds, composes and inverts the 3x3 and 4x4 matrices of a model/view/projection pipeline and shows how they are packed for the GPU.`,
		Version:      glm.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if c.verbose {
				c.SetLogLevel(LogDebug)
			}
		},
	}

	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.mvpCommand())
	root.AddCommand(c.invertCommand())
	root.AddCommand(c.transformCommand())
	root.AddCommand(c.stackCommand())
	root.AddCommand(c.shaderCommand())

	return root
}
