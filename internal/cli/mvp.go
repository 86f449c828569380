package cli

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gogpu/glm"
	"github.com/gogpu/glm/gpulayout"
)

const (
	formatText    = "text"
	formatJSON    = "json"
	formatUniform = "uniform"
)

// mvpOpts holds the command-line flags for the mvp command.
type mvpOpts struct {
	config string // scene TOML path; empty means DefaultScene
	format string // output format: text, json or uniform
}

// mvpResult is the JSON form of the mvp command's output. Matrices are
// column-major, the order a uniform upload expects.
type mvpResult struct {
	Model      []float64 `json:"model"`
	View       []float64 `json:"view"`
	Projection []float64 `json:"projection"`
	MVP        []float64 `json:"mvp"`
	Normal     []float64 `json:"normal"`
}

func (c *CLI) mvpCommand() *cobra.Command {
	opts := mvpOpts{format: formatText}

	cmd := &cobra.Command{
		Use:   "mvp",
		Short: "Build model, view and projection matrices from a scene",
		Long: `Build the model, view and projection matrices described by a TOML scene
file (or the built-in default scene) and print them with their product.

Formats:
  text     boxed matrices, rows as written on paper
  json     column-major arrays
  uniform  hex dump of the 240-byte WGSL Transforms uniform`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runMVP(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "scene TOML file")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatText, "output format: text, json, uniform")

	return cmd
}

func (c *CLI) runMVP(w io.Writer, opts mvpOpts) error {
	scene := DefaultScene()
	if opts.config != "" {
		var err error
		if scene, err = LoadScene(opts.config); err != nil {
			return err
		}
		c.Logger.Debug("loaded scene", "path", opts.config, "steps", len(scene.Model))
	}

	model, view, proj, err := scene.Matrices()
	if err != nil {
		return err
	}

	var tr gpulayout.Transforms[float64]
	tr.Update(&model, &view, &proj)
	var mvp glm.Mat4d
	tr.MVP(&mvp)

	switch opts.format {
	case formatText:
		printMat4(w, "Model", &tr.Model)
		printMat4(w, "View", &tr.View)
		printMat4(w, "Projection", &tr.Projection)
		printMat4(w, "Projection · View · Model", &mvp)
		printMat3(w, "Normal", &tr.Normal)
		return nil

	case formatJSON:
		res := mvpResult{
			Model:      columnMajor4(&tr.Model),
			View:       columnMajor4(&tr.View),
			Projection: columnMajor4(&tr.Projection),
			MVP:        columnMajor4(&mvp),
			Normal:     columnMajor3(&tr.Normal),
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)

	case formatUniform:
		buf := make([]byte, gpulayout.TransformsSize)
		if _, err := tr.Encode(buf); err != nil {
			return err
		}
		_, err := io.WriteString(w, hex.Dump(buf))
		return err
	}
	return fmt.Errorf("unknown format %q (want %s, %s or %s)", opts.format, formatText, formatJSON, formatUniform)
}

func columnMajor4(m *glm.Mat4d) []float64 {
	buf := glm.NewBuffer[float64](16)
	m.Get(buf)
	return buf.Written()
}

func columnMajor3(m *glm.Mat3d) []float64 {
	buf := glm.NewBuffer[float64](9)
	m.Get(buf)
	return buf.Written()
}
