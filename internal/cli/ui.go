package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gogpu/glm"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - titles
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorDim    = lipgloss.Color("240") // Dim gray - borders, zeros
)

// =============================================================================
// Styles
// =============================================================================

var (
	// StyleTitle for matrix captions.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleValue for matrix elements.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleDim for zero elements and secondary text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)

	styleMatrixBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)
)

const (
	iconSuccess = "✓"
	iconWarning = "!"
)

// =============================================================================
// Status Output
// =============================================================================

func printSuccess(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+msg)
}

func printWarning(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconWarning.Render(iconWarning)+" "+StyleWarning.Render(msg))
}

// =============================================================================
// Matrix Output
// =============================================================================

// formatElement renders v in plain decimal notation.
func formatElement(v float64) string {
	if v == 0 {
		v = 0 // drop the sign of -0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// trimDecimals cuts s to at most six decimals.
func trimDecimals(s string) string {
	if i := strings.IndexByte(s, '.'); i >= 0 && len(s)-i > 7 {
		s = strings.TrimRight(s[:i+7], "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		return "0"
	}
	return s
}

// formatVec renders v as "(x, y, z)".
func formatVec(v glm.Vec3d) string {
	return "(" + trimDecimals(formatElement(v.X)) + ", " +
		trimDecimals(formatElement(v.Y)) + ", " +
		trimDecimals(formatElement(v.Z)) + ")"
}

// renderGrid lays out n×n elements given in column-major order as rows of
// right-aligned cells.
func renderGrid(colMajor []float64, n int) string {
	cells := make([]string, len(colMajor))
	width := 0
	for i, v := range colMajor {
		cells[i] = trimDecimals(formatElement(v))
		width = max(width, len(cells[i]))
	}
	var b strings.Builder
	for r := range n {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := range n {
			if c > 0 {
				b.WriteString("  ")
			}
			cell := fmt.Sprintf("%*s", width, cells[c*n+r])
			if colMajor[c*n+r] == 0 {
				b.WriteString(StyleDim.Render(cell))
			} else {
				b.WriteString(StyleValue.Render(cell))
			}
		}
	}
	return b.String()
}

// printMat4 writes a titled, boxed 4x4 matrix.
func printMat4(w io.Writer, title string, m *glm.Mat4d) {
	buf := glm.NewBuffer[float64](16)
	m.Get(buf)
	fmt.Fprintln(w, StyleTitle.Render(title))
	fmt.Fprintln(w, styleMatrixBox.Render(renderGrid(buf.Written(), 4)))
}

// printMat3 writes a titled, boxed 3x3 matrix.
func printMat3(w io.Writer, title string, m *glm.Mat3d) {
	buf := glm.NewBuffer[float64](9)
	m.Get(buf)
	fmt.Fprintln(w, StyleTitle.Render(title))
	fmt.Fprintln(w, styleMatrixBox.Render(renderGrid(buf.Written(), 3)))
}
