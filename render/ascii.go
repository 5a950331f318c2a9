package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lguibr/golife/life"
)

// ANSI reset code appended after every colored cell
const ansiReset = "\033[0m"

// Character drawn for a live cell; two columns wide so the board renders
// roughly square in a terminal.
const liveCell = "██"
const deadCell = "  "

// hexToRGB parses a "#rrggbb" color token. Anything unparsable renders as
// white rather than failing the frame.
func hexToRGB(hex string) (uint8, uint8, uint8) {
	if len(hex) != 7 || hex[0] != '#' {
		return 255, 255, 255
	}
	value, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return 255, 255, 255
	}
	return uint8(value >> 16), uint8(value >> 8), uint8(value)
}

// rgbToAnsi converts an RGB color to a 24-bit ANSI foreground escape code.
func rgbToAnsi(r, g, b uint8) string {
	return fmt.Sprintf("\033[38;2;%d;%d;%dm", r, g, b)
}

// RenderBoard draws a sparse cell list as a size×size block of colored ASCII.
func RenderBoard(cells []life.CellUpdate, size int) string {
	colors := make(map[[2]int]string, len(cells))
	for _, c := range cells {
		colors[[2]int{c.X, c.Y}] = c.C
	}

	var sb strings.Builder
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			color, alive := colors[[2]int{x, y}]
			if !alive {
				sb.WriteString(deadCell)
				continue
			}
			r, g, b := hexToRGB(color)
			sb.WriteString(rgbToAnsi(r, g, b))
			sb.WriteString(liveCell)
			sb.WriteString(ansiReset)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
