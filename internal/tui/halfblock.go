package tui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const upperHalf = "▀"

type cellColors struct {
	top, bottom string
}

// halfblocks renders img as rows of upper-half blocks: the foreground is the
// top pixel of each pair and the background the bottom one.
func halfblocks(img image.Image) string {
	b := img.Bounds()
	styles := make(map[cellColors]lipgloss.Style)

	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += pixelsPerRow {
		if y > b.Min.Y {
			sb.WriteByte('\n')
		}
		for x := b.Min.X; x < b.Max.X; x++ {
			key := cellColors{top: hexColor(img.At(x, y))}
			if y+1 < b.Max.Y {
				key.bottom = hexColor(img.At(x, y+1))
			} else {
				key.bottom = key.top
			}

			style, ok := styles[key]
			if !ok {
				style = lipgloss.NewStyle().
					Foreground(lipgloss.Color(key.top)).
					Background(lipgloss.Color(key.bottom))
				styles[key] = style
			}
			sb.WriteString(style.Render(upperHalf))
		}
	}
	return sb.String()
}

func hexColor(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}
