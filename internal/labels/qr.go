package labels

import (
	"fmt"
	"html/template"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

type Level int

const (
	LevelMedium Level = iota
	LevelHigh
)

func (l Level) recovery() qrcode.RecoveryLevel {
	if l == LevelHigh {
		return qrcode.High
	}
	return qrcode.Medium
}

// QRSVG renders payload as an inline SVG of size x size pixels with a quiet
// zone of one module.
func QRSVG(payload string, level Level, size int) (template.HTML, error) {
	code, err := qrcode.New(payload, level.recovery())
	if err != nil {
		return "", fmt.Errorf("failed to encode QR code: %w", err)
	}
	code.DisableBorder = true
	bitmap := code.Bitmap()
	n := len(bitmap) + 2

	var path strings.Builder
	for y, row := range bitmap {
		for x, dark := range row {
			if dark {
				fmt.Fprintf(&path, "M%d %dh1v1h-1z", x+1, y+1)
			}
		}
	}

	svg := fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" shape-rendering="crispEdges">`+
			`<rect width="%d" height="%d" fill="#FFFFFF"/><path fill="#000000" d="%s"/></svg>`,
		size, size, n, n, n, n, path.String(),
	)
	return template.HTML(svg), nil
}
