package kface

import "image"
import "image/draw"
import "strings"

import "golang.org/x/image/font"
import "golang.org/x/image/math/fixed"

import "github.com/tinne26/kerntab/fract"

// Returns the advance width of the widest line in the given text,
// kerning included. Line breaks reset kerning: the first glyph of a
// line is never kerned against the last glyph of the previous one.
func Measure(face font.Face, text string) fract.Unit {
	var width fract.Unit
	for _, line := range strings.Split(text, "\n") {
		lineWidth := fract.FromFixed(font.MeasureString(face, line))
		if lineWidth > width { width = lineWidth }
	}
	return width
}

// Draws the given text on dst, starting with the baseline of the
// first line at (x, y). Each line break moves the baseline down by
// the face's line height and brings the dot back to x. Returns the
// final dot x position.
//
// Kerning is applied by font.Drawer through the face's Kern method,
// so a [Face] will apply its table automatically.
func Draw(dst draw.Image, face font.Face, src image.Image, x, y int, text string) fract.Unit {
	lineHeight := face.Metrics().Height
	drawer := font.Drawer{
		Dst: dst,
		Src: src,
		Face: face,
		Dot: fixed.P(x, y),
	}
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			drawer.Dot.X = fixed.I(x)
			drawer.Dot.Y += lineHeight
		}
		drawer.DrawString(line)
	}
	return fract.FromFixed(drawer.Dot.X)
}
