// Package icon renders the application and tray icons procedurally:
// a messenger-green roundel, with a red unread badge composited in the
// lower-right corner when the unread count is positive.
package icon

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Tray icon geometry. 22px matches the common tray slot size; the
// badge sits in the lower-right quadrant.
const (
	trayIconSize    = 22
	badgeRadius     = 7
	badgeCenterOff  = trayIconSize - badgeRadius - 1
	maxBadgeNumeral = 9
)

var (
	// Classic messenger green for the base roundel.
	trayBaseColor   = color.RGBA{R: 0x4c, G: 0xb0, B: 0x4f, A: 0xff}
	trayRingColor   = color.RGBA{R: 0x2e, G: 0x7d, B: 0x32, A: 0xff}
	badgeFillColor  = color.RGBA{R: 0xd3, G: 0x2f, B: 0x2f, A: 0xff}
	badgeTextColor  = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	badgeTextShadow = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xc8}
)

// Render draws the tray icon as PNG bytes. A positive unread count
// adds a red badge with the count; counts above 9 render "9+".
func Render(unread int) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, trayIconSize, trayIconSize))

	center := trayIconSize / 2
	fillCircle(img, center, center, center-1, trayBaseColor)
	strokeCircle(img, center, center, center-1, trayRingColor)

	if unread > 0 {
		label := fmt.Sprintf("%d", unread)
		if unread > maxBadgeNumeral {
			label = "9+"
		}
		fillCircle(img, badgeCenterOff, badgeCenterOff, badgeRadius, badgeFillColor)
		drawBadgeText(img, label, badgeCenterOff, badgeCenterOff)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode tray icon: %w", err)
	}
	return buf.Bytes(), nil
}

// fillCircle fills a circle clipped to the image bounds.
func fillCircle(img *image.RGBA, cx, cy, r int, c color.Color) {
	bounds := img.Bounds()
	src := image.NewUniform(c)
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			if !inBounds(bounds, x, y) {
				continue
			}
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r*r {
				draw.Draw(img, image.Rect(x, y, x+1, y+1), src, image.Point{}, draw.Over)
			}
		}
	}
}

// strokeCircle draws a 1px circle outline.
func strokeCircle(img *image.RGBA, cx, cy, r int, c color.Color) {
	bounds := img.Bounds()
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			if !inBounds(bounds, x, y) {
				continue
			}
			dx, dy := x-cx, y-cy
			d := dx*dx + dy*dy
			if d <= r*r && d >= (r-1)*(r-1) {
				img.Set(x, y, c)
			}
		}
	}
}

func inBounds(bounds image.Rectangle, x, y int) bool {
	return x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y
}

// drawBadgeText centers the label at (x, y) with a 1px shadow pass for
// legibility at tray sizes. basicfont.Face7x13 glyphs are 7px wide.
func drawBadgeText(img *image.RGBA, text string, x, y int) {
	textWidth := len(text) * 7
	offsetX := x - textWidth/2
	offsetY := y + 4 // baseline adjustment for Face7x13 at this size

	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			d := &font.Drawer{
				Dst:  img,
				Src:  image.NewUniform(badgeTextShadow),
				Face: basicfont.Face7x13,
				Dot: fixed.Point26_6{
					X: fixed.Int26_6((offsetX + dx) * 64),
					Y: fixed.Int26_6((offsetY + dy) * 64),
				},
			}
			d.DrawString(text)
		}
	}

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(badgeTextColor),
		Face: basicfont.Face7x13,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(offsetX * 64),
			Y: fixed.Int26_6(offsetY * 64),
		},
	}
	d.DrawString(text)
}
