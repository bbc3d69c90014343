package rimage

import (
	stdimage "image"
	"image/color"

	"golang.org/x/image/draw"
)

// grayAdapter exposes a single-channel uint8 Image as a draw.Image so the
// 1-pixel outline/edge helpers below can be expressed with
// golang.org/x/image/draw instead of hand-rolled pixel loops.
type grayAdapter[Tag any] struct {
	img *Image[uint8, Tag]
}

func (a grayAdapter[Tag]) ColorModel() color.Model { return color.GrayModel }

func (a grayAdapter[Tag]) Bounds() stdimage.Rectangle {
	return stdimage.Rect(0, 0, a.img.Width, a.img.Height)
}

func (a grayAdapter[Tag]) At(x, y int) color.Color {
	if !a.img.InBounds(x, y) {
		return color.Gray{}
	}
	return color.Gray{Y: a.img.AtUnchecked(x, y, 0)}
}

func (a grayAdapter[Tag]) Set(x, y int, c color.Color) {
	if !a.img.InBounds(x, y) {
		return
	}
	g := color.GrayModel.Convert(c).(color.Gray)
	a.img.SetUnchecked(x, y, 0, g.Y)
}

func roiRect(r ROI) stdimage.Rectangle {
	return stdimage.Rect(r.L, r.T, r.R, r.B)
}

func fillRect(dst draw.Image, r stdimage.Rectangle, value uint8) {
	if r.Empty() {
		return
	}
	draw.Draw(dst, r, &stdimage.Uniform{C: color.Gray{Y: value}}, stdimage.Point{}, draw.Src)
}

// DrawROIOutline draws a 1-pixel outline of roi (clamped to the image
// bounds) onto img's channel 0, writing value on the border. Idempotent
// when invoked twice.
func DrawROIOutline[Tag any](img *Image[uint8, Tag], roi ROI, value uint8) {
	r := roi.Clamp(img.Width, img.Height)
	if r.Empty() {
		return
	}
	dst := grayAdapter[Tag]{img: img}
	rect := roiRect(r)
	fillRect(dst, stdimage.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+1), value)
	fillRect(dst, stdimage.Rect(rect.Min.X, rect.Max.Y-1, rect.Max.X, rect.Max.Y), value)
	fillRect(dst, stdimage.Rect(rect.Min.X, rect.Min.Y, rect.Min.X+1, rect.Max.Y), value)
	fillRect(dst, stdimage.Rect(rect.Max.X-1, rect.Min.Y, rect.Max.X, rect.Max.Y), value)
}

// DrawEdge draws a 1-pixel outline of img's own bounds, confined to roi.
// Only the portions of the image edge that fall inside roi are drawn.
// Idempotent when invoked twice.
func DrawEdge[Tag any](img *Image[uint8, Tag], roi ROI, value uint8) {
	full := ROI{L: 0, T: 0, R: img.Width, B: img.Height}
	r := roi.Intersect(full)
	if r.Empty() {
		return
	}
	dst := grayAdapter[Tag]{img: img}
	rect := roiRect(r)

	if r.T == 0 {
		fillRect(dst, stdimage.Rect(rect.Min.X, 0, rect.Max.X, 1), value)
	}
	if r.B == img.Height {
		fillRect(dst, stdimage.Rect(rect.Min.X, img.Height-1, rect.Max.X, img.Height), value)
	}
	if r.L == 0 {
		fillRect(dst, stdimage.Rect(0, rect.Min.Y, 1, rect.Max.Y), value)
	}
	if r.R == img.Width {
		fillRect(dst, stdimage.Rect(img.Width-1, rect.Min.Y, img.Width, rect.Max.Y), value)
	}
}
