package world

import (
	"github.com/silbinarywolf/toy-pixel-box/internal/ent"
)

const (
	// ScreenWidth and ScreenHeight are the logical size of the frame buffer,
	// the window can be any size and the renderer scales to fit.
	ScreenWidth  = 320
	ScreenHeight = 240
)

// bytesPerPixel is R, G, B, A
const bytesPerPixel = 4

var (
	// BoxColor is the RGBA color of pixels covered by the box
	BoxColor = [bytesPerPixel]byte{0x5e, 0x48, 0xe8, 0xff}
	// BackgroundColor is the RGBA color of every other pixel
	BackgroundColor = [bytesPerPixel]byte{0x48, 0xb2, 0xe8, 0xff}
)

type Options struct {
	// Width of the drawing surface
	//
	// If not set, this will default to ScreenWidth
	Width int
	// Height of the drawing surface
	//
	// If not set, this will default to ScreenHeight
	Height int
	// BoxSize is the side length of the box
	//
	// If not set, this will default to ent.DefaultBoxSize
	BoxSize int
}

type World struct {
	Box           ent.Box
	Width, Height int
}

// New creates a world with a box at its starting position
func New(options Options) *World {
	if options.Width == 0 {
		options.Width = ScreenWidth
	}
	if options.Height == 0 {
		options.Height = ScreenHeight
	}
	world := &World{
		Width:  options.Width,
		Height: options.Height,
	}
	world.Box.Size = options.BoxSize
	world.Box.Init()
	return world
}

// FrameLen is the exact byte length of the frame buffer Draw expects
func (world *World) FrameLen() int {
	return world.Width * world.Height * bytesPerPixel
}

func (world *World) Update() {
	world.Box.Update(world.Width, world.Height)
}

// Draw writes every pixel of the frame, box pixels with BoxColor and
// the rest with BackgroundColor.
//
// frame must be exactly FrameLen() bytes long.
func (world *World) Draw(frame []byte) {
	box := &world.Box
	width := world.Width
	for i := 0; i+bytesPerPixel <= len(frame); i += bytesPerPixel {
		pixelIndex := i / bytesPerPixel
		x := pixelIndex % width
		y := pixelIndex / width

		rgba := &BackgroundColor
		if box.Contains(x, y) {
			rgba = &BoxColor
		}
		copy(frame[i:i+bytesPerPixel], rgba[:])
	}
}
