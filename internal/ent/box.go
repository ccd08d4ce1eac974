// ent is the entity package
package ent

// Box is a square that bounces around inside the screen bounds.
//
// Position can sit one pixel outside the bounds for a single tick, the
// reflection is decided on the position before the move.
type Box struct {
	X, Y int
	// Hspeed and Vspeed are in pixels per tick
	Hspeed, Vspeed int
	// Size is the side length of the box, it never changes after Init
	Size int
}

const (
	// DefaultBoxSize is the side length of the box in pixels
	DefaultBoxSize = 64
)

func (self *Box) Init() {
	self.X = 24
	self.Y = 16
	self.Hspeed = 1
	self.Vspeed = 1
	if self.Size == 0 {
		self.Size = DefaultBoxSize
	}
}

// Advance returns the box after one tick within a surface of width x height
func (self Box) Advance(width, height int) Box {
	if self.X <= 0 || self.X+self.Size > width {
		self.Hspeed = -self.Hspeed
	}
	if self.Y <= 0 || self.Y+self.Size > height {
		self.Vspeed = -self.Vspeed
	}
	self.X += self.Hspeed
	self.Y += self.Vspeed
	return self
}

// Update bounces the box around the screen
func (self *Box) Update(width, height int) {
	*self = self.Advance(width, height)
}

// Contains reports whether the pixel at (x, y) is covered by the box
func (self *Box) Contains(x, y int) bool {
	return x >= self.X &&
		x < self.X+self.Size &&
		y >= self.Y &&
		y < self.Y+self.Size
}
