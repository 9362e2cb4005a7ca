package viewer

import "github.com/go-gl/mathgl/mgl32"

// Input is the user input gathered for one frame.
type Input struct {
	// Move is x forward, y up and z right, each in [-1, 1].
	Move mgl32.Vec3

	MouseDX float32
	MouseDY float32
	Scroll  float32

	ToggleTarget bool
	ToggleFocus  bool

	// Resize carries the new window size, if it changed.
	Resize *[2]float32
}

// Keys is the held state of the movement keys.
type Keys struct {
	Forward, Back bool
	Left, Right   bool
	Up, Down      bool
}

// Move converts held keys into a movement direction. Opposite keys cancel.
func (k Keys) Move() mgl32.Vec3 {
	return mgl32.Vec3{
		axis(k.Forward, k.Back),
		axis(k.Up, k.Down),
		axis(k.Right, k.Left),
	}
}

func axis(pos, neg bool) float32 {
	var v float32
	if pos {
		v++
	}
	if neg {
		v--
	}
	return v
}
