package anim

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/lbzfran/gp-project/r3d"
)

// Handle resolves the object an animation acts on. It is called when the
// animation is built, not when the sequence is declared, so an Animator
// never holds on to an object between animations.
type Handle func() *r3d.Object

// Fixed is a Handle for an object whose lifetime covers the Animator.
func Fixed(obj *r3d.Object) Handle {
	return func() *r3d.Object { return obj }
}

func TranslateBy(h Handle, duration float32, delta mgl32.Vec3) Factory {
	return func() Animation {
		obj := h()
		if obj == nil {
			return nil
		}
		return NewTranslation(obj, duration, delta)
	}
}

// TranslateTo moves the object to dest, measured from wherever it is when
// the animation begins.
func TranslateTo(h Handle, duration float32, dest mgl32.Vec3) Factory {
	return func() Animation {
		obj := h()
		if obj == nil {
			return nil
		}
		return NewTranslation(obj, duration, dest.Sub(obj.Position()))
	}
}

func RotateBy(h Handle, duration float32, delta mgl32.Vec3) Factory {
	return func() Animation {
		obj := h()
		if obj == nil {
			return nil
		}
		return NewRotation(obj, duration, delta)
	}
}

func RotateTo(h Handle, duration float32, dest mgl32.Vec3) Factory {
	return func() Animation {
		obj := h()
		if obj == nil {
			return nil
		}
		return NewRotation(obj, duration, dest.Sub(obj.Orientation()))
	}
}

func Bezier(h Handle, duration float32, start, mid1, mid2, end mgl32.Vec3) Factory {
	return func() Animation {
		obj := h()
		if obj == nil {
			return nil
		}
		return NewBezierTranslation(obj, duration, start, mid1, mid2, end)
	}
}

// BezierFromCurrent starts the curve at the object's position at the time
// the animation begins.
func BezierFromCurrent(h Handle, duration float32, mid1, mid2, end mgl32.Vec3) Factory {
	return func() Animation {
		obj := h()
		if obj == nil {
			return nil
		}
		return NewBezierTranslation(obj, duration, obj.Position(), mid1, mid2, end)
	}
}

func Wait(h Handle, duration float32) Factory {
	return func() Animation {
		obj := h()
		if obj == nil {
			return nil
		}
		return NewPause(obj, duration)
	}
}
