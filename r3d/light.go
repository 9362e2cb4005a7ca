package r3d

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

type DirLight struct {
	Display   bool
	Direction mgl32.Vec3

	Ambient  mgl32.Vec3
	Diffuse  mgl32.Vec3
	Specular mgl32.Vec3
}

type PointLight struct {
	Display  bool
	Position mgl32.Vec3

	// attenuation
	Constant  float32
	Linear    float32
	Quadratic float32

	Ambient  mgl32.Vec3
	Diffuse  mgl32.Vec3
	Specular mgl32.Vec3
}

type SpotLight struct {
	Display   bool
	Position  mgl32.Vec3
	Direction mgl32.Vec3

	// cone edges in degrees
	CutOff      float32
	OuterCutOff float32

	Constant  float32
	Linear    float32
	Quadratic float32

	Ambient  mgl32.Vec3
	Diffuse  mgl32.Vec3
	Specular mgl32.Vec3
}

// Lighting is passed to the renderer every frame instead of living in
// globals.
type Lighting struct {
	Ambient mgl32.Vec3
	Dir     DirLight
	Point   PointLight
	Spot    SpotLight

	// Flashlight attaches the spot light to the camera eye and front.
	Flashlight bool
}

func DefaultLighting() Lighting {
	return Lighting{
		Ambient: mgl32.Vec3{0.1, 0.1, 0.1},
		Dir: DirLight{
			Display:   true,
			Direction: mgl32.Vec3{1, 1, 0},
			Ambient:   mgl32.Vec3{0.2, 0.2, 0.2},
			Diffuse:   mgl32.Vec3{0.6, 0.6, 0.6},
			Specular:  mgl32.Vec3{0.4, 0.4, 0.4},
		},
		Point: PointLight{
			Display:   true,
			Position:  mgl32.Vec3{2, 2, 0},
			Constant:  1,
			Linear:    0.14,
			Quadratic: 0.07,
			Ambient:   mgl32.Vec3{0.2, 0.2, 0.2},
			Diffuse:   mgl32.Vec3{0.8, 0.8, 0},
			Specular:  mgl32.Vec3{0.1, 0.1, 0.1},
		},
		Spot: SpotLight{
			Display:     true,
			Position:    mgl32.Vec3{0, 1, 0},
			Direction:   mgl32.Vec3{0, -1, 0},
			CutOff:      12.5,
			OuterCutOff: 15,
			Constant:    1,
			Linear:      0.35,
			Quadratic:   0.44,
			Ambient:     mgl32.Vec3{0, 0, 0},
			Diffuse:     mgl32.Vec3{0, 0, 0.4},
			Specular:    mgl32.Vec3{0.8, 0.8, 0.8},
		},
		Flashlight: true,
	}
}

// Apply binds the light uniforms. A light with Display unset is sent with
// black colors so shaders need no extra switch.
func (l *Lighting) Apply(p Program, cam *Camera) {
	p.SetUniformVec3("ambientColor", l.Ambient)

	p.SetUniformVec3("dirLight.direction", l.Dir.Direction)
	setColors(p, "dirLight", l.Dir.Display, l.Dir.Ambient, l.Dir.Diffuse, l.Dir.Specular)

	p.SetUniformVec3("pointLight.position", l.Point.Position)
	p.SetUniformFloat("pointLight.constant", l.Point.Constant)
	p.SetUniformFloat("pointLight.linear", l.Point.Linear)
	p.SetUniformFloat("pointLight.quadratic", l.Point.Quadratic)
	setColors(p, "pointLight", l.Point.Display, l.Point.Ambient, l.Point.Diffuse, l.Point.Specular)

	pos, dir := l.Spot.Position, l.Spot.Direction
	if l.Flashlight && cam != nil {
		pos, dir = cam.Position(), cam.Front()
	}
	p.SetUniformVec3("spotLight.position", pos)
	p.SetUniformVec3("spotLight.direction", dir)
	p.SetUniformFloat("spotLight.cutOff", math32.Cos(mgl32.DegToRad(l.Spot.CutOff)))
	p.SetUniformFloat("spotLight.outerCutOff", math32.Cos(mgl32.DegToRad(l.Spot.OuterCutOff)))
	p.SetUniformFloat("spotLight.constant", l.Spot.Constant)
	p.SetUniformFloat("spotLight.linear", l.Spot.Linear)
	p.SetUniformFloat("spotLight.quadratic", l.Spot.Quadratic)
	setColors(p, "spotLight", l.Spot.Display, l.Spot.Ambient, l.Spot.Diffuse, l.Spot.Specular)
}

func setColors(p Program, prefix string, display bool, ambient, diffuse, specular mgl32.Vec3) {
	if !display {
		ambient, diffuse, specular = mgl32.Vec3{}, mgl32.Vec3{}, mgl32.Vec3{}
	}
	p.SetUniformVec3(prefix+".ambient", ambient)
	p.SetUniformVec3(prefix+".diffuse", diffuse)
	p.SetUniformVec3(prefix+".specular", specular)
}
