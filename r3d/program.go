package r3d

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Program is the uniform-setting side of a linked shader program.
// Compilation and binding live with the renderer that implements it.
type Program interface {
	SetUniformMat4(name string, m mgl32.Mat4)
	SetUniformVec3(name string, v mgl32.Vec3)
	SetUniformFloat(name string, v float32)
}

// Drawer is implemented by programs that can issue draw calls directly.
type Drawer interface {
	DrawElements(label string, count int)
}

// Mesh is a single renderable geometry batch.
type Mesh interface {
	Render(p Program)
}

type DrawCall struct {
	Label   string
	Count   int
	Model   mgl32.Mat4
	Shine   float32
	Uniform int // number of uniform writes preceding the call
}

// Recorder is an in-memory Program. It keeps the last value of every
// uniform and a log of draw calls together with the model matrix that was
// bound when each call was issued.
type Recorder struct {
	Mat4s  map[string]mgl32.Mat4
	Vec3s  map[string]mgl32.Vec3
	Floats map[string]float32
	Calls  []DrawCall

	writes int
}

func NewRecorder() *Recorder {
	r := &Recorder{}
	r.Reset()
	return r
}

func (r *Recorder) Reset() {
	r.Mat4s = make(map[string]mgl32.Mat4)
	r.Vec3s = make(map[string]mgl32.Vec3)
	r.Floats = make(map[string]float32)
	r.Calls = r.Calls[:0]
	r.writes = 0
}

func (r *Recorder) SetUniformMat4(name string, m mgl32.Mat4) {
	r.Mat4s[name] = m
	r.writes++
}

func (r *Recorder) SetUniformVec3(name string, v mgl32.Vec3) {
	r.Vec3s[name] = v
	r.writes++
}

func (r *Recorder) SetUniformFloat(name string, v float32) {
	r.Floats[name] = v
	r.writes++
}

func (r *Recorder) DrawElements(label string, count int) {
	r.Calls = append(r.Calls, DrawCall{
		Label:   label,
		Count:   count,
		Model:   r.Mat4s[UniformModel],
		Shine:   r.Floats[UniformShininess],
		Uniform: r.writes,
	})
}

func (r *Recorder) Uniforms() int { return r.writes }

func (r *Recorder) String() string {
	return fmt.Sprintf("recorder: %d uniforms, %d draws", r.writes, len(r.Calls))
}
