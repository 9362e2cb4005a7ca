package r3d

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestLightingApply(t *testing.T) {
	l := DefaultLighting()
	l.Flashlight = false
	rec := NewRecorder()

	l.Apply(rec, nil)

	assert.Equal(t, mgl32.Vec3{0.1, 0.1, 0.1}, rec.Vec3s["ambientColor"])
	assert.Equal(t, mgl32.Vec3{1, 1, 0}, rec.Vec3s["dirLight.direction"])
	assert.Equal(t, mgl32.Vec3{0.8, 0.8, 0}, rec.Vec3s["pointLight.diffuse"])
	assert.Equal(t, float32(0.14), rec.Floats["pointLight.linear"])
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, rec.Vec3s["spotLight.position"])
	assert.InDelta(t, math.Cos(12.5*math.Pi/180), rec.Floats["spotLight.cutOff"], 1e-6)
	assert.InDelta(t, math.Cos(15*math.Pi/180), rec.Floats["spotLight.outerCutOff"], 1e-6)
}

func TestLightingFlashlightFollowsCamera(t *testing.T) {
	l := DefaultLighting()
	cam := NewDefaultCamera()
	cam.ProcessKeyboard(mgl32.Vec3{0, 1, 0}, 1)
	rec := NewRecorder()

	l.Apply(rec, cam)

	assert.Equal(t, cam.Position(), rec.Vec3s["spotLight.position"])
	assert.Equal(t, cam.Front(), rec.Vec3s["spotLight.direction"])
}

func TestLightingHiddenLightIsBlack(t *testing.T) {
	l := DefaultLighting()
	l.Point.Display = false
	rec := NewRecorder()

	l.Apply(rec, nil)

	assert.Equal(t, mgl32.Vec3{}, rec.Vec3s["pointLight.ambient"])
	assert.Equal(t, mgl32.Vec3{}, rec.Vec3s["pointLight.diffuse"])
	assert.Equal(t, mgl32.Vec3{}, rec.Vec3s["pointLight.specular"])
	assert.Equal(t, mgl32.Vec3{0.2, 0.2, 0.2}, rec.Vec3s["dirLight.ambient"])
}
