package flyscene

import (
	"fmt"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func luminance(c mgl32.Vec3) float32 {
	return 0.2126*c[0] + 0.7152*c[1] + 0.0722*c[2]
}

func TestShadeAmbientOnly(t *testing.T) {
	mat := NewMaterialDefaults().Material
	c := Shade(mat, mgl32.Vec3{}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 0, 10}, nil)
	assert.InDelta(t, 0.5*Ambient, c[0], 1e-6)
	assert.InDelta(t, 0.5*Ambient, c[1], 1e-6)
	assert.InDelta(t, 0.5*Ambient, c[2], 1e-6)
}

func TestShadeFacingLight(t *testing.T) {
	mat := NewMaterialDefaults().Material
	eye := mgl32.Vec3{0, 0, 10}
	lights := []shadedLight{{Position: mgl32.Vec3{0, 0, 5}, PointLight: DefaultPointLight()}}

	facing := Shade(mat, mgl32.Vec3{}, mgl32.Vec3{0, 0, 1}, eye, lights)
	grazing := Shade(mat, mgl32.Vec3{}, mgl32.Vec3{1, 0, 1}, eye, lights)
	away := Shade(mat, mgl32.Vec3{}, mgl32.Vec3{0, 0, -1}, eye, lights)

	assert.Greater(t, luminance(facing), luminance(grazing))
	assert.Greater(t, luminance(grazing), luminance(away))
	assert.InDelta(t, 0.5*Ambient, away[0], 1e-6)
}

func TestAttenuation(t *testing.T) {
	var tests = []struct {
		dist, radius float32
		want         float32
	}{
		{1, 0, 1},
		{2, 0, 0.25},
		{10, 10, 0},
		{20, 10, 0},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("dist %v radius %v", tt.dist, tt.radius), func(t *testing.T) {
			assert.InDelta(t, tt.want, attenuation(tt.dist, tt.radius), 1e-6)
		})
	}
	assert.Greater(t, attenuation(5, 10), float32(0))
}

func TestToneMap(t *testing.T) {
	r, g, b := ToneMap(mgl32.Vec3{0, 1, 1000})
	assert.Equal(t, uint8(0), r)
	assert.InDelta(t, 188, int(g), 1)
	assert.Equal(t, uint8(255), b)
}
