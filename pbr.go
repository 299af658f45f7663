package flyscene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Ambient is the fraction of albedo returned when no light reaches a surface.
const Ambient float32 = 0.03

type shadedLight struct {
	Position mgl32.Vec3
	PointLight
}

// Shade evaluates Cook-Torrance for a surface point and returns linear RGB.
func Shade(mat Material, pos, normal, eye mgl32.Vec3, lights []shadedLight) mgl32.Vec3 {
	n := normal.Normalize()
	v := eye.Sub(pos)
	if v.Len() > 0 {
		v = v.Normalize()
	}
	nDotV := maxf(n.Dot(v), 1e-4)

	f0 := lerpVec(mgl32.Vec3{0.04, 0.04, 0.04}, mat.Albedo, mat.Metallic)
	roughness := clampf(mat.Roughness, 0.04, 1)

	var lo mgl32.Vec3
	for _, l := range lights {
		toLight := l.Position.Sub(pos)
		dist := toLight.Len()
		if dist < 1e-6 {
			continue
		}
		ld := toLight.Mul(1 / dist)
		nDotL := n.Dot(ld)
		if nDotL <= 0 {
			continue
		}
		h := v.Add(ld).Normalize()

		d := distributionGGX(n.Dot(h), roughness)
		g := geometrySmith(nDotV, nDotL, roughness)
		f := fresnelSchlick(maxf(h.Dot(v), 0), f0)

		specular := f.Mul(d * g / (4 * nDotV * nDotL))
		kd := mgl32.Vec3{1, 1, 1}.Sub(f).Mul(1 - mat.Metallic)
		diffuse := mulVec(kd, mat.Albedo).Mul(1 / math.Pi)

		radiance := l.Color.Mul(l.Intensity * attenuation(dist, l.Radius))
		lo = lo.Add(mulVec(diffuse.Add(specular), radiance).Mul(nDotL))
	}

	ambient := mat.Albedo.Mul(Ambient * mat.AmbientOcclusion)
	return ambient.Add(lo).Add(mat.Emission)
}

func attenuation(dist, radius float32) float32 {
	a := 1 / (dist * dist)
	if radius > 0 {
		r := dist / radius
		w := clampf(1-r*r*r*r, 0, 1)
		a *= w * w
	}
	return a
}

func distributionGGX(nDotH, roughness float32) float32 {
	a := roughness * roughness
	a2 := a * a
	nh := maxf(nDotH, 0)
	denom := nh*nh*(a2-1) + 1
	return a2 / (math.Pi * denom * denom)
}

func geometrySchlickGGX(nDotX, roughness float32) float32 {
	r := roughness + 1
	k := r * r / 8
	return nDotX / (nDotX*(1-k) + k)
}

func geometrySmith(nDotV, nDotL, roughness float32) float32 {
	return geometrySchlickGGX(nDotV, roughness) * geometrySchlickGGX(nDotL, roughness)
}

func fresnelSchlick(cosTheta float32, f0 mgl32.Vec3) mgl32.Vec3 {
	k := float32(math.Pow(float64(1-cosTheta), 5))
	return f0.Add(mgl32.Vec3{1, 1, 1}.Sub(f0).Mul(k))
}

// ToneMap applies Reinhard and sRGB encoding, returning 8-bit channels.
func ToneMap(c mgl32.Vec3) (r, g, b uint8) {
	enc := func(x float32) uint8 {
		x = maxf(x, 0)
		x = x / (1 + x)
		return toByte(linearToSRGB(x))
	}
	return enc(c[0]), enc(c[1]), enc(c[2])
}

func linearToSRGB(x float32) float32 {
	if x <= 0.0031308 {
		return 12.92 * x
	}
	return 1.055*float32(math.Pow(float64(x), 1/2.4)) - 0.055
}

func toByte(x float32) uint8 {
	return uint8(clampf(x, 0, 1)*255 + 0.5)
}

func mulVec(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

func lerpVec(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Mul(1 - t).Add(b.Mul(t))
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func clampf(x, lo, hi float32) float32 {
	return minf(maxf(x, lo), hi)
}
