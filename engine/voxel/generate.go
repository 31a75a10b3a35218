package voxel

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/ojrac/opensimplex-go"
)

// NoiseParams configures fractal simplex terrain.
type NoiseParams struct {
	Seed         int64   `yaml:"seed"`
	Frequency    float64 `yaml:"frequency"`
	Amplitude    float64 `yaml:"amplitude"`
	GroundHeight float64 `yaml:"ground_height"`
	Octaves      int     `yaml:"octaves"`
	Persistence  float64 `yaml:"persistence"`
	Lacunarity   float64 `yaml:"lacunarity"`
}

func DefaultNoiseParams() NoiseParams {
	return NoiseParams{
		Seed:         32,
		Frequency:    0.08,
		Amplitude:    3,
		GroundHeight: 8,
		Octaves:      3,
		Persistence:  0.5,
		Lacunarity:   2,
	}
}

// TerrainSampler returns rolling ground: the signed height above GroundHeight,
// displaced by octave simplex noise. Points below the ground line are solid.
func TerrainSampler(params NoiseParams) SampleFunc {
	noise := opensimplex.New(params.Seed)
	octaves := max(params.Octaves, 1)
	return func(p mgl32.Vec3) float32 {
		x, y, z := float64(p.X()), float64(p.Y()), float64(p.Z())
		frequency := params.Frequency
		amplitude := params.Amplitude
		displacement := 0.0
		for i := 0; i < octaves; i++ {
			displacement += noise.Eval3(x*frequency, y*frequency, z*frequency) * amplitude
			frequency *= params.Lacunarity
			amplitude *= params.Persistence
		}
		return float32(y - params.GroundHeight - displacement)
	}
}

// SphereSampler is the exact signed distance to a solid ball.
func SphereSampler(center mgl32.Vec3, radius float32) SampleFunc {
	return func(p mgl32.Vec3) float32 {
		return p.Sub(center).Len() - radius
	}
}

// ConstantSampler fills the field with one value.
func ConstantSampler(value float32) SampleFunc {
	return func(mgl32.Vec3) float32 {
		return value
	}
}
