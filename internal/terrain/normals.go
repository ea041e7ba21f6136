package terrain

import (
	"errors"
	"fmt"
	"math"

	"github.com/annel0/enhance/internal/box"
	"github.com/annel0/enhance/internal/config"
	"github.com/annel0/enhance/internal/logging"
	"github.com/annel0/enhance/internal/vec"
	"github.com/aquilax/go-perlin"
)

// MaxSamples ограничивает число узлов сетки в одном вызове Normals
const MaxSamples = 1 << 20

var (
	// ErrInvalidStep возвращается для шага сетки <= 0, NaN или бесконечности
	ErrInvalidStep = errors.New("grid step must be positive and finite")

	// ErrGridTooLarge возвращается, если при таком шаге узлов больше MaxSamples
	ErrGridTooLarge = errors.New("sample grid too large")
)

// Sample - точка поверхности и нормаль к ней
type Sample struct {
	Position vec.Vector3d[float64]
	Normal   vec.Vector3d[float64]
}

// Field - карта высот на шуме Перлина
type Field struct {
	noise *perlin.Perlin
	log   *logging.Logger
}

// NewField создает карту высот с параметрами шума из конфигурации
func NewField(cfg config.TerrainConfig) *Field {
	return &Field{
		noise: perlin.NewPerlin(cfg.Alpha, cfg.Beta, cfg.Octaves, cfg.Seed),
		log:   logging.GetTerrainLogger(),
	}
}

// Height возвращает высоту поверхности в точке (x, z) внутри коробки b.
// Шум переводится в диапазон 0..1 и растягивается на высоту коробки.
func (f *Field) Height(b box.Box3d[float64], x, z float64) float64 {
	n := (f.noise.Noise2D(x, z) + 1.0) / 2.0
	return b.Min().Y() + n*b.Size().Y()
}

// Normals обходит проекцию коробки на плоскость XZ с шагом step и
// возвращает нормали поверхности, полученные векторным произведением
// касательных вдоль z и x.
func (f *Field) Normals(b box.Box3d[float64], step float64) ([]Sample, error) {
	if !(step > 0) || math.IsInf(step, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidStep, step)
	}

	lo, size := b.Min(), b.Size()
	fx := math.Floor(size.X()/step) + 1
	fz := math.Floor(size.Z()/step) + 1
	if fx*fz > MaxSamples {
		return nil, fmt.Errorf("%w: %.0f x %.0f nodes with step %v, limit %d", ErrGridTooLarge, fx, fz, step, MaxSamples)
	}
	nx, nz := int(fx), int(fz)
	samples := make([]Sample, 0, nx*nz)

	for i := 0; i < nx; i++ {
		for j := 0; j < nz; j++ {
			x := lo.X() + float64(i)*step
			z := lo.Z() + float64(j)*step
			h := f.Height(b, x, z)

			tx := vec.New(step, f.Height(b, x+step, z)-h, 0)
			tz := vec.New(0, f.Height(b, x, z+step)-h, step)

			normal, err := tz.Cross(tx).Normalized()
			if err != nil {
				return samples, fmt.Errorf("normal at (%v, %v): %w", x, z, err)
			}
			samples = append(samples, Sample{Position: vec.New(x, h, z), Normal: normal})
		}
	}

	f.log.Debug("%d normals over %v with step %v", len(samples), b, step)
	return samples, nil
}
