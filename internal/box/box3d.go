package box

import (
	"errors"
	"fmt"

	"github.com/annel0/enhance/internal/vec"
)

var (
	// ErrUnknownCorner возвращается для значений вне перечисления Corner
	ErrUnknownCorner = errors.New("unknown box corner")

	// ErrUnknownFace возвращается для значений вне перечисления Face
	ErrUnknownFace = errors.New("unknown box face")
)

// Box3d представляет выровненную по осям коробку через её восемь вершин.
// Вершины хранятся в порядке перечисления Corner.
type Box3d[T vec.Scalar] struct {
	corners [NumCorners]vec.Vector3d[T]
}

// Unit создает единичную коробку от (0,0,0) до (1,1,1)
func Unit[T vec.Scalar]() Box3d[T] {
	return New(vec.Zero[T](), vec.Broadcast[T](1))
}

// New создает коробку по двум противоположным вершинам.
// Точки могут быть заданы в любом порядке: по каждой оси берутся min и max.
func New[T vec.Scalar](a, b vec.Vector3d[T]) Box3d[T] {
	lo := vec.New(min(a.X(), b.X()), min(a.Y(), b.Y()), min(a.Z(), b.Z()))
	hi := vec.New(max(a.X(), b.X()), max(a.Y(), b.Y()), max(a.Z(), b.Z()))

	var bx Box3d[T]
	for i := range bx.corners {
		x, y, z := lo.X(), lo.Y(), lo.Z()
		if i&1 != 0 {
			x = hi.X()
		}
		if i&2 != 0 {
			y = hi.Y()
		}
		if i&4 != 0 {
			z = hi.Z()
		}
		bx.corners[i] = vec.New(x, y, z)
	}
	return bx
}

// Get возвращает вершину по имени. Для Center - среднее всех восьми вершин.
func (b Box3d[T]) Get(c Corner) (vec.Vector3d[T], error) {
	switch {
	case c == Center:
		return b.center(), nil
	case c.Valid():
		return b.corners[c], nil
	default:
		return vec.Vector3d[T]{}, fmt.Errorf("%w: %d", ErrUnknownCorner, int(c))
	}
}

// center усредняет вершины в float64, чтобы целые коробки не переполнялись
func (b Box3d[T]) center() vec.Vector3d[T] {
	var sum vec.Vector3d[float64]
	for _, c := range b.corners {
		sum.AddAssign(vec.Cast[float64](c))
	}
	return vec.Convert[T](sum.Expr(func(s float64) float64 { return s / NumCorners }))
}

// FaceCorners возвращает четыре вершины грани в порядке возрастания Corner
func (b Box3d[T]) FaceCorners(f Face) ([4]vec.Vector3d[T], error) {
	var out [4]vec.Vector3d[T]
	if !f.Valid() {
		return out, fmt.Errorf("%w: %d", ErrUnknownFace, int(f))
	}
	for i, c := range faceCorners[f] {
		out[i] = b.corners[c]
	}
	return out, nil
}

// Min возвращает вершину с минимальными координатами
func (b Box3d[T]) Min() vec.Vector3d[T] {
	return b.corners[FrontBottomLeft]
}

// Max возвращает вершину с максимальными координатами
func (b Box3d[T]) Max() vec.Vector3d[T] {
	return b.corners[BackTopRight]
}

// Size возвращает размеры коробки по осям
func (b Box3d[T]) Size() vec.Vector3d[T] {
	return b.Max().Sub(b.Min())
}

// Corners возвращает копию всех вершин
func (b Box3d[T]) Corners() [NumCorners]vec.Vector3d[T] {
	return b.corners
}

// Swap обменивает наборы вершин двух коробок
func (b *Box3d[T]) Swap(other *Box3d[T]) {
	b.corners, other.corners = other.corners, b.corners
}

func (b Box3d[T]) String() string {
	return fmt.Sprintf("Box3d[%v -> %v]", b.Min(), b.Max())
}
