package vec

import (
	"fmt"
	"math"
)

// Vector3d представляет трехмерный вектор с компонентами типа T.
// Хранение фиксированное и встроенное: копия значения никогда не делит
// данные с оригиналом.
type Vector3d[T Scalar] struct {
	data [Len]T
}

// Zero создает нулевой вектор
func Zero[T Scalar]() Vector3d[T] {
	return Vector3d[T]{}
}

// Broadcast создает вектор, все компоненты которого равны value
func Broadcast[T Scalar](value T) Vector3d[T] {
	return Vector3d[T]{data: [Len]T{value, value, value}}
}

// New создает вектор из трех компонент
func New[T Scalar](x, y, z T) Vector3d[T] {
	return Vector3d[T]{data: [Len]T{x, y, z}}
}

// FromArray создает вектор из массива
func FromArray[T Scalar](a [Len]T) Vector3d[T] {
	return Vector3d[T]{data: a}
}

// Convert строит Vector3d[T] из вектора другого типа.
// Используется обычное преобразование Go: float -> int отбрасывает дробную часть.
func Convert[T, U Scalar](other Vector3d[U]) Vector3d[T] {
	return Vector3d[T]{data: [Len]T{T(other.data[0]), T(other.data[1]), T(other.data[2])}}
}

// Cast возвращает копию v с компонентами типа U. Исходный вектор не меняется.
func Cast[U, T Scalar](v Vector3d[T]) Vector3d[U] {
	return Convert[U](v)
}

// Array возвращает копию компонент
func (v Vector3d[T]) Array() [Len]T {
	return v.data
}

// X возвращает компоненту 0
func (v Vector3d[T]) X() T { return v.data[0] }

// Y возвращает компоненту 1
func (v Vector3d[T]) Y() T { return v.data[1] }

// Z возвращает компоненту 2
func (v Vector3d[T]) Z() T { return v.data[2] }

func checkIndex(i int) error {
	if i < 0 || i >= Len {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	return nil
}

// At возвращает компоненту с индексом i
func (v Vector3d[T]) At(i int) (T, error) {
	if err := checkIndex(i); err != nil {
		var zero T
		return zero, err
	}
	return v.data[i], nil
}

// MustAt как At, но паникует при неверном индексе
func (v Vector3d[T]) MustAt(i int) T {
	c, err := v.At(i)
	if err != nil {
		panic(err)
	}
	return c
}

// Ptr возвращает изменяемую ссылку на компоненту с индексом i
func (v *Vector3d[T]) Ptr(i int) (*T, error) {
	if err := checkIndex(i); err != nil {
		return nil, err
	}
	return &v.data[i], nil
}

// Set записывает значение в компоненту с индексом i
func (v *Vector3d[T]) Set(i int, value T) error {
	p, err := v.Ptr(i)
	if err != nil {
		return err
	}
	*p = value
	return nil
}

// Swap обменивает компоненты двух векторов
func (v *Vector3d[T]) Swap(other *Vector3d[T]) {
	v.data, other.data = other.data, v.data
}

// Apply изменяет каждую компоненту на месте
func (v *Vector3d[T]) Apply(unary func(T) T) {
	for _, c := range v.Refs() {
		*c = unary(*c)
	}
}

// Expr возвращает копию, к каждой компоненте которой применена unary
func (v Vector3d[T]) Expr(unary func(T) T) Vector3d[T] {
	v.Apply(unary)
	return v
}

// Add складывает два вектора
func (v Vector3d[T]) Add(other Vector3d[T]) Vector3d[T] {
	return New(v.data[0]+other.data[0], v.data[1]+other.data[1], v.data[2]+other.data[2])
}

// Sub вычитает вектор
func (v Vector3d[T]) Sub(other Vector3d[T]) Vector3d[T] {
	return New(v.data[0]-other.data[0], v.data[1]-other.data[1], v.data[2]-other.data[2])
}

// Neg возвращает вектор с противоположными компонентами
func (v Vector3d[T]) Neg() Vector3d[T] {
	return New(-v.data[0], -v.data[1], -v.data[2])
}

// AddAssign прибавляет other к v и возвращает v для цепочек вызовов
func (v *Vector3d[T]) AddAssign(other Vector3d[T]) *Vector3d[T] {
	*v = v.Add(other)
	return v
}

// SubAssign вычитает other из v и возвращает v
func (v *Vector3d[T]) SubAssign(other Vector3d[T]) *Vector3d[T] {
	*v = v.Sub(other)
	return v
}

// scaled возвращает наибольший модуль компоненты и длину вектора,
// делённого на него. Так квадраты не переполняются и не уходят в ноль
// на краях диапазона float64.
func (v Vector3d[T]) scaled() (scale, root float64) {
	for _, c := range v.All() {
		scale = max(scale, math.Abs(float64(c)))
	}
	if scale == 0 || math.IsInf(scale, 0) || math.IsNaN(scale) {
		return scale, 1
	}
	var sum float64
	for _, c := range v.All() {
		f := float64(c) / scale
		sum += f * f
	}
	return scale, math.Sqrt(sum)
}

// Norm возвращает евклидову длину. Вычисление идёт в float64 с
// масштабированием, как в math.Hypot: целочисленные векторы не
// переполняются, а крошечные ненулевые векторы имеют ненулевую длину.
func (v Vector3d[T]) Norm() float64 {
	scale, root := v.scaled()
	return scale * root
}

// Normalize делит вектор на его длину на месте.
// Для нулевого вектора и вектора с бесконечной или NaN компонентой
// возвращает ErrDegenerateVector и оставляет v без изменений.
// Для целочисленных T частные усекаются к нулю.
func (v *Vector3d[T]) Normalize() error {
	scale, root := v.scaled()
	switch {
	case scale == 0:
		return fmt.Errorf("%w: zero norm %v", ErrDegenerateVector, *v)
	case math.IsInf(scale, 0) || math.IsNaN(scale):
		return fmt.Errorf("%w: non-finite component in %v", ErrDegenerateVector, *v)
	}
	v.Apply(func(c T) T { return T(float64(c) / scale / root) })
	return nil
}

// Normalized возвращает нормализованную копию
func (v Vector3d[T]) Normalized() (Vector3d[T], error) {
	if err := v.Normalize(); err != nil {
		return Vector3d[T]{}, err
	}
	return v, nil
}

// Dot возвращает скалярное произведение, накопленное в T
func (v Vector3d[T]) Dot(other Vector3d[T]) T {
	return v.data[0]*other.data[0] + v.data[1]*other.data[1] + v.data[2]*other.data[2]
}

// Cross возвращает векторное произведение
func (v Vector3d[T]) Cross(other Vector3d[T]) Vector3d[T] {
	a, b := v.data, other.data
	return New(
		a[1]*b[2]-a[2]*b[1],
		a[2]*b[0]-a[0]*b[2],
		a[0]*b[1]-a[1]*b[0],
	)
}

// ApproxEqual сравнивает векторы покомпонентно с допуском tol
func (v Vector3d[T]) ApproxEqual(other Vector3d[T], tol float64) bool {
	for i := range v.data {
		if math.Abs(float64(v.data[i])-float64(other.data[i])) > tol {
			return false
		}
	}
	return true
}

// String возвращает представление вида (x, y, z)
func (v Vector3d[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", v.data[0], v.data[1], v.data[2])
}
