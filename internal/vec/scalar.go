package vec

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Scalar ограничивает типы, которые могут быть компонентами вектора.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Len - число компонент вектора, фиксировано на всё время жизни значения.
const Len = 3

var (
	// ErrIndexOutOfRange возвращается при обращении к компоненте вне {0,1,2}.
	ErrIndexOutOfRange = errors.New("vector index out of range")

	// ErrDegenerateVector возвращается при нормализации вектора с нулевой
	// или неконечной нормой.
	ErrDegenerateVector = errors.New("cannot normalize a degenerate vector")

	// ErrComponentCount возвращается при декодировании последовательности не из трёх элементов.
	ErrComponentCount = errors.New("vector must have exactly 3 components")
)
