package box

import (
	"errors"
	"fmt"

	"github.com/annel0/enhance/internal/vec"
	"gopkg.in/yaml.v3"
)

// ErrMissingBound возвращается, если в YAML коробки нет low или high
var ErrMissingBound = errors.New("box needs both low and high")

// bounds - YAML-представление коробки двумя противоположными вершинами.
// Указатели отличают отсутствующий ключ от нулевой вершины.
type bounds[T vec.Scalar] struct {
	Low  *vec.Vector3d[T] `yaml:"low"`
	High *vec.Vector3d[T] `yaml:"high"`
}

// MarshalYAML кодирует коробку как {low, high}
func (b Box3d[T]) MarshalYAML() (interface{}, error) {
	lo, hi := b.Min(), b.Max()
	return bounds[T]{Low: &lo, High: &hi}, nil
}

// UnmarshalYAML восстанавливает все восемь вершин из {low, high}
func (b *Box3d[T]) UnmarshalYAML(node *yaml.Node) error {
	var raw bounds[T]
	if err := node.Decode(&raw); err != nil {
		return fmt.Errorf("decode box at line %d: %w", node.Line, err)
	}
	switch {
	case raw.Low == nil:
		return fmt.Errorf("box at line %d: %w: low is missing", node.Line, ErrMissingBound)
	case raw.High == nil:
		return fmt.Errorf("box at line %d: %w: high is missing", node.Line, ErrMissingBound)
	}
	*b = New(*raw.Low, *raw.High)
	return nil
}
