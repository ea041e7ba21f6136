package vec

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalYAML кодирует вектор как короткую последовательность [x, y, z]
func (v Vector3d[T]) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, c := range v.data {
		item := &yaml.Node{}
		if err := item.Encode(c); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, item)
	}
	return node, nil
}

// UnmarshalYAML принимает только последовательность ровно из трёх чисел
func (v *Vector3d[T]) UnmarshalYAML(node *yaml.Node) error {
	var items []T
	if err := node.Decode(&items); err != nil {
		return fmt.Errorf("decode vector at line %d: %w", node.Line, err)
	}
	if len(items) != Len {
		return fmt.Errorf("%w: got %d at line %d", ErrComponentCount, len(items), node.Line)
	}
	copy(v.data[:], items)
	return nil
}
