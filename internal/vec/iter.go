package vec

import "iter"

// All перебирает компоненты от x к z
func (v Vector3d[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, c := range v.data {
			if !yield(i, c) {
				return
			}
		}
	}
}

// Backward перебирает компоненты от z к x
func (v Vector3d[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := Len - 1; i >= 0; i-- {
			if !yield(i, v.data[i]) {
				return
			}
		}
	}
}

// Values перебирает только значения компонент
func (v Vector3d[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, c := range v.data {
			if !yield(c) {
				return
			}
		}
	}
}

// Refs перебирает изменяемые ссылки на компоненты от x к z
func (v *Vector3d[T]) Refs() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := range v.data {
			if !yield(i, &v.data[i]) {
				return
			}
		}
	}
}

// BackwardRefs перебирает изменяемые ссылки от z к x
func (v *Vector3d[T]) BackwardRefs() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := Len - 1; i >= 0; i-- {
			if !yield(i, &v.data[i]) {
				return
			}
		}
	}
}
