package vec

// Операции над векторами разных типов компонент. Правый операнд сначала
// приводится к T, результат всегда имеет тип левого операнда.

// Add складывает a и b, приводя b к типу T
func Add[T, U Scalar](a Vector3d[T], b Vector3d[U]) Vector3d[T] {
	return a.Add(Convert[T](b))
}

// Sub вычитает b из a, приводя b к типу T
func Sub[T, U Scalar](a Vector3d[T], b Vector3d[U]) Vector3d[T] {
	return a.Sub(Convert[T](b))
}

// AddAssignFrom прибавляет b к *a
func AddAssignFrom[T, U Scalar](a *Vector3d[T], b Vector3d[U]) *Vector3d[T] {
	return a.AddAssign(Convert[T](b))
}

// SubAssignFrom вычитает b из *a
func SubAssignFrom[T, U Scalar](a *Vector3d[T], b Vector3d[U]) *Vector3d[T] {
	return a.SubAssign(Convert[T](b))
}

// Dot возвращает скалярное произведение в типе T
func Dot[T, U Scalar](a Vector3d[T], b Vector3d[U]) T {
	return a.Dot(Convert[T](b))
}

// Cross возвращает векторное произведение в типе T
func Cross[T, U Scalar](a Vector3d[T], b Vector3d[U]) Vector3d[T] {
	return a.Cross(Convert[T](b))
}
