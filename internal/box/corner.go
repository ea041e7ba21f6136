package box

import "fmt"

// Corner именует одну из восьми вершин коробки или её центр.
//
// Оси: x слева направо, y снизу вверх, z спереди назад. Значение вершины
// одновременно является её индексом: бит 0 - правая сторона (x max),
// бит 1 - верх (y max), бит 2 - задняя грань (z max).
type Corner int

const (
	FrontBottomLeft Corner = iota
	FrontBottomRight
	FrontTopLeft
	FrontTopRight
	BackBottomLeft
	BackBottomRight
	BackTopLeft
	BackTopRight
	Center
)

// NumCorners - число вершин коробки (без центра)
const NumCorners = 8

var cornerNames = [...]string{
	FrontBottomLeft:  "FrontBottomLeft",
	FrontBottomRight: "FrontBottomRight",
	FrontTopLeft:     "FrontTopLeft",
	FrontTopRight:    "FrontTopRight",
	BackBottomLeft:   "BackBottomLeft",
	BackBottomRight:  "BackBottomRight",
	BackTopLeft:      "BackTopLeft",
	BackTopRight:     "BackTopRight",
	Center:           "Center",
}

// Valid сообщает, входит ли значение в перечисление
func (c Corner) Valid() bool {
	return c >= FrontBottomLeft && c <= Center
}

// String возвращает имя вершины
func (c Corner) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Corner(%d)", int(c))
	}
	return cornerNames[c]
}

// ParseCorner ищет вершину по имени
func ParseCorner(name string) (Corner, error) {
	for c, n := range cornerNames {
		if n == name {
			return Corner(c), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCorner, name)
}

// Face именует одну из шести граней коробки
type Face int

const (
	Front Face = iota
	Back
	Left
	Right
	Top
	Bottom
)

var faceNames = [...]string{
	Front:  "Front",
	Back:   "Back",
	Left:   "Left",
	Right:  "Right",
	Top:    "Top",
	Bottom: "Bottom",
}

// Вершины каждой грани в порядке возрастания индекса
var faceCorners = [...][4]Corner{
	Front:  {FrontBottomLeft, FrontBottomRight, FrontTopLeft, FrontTopRight},
	Back:   {BackBottomLeft, BackBottomRight, BackTopLeft, BackTopRight},
	Left:   {FrontBottomLeft, FrontTopLeft, BackBottomLeft, BackTopLeft},
	Right:  {FrontBottomRight, FrontTopRight, BackBottomRight, BackTopRight},
	Top:    {FrontTopLeft, FrontTopRight, BackTopLeft, BackTopRight},
	Bottom: {FrontBottomLeft, FrontBottomRight, BackBottomLeft, BackBottomRight},
}

// Valid сообщает, входит ли значение в перечисление
func (f Face) Valid() bool {
	return f >= Front && f <= Bottom
}

// String возвращает имя грани
func (f Face) String() string {
	if !f.Valid() {
		return fmt.Sprintf("Face(%d)", int(f))
	}
	return faceNames[f]
}

// ParseFace ищет грань по имени
func ParseFace(name string) (Face, error) {
	for f, n := range faceNames {
		if n == name {
			return Face(f), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFace, name)
}
