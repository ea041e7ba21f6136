package box

import (
	"testing"

	"github.com/annel0/enhance/internal/vec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestBox3d_Unit(t *testing.T) {
	b := Unit[int]()

	expected := [NumCorners]vec.Vector3d[int]{
		vec.New(0, 0, 0),
		vec.New(1, 0, 0),
		vec.New(0, 1, 0),
		vec.New(1, 1, 0),
		vec.New(0, 0, 1),
		vec.New(1, 0, 1),
		vec.New(0, 1, 1),
		vec.New(1, 1, 1),
	}
	assert.Equal(t, expected, b.Corners())
	assert.Equal(t, vec.Zero[int](), b.Min())
	assert.Equal(t, vec.Broadcast(1), b.Max())
}

func TestBox3d_NamedCorners(t *testing.T) {
	b := New(vec.New(-1.0, -2, -3), vec.New(4.0, 5, 6))

	cases := []struct {
		corner Corner
		want   vec.Vector3d[float64]
	}{
		{FrontBottomLeft, vec.New(-1.0, -2, -3)},
		{FrontBottomRight, vec.New(4.0, -2, -3)},
		{FrontTopLeft, vec.New(-1.0, 5, -3)},
		{FrontTopRight, vec.New(4.0, 5, -3)},
		{BackBottomLeft, vec.New(-1.0, -2, 6)},
		{BackBottomRight, vec.New(4.0, -2, 6)},
		{BackTopLeft, vec.New(-1.0, 5, 6)},
		{BackTopRight, vec.New(4.0, 5, 6)},
		{Center, vec.New(1.5, 1.5, 1.5)},
	}
	for _, tc := range cases {
		t.Run(tc.corner.String(), func(t *testing.T) {
			got, err := b.Get(tc.corner)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestBox3d_CornersDistinct(t *testing.T) {
	b := New(vec.New(0, 0, 0), vec.New(2, 3, 4))
	seen := make(map[vec.Vector3d[int]]bool)
	for _, c := range b.Corners() {
		assert.False(t, seen[c], "вершина %v повторяется", c)
		seen[c] = true
	}
	assert.Len(t, seen, NumCorners)

	// вершина (hx, ly, hz) тоже должна присутствовать
	got, err := b.Get(BackBottomRight)
	require.NoError(t, err)
	assert.Equal(t, vec.New(2, 0, 4), got)
}

func TestBox3d_UnorderedInput(t *testing.T) {
	ordered := New(vec.New(0, 0, 0), vec.New(2, 3, 4))
	swapped := New(vec.New(2, 3, 4), vec.New(0, 0, 0))
	mixed := New(vec.New(2, 0, 4), vec.New(0, 3, 0))

	assert.Equal(t, ordered, swapped)
	assert.Equal(t, ordered, mixed)
	assert.Equal(t, vec.New(2, 3, 4), ordered.Size())
}

func TestBox3d_Center(t *testing.T) {
	c, err := Unit[float32]().Get(Center)
	require.NoError(t, err)
	assert.Equal(t, vec.Broadcast[float32](0.5), c)

	// целочисленный центр усекается
	c2, err := Unit[int]().Get(Center)
	require.NoError(t, err)
	assert.Equal(t, vec.Zero[int](), c2)

	big := New(vec.Broadcast[int8](100), vec.Broadcast[int8](120))
	c3, err := big.Get(Center)
	require.NoError(t, err)
	assert.Equal(t, vec.Broadcast[int8](110), c3, "сумма вершин не должна переполнять int8")
}

func TestBox3d_InvalidCorner(t *testing.T) {
	b := Unit[int]()
	for _, c := range []Corner{-1, Center + 1, 42} {
		_, err := b.Get(c)
		assert.ErrorIs(t, err, ErrUnknownCorner)
		assert.False(t, c.Valid())
	}
}

func TestBox3d_FaceCorners(t *testing.T) {
	b := Unit[int]()

	axis := map[Face]struct {
		idx  int
		want int
	}{
		Front:  {2, 0},
		Back:   {2, 1},
		Left:   {0, 0},
		Right:  {0, 1},
		Bottom: {1, 0},
		Top:    {1, 1},
	}
	for f, a := range axis {
		t.Run(f.String(), func(t *testing.T) {
			corners, err := b.FaceCorners(f)
			require.NoError(t, err)
			seen := make(map[vec.Vector3d[int]]bool)
			for _, c := range corners {
				assert.Equal(t, a.want, c.MustAt(a.idx), "вершина %v не лежит на грани %s", c, f)
				seen[c] = true
			}
			assert.Len(t, seen, 4)
		})
	}

	_, err := b.FaceCorners(Bottom + 1)
	assert.ErrorIs(t, err, ErrUnknownFace)
}

func TestBox3d_Swap(t *testing.T) {
	a := Unit[int]()
	b := New(vec.Broadcast(5), vec.Broadcast(7))
	a.Swap(&b)

	assert.Equal(t, vec.Broadcast(5), a.Min())
	assert.Equal(t, vec.Broadcast(7), a.Max())
	assert.Equal(t, Unit[int](), b)
}

func TestBox3d_CopyIsIndependent(t *testing.T) {
	a := Unit[int]()
	b := a
	other := New(vec.Broadcast(2), vec.Broadcast(3))
	b.Swap(&other)
	assert.Equal(t, Unit[int](), a)
}

func TestBox3d_Names(t *testing.T) {
	assert.Equal(t, "FrontBottomLeft", FrontBottomLeft.String())
	assert.Equal(t, "Center", Center.String())
	assert.Equal(t, "Corner(9)", Corner(9).String())
	assert.Equal(t, "Top", Top.String())
	assert.Equal(t, "Face(-1)", Face(-1).String())

	c, err := ParseCorner("BackTopLeft")
	require.NoError(t, err)
	assert.Equal(t, BackTopLeft, c)
	_, err = ParseCorner("Nowhere")
	assert.ErrorIs(t, err, ErrUnknownCorner)

	f, err := ParseFace("Left")
	require.NoError(t, err)
	assert.Equal(t, Left, f)
	_, err = ParseFace("Inside")
	assert.ErrorIs(t, err, ErrUnknownFace)
}

func TestBox3d_YAML(t *testing.T) {
	var b Box3d[float64]
	require.NoError(t, yaml.Unmarshal([]byte("{low: [1, 1, 1], high: [0, 0, 0]}"), &b))
	assert.Equal(t, Unit[float64](), b)

	out, err := yaml.Marshal(b)
	require.NoError(t, err)
	assert.Equal(t, "low: [0, 0, 0]\nhigh: [1, 1, 1]\n", string(out))

	// нулевая вершина задана явно - это не ошибка
	require.NoError(t, yaml.Unmarshal([]byte("{low: [0, 0, 0], high: [2, 2, 2]}"), &b))
	assert.Equal(t, vec.Zero[float64](), b.Min())
}

func TestBox3d_YAMLMissingBound(t *testing.T) {
	for _, doc := range []string{
		"{high: [1, 1, 1]}",
		"{low: [1, 1, 1]}",
		"{low: ~, high: [1, 1, 1]}",
		"{}",
	} {
		var b Box3d[int]
		err := yaml.Unmarshal([]byte(doc), &b)
		assert.ErrorIs(t, err, ErrMissingBound, doc)
	}
}

func TestBox3d_String(t *testing.T) {
	assert.Equal(t, "Box3d[(0, 0, 0) -> (1, 1, 1)]", Unit[int]().String())
}
