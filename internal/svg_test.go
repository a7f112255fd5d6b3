package internal

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSVG_Rooms(t *testing.T) {
	list := LoadFixture("rooms")

	expected := PolygonList{
		{Name: "kitchen", Points: []*Point{{0, 0}, {40, 0}, {40, 30}, {0, 30}}},
		{Name: "hall", Points: []*Point{{40, 0}, {100, 0}, {100, 30}, {40, 30}}},
		{Name: "", Points: []*Point{{0, 30}, {100, 30}, {50, 55}}},
	}
	if diff := cmp.Diff(expected, list); diff != "" {
		t.Errorf("ReadSVG mismatch (-want +got):\n%s", diff)
	}

	area, err := list.Area()
	require.NoError(t, err)
	assert.InDelta(t, 1200+1800+1250, area, Epsilon)
}

func TestReadSVG_SpaceSeparated(t *testing.T) {
	list := LoadFixture("l_shape")
	require.Len(t, list, 1)
	assert.Equal(t, "l_shape", list[0].Name)
	assert.Len(t, list[0].Points, 6)
}

func TestReadSVG_Invalid(t *testing.T) {
	cases := []struct {
		name   string
		points string
		index  int
		field  string
	}{
		{"odd count", "0,0 1,0 1", 2, "y"},
		{"non-numeric", "0,0 1,x 1,1", 1, "y"},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			doc := `<svg xmlns="http://www.w3.org/2000/svg"><polygon points="` + c.points + `"/></svg>`
			_, err := ReadSVG(strings.NewReader(doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "svg polygon 0")

			var invalid *InvalidInputError
			require.True(t, errors.As(err, &invalid))
			assert.Equal(t, c.index, invalid.Index)
			assert.Equal(t, c.field, invalid.Field)
		})
	}
}

func TestReadSVG_NoPolygons(t *testing.T) {
	list, err := ReadSVG(strings.NewReader(`<svg xmlns="http://www.w3.org/2000/svg"><rect width="1" height="1"/></svg>`))
	require.NoError(t, err)
	assert.Empty(t, list)
}
