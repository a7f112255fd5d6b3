package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToImageCoordinates(t *testing.T) {
	ndc := []*Point{{-1, 1}, {1, -1}, {0, 0}}
	image, err := ToImageCoordinates(ndc, 400, 200)
	require.NoError(t, err)
	assert.Equal(t, []*Point{{0, 0}, {400, 200}, {200, 100}}, image)
}

func TestImageCoordinatesRoundTrip(t *testing.T) {
	pixels := []*Point{{100, 100}, {300, 100}, {200, 300}}
	ndc, err := FromImageCoordinates(pixels, 400, 400)
	require.NoError(t, err)
	assert.InDelta(t, -0.5, ndc[0].X, Epsilon)
	assert.InDelta(t, 0.5, ndc[0].Y, Epsilon)

	back, err := ToImageCoordinates(ndc, 400, 400)
	require.NoError(t, err)
	for i := range pixels {
		assert.InDelta(t, pixels[i].X, back[i].X, Epsilon)
		assert.InDelta(t, pixels[i].Y, back[i].Y, Epsilon)
	}

	// The y flip reverses winding but not area
	pixelArea, err := Area(pixels)
	require.NoError(t, err)
	ndcArea, err := Area(ndc)
	require.NoError(t, err)
	assert.InDelta(t, pixelArea/(200*200), ndcArea, Epsilon)
}

func TestImageCoordinates_Invalid(t *testing.T) {
	_, err := ToImageCoordinates([]*Point{{0, 0}}, 0, 10)
	assert.Error(t, err)
	_, err = FromImageCoordinates([]*Point{nil}, 10, 10)
	assert.Error(t, err)
}
