package internal

import (
	"bytes"
	"image/png"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayout(t *testing.T) {
	opts := DefaultRenderOptions()
	opts.Scale = 10
	opts.Padding = 20

	drawing, err := Layout(PolygonList{poly(0, 0, 4, 0, 4, 4, 0, 4)}, opts)
	require.NoError(t, err)
	assert.Equal(t, 80, drawing.Width)
	assert.Equal(t, 80, drawing.Height)

	// Origin lands at the bottom left inside the padding
	require.Len(t, drawing.Paths, 1)
	assert.Equal(t, Point{20, 60}, drawing.Paths[0][0])
	assert.Equal(t, Point{60, 20}, drawing.Paths[0][2])

	// Four edge labels and one area label
	require.Len(t, drawing.Labels, 5)
	assert.Equal(t, "4.00", drawing.Labels[0].Text)
	assert.Equal(t, "A=16.00", drawing.Labels[4].Text)
	assert.Equal(t, 40.0, drawing.Labels[4].X)

	require.NotNil(t, drawing.Bar)
	assert.Equal(t, "1.00", drawing.Bar.Text)
	assert.Equal(t, 30.0, drawing.Bar.X2)
}

func TestLayout_NoLabels(t *testing.T) {
	opts := DefaultRenderOptions()
	opts.Labels = false
	opts.ScaleBar = false
	drawing, err := Layout(SquareWithHole(), opts)
	require.NoError(t, err)
	assert.Len(t, drawing.Paths, 2)
	assert.Empty(t, drawing.Labels)
	assert.Nil(t, drawing.Bar)
}

func TestLayout_Invalid(t *testing.T) {
	_, err := Layout(PolygonList{{Points: []*Point{{0, 0}, {math.NaN(), 1}}}}, DefaultRenderOptions())
	var invalid *InvalidInputError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, 1, invalid.Index)

	opts := DefaultRenderOptions()
	opts.Scale = 0
	_, err = Layout(PolygonList{SimpleStar()}, opts)
	assert.Error(t, err)
}

func TestLayout_TooLarge(t *testing.T) {
	// A million units at the default scale of 4 pixels per unit
	_, err := Layout(PolygonList{poly(0, 0, 1e6, 0, 1e6, 1, 0, 1)}, DefaultRenderOptions())
	assert.ErrorContains(t, err, "larger than")

	_, err = Layout(PolygonList{poly(-1e300, 0, 1e300, 0, 0, 1e300)}, DefaultRenderOptions())
	assert.ErrorContains(t, err, "larger than")

	opts := DefaultRenderOptions()
	opts.Scale = math.Inf(1)
	_, err = Layout(PolygonList{SimpleStar()}, opts)
	assert.Error(t, err)

	// Right at the limit still lays out
	opts = DefaultRenderOptions()
	opts.Scale = 1
	opts.Padding = 0
	drawing, err := Layout(PolygonList{poly(0, 0, maxDrawDimension, 0, 0, 1)}, opts)
	require.NoError(t, err)
	assert.Equal(t, maxDrawDimension, drawing.Width)
}

func TestLayout_Colors(t *testing.T) {
	opts := DefaultRenderOptions()
	opts.Fill = "#abc"
	opts.Stroke = "#00FF0080"
	_, err := Layout(PolygonList{SimpleStar()}, opts)
	require.NoError(t, err)

	for _, bad := range []string{`red" onload="alert(1)`, "red", "#12345", ""} {
		opts := DefaultRenderOptions()
		opts.Fill = bad
		_, err := Layout(PolygonList{SimpleStar()}, opts)
		assert.ErrorContains(t, err, "fill color", bad)
	}

	// Hand-built drawings are checked when encoded as svg
	drawing, err := Layout(PolygonList{SimpleStar()}, DefaultRenderOptions())
	require.NoError(t, err)
	drawing.Options.Text = `#fff"/><script/>`
	var buf bytes.Buffer
	assert.ErrorContains(t, drawing.EncodeSVG(&buf), "text color")
	assert.NotContains(t, buf.String(), "<script")
}

func TestNiceLength(t *testing.T) {
	assert.Equal(t, 1.0, niceLength(1.9))
	assert.Equal(t, 2.0, niceLength(4.9))
	assert.Equal(t, 5.0, niceLength(5))
	assert.Equal(t, 50.0, niceLength(99))
	assert.Equal(t, 0.0, niceLength(0))
}

func TestDraw(t *testing.T) {
	img, err := LoadFixture("trapezoid").Draw(DefaultRenderOptions())
	require.NoError(t, err)
	bounds := img.Bounds()
	assert.Equal(t, 4*40+2*defaultDrawPadding, bounds.Dx())
	assert.Equal(t, 4*30+2*defaultDrawPadding, bounds.Dy())

	// A corner pixel is background
	r, g, b, _ := img.At(0, 0).RGBA()
	assert.Equal(t, []uint32{0, 0, 0}, []uint32{r, g, b})
}

func TestEncode(t *testing.T) {
	drawing, err := Layout(LoadFixture("rooms"), DefaultRenderOptions())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, drawing.Encode(&buf, "out.PNG"))
	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, drawing.Width, decoded.Bounds().Dx())

	buf.Reset()
	require.NoError(t, drawing.Encode(&buf, "out.webp"))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("RIFF")))

	buf.Reset()
	require.NoError(t, drawing.Encode(&buf, "out.svg"))
	svg := buf.String()
	assert.True(t, strings.HasPrefix(svg, "<svg"))
	assert.Contains(t, svg, "A=1200.00")
	assert.Contains(t, svg, "evenodd")

	err = drawing.Encode(&buf, "out.gif")
	assert.EqualError(t, err, `unsupported output format ".gif"`)
}
