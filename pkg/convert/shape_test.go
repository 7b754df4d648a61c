package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urogers/CircuiTikZ-Designer-to-JSON/pkg/scene"
)

func TestParseShapeRequiresDeclaration(t *testing.T) {
	c := newTestConverter()

	_, ok := c.parseShape("draw, minimum width=1", scene.Point{})
	assert.False(t, ok)
}

func TestParseShapeRectangle(t *testing.T) {
	c := newTestConverter()

	comp, ok := c.parseShape("shape=rectangle, minimum width=1.308, minimum height=0.59", scene.Point{X: 10, Y: 20})
	require.True(t, ok)
	assert.Equal(t, "rect", comp.Type)
	assert.Equal(t, scene.Point{X: 10, Y: 20}, comp.Position)
	require.NotNil(t, comp.Size)
	assert.Equal(t, scene.Point{X: 50.86, Y: 22.941}, *comp.Size)
}

func TestParseShapeEllipseSquareSize(t *testing.T) {
	// Anything that is not a rectangle renders as an ellipse, and a lone
	// minimum width sets both axes.
	c := newTestConverter()

	comp, ok := c.parseShape("shape=circle, minimum width=1.672", scene.Point{})
	require.True(t, ok)
	assert.Equal(t, "ellipse", comp.Type)
	require.NotNil(t, comp.Size)
	assert.Equal(t, scene.Point{X: 65.014, Y: 65.014}, *comp.Size)
}

func TestParseShapeClampsNegativeWidth(t *testing.T) {
	c := newTestConverter()

	comp, ok := c.parseShape("shape=ellipse, minimum width=-0.035", scene.Point{})
	require.True(t, ok)
	require.NotNil(t, comp.Size)
	assert.Equal(t, scene.Point{}, *comp.Size)
}

func TestParseShapeHeightAloneDeclaresNoSize(t *testing.T) {
	c := newTestConverter()

	comp, ok := c.parseShape("shape=rectangle, minimum height=2", scene.Point{})
	require.True(t, ok)
	assert.Nil(t, comp.Size)
}

func TestParseShapeTrimsName(t *testing.T) {
	c := newTestConverter()

	comp, ok := c.parseShape("shape= rectangle , draw", scene.Point{})
	require.True(t, ok)
	assert.Equal(t, "rect", comp.Type)
}
