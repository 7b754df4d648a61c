package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/urogers/CircuiTikZ-Designer-to-JSON/pkg/scene"
)

func TestParseRotation(t *testing.T) {
	deg := func(v float64) *float64 { return &v }

	tests := []struct {
		name      string
		options   string
		wantRot   *float64
		wantScale *scene.Scale
	}{
		{
			"rotate alone",
			"ground, rotate=-45",
			deg(-45), nil,
		},
		{
			"xscale alone is a half turn",
			"xscale=-1",
			deg(-180), &scene.Scale{X: 1, Y: 1},
		},
		{
			"xscale stretch",
			"xscale=2",
			deg(-180), &scene.Scale{X: -2, Y: -2},
		},
		{
			"yscale alone mirrors without turning",
			"yscale=-1",
			nil, &scene.Scale{X: 1, Y: -1},
		},
		{
			"both scales pass through",
			"xscale=0.5, yscale=0.5",
			nil, &scene.Scale{X: 0.5, Y: 0.5},
		},
		{
			"rotate wins over a lone xscale",
			"rotate=30, xscale=2",
			deg(30), nil,
		},
		{
			"all three pass through verbatim",
			"rotate=15, xscale=-1, yscale=1",
			deg(15), &scene.Scale{X: -1, Y: 1},
		},
		{
			"no transform options",
			"shape=rectangle, draw",
			nil, nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rot, scale := parseRotation(tt.options)
			assert.Equal(t, tt.wantRot, rot)
			assert.Equal(t, tt.wantScale, scale)
		})
	}
}
