package convert

import (
	"regexp"
	"strconv"

	"github.com/urogers/CircuiTikZ-Designer-to-JSON/pkg/scene"
)

var (
	xscaleRe = regexp.MustCompile(`xscale=(-?\d*\.?\d+)`)
	yscaleRe = regexp.MustCompile(`yscale=(-?\d*\.?\d+)`)
	rotateRe = regexp.MustCompile(`rotate=(-?\d*\.?\d+)`)
)

// parseRotation recovers rotation and scale from the axis-scale and rotate
// options. The source spells out rotation only sometimes: a lone xscale is
// a flip that renders as a -180 turn with both axes negated, a lone yscale
// an x-axis mirror with no turn, and when rotate appears alongside both
// scales all three pass through verbatim. Scale factors are never inverted
// when rotate is present. The five cases are mutually exclusive over the
// presence flags; nil means the attribute is absent.
func parseRotation(options string) (*float64, *scene.Scale) {
	mx := xscaleRe.FindStringSubmatch(options)
	my := yscaleRe.FindStringSubmatch(options)
	mr := rotateRe.FindStringSubmatch(options)

	num := func(m []string) float64 {
		v, _ := strconv.ParseFloat(m[1], 64)
		return v
	}

	switch {
	case mx != nil && my != nil && mr != nil:
		rot := num(mr)
		return &rot, &scene.Scale{X: num(mx), Y: num(my)}
	case mx != nil && my == nil && mr == nil:
		rot := -180.0
		v := num(mx)
		return &rot, &scene.Scale{X: -v, Y: -v}
	case mx == nil && my != nil && mr == nil:
		v := num(my)
		return nil, &scene.Scale{X: -v, Y: v}
	case mr != nil:
		rot := num(mr)
		return &rot, nil
	case mx != nil && my != nil:
		return nil, &scene.Scale{X: num(mx), Y: num(my)}
	}
	return nil, nil
}
