package tui

import (
	"fmt"

	"github.com/Veraticus/analysis-viz/internal/common"
	"github.com/Veraticus/analysis-viz/internal/routes"
	"github.com/Veraticus/analysis-viz/internal/tui/components"
)

// constructor builds the widget for a route.
type constructor func(env components.Env, id string) (components.Widget, error)

var constructors = map[routes.Kind]constructor{
	routes.Walkthrough: func(env components.Env, id string) (components.Widget, error) {
		return components.NewWalkthroughModel(env, id)
	},
	routes.Region: func(env components.Env, _ string) (components.Widget, error) {
		return components.NewRegionModel(env), nil
	},
	routes.PointSet: func(env components.Env, _ string) (components.Widget, error) {
		return components.NewPointSetModel(env), nil
	},
	routes.EpsDelta: func(env components.Env, _ string) (components.Widget, error) {
		return components.NewEpsDeltaModel(env), nil
	},
	routes.PowerConv: func(env components.Env, _ string) (components.Widget, error) {
		return components.NewPowerConvModel(env), nil
	},
	routes.Sequence: func(env components.Env, id string) (components.Widget, error) {
		return components.NewSequenceModel(env, id)
	},
}

// NewWidget creates the widget for a route id.
func NewWidget(id string, env components.Env) (components.Widget, error) {
	r, err := routes.Lookup(id)
	if err != nil {
		return nil, err
	}
	build, ok := constructors[r.Kind]
	if !ok {
		return nil, fmt.Errorf("%w: no widget for %q", common.ErrUnknownRoute, id)
	}
	return build(env, id)
}
