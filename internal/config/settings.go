package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/Veraticus/analysis-viz/internal/common"
	"github.com/Veraticus/analysis-viz/internal/pointset"
)

// EnvPrefix prefixes every environment override, e.g. VIZ_UI_THEME.
const EnvPrefix = "VIZ"

// Settings is the resolved configuration.
type Settings struct {
	Logging  LoggingSettings
	Export   ExportSettings
	UI       UISettings
	Canvas   CanvasSettings
	PointSet PointSetSettings
}

// LoggingSettings configures slog.
type LoggingSettings struct {
	Level  string
	Format string
}

// UISettings configures the interactive widgets.
type UISettings struct {
	Theme      string
	FPS        int
	Mouse      bool
	Animations bool
}

// CanvasSettings is the display-unit surface point sets are generated on.
type CanvasSettings struct {
	Width  float64
	Height float64
}

// PointSetSettings holds the point-set classifier thresholds at the
// reference surface size.
type PointSetSettings struct {
	SelfTolerance     float64
	AdherentThreshold float64
	ReferenceSize     float64
	Seed              uint32
}

// ExportSettings configures PNG export.
type ExportSettings struct {
	Dir    string
	Width  int
	Height int
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	th := pointset.DefaultThresholds()
	return Settings{
		Logging: LoggingSettings{Level: "info", Format: "console"},
		UI: UISettings{
			Theme:      "default",
			FPS:        30,
			Mouse:      true,
			Animations: true,
		},
		Canvas: CanvasSettings{Width: 600, Height: 420},
		PointSet: PointSetSettings{
			SelfTolerance:     th.Self,
			AdherentThreshold: th.Adherent,
			ReferenceSize:     420,
		},
		Export: ExportSettings{Dir: "./viz-export", Width: 900, Height: 630},
	}
}

// SetDefaults registers the defaults with v so that files and environment
// variables only need to name what they change.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("ui.theme", d.UI.Theme)
	v.SetDefault("ui.fps", d.UI.FPS)
	v.SetDefault("ui.mouse", d.UI.Mouse)
	v.SetDefault("ui.animations", d.UI.Animations)
	v.SetDefault("canvas.width", d.Canvas.Width)
	v.SetDefault("canvas.height", d.Canvas.Height)
	v.SetDefault("pointset.self_tolerance", d.PointSet.SelfTolerance)
	v.SetDefault("pointset.adherent_threshold", d.PointSet.AdherentThreshold)
	v.SetDefault("pointset.reference_size", d.PointSet.ReferenceSize)
	v.SetDefault("pointset.seed", d.PointSet.Seed)
	v.SetDefault("export.dir", d.Export.Dir)
	v.SetDefault("export.width", d.Export.Width)
	v.SetDefault("export.height", d.Export.Height)
}

// Load reads the settings from v and validates them.
func Load(v *viper.Viper) (Settings, error) {
	SetDefaults(v)
	s := Settings{
		Logging: LoggingSettings{
			Level:  v.GetString("logging.level"),
			Format: v.GetString("logging.format"),
		},
		UI: UISettings{
			Theme:      v.GetString("ui.theme"),
			FPS:        v.GetInt("ui.fps"),
			Mouse:      v.GetBool("ui.mouse"),
			Animations: v.GetBool("ui.animations"),
		},
		Canvas: CanvasSettings{
			Width:  v.GetFloat64("canvas.width"),
			Height: v.GetFloat64("canvas.height"),
		},
		PointSet: PointSetSettings{
			SelfTolerance:     v.GetFloat64("pointset.self_tolerance"),
			AdherentThreshold: v.GetFloat64("pointset.adherent_threshold"),
			ReferenceSize:     v.GetFloat64("pointset.reference_size"),
			Seed:              v.GetUint32("pointset.seed"),
		},
		Export: ExportSettings{
			Dir:    ExpandPath(v.GetString("export.dir")),
			Width:  v.GetInt("export.width"),
			Height: v.GetInt("export.height"),
		},
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks the settings for values the widgets cannot use.
func (s Settings) Validate() error {
	if _, err := common.ParseLevel(s.Logging.Level); err != nil {
		return err
	}
	if s.Logging.Format != "console" && s.Logging.Format != "json" {
		return fmt.Errorf("%w: log format %q must be console or json", common.ErrInvalidConfig, s.Logging.Format)
	}
	if s.UI.Theme != "default" && s.UI.Theme != "nord" {
		return fmt.Errorf("%w: ui.theme %q must be default or nord", common.ErrInvalidConfig, s.UI.Theme)
	}
	if s.UI.FPS < 1 || s.UI.FPS > 120 {
		return fmt.Errorf("%w: ui.fps %d must be between 1 and 120", common.ErrInvalidConfig, s.UI.FPS)
	}
	if !(s.Canvas.Width > 0) || !(s.Canvas.Height > 0) {
		return fmt.Errorf("%w: canvas size %gx%g must be positive", common.ErrInvalidConfig, s.Canvas.Width, s.Canvas.Height)
	}
	ps := s.PointSet
	if !(ps.SelfTolerance > 0) || !(ps.AdherentThreshold > 0) || !(ps.ReferenceSize > 0) {
		return fmt.Errorf("%w: point-set thresholds must be positive", common.ErrInvalidConfig)
	}
	if ps.SelfTolerance > ps.AdherentThreshold {
		return fmt.Errorf("%w: pointset.self_tolerance %g exceeds pointset.adherent_threshold %g",
			common.ErrInvalidConfig, ps.SelfTolerance, ps.AdherentThreshold)
	}
	if s.Export.Width < 200 || s.Export.Height < 150 {
		return fmt.Errorf("%w: export size %dx%d is below 200x150", common.ErrInvalidConfig, s.Export.Width, s.Export.Height)
	}
	if s.Export.Dir == "" {
		return fmt.Errorf("%w: export.dir is empty", common.ErrInvalidConfig)
	}
	return nil
}

// Thresholds returns the point-set thresholds scaled to the canvas.
func (s Settings) Thresholds() pointset.Thresholds {
	base := pointset.Thresholds{Self: s.PointSet.SelfTolerance, Adherent: s.PointSet.AdherentThreshold}
	return pointset.ScaledThresholds(base, s.Canvas.Width, s.Canvas.Height, s.PointSet.ReferenceSize)
}
