package vstretch

import(
	"context"
	"fmt"
	"log"
	"math"

	"gopkg.in/yaml.v2"

	"github.com/veralux/veralux/pkg/sensor"
	"github.com/veralux/veralux/pkg/vframe"
)

// Mode selects which invariants the pipeline honors. Ready-to-use
// optimizes for a pleasing export (output scaling + soft clip, no
// linear expansion); scientific preserves radiometric relationships
// (no output scaling or soft clip, optional linear expansion).
type Mode string

const (
	ReadyToUse Mode = "ready-to-use"
	Scientific Mode = "scientific"
)

// Params is the full parameter set for one pipeline run. Plain data,
// immutable during a run; marshal it to YAML to persist presets.
type Params struct {
	Mode              Mode    `yaml:"mode"`
	Sensor            string  `yaml:"sensor"`            // profile name, "" = Rec.709
	TargetBackground  float64 `yaml:"targetbackground"`  // [0.05, 0.50]
	LogD              float64 `yaml:"logd"`              // [0, 7]
	AutoLogD          bool    `yaml:"autologd"`          // solve LogD against TargetBackground
	ProtectB          float64 `yaml:"protectb"`          // [0.1, 15]
	ColorConvergence  float64 `yaml:"colorconvergence"`  // [1, 10]
	ColorStrategy     int     `yaml:"colorstrategy"`     // [-100, 100], ready-to-use only
	ColorGrip         float64 `yaml:"colorgrip"`         // [0, 1], scientific only
	ShadowConvergence float64 `yaml:"shadowconvergence"` // [0, 3], scientific only
	LinearExpansion   float64 `yaml:"linearexpansion"`   // [0, 1], scientific only
	AdaptiveAnchor    bool    `yaml:"adaptiveanchor"`
	FastBounds        bool    `yaml:"fastbounds"` // MAD/sigma bounds instead of exact percentiles
	Verbosity         int     `yaml:"verbosity"`
}

func NewParams() Params {
	return Params{
		Mode:              ReadyToUse,
		TargetBackground:  0.20,
		LogD:              2.0,
		ProtectB:          6.0,
		ColorConvergence:  3.5,
		ColorStrategy:     0,
		ColorGrip:         1.0,
		ShadowConvergence: 0.0,
		LinearExpansion:   0.0,
		AdaptiveAnchor:    true,
	}
}

func NewParamsFromYaml(b []byte) (Params, error) {
	p := NewParams()
	if err := yaml.Unmarshal(b, &p); err != nil {
		return p, fmt.Errorf("parse params: %v", err)
	}
	return p, nil
}

func (p Params)AsYaml() string {
	b, err := yaml.Marshal(p)
	if err != nil {
		log.Fatalf("Can't marshal params yaml: %v\n", err)
	}
	return string(b)
}

// EffectiveColor resolves the color controls for the selected mode.
// Ready-to-use derives grip and shadow convergence from the single
// colorStrategy scalar: negative values raise shadow convergence (up
// to 3.0) with grip pinned at 1.0, positive values lower grip (down to
// 0.4) with shadow convergence pinned at 0. Linear expansion is always
// off in ready-to-use. Scientific passes the explicit values through.
func (p Params)EffectiveColor() (grip, shadow, linearExp float64) {
	if p.Mode == ReadyToUse {
		v := p.ColorStrategy
		if v < 0 {
			shadow = (math.Abs(float64(v)) / 100.0) * 3.0
			grip = 1.0
		} else {
			grip = 1.0 - (float64(v)/100.0)*0.6
			shadow = 0.0
		}
		linearExp = 0.0
		return
	}

	return p.ColorGrip, p.ShadowConvergence, p.LinearExpansion
}

// Profile resolves the sensor profile named in the params, defaulting
// to Rec.709.
func (p Params)Profile() sensor.Profile {
	if p.Sensor == "" {
		return sensor.Default()
	}
	if prof, ok := sensor.ByName(p.Sensor); ok {
		return prof
	}
	log.Printf("sensor profile %q not found, using %s", p.Sensor, sensor.Default().Name)
	return sensor.Default()
}

// Result carries the per-run diagnostics alongside the transformed
// frame.
type Result struct {
	Anchor       float64
	LogD         float64 // the value actually used (solved when AutoLogD)
	StarPressure float64
	Expansion    ExpansionStats
}

// Run executes the full stretch pipeline on a normalized frame, in
// place: anchor detection, luminance extraction, hyperbolic stretch,
// mode-dependent expansion or output conditioning, and color
// reconstruction. ctx is polled between stages; after a cancellation
// the frame contents are undefined and should be discarded.
func Run(ctx context.Context, f *vframe.Frame, p Params, profile sensor.Profile) (Result, error) {
	res := Result{}

	grip, shadow, linearExp := p.EffectiveColor()

	if p.Verbosity > 0 {
		log.Printf("HyperMetric stretch: mode=%s sensor=%s %s", p.Mode, profile.Name, f)
	}

	if err := ctx.Err(); err != nil {
		return res, err
	}

	if p.AdaptiveAnchor {
		res.Anchor = CalculateAnchorAdaptive(f, profile)
	} else {
		res.Anchor = CalculateAnchor(f)
	}
	if p.Verbosity > 0 {
		log.Printf("Anchor: %.6f", res.Anchor)
	}

	if err := ctx.Err(); err != nil {
		return res, err
	}

	luma := ExtractLuminance(f, res.Anchor, profile)
	res.StarPressure = EstimateStarPressure(luma)

	res.LogD = p.LogD
	if p.AutoLogD {
		res.LogD = SolveLogD(luma, p.TargetBackground, p.ProtectB)
		if p.Verbosity > 0 {
			log.Printf("Auto-solved Log D = %.2f", res.LogD)
		}
	}
	D := math.Pow(10, res.LogD)

	if err := ctx.Err(); err != nil {
		return res, err
	}

	if p.Verbosity > 0 {
		log.Printf("Hyperbolic stretch (Log D=%.2f, b=%.2f)", res.LogD, p.ProtectB)
	}
	HyperbolicStretch(luma, D, p.ProtectB, 0)

	if p.Mode == Scientific && linearExp > 0.001 {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		res.Expansion = ApplyLinearExpansion(luma, linearExp, p.FastBounds)
		if res.Expansion.PctHigh >= 0.01 {
			log.Printf("Warning: %.3f%% of pixels clamped at high end", res.Expansion.PctHigh)
		}
	}

	if err := ctx.Err(); err != nil {
		return res, err
	}

	anchored := AnchoredRGB(f, res.Anchor)
	ReconstructColor(f, luma, anchored, p.ColorConvergence, grip, shadow, D, p.ProtectB)

	if p.Mode == ReadyToUse {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if p.Verbosity > 0 {
			log.Printf("Adaptive output scaling (target background %.2f)", p.TargetBackground)
		}
		AdaptiveOutputScaling(f, profile, p.TargetBackground, p.FastBounds)
		ApplySoftClip(f, 0.98, 2.0)
	}

	return res, nil
}
