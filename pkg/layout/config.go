package layout

import "github.com/narravis/narravis/pkg/errors"

// Default configuration values. These match the canvas the downstream
// renderer targets (1080p frames).
const (
	DefaultWidth         = 1920.0
	DefaultHeight        = 1080.0
	DefaultNodeWidth     = 160.0
	DefaultNodeHeight    = 60.0
	DefaultMinSeparation = 40.0
	DefaultMargin        = 40.0

	// DefaultCharWidth and DefaultLabelPadding size node boxes from label
	// length: width = labelLen*charWidth + padding, capped at 2x base width.
	DefaultCharWidth    = 8.0
	DefaultLabelPadding = 20.0

	// DefaultMaxRounds bounds the overlap-resolution loop. Ten rounds
	// resolves typical inputs (up to ~20 nodes) with room to spare.
	DefaultMaxRounds = 10

	// DefaultBalanceNorm is the variance normalization constant for the
	// layout-balance metric.
	DefaultBalanceNorm = 500000.0
)

// Config holds the canvas geometry and engine constants for one engine
// instance. It is read-only once the engine is constructed, which keeps
// concurrent Generate calls safe without locking.
type Config struct {
	// Canvas dimensions in canvas units (pixels for the SVG renderer).
	Width  float64 `json:"width" toml:"width"`
	Height float64 `json:"height" toml:"height"`

	// Base node box size. Actual width grows with label length up to 2x.
	NodeWidth  float64 `json:"node_width" toml:"node_width"`
	NodeHeight float64 `json:"node_height" toml:"node_height"`

	// MinSeparation is the required clearance between node boxes. Two boxes
	// closer than this count as overlapping.
	MinSeparation float64 `json:"min_separation" toml:"min_separation"`

	// Margin is the clearance kept between any node box and the canvas edge.
	Margin float64 `json:"margin" toml:"margin"`

	// Label sizing constants.
	CharWidth    float64 `json:"char_width" toml:"char_width"`
	LabelPadding float64 `json:"label_padding" toml:"label_padding"`

	// MaxRounds caps the overlap-resolution loop.
	MaxRounds int `json:"max_rounds" toml:"max_rounds"`

	// BalanceNorm is the variance normalization constant for LayoutBalance.
	BalanceNorm float64 `json:"balance_norm" toml:"balance_norm"`
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() Config {
	return Config{
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		NodeWidth:     DefaultNodeWidth,
		NodeHeight:    DefaultNodeHeight,
		MinSeparation: DefaultMinSeparation,
		Margin:        DefaultMargin,
		CharWidth:     DefaultCharWidth,
		LabelPadding:  DefaultLabelPadding,
		MaxRounds:     DefaultMaxRounds,
		BalanceNorm:   DefaultBalanceNorm,
	}
}

// Validate checks that all dimensions and constants are positive and the
// canvas leaves usable space inside the margins. A malformed config is a
// programmer error and fails fast at engine construction, not mid-layout.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.New(errors.ErrCodeInvalidConfig, "canvas dimensions must be positive, got %gx%g", c.Width, c.Height)
	case c.NodeWidth <= 0 || c.NodeHeight <= 0:
		return errors.New(errors.ErrCodeInvalidConfig, "node dimensions must be positive, got %gx%g", c.NodeWidth, c.NodeHeight)
	case c.MinSeparation < 0:
		return errors.New(errors.ErrCodeInvalidConfig, "min separation must not be negative, got %g", c.MinSeparation)
	case c.Margin < 0:
		return errors.New(errors.ErrCodeInvalidConfig, "margin must not be negative, got %g", c.Margin)
	case c.CharWidth <= 0 || c.LabelPadding < 0:
		return errors.New(errors.ErrCodeInvalidConfig, "label sizing constants must be positive, got char width %g padding %g", c.CharWidth, c.LabelPadding)
	case c.MaxRounds <= 0:
		return errors.New(errors.ErrCodeInvalidConfig, "max rounds must be positive, got %d", c.MaxRounds)
	case c.BalanceNorm <= 0:
		return errors.New(errors.ErrCodeInvalidConfig, "balance norm must be positive, got %g", c.BalanceNorm)
	case c.Width-2*c.Margin < c.NodeWidth*2 || c.Height-2*c.Margin < c.NodeHeight:
		return errors.New(errors.ErrCodeInvalidConfig, "canvas %gx%g too small for node boxes inside margin %g", c.Width, c.Height, c.Margin)
	}
	return nil
}
