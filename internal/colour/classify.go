package colour

import "fmt"

// Class tags a sample as visually colourful or near-monochrome.
type Class int

const (
	// Colorful samples carry a usable hue and sort on the colour wheel.
	Colorful Class = iota

	// Monochrome samples are too desaturated, too dark or too close to
	// white for hue ordering to mean anything; they sort by brightness
	// in their own block of the mosaic.
	Monochrome
)

// String returns the string representation of a Class.
func (c Class) String() string {
	switch c {
	case Colorful:
		return "colorful"
	case Monochrome:
		return "monochrome"
	default:
		return "unknown"
	}
}

// Thresholds holds the classification cut-offs.
type Thresholds struct {
	// MinSaturation is the saturation below which a sample is considered
	// grey regardless of brightness.
	MinSaturation float64 `yaml:"min_saturation"`

	// MinValue is the brightness below which a sample is near-black.
	MinValue float64 `yaml:"min_value"`

	// MaxValue is the brightness above which a weakly saturated sample
	// is near-white.
	MaxValue float64 `yaml:"max_value"`

	// WhiteSaturation is the saturation cap that applies only above
	// MaxValue: very bright samples need at least this much saturation
	// to still count as colourful.
	WhiteSaturation float64 `yaml:"white_saturation"`
}

// DefaultThresholds returns the documented default classification cut-offs.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MinSaturation:   0.15,
		MinValue:        0.12,
		MaxValue:        0.92,
		WhiteSaturation: 0.25,
	}
}

// Validate checks that all thresholds are within [0, 1].
func (t Thresholds) Validate() error {
	for name, v := range map[string]float64{
		"min_saturation":   t.MinSaturation,
		"min_value":        t.MinValue,
		"max_value":        t.MaxValue,
		"white_saturation": t.WhiteSaturation,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("threshold %s out of range [0, 1]: %g", name, v)
		}
	}
	return nil
}

// Classify decides whether a sample is Colorful or Monochrome. It is a
// pure function of the sample's saturation and value.
func Classify(s Sample, t Thresholds) Class {
	switch {
	case s.HSV.S < t.MinSaturation:
		return Monochrome
	case s.HSV.V < t.MinValue:
		return Monochrome
	case s.HSV.V > t.MaxValue && s.HSV.S < t.WhiteSaturation:
		return Monochrome
	default:
		return Colorful
	}
}
