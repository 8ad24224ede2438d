package deck

import "math"

// EMU is a length in English Metric Units, the native unit of presentation
// documents. All geometry in this package is expressed in EMU.
type EMU int64

const (
	EMUPerInch  EMU = 914400
	EMUPerPoint EMU = 12700
)

// Inches converts a length in inches to EMU, rounding to the nearest unit.
func Inches(v float64) EMU { return EMU(math.Round(v * float64(EMUPerInch))) }

// Points converts a length in typographic points to EMU.
func Points(v float64) EMU { return EMU(math.Round(v * float64(EMUPerPoint))) }

// Inches returns e in inches.
func (e EMU) Inches() float64 { return float64(e) / float64(EMUPerInch) }

// Points returns e in typographic points.
func (e EMU) Points() float64 { return float64(e) / float64(EMUPerPoint) }

// Pixels returns e in device pixels at the given resolution.
func (e EMU) Pixels(dpi float64) float64 { return e.Inches() * dpi }
