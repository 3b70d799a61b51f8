// Public domain.

// Package sky, positions and angular separation on the celestial sphere.
package sky

import (
	"math"

	"github.com/soniakeys/coord"
	"github.com/soniakeys/meeus/v3/angle"
	"github.com/soniakeys/unit"
)

// Pos is an equatorial position on the celestial sphere.
type Pos struct {
	RA  unit.RA
	Dec unit.Angle
}

// PosFromDeg constructs a Pos from right ascension and declination in
// degrees, the convention of instance catalog text.
func PosFromDeg(ra, dec float64) Pos {
	return Pos{unit.RAFromDeg(ra), unit.AngleFromDeg(dec)}
}

// Cart returns the unit vector pointing at p.
func (p Pos) Cart() coord.Cart {
	sd, cd := math.Sincos(p.Dec.Rad())
	sr, cr := math.Sincos(p.RA.Rad())
	return coord.Cart{
		X: cr * cd,
		Y: sr * cd,
		Z: sd,
	}
}

// Sep returns the angular separation between two positions.
//
// The result is in the range [0, 180°].  The Pauwels formulation is
// stable for near-coincident and near-antipodal positions, so nothing
// special is needed at the poles or the 0/360 wrap.
func Sep(p0, p1 Pos) unit.Angle {
	return angle.SepPauwels(unit.Angle(p0.RA), p0.Dec, unit.Angle(p1.RA), p1.Dec)
}

// SepDeg is Sep with both positions and the result in degrees.
func SepDeg(ra0, dec0, ra1, dec1 float64) float64 {
	return Sep(PosFromDeg(ra0, dec0), PosFromDeg(ra1, dec1)).Deg()
}

// FlatSep returns the tangent plane approximation of the separation,
// sqrt(Δδ² + (cos δ · Δα)²), with Δα wrapped to ±180°.
//
// It is cheap and good enough for associating sources over the small
// angles of a single pointing.  Use Sep for anything wider.
func FlatSep(p0, p1 Pos) unit.Angle {
	dd := (p1.Dec - p0.Dec).Rad()
	da := math.Remainder(unit.Angle(p1.RA).Rad()-unit.Angle(p0.RA).Rad(),
		2*math.Pi) * p0.Dec.Cos()
	return unit.Angle(math.Hypot(dd, da))
}
