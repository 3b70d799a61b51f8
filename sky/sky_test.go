// Public domain.

package sky_test

import (
	"math"
	"testing"

	"github.com/soniakeys/instcat/sky"
)

var sepTestCases = []struct {
	ra0, dec0, ra1, dec1 float64
	want                 float64 // degrees
}{
	{0, 0, 0, 0, 0},
	{53.0449009, -27.3220807, 53.0449009, -27.3220807, 0},
	{0, 0, 90, 0, 90},    // quarter sphere along the equator
	{0, 0, 180, 0, 180},  // antipodal
	{0, -90, 0, 90, 180}, // pole to pole
	{10, 80, 190, 80, 20},
	{359.5, 0, .5, 0, 1}, // across the 0/360 wrap
	{20, 45, 20, 44, 1},
}

func TestSepDeg(t *testing.T) {
	for _, c := range sepTestCases {
		got := sky.SepDeg(c.ra0, c.dec0, c.ra1, c.dec1)
		if math.Abs(got-c.want) > 1e-9 {
			t.Fatalf("SepDeg(%v, %v, %v, %v) = %v, want %v",
				c.ra0, c.dec0, c.ra1, c.dec1, got, c.want)
		}
		// symmetry
		if r := sky.SepDeg(c.ra1, c.dec1, c.ra0, c.dec0); math.Abs(r-got) > 1e-12 {
			t.Fatalf("SepDeg not symmetric for case %+v", c)
		}
		// bounds
		if got < 0 || got > 180 {
			t.Fatalf("SepDeg out of [0, 180]: %v", got)
		}
	}
}

// the declination offset sweep of the reference implementation's unit test:
// separations from .2 arc seconds to 179 degrees along a meridian.
func TestSepMeridian(t *testing.T) {
	const ra0, dec0 = 53.0449009, -27.3220807
	lo := math.Log10(.2 / 3600)
	hi := math.Log10(179)
	for i := 0; i < 100; i++ {
		s := math.Pow(10, lo+(hi-lo)*float64(i)/99)
		dec1 := dec0 + s
		if math.Abs(dec1) > 90 {
			continue
		}
		got := sky.SepDeg(ra0, dec0, ra0, dec1)
		if math.Abs(got-s) > 1e-7 {
			t.Fatalf("sep along meridian: got %v, want %v", got, s)
		}
	}
}

// Sep should agree with the clamped arccosine of the dot product of
// unit vectors.
func TestSepCart(t *testing.T) {
	for _, c := range sepTestCases {
		p0 := sky.PosFromDeg(c.ra0, c.dec0)
		p1 := sky.PosFromDeg(c.ra1, c.dec1)
		c0 := p0.Cart()
		c1 := p1.Cart()
		d := c0.Dot(&c1)
		switch {
		case d > 1:
			d = 1
		case d < -1:
			d = -1
		}
		want := math.Acos(d) * 180 / math.Pi
		if got := sky.Sep(p0, p1).Deg(); math.Abs(got-want) > 1e-9 {
			t.Fatalf("Sep disagrees with dot product for %+v: %v != %v",
				c, got, want)
		}
	}
}

func TestFlatSep(t *testing.T) {
	// near the equator and over small angles the approximation should be
	// close to the exact separation.
	p0 := sky.PosFromDeg(10, 1)
	p1 := sky.PosFromDeg(10.01, 1.01)
	f := sky.FlatSep(p0, p1).Deg()
	e := sky.Sep(p0, p1).Deg()
	if math.Abs(f-e) > 1e-5 {
		t.Fatalf("FlatSep %v too far from Sep %v", f, e)
	}
	// and it must wrap in RA.
	w := sky.FlatSep(sky.PosFromDeg(359.9, 0), sky.PosFromDeg(.1, 0)).Deg()
	if math.Abs(w-.2) > 1e-9 {
		t.Fatalf("FlatSep across wrap = %v, want .2", w)
	}
}
