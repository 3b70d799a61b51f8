// Public domain.

// Package xmatch positionally associates the objects of two instance
// catalogs.
package xmatch

import (
	"github.com/dhconnelly/rtreego"
	"github.com/soniakeys/unit"

	"github.com/soniakeys/instcat/phosim"
	"github.com/soniakeys/instcat/sky"
)

// Pair associates a catalog object with its nearest reference object.
type Pair struct {
	Obj phosim.Object
	Ref phosim.Object
	Sep unit.Angle
}

// rtreego rectangles must have extent, so reference positions get this
// much of one, in degrees.
const eps = 1e-9

type refEntry struct {
	obj  phosim.Object
	rect rtreego.Rect
}

func (e *refEntry) Bounds() rtreego.Rect { return e.rect }

// Match finds, for each object of objs, the nearest object of refs on a
// tangent plane about the mean reference declination, and keeps the
// association when the true angular separation is within tol.
//
// The flat projection (ra·cos δ₀, dec) only ranks neighbours; reported
// separations are great circle.  References spanning a wide declination
// range degrade the ranking, but catalogs compared this way cover a
// single pointing.
func Match(objs, refs []phosim.Object, tol unit.Angle) []Pair {
	if len(refs) == 0 {
		return nil
	}
	var sum float64
	for _, r := range refs {
		sum += r.Pos.Dec.Deg()
	}
	cosd := unit.AngleFromDeg(sum / float64(len(refs))).Cos()
	proj := func(p sky.Pos) rtreego.Point {
		return rtreego.Point{p.RA.Deg() * cosd, p.Dec.Deg()}
	}
	rt := rtreego.NewTree(2, 25, 50)
	for _, r := range refs {
		rect, err := rtreego.NewRect(proj(r.Pos), []float64{eps, eps})
		if err != nil {
			continue // lengths are positive, not reached
		}
		rt.Insert(&refEntry{r, rect})
	}
	var ps []Pair
	for _, o := range objs {
		nn := rt.NearestNeighbor(proj(o.Pos))
		if nn == nil {
			continue
		}
		ref := nn.(*refEntry).obj
		if s := sky.Sep(o.Pos, ref.Pos); s <= tol {
			ps = append(ps, Pair{o, ref, s})
		}
	}
	return ps
}
