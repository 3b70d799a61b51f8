// Public domain.

package xmatch_test

import (
	"math"
	"testing"

	"github.com/soniakeys/unit"

	"github.com/soniakeys/instcat/phosim"
	"github.com/soniakeys/instcat/sky"
	"github.com/soniakeys/instcat/xmatch"
)

func obj(id string, ra, dec float64) phosim.Object {
	return phosim.Object{ID: id, Pos: sky.PosFromDeg(ra, dec)}
}

func TestMatch(t *testing.T) {
	refs := []phosim.Object{
		obj("r1", 53.0449009, -27.3220807),
		obj("r2", 53.1, -27.4),
		obj("r3", 52.9, -27.2),
	}
	// measured positions: r1 exactly, r2 offset by half an arc second
	// in declination, and one source nowhere near any reference.
	objs := []phosim.Object{
		obj("m1", 53.0449009, -27.3220807),
		obj("m2", 53.1, -27.4+0.5/3600),
		obj("m3", 54.5, -26),
	}
	ps := xmatch.Match(objs, refs, unit.AngleFromSec(1))
	if len(ps) != 2 {
		t.Fatal(len(ps), "pairs, want 2")
	}
	if ps[0].Obj.ID != "m1" || ps[0].Ref.ID != "r1" {
		t.Fatal("pair 0:", ps[0].Obj.ID, ps[0].Ref.ID)
	}
	if s := ps[0].Sep.Sec(); s > 1e-9 {
		t.Fatal("exact coincidence sep", s)
	}
	if ps[1].Obj.ID != "m2" || ps[1].Ref.ID != "r2" {
		t.Fatal("pair 1:", ps[1].Obj.ID, ps[1].Ref.ID)
	}
	if s := ps[1].Sep.Sec(); math.Abs(s-.5) > 1e-6 {
		t.Fatal("offset sep", s)
	}
}

func TestMatchTolerance(t *testing.T) {
	refs := []phosim.Object{obj("r1", 10, 0)}
	objs := []phosim.Object{obj("m1", 10, 2./3600)}
	if ps := xmatch.Match(objs, refs, unit.AngleFromSec(1)); len(ps) != 0 {
		t.Fatal("match beyond tolerance")
	}
	if ps := xmatch.Match(objs, refs, unit.AngleFromSec(3)); len(ps) != 1 {
		t.Fatal("no match within tolerance")
	}
}

func TestMatchEmpty(t *testing.T) {
	if ps := xmatch.Match([]phosim.Object{obj("m", 1, 2)}, nil,
		unit.AngleFromSec(1)); ps != nil {
		t.Fatal("pairs from empty reference")
	}
}
