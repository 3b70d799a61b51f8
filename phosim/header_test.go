// Public domain.

package phosim_test

import (
	"math"
	"strings"
	"testing"

	"github.com/soniakeys/instcat/phosim"
)

const testHeader = `obshistid 1668469
rightascension 53.0091385
declination -27.4389488
mjd 59580.0
rotskypos 256.7
filter 2
seeing 0.67
object 992886536196 53.0449009 -27.3220807 22.64 starSED/a.spec.gz 0 0 0 0 0 0 point none none
`

func TestReadVisit(t *testing.T) {
	v, err := phosim.ReadVisit(strings.NewReader(testHeader))
	if err != nil {
		t.Fatal(err)
	}
	switch {
	case v.ObsHistID != 1668469:
		t.Fatal("ObsHistID", v.ObsHistID)
	case math.Abs(v.RightAscension-53.0091385) > 1e-9:
		t.Fatal("RightAscension", v.RightAscension)
	case math.Abs(v.Declination+27.4389488) > 1e-9:
		t.Fatal("Declination", v.Declination)
	case v.MJD != 59580:
		t.Fatal("MJD", v.MJD)
	case v.RotSkyPos != 256.7:
		t.Fatal("RotSkyPos", v.RotSkyPos)
	case v.Band != "r": // filter index 2 of ugrizy
		t.Fatal("Band", v.Band)
	case v.Seeing != .67:
		t.Fatal("Seeing", v.Seeing)
	}
	// the object line is not a command
	if _, ok := v.Commands["object"]; ok {
		t.Fatal("object line taken as a command")
	}
	p, ok := v.Pointing()
	if !ok {
		t.Fatal("no pointing")
	}
	if math.Abs(p.Dec.Deg()+27.4389488) > 1e-9 {
		t.Fatal("pointing Dec", p.Dec.Deg())
	}
	if d := v.Time().UTC().Format("2006-01-02"); d != "2022-01-01" {
		t.Fatal("visit date", d)
	}
}

func TestReadVisitBandpass(t *testing.T) {
	// an explicit bandpass command wins over a filter index
	v, err := phosim.ReadVisit(strings.NewReader("filter 0\nbandpass z\n"))
	if err != nil {
		t.Fatal(err)
	}
	if v.Band != "z" {
		t.Fatal("Band", v.Band)
	}
}

func TestReadVisitNoPointing(t *testing.T) {
	v, err := phosim.ReadVisit(strings.NewReader("mjd 59580.0\n"))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := v.Pointing(); ok {
		t.Fatal("pointing from headerless catalog")
	}
}
