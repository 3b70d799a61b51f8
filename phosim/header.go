// Public domain.

package phosim

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/julian"

	"github.com/soniakeys/instcat/sky"
)

// Visit holds observation metadata read from the header commands of an
// instance catalog.  Typed fields cover the commands the tools here
// care about; Commands holds every command seen, unparsed, so nothing
// is lost.
type Visit struct {
	ObsHistID      int
	RightAscension float64 // pointing RA, degrees
	Declination    float64 // pointing Dec, degrees
	MJD            float64
	RotSkyPos      float64 // degrees
	Band           string  // one of ugrizy
	Seeing         float64 // arc seconds

	Commands map[string]string
}

// bands indexed by the phosim filter command value.
const bands = "ugrizy"

// ReadVisit scans a catalog stream for header commands.
//
// Object lines and lines with fewer than two fields are skipped.  For a
// repeated command the last value wins.  A command with an unparseable
// value for one of the typed Visit fields is quietly left in Commands
// only, matching phosim's own indifference to commands it doesn't use.
func ReadVisit(r io.Reader) (*Visit, error) {
	v := &Visit{Commands: make(map[string]string)}
	bf := bufio.NewReader(r)
	for {
		line, err := bf.ReadString('\n')
		if !IsObject(line) {
			if f := strings.Fields(line); len(f) >= 2 {
				v.Commands[f[0]] = strings.Join(f[1:], " ")
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	if s, ok := v.Commands["obshistid"]; ok {
		v.ObsHistID, _ = strconv.Atoi(s)
	}
	ff := func(cmd string, fld *float64) {
		if s, ok := v.Commands[cmd]; ok {
			if x, err := strconv.ParseFloat(s, 64); err == nil {
				*fld = x
			}
		}
	}
	ff("rightascension", &v.RightAscension)
	ff("declination", &v.Declination)
	ff("mjd", &v.MJD)
	ff("rotskypos", &v.RotSkyPos)
	ff("seeing", &v.Seeing)
	if s, ok := v.Commands["bandpass"]; ok {
		v.Band = s
	} else if s, ok := v.Commands["filter"]; ok {
		// phosim gives the filter as an index into ugrizy
		if i, err := strconv.Atoi(s); err == nil && i >= 0 && i < len(bands) {
			v.Band = bands[i : i+1]
		}
	}
	return v, nil
}

// ReadVisitFile is ReadVisit on a named file.
func ReadVisitFile(path string) (*Visit, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadVisit(f)
}

// Pointing returns the boresight of the visit.  Ok is false if the
// header had no rightascension or declination command.
func (v *Visit) Pointing() (p sky.Pos, ok bool) {
	_, okRA := v.Commands["rightascension"]
	_, okDec := v.Commands["declination"]
	if !okRA || !okDec {
		return p, false
	}
	return sky.PosFromDeg(v.RightAscension, v.Declination), true
}

// Time returns the mjd command as civil time.
func (v *Visit) Time() time.Time {
	return julian.JDToTime(v.MJD + base.JMod)
}
