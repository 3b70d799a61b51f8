// Public domain.

package main

import (
	"bufio"
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/soniakeys/coord"
	"github.com/soniakeys/exit"
	"github.com/soniakeys/unit"
	xrand "golang.org/x/exp/rand"

	"github.com/soniakeys/instcat/sky"
)

const versionString = "mkcat version 0.2 Go source."
const copyrightString = "Public domain."

// a plausible SED path so generated lines look like star records.
const sedName = "starSED/phoSimMLT/lte033-3.5-0.0a+0.0.BT-Settl.spec.gz"

const idBase = 990000000000

func main() {
	defer exit.Handler()
	ra := flag.Float64("ra", 53.0091385, "")
	dec := flag.Float64("dec", -27.4389488, "")
	r := flag.Float64("r", 1.75, "")
	n := flag.Int("n", 1000, "")
	mjd := flag.Float64("mjd", 59580.1394, "")
	seed := flag.Int64("seed", -1, "")
	dv := flag.Bool("v", false, "")
	flag.Usage = func() {
		os.Stderr.WriteString(`
Usage: mkcat [options] [outfile]    generate a synthetic instance catalog
       mkcat -v                     display version and copyright

Options:
       -ra <degrees>    field center RA
       -dec <degrees>   field center Dec
       -r <degrees>     field radius
       -n <count>       number of object lines
       -mjd <mjd>       observation date for the header
       -seed <seed>     seed for repeatable output; random if < 0
`)
	}
	flag.Parse()
	if *dv {
		fmt.Println(versionString)
		fmt.Println(copyrightString)
		os.Exit(0)
	}
	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(1)
	}
	if *n < 0 || *r < 0 || *r > 180 {
		exit.Log("invalid -n or -r")
	}

	out := os.Stdout
	if flag.NArg() == 1 {
		var err error
		if out, err = os.Create(flag.Arg(0)); err != nil {
			exit.Log(err)
		}
	}

	rnd := xrand.New(&xrand.PCGSource{})
	if *seed >= 0 {
		rnd.Seed(uint64(*seed))
	} else {
		rnd.Seed(uint64(time.Now().UnixNano()))
	}

	center := sky.PosFromDeg(*ra, *dec)
	bw := bufio.NewWriter(out)
	fmt.Fprintf(bw, "rightascension %.7f\n", *ra)
	fmt.Fprintf(bw, "declination %.7f\n", *dec)
	fmt.Fprintf(bw, "mjd %.7f\n", *mjd)
	fmt.Fprintln(bw, "rotskypos 0.0")
	fmt.Fprintln(bw, "filter 2")
	fmt.Fprintln(bw, "seeing 0.67")
	radius := unit.AngleFromDeg(*r)
	for i := 0; i < *n; i++ {
		p := capPos(center, radius, rnd)
		mag := 18 + 8*rnd.Float64()
		fmt.Fprintf(bw, "object %d %.7f %.7f %.2f %s 0 0 0 0 0 0 point none none\n",
			idBase+i, p.RA.Deg(), p.Dec.Deg(), mag, sedName)
	}
	if err := bw.Flush(); err != nil {
		exit.Log(err)
	}
	if out != os.Stdout {
		if err := out.Close(); err != nil {
			exit.Log(err)
		}
	}
}

// capPos returns a position distributed uniformly in solid angle over
// the spherical cap of radius r around center.
func capPos(center sky.Pos, r unit.Angle, rnd *xrand.Rand) sky.Pos {
	// z uniform in [cos r, 1] is uniform over the cap at the pole
	cz := 1 - rnd.Float64()*(1-r.Cos())
	sz := math.Sqrt(1 - cz*cz)
	sp, cp := math.Sincos(rnd.Float64() * 2 * math.Pi)
	p := coord.Cart{X: cp * sz, Y: sp * sz, Z: cz}
	// tilt the cap down to the center declination,
	st, ct := math.Sincos(math.Pi/2 - center.Dec.Rad())
	p = coord.Cart{X: p.X*ct + p.Z*st, Y: p.Y, Z: p.Z*ct - p.X*st}
	// then swing it around to the center RA.
	ra := math.Atan2(p.Y, p.X) + center.RA.Rad()
	deg := math.Mod(ra*180/math.Pi, 360)
	if deg < 0 {
		deg += 360
	}
	return sky.Pos{
		RA:  unit.RAFromDeg(deg),
		Dec: unit.Angle(math.Asin(p.Z)),
	}
}
