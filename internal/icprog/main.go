// Public domain.

// Package icprog implements the instcat command.
package icprog

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/soniakeys/exit"
	sexa "github.com/soniakeys/sexagesimal"
	"github.com/soniakeys/unit"

	"github.com/soniakeys/instcat/conesel"
	"github.com/soniakeys/instcat/phosim"
	"github.com/soniakeys/instcat/sky"
)

const versionString = "instcat version 0.2 Go source."
const copyrightString = "Public domain."

// defaultRadius covers the phosim focal plane with a little margin.
const defaultRadius = 1.75

func Main() {
	defer exit.Handler()

	cl := parseCommandLine()
	cfg, err := readConfig(cl.fnConfig)
	if err != nil {
		exit.Log(err)
	}
	if cl.verbose {
		cfg.Verbose = true
	}

	center := resolveCenter(cl)
	radius := cfg.Radius
	if !math.IsNaN(cl.radius) {
		if cl.radius < 0 {
			exit.Log("radius must be non-negative")
		}
		radius = cl.radius
	}
	c := conesel.Cone{Center: center, Radius: unit.AngleFromDeg(radius)}
	opt := conesel.Options{Lax: cfg.OnMalformed == "skip"}

	var kept, dropped int
	switch {
	case cl.fnCat != "-" && cl.fnOut != "-":
		kept, dropped, err = conesel.SelectFile(cl.fnCat, c, cl.fnOut, opt)
	case cl.fnOut == "-":
		in := os.Stdin
		if cl.fnCat != "-" {
			if in, err = os.Open(cl.fnCat); err != nil {
				exit.Log(err)
			}
			defer in.Close()
		}
		kept, dropped, err = conesel.Select(in, os.Stdout, c, opt)
	default: // stdin to file.  nothing to reread on failure, write direct.
		var out *os.File
		if out, err = os.Create(cl.fnOut); err != nil {
			exit.Log(err)
		}
		kept, dropped, err = conesel.Select(os.Stdin, out, c, opt)
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}
	if err != nil {
		exit.Log(err)
	}
	if cfg.Verbose {
		log.Printf("cone center %v %v, radius %v°",
			sexa.FmtRA(c.Center.RA), sexa.FmtAngle(c.Center.Dec), radius)
		log.Printf("%d object lines kept, %d dropped", kept, dropped)
	}
}

type commandLine struct {
	fnConfig     string
	ra, dec      float64 // NaN = not specified
	radius       float64 // NaN = not specified
	verbose      bool
	fnCat, fnOut string
}

func parseCommandLine() *commandLine {
	var cl commandLine
	dh := flag.Bool("h", false, "")
	dv := flag.Bool("v", false, "")
	flag.StringVar(&cl.fnConfig, "c", "", "")
	flag.Float64Var(&cl.ra, "ra", math.NaN(), "")
	flag.Float64Var(&cl.dec, "dec", math.NaN(), "")
	flag.Float64Var(&cl.radius, "r", math.NaN(), "")
	flag.BoolVar(&cl.verbose, "verbose", false, "")
	flag.Usage = func() {
		os.Stderr.WriteString(`
Usage: instcat [options] <catalog> <output>   cone-select catalog into output
       instcat [options] <catalog> -          write selection to stdout
       instcat [options] - <output>           read catalog from stdin
       instcat -h                             display help and quick reference
       instcat -v                             display version and copyright

Options:
       -ra <degrees>    cone center RA (default: catalog header pointing)
       -dec <degrees>   cone center Dec (default: catalog header pointing)
       -r <degrees>     cone radius
       -c <config-file>
       -verbose
`)
	}
	flag.Parse()
	switch {
	case *dh:
		printHelp()
		os.Exit(0)
	case *dv:
		fmt.Println(versionString)
		fmt.Println(copyrightString)
		os.Exit(0)
	case flag.NArg() != 2:
		flag.Usage()
		os.Exit(1)
	}
	cl.fnCat = flag.Arg(0)
	cl.fnOut = flag.Arg(1)
	return &cl
}

// resolveCenter returns the cone center from -ra/-dec, filling whatever
// is missing from the catalog's own header pointing.
func resolveCenter(cl *commandLine) sky.Pos {
	raSet := !math.IsNaN(cl.ra)
	decSet := !math.IsNaN(cl.dec)
	if raSet && decSet {
		return sky.PosFromDeg(cl.ra, cl.dec)
	}
	if cl.fnCat == "-" {
		exit.Log("-ra and -dec are required when reading from stdin")
	}
	v, err := phosim.ReadVisitFile(cl.fnCat)
	if err != nil {
		exit.Log(err)
	}
	p, ok := v.Pointing()
	if !ok {
		exit.Log("catalog header has no pointing; give -ra and -dec")
	}
	ra, dec := p.RA.Deg(), p.Dec.Deg()
	if raSet {
		ra = cl.ra
	}
	if decSet {
		dec = cl.dec
	}
	return sky.PosFromDeg(ra, dec)
}

func printHelp() {
	fmt.Println(`
Instcat selects the subset of instance catalog object lines whose sky
position falls within an acceptance cone, copying all other lines
through unchanged.  Kept lines are byte identical to their source
lines.  Output line order is input line order.

The cone center defaults to the pointing in the catalog's own header
(rightascension and declination commands); -ra and -dec override it.

Config file keys (YAML):
   radius:       default cone radius in degrees
   onmalformed:  error | skip   what to do with unparseable object lines
   verbose:      true | false

Related commands:
   mkcat      generate a synthetic instance catalog
   xmcat      cross-match two instance catalogs
   splitcat   split a large catalog into header and object chunks

For full documentation:
   go doc github.com/soniakeys/instcat`)
}
