// Public domain.

package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/soniakeys/exit"
	"github.com/soniakeys/unit"

	"github.com/soniakeys/instcat/phosim"
	"github.com/soniakeys/instcat/xmatch"
)

const versionString = "xmcat version 0.2 Go source."
const copyrightString = "Public domain."

func main() {
	defer exit.Handler()
	tol := flag.Float64("t", 1, "")
	dv := flag.Bool("v", false, "")
	flag.Usage = func() {
		os.Stderr.WriteString(`
Usage: xmcat [options] <catalog> <reference>
       xmcat -v

Options:
       -t <arc seconds>   association tolerance (default 1)
`)
	}
	flag.Parse()
	if *dv {
		fmt.Println(versionString)
		fmt.Println(copyrightString)
		os.Exit(0)
	}
	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(1)
	}
	if *tol < 0 {
		exit.Log("tolerance must be non-negative")
	}
	objs, err := phosim.ReadObjectsFile(flag.Arg(0))
	if err != nil {
		exit.Log(err)
	}
	refs, err := phosim.ReadObjectsFile(flag.Arg(1))
	if err != nil {
		exit.Log(err)
	}
	ps := xmatch.Match(objs, refs, unit.AngleFromSec(*tol))
	bw := bufio.NewWriter(os.Stdout)
	fmt.Fprintf(bw, "%-16s %-16s %10s\n", "object", "reference", "sep (\")")
	for _, p := range ps {
		fmt.Fprintf(bw, "%-16s %-16s %10.3f\n",
			p.Obj.ID, p.Ref.ID, p.Sep.Sec())
	}
	if err := bw.Flush(); err != nil {
		exit.Log(err)
	}
	log.Printf("%d of %d objects matched within %g\"",
		len(ps), len(objs), *tol)
}
