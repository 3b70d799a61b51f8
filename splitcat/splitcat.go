/*
Command splitcat splits a large instance catalog for piecewise work.

Instance catalogs from full focal plane simulations run to tens of
millions of object lines, more than is comfortable to process in one
go.  Splitcat writes every non-object line to <prefix>_header.txt and
the object lines, in order, to chunk files <prefix>_objects_NNN.txt of
at most -n lines each.  Concatenating the header file with any chunk
gives a complete, self-contained catalog of a subset of the objects.

Usage:

   splitcat [options] <catalog>
   splitcat -v

Options:

   -n <lines>    maximum object lines per chunk (default 300000)
   -p <prefix>   output file prefix (default "instcat")

Public domain.
*/
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/soniakeys/exit"

	"github.com/soniakeys/instcat/phosim"
)

const versionString = "splitcat version 0.2 Go source."
const copyrightString = "Public domain."

func main() {
	defer exit.Handler()
	n := flag.Int("n", phosim.DefaultChunkLines, "")
	p := flag.String("p", "instcat", "")
	dv := flag.Bool("v", false, "")
	flag.Usage = func() {
		os.Stderr.WriteString(`
Usage: splitcat [options] <catalog>
       splitcat -v

Options:
       -n <lines>    maximum object lines per chunk (default 300000)
       -p <prefix>   output file prefix (default "instcat")
`)
	}
	flag.Parse()
	if *dv {
		fmt.Println(versionString)
		fmt.Println(copyrightString)
		os.Exit(0)
	}
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	header, chunks, err := phosim.Split(flag.Arg(0), *n, *p)
	if err != nil {
		exit.Log(err)
	}
	fmt.Println(header)
	for _, c := range chunks {
		fmt.Println(c)
	}
}
