// Public domain.

// Package conesel implements acceptance cone selection on instance
// catalogs.
//
// A cone selection keeps the object records within a fixed angular
// radius of a reference sky position and passes every other line of the
// catalog through unchanged.  It is a single pass over the text with no
// state carried between lines.
package conesel

import (
	"bufio"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/soniakeys/unit"

	"github.com/soniakeys/instcat/phosim"
	"github.com/soniakeys/instcat/sky"
)

// Cone is an acceptance cone on the sky.
type Cone struct {
	Center sky.Pos
	Radius unit.Angle
}

// Contains reports whether p falls within the cone.  The boundary is
// inclusive.
func (c Cone) Contains(p sky.Pos) bool {
	return sky.Sep(c.Center, p) <= c.Radius
}

// Options modify Select behavior.
type Options struct {
	// Lax drops object records that fail to parse instead of stopping
	// with the error.
	Lax bool
}

// Select copies catalog lines from r to w, dropping object records
// outside the cone.
//
// Lines that are not object records are copied verbatim.  Object
// records are tokenized only to test their position; kept lines are the
// original text, not a reconstruction from tokens.  Every output line,
// including a final input line with no trailing newline, is terminated
// with \n.  Input order is preserved.
//
// Returns the number of object records kept and dropped.  A malformed
// object record stops the scan with a phosim.BadRecordError unless
// opt.Lax is set, in which case it counts as dropped.
func Select(r io.Reader, w io.Writer, c Cone, opt Options) (kept, dropped int, err error) {
	bf := bufio.NewReader(r)
	bw := bufio.NewWriter(w)
	for {
		line, rerr := bf.ReadString('\n')
		if rerr != nil && rerr != io.EOF {
			return kept, dropped, rerr
		}
		if line != "" {
			l := strings.TrimSuffix(line, "\n")
			keep := true
			if phosim.IsObject(l) {
				o, perr := phosim.ParseObject(l)
				switch {
				case perr != nil && !opt.Lax:
					return kept, dropped, perr
				case perr != nil:
					keep = false
				default:
					keep = c.Contains(o.Pos)
				}
				if keep {
					kept++
				} else {
					dropped++
				}
			}
			if keep {
				if _, werr := bw.WriteString(l); werr != nil {
					return kept, dropped, werr
				}
				if werr := bw.WriteByte('\n'); werr != nil {
					return kept, dropped, werr
				}
			}
		}
		if rerr == io.EOF {
			break
		}
	}
	return kept, dropped, bw.Flush()
}

// SelectFile applies Select from infile to outfile.
//
// The output is written to a temporary file beside outfile and renamed
// into place only after a complete, flushed and synced copy exists, so
// a partial result never lands at outfile.  The temporary file is
// removed on failure.  Infile is never modified.
func SelectFile(infile string, c Cone, outfile string, opt Options) (kept, dropped int, err error) {
	in, err := os.Open(infile)
	if err != nil {
		return 0, 0, err
	}
	defer in.Close()
	tmp, err := ioutil.TempFile(filepath.Dir(outfile),
		filepath.Base(outfile)+".tmp")
	if err != nil {
		return 0, 0, err
	}
	defer func() {
		if err != nil {
			os.Remove(tmp.Name())
		}
	}()
	kept, dropped, err = Select(in, tmp, c, opt)
	if err != nil {
		tmp.Close()
		return
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return
	}
	if err = tmp.Close(); err != nil {
		return
	}
	err = os.Rename(tmp.Name(), outfile)
	return
}
