// Public domain.

package phosim

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// DefaultChunkLines is the chunk size used by Split when numLines is
// not positive.
const DefaultChunkLines = 300000

// Split partitions the catalog at infile for piecewise processing.
//
// Every non-object line goes to <prefix>_header.txt.  Object lines go,
// in order, to numbered chunk files <prefix>_objects_NNN.txt of at most
// numLines lines each.  Prepending the header file to any chunk yields
// a self-contained catalog of a subset of the objects.
//
// Returns the header file name and the chunk file names in order.
func Split(infile string, numLines int, prefix string) (header string, chunks []string, err error) {
	if numLines <= 0 {
		numLines = DefaultChunkLines
	}
	f, err := os.Open(infile)
	if err != nil {
		return "", nil, err
	}
	defer f.Close()

	header = prefix + "_header.txt"
	hf, err := os.Create(header)
	if err != nil {
		return "", nil, err
	}
	hw := bufio.NewWriter(hf)

	var cf *os.File
	var cw *bufio.Writer
	inChunk := 0
	closeChunk := func() error {
		if cf == nil {
			return nil
		}
		if err := cw.Flush(); err != nil {
			cf.Close()
			return err
		}
		err := cf.Close()
		cf = nil
		return err
	}
	fail := func(e error) (string, []string, error) {
		hf.Close()
		if cf != nil {
			cf.Close()
		}
		return "", nil, e
	}

	bf := bufio.NewReader(f)
	for {
		line, rerr := bf.ReadString('\n')
		if rerr != nil && rerr != io.EOF {
			return fail(rerr)
		}
		if line != "" {
			if !strings.HasSuffix(line, "\n") {
				line += "\n"
			}
			if !IsObject(line) {
				if _, err := hw.WriteString(line); err != nil {
					return fail(err)
				}
			} else {
				if cf == nil {
					fn := fmt.Sprintf("%s_objects_%03d.txt",
						prefix, len(chunks))
					if cf, err = os.Create(fn); err != nil {
						return fail(err)
					}
					cw = bufio.NewWriter(cf)
					chunks = append(chunks, fn)
					inChunk = 0
				}
				if _, err := cw.WriteString(line); err != nil {
					return fail(err)
				}
				if inChunk++; inChunk == numLines {
					if err := closeChunk(); err != nil {
						return fail(err)
					}
				}
			}
		}
		if rerr == io.EOF {
			break
		}
	}
	if err := closeChunk(); err != nil {
		return fail(err)
	}
	if err := hw.Flush(); err != nil {
		return fail(err)
	}
	if err := hf.Close(); err != nil {
		return "", nil, err
	}
	return header, chunks, nil
}
