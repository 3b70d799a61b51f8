// Public domain.

// Package phosim reads the phosim instance catalog text format.
//
// An instance catalog is newline delimited ASCII.  Lines whose first six
// characters spell "object" are object records; everything else is a
// header command or free text.  Only the four leading fields of an
// object record are interpreted here.  Trailing fields vary by object
// type and pass through untouched as part of the line text.
package phosim

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/soniakeys/instcat/sky"
)

// ObjectToken prefixes every object record line.
const ObjectToken = "object"

// IsObject reports whether line is an object record, judged exactly as
// phosim does: the first six characters literally spell "object".
func IsObject(line string) bool {
	return len(line) >= 6 && line[:6] == ObjectToken
}

// Object holds the leading fields of an object record.
type Object struct {
	ID  string // opaque, not validated
	Pos sky.Pos
}

// BadRecordError describes an object record that could not be parsed.
type BadRecordError struct {
	Line   string // the offending line
	Reason string
}

func (e BadRecordError) Error() string {
	l := e.Line
	if len(l) > 40 {
		l = l[:40] + "..."
	}
	return fmt.Sprintf("bad object record (%s): %s", e.Reason, l)
}

// ParseObject parses the first four whitespace separated fields of an
// object record: the command token, the object ID, and right ascension
// and declination in degrees.
func ParseObject(line string) (Object, error) {
	f := strings.Fields(line)
	if len(f) < 4 {
		return Object{}, BadRecordError{line, "fewer than 4 fields"}
	}
	ra, err := strconv.ParseFloat(f[2], 64)
	if err != nil {
		return Object{}, BadRecordError{line, "invalid RA " + f[2]}
	}
	dec, err := strconv.ParseFloat(f[3], 64)
	if err != nil {
		return Object{}, BadRecordError{line, "invalid Dec " + f[3]}
	}
	return Object{ID: f[1], Pos: sky.PosFromDeg(ra, dec)}, nil
}

// ReadObjects collects the parsed object records of a catalog stream.
// Non-object lines are skipped.  A malformed object record is an error.
func ReadObjects(r io.Reader) ([]Object, error) {
	var objs []Object
	bf := bufio.NewReader(r)
	for {
		line, err := bf.ReadString('\n')
		if line = strings.TrimSuffix(line, "\n"); line != "" {
			if IsObject(line) {
				o, perr := ParseObject(line)
				if perr != nil {
					return nil, perr
				}
				objs = append(objs, o)
			}
		}
		if err == io.EOF {
			return objs, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// ReadObjectsFile is ReadObjects on a named file.
func ReadObjectsFile(path string) ([]Object, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadObjects(f)
}
