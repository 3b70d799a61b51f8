/*
Command instcat applies an acceptance cone to a phosim instance catalog.

Contents

  Program overview
  Command line usage
  Configuration
  File format
  Related commands

Program overview

An instance catalog is a flat ASCII file of simulated celestial
objects, one per line, mixed with header command lines.  Any line whose
first six characters spell "object" is an object record; every other
line is passed through untouched.  An object record reads

  object <id> <ra> <dec> <further fields...>

with ra and dec in degrees.  Instcat keeps the object lines whose
position lies within a given angular radius of a reference point, the
acceptance cone, and drops the rest.  Kept lines are byte identical to
their source lines and come out in input order.  The angular test is
the great circle separation; a radius of 0 keeps only objects exactly
at the reference point and a radius of 180 keeps everything.

Sample run:

Given a catalog tiny_instcat.txt,

  rightascension 53.0091385
  declination -27.4389488
  mjd 59580.1394
  filter 2
  object 992886536196 53.0449009 -27.3220807 22.64 starSED/phoSimMLT/lte033-3.5-0.0a+0.0.BT-Settl.spec.gz 0 0 0 0 0 0 point none none
  object 992887256676 52.2093324 -27.1212048 26.38 starSED/phoSimMLT/lte029-4.5-0.0a+0.0.BT-Settl.spec.gz 0 0 0 0 0 0 point none none

typing

  instcat -ra 53.0449009 -dec -27.3220807 -r 0.1 tiny_instcat.txt out.txt

writes out.txt holding the four header lines and only the first object
line, the second lying about 0.8 degrees from the reference point.

Command line usage

Invoking the program without command line arguments (or with invalid
arguments) shows this usage prompt.

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

When -ra or -dec is not given, the missing value comes from the
rightascension and declination commands of the catalog's own header, so
plain "instcat -r 2 cat.txt out.txt" recenters the catalog on its
boresight.  Reading from stdin forecloses that; -ra and -dec are then
required.

When the output is a named file it is written beside its final
location and renamed into place only after it is complete, so an
aborted run never leaves a truncated catalog at the output path.
Failure to open either file, and any unparseable object record, is
reported and exits nonzero.

Configuration

A YAML configuration file may be named with -c.  Keys:

  radius:       default cone radius in degrees, for when -r is not given
  onmalformed:  error | skip
  verbose:      true | false

The default radius without a config file is 1.75 degrees.  Onmalformed
controls what happens when an object line has fewer than four fields or
an unparseable position: "error" (the default) stops with a message,
"skip" drops the line and counts it.

File format

Newline delimited text.  The six character prefix test is the only
classification; header commands, comments and blank lines all ride
through verbatim.  Object records are tokenized on whitespace and only
the first four tokens are read.  The original line text, not a
reconstruction, is what gets written.  A final input line lacking a
trailing newline still receives one on output.

Related commands

The repository carries three companion programs:

  mkcat      generate a synthetic instance catalog for testing
  xmcat      cross-match the objects of two instance catalogs
  splitcat   split a large catalog into a header file and object chunks

Each documents itself with -h and go doc.

-------------
Public domain.
*/
package main
