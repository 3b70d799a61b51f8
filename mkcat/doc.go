/*
Command mkcat generates a synthetic phosim instance catalog.

The catalog has a small header (rightascension, declination, mjd,
rotskypos, filter, seeing) followed by -n star-like object lines with
positions distributed uniformly in solid angle over the cap of radius
-r around the field center.  It exists to make test and benchmark input
for instcat and friends without hauling real simulation output around.

Usage

  mkcat [options] [outfile]    generate a synthetic instance catalog
  mkcat -v                     display version and copyright

Options:

  -ra <degrees>    field center RA
  -dec <degrees>   field center Dec
  -r <degrees>     field radius
  -n <count>       number of object lines
  -mjd <mjd>       observation date for the header
  -seed <seed>     seed for repeatable output; random if < 0

Without an outfile the catalog goes to stdout.  With a non-negative
-seed the output is strictly repeatable; otherwise the generator is
seeded from the clock, run to run output varies.

-------------
Public domain.
*/
package main
