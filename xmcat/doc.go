/*
Command xmcat cross-matches the objects of two instance catalogs.

Each object of <catalog> is associated with the nearest object of
<reference> and the pair is reported when their angular separation is
within the tolerance.  Output is a table on stdout, one line per match:
the object ID, the matched reference ID, and the separation in arc
seconds.  A summary count goes to stderr.

  Usage: xmcat [options] <catalog> <reference>
         xmcat -v

  Options:
         -t <arc seconds>   association tolerance (default 1)

Nearness is ranked on a tangent plane about the reference catalog's
mean declination, so both catalogs are expected to cover a single
pointing.  The reported separations are exact great circle angles.
Typical use is checking astrometry: match a measured source list
against the truth catalog the simulation was fed and look at the
distribution of offsets.

-------------
Public domain.
*/
package main
