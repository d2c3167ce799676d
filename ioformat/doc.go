// Package ioformat reads and writes the line-oriented textual polygon
// format consumed by the process and show subcommands and produced by
// generate: one line per vertex, "<id> <x> <y>", grouped into polygons
// by id.
//
// Parsing groups lines by id in order of each id's first occurrence in
// the file, not by sorting or by contiguous runs, mirroring the
// original parser's group-by-first-occurrence behavior — a file may
// interleave two polygons' vertex lines and still parse correctly, as
// long as an id's lines appear in the order its own vertices should be
// connected.
package ioformat
