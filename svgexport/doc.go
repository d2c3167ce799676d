// Package svgexport renders a set of polygons to SVG for the show
// subcommand, using github.com/ajstarks/svgo for document assembly.
//
// The canvas is sized to the bounding box of every polygon plus a
// fixed margin, and the Y axis is flipped (SVG grows downward, this
// package's geometry grows upward) so a polygon drawn here looks the
// same way up as it does in the coordinate system it was computed in.
package svgexport
