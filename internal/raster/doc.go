// Package raster defines the fixed-format pixel buffer the edit engine
// operates on.
//
// A Buffer stores pixels as a flat byte slice, 4 bytes per pixel, in
// blue-green-red-alpha order, rows top to bottom with no padding. The layout
// invariant is len(Pix) == Width*Height*4 and is validated at construction;
// every other component in this module may assume it.
//
// # Value Semantics
//
// Buffers are treated as immutable once produced: filters and history
// operations always work on fresh copies (see Clone), never in place. This is
// what makes it safe for the undo/redo stacks to hold buffers without
// defensive synchronization.
//
// # Coordinate System
//
// Pixel coordinates are 0-based with origin at the top-left corner, X
// increasing rightward and Y increasing downward, matching the rest of the
// module and the standard library image package.
package raster
