// Package analysis provides read-only inspection of raster buffers.
//
// Nothing in this package mutates a buffer; every function walks the pixel
// data and produces a derived result. The two concerns covered are
// channel-intensity histograms (used by the presentation layer to draw
// distribution curves) and color sampling (point samples and dominant-color
// extraction).
//
// # Error Handling
//
// Histogram computation can fail only on a malformed buffer. Callers in the
// edit path treat that as "no histogram available" and carry on; a failed
// histogram must never abort an edit that already succeeded.
package analysis
