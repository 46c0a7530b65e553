// Package imageio is the file and wire glue between disk image formats and
// the BGRA raster buffers the edit engine works on.
//
// The edit core never touches the filesystem; everything that decodes,
// encodes, caches, or miniaturizes images lives here. Decoding accepts PNG,
// JPEG, GIF, and BMP; saving supports PNG, JPEG, and BMP. Protocol responses
// carry images as base64-encoded PNG, optionally downscaled to a preview
// size so large edits do not balloon the response stream.
package imageio
