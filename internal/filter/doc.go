// Package filter implements the pixel transform engine.
//
// Every transform is a pure function from a source buffer and a parameter set
// to a freshly allocated result buffer; the source is never written to. This
// makes transforms safe to run against buffers that are simultaneously held
// by the undo/redo history.
//
// # Filters
//
// The closed set of filter kinds:
//   - none: identity (returns a clone)
//   - grayscale: ITU-R BT.601 luminance (0.299 R + 0.587 G + 0.114 B)
//   - brightness: additive offset, -100..100 mapped to roughly -255..255
//   - contrast: linear scaling around the 128 midpoint, -100..100
//   - brightness_contrast: both adjustments combined in a single pass
//   - gaussian_blur: three passes of separable box blur (see below)
//   - edge_detection: Sobel gradient magnitude over the grayscale image
//   - sepia: fixed color-matrix tone transform
//
// # Arithmetic Conventions
//
// All per-channel arithmetic truncates toward zero (Go's float-to-int
// conversion) and clamps to [0, 255]. The combined brightness/contrast filter
// evaluates both adjustments inside one expression, which is not numerically
// identical to running contrast and brightness as two sequential passes; the
// single-pass form is the contract.
//
// # Blur Approximation
//
// The blur is not a true Gaussian convolution. Each of the three passes is a
// separable box average with a (2*radius+1)-sample window; repeated box
// filtering converges toward a Gaussian-shaped kernel at a fraction of the
// cost. At image borders only in-bounds samples are averaged, so the divisor
// shrinks near edges instead of sampling outside the image.
package filter
