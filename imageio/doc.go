// Package imageio turns image files into greyscale matrices for rank
// estimation and discovers image files in a directory.
//
// Supported formats: JPEG, PNG and GIF from the standard library plus BMP,
// TIFF and WebP from golang.org/x/image. Pixels are converted to 8-bit
// luma with the ITU-R 601 weights (the same conversion as PIL's
// convert('L')), giving a rows=height × cols=width matrix of values in
// [0, 255].
package imageio
