// SPDX-License-Identifier: MIT

package imageio

import "errors"

var (
	// ErrDecode is returned when a file cannot be opened or decoded as an image.
	ErrDecode = errors.New("imageio: cannot decode image")

	// ErrDiscover is returned when the painting directory cannot be listed.
	ErrDiscover = errors.New("imageio: cannot list directory")
)
