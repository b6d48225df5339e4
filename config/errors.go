// SPDX-License-Identifier: MIT

package config

import "errors"

// ErrInvalidConfig is returned by Parse, Load and Validate for unusable settings.
var ErrInvalidConfig = errors.New("config: invalid configuration")
