// SPDX-License-Identifier: MIT

package pipeline

import (
	"errors"

	"github.com/katalvlaran/lvrank/imageio"
)

// Failure reasons reported in logs and in the failed-images counter.
const (
	ReasonDecode = "decode"
	ReasonRank   = "rank"
)

// ErrNoImages indicates that RunDir found nothing to rank.
var ErrNoImages = errors.New("pipeline: no images found")

// reasonOf classifies a per-file error. It returns "" for nil.
func reasonOf(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, imageio.ErrDecode):
		return ReasonDecode
	default:
		return ReasonRank
	}
}
