// SPDX-License-Identifier: MIT

package chart

import "errors"

// ErrNoData is returned when there is nothing to plot.
var ErrNoData = errors.New("chart: no data to plot")
