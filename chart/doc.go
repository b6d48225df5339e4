// Package chart renders rank histograms and singular-value line plots
// with gonum.org/v1/plot. The output format follows the file extension
// (png, svg, pdf, ...).
package chart
