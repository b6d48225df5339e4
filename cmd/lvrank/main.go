// SPDX-License-Identifier: MIT

// Command lvrank estimates the numerical rank of painting images and
// plots the distribution of ranks across a directory.
//
//	lvrank batch [dir]        rank every image in dir, save painting_ranks.png
//	lvrank image <file>       rank one image, optionally plot its singular values
//	lvrank example            rank the 9×5 reference matrix
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := Execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	cancel()
	if err != nil {
		fmt.Fprintln(os.Stderr, "lvrank:", err)
		os.Exit(1)
	}
}
