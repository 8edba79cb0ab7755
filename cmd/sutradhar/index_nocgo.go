//go:build !cgo

package main

import "fmt"

func runIndex(_ []string) error {
	return fmt.Errorf("index requires a cgo build (the graph database wraps KuzuDB's C library)")
}
