//go:build mage

package main

import (
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Serve builds the binary and runs the proxy on the configured address.
func Serve() error {
	mg.Deps(Init, Build)
	return sh.RunV(filepath.Join(binDir, binName), "serve")
}

// Browse builds the binary and opens the terminal client against a running
// proxy.
func Browse() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName), "browse")
}
