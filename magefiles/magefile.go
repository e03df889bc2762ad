//go:build mage

// Package main provides build targets for gobag using Mage.
//
// Usage:
//
//	mage build   Compile bagdemo to bin/
//	mage test    Run all tests
//	mage cover   Run tests with a coverage profile in bin/
//	mage lint    Run golangci-lint
//	mage demo    Build and run the bagdemo demo for both storage kinds
//	mage clean   Remove build artifacts
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo      = "go"
	binLint    = "golangci-lint"
	binaryName = "bagdemo"
	binaryDir  = "bin"
	cmdDir     = "./cmd/bagdemo"
)

// Build compiles the bagdemo binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV(binGo, "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs all tests.
func Test() error {
	return sh.RunV(binGo, "test", "./...")
}

// Cover runs all tests and writes bin/cover.out.
func Cover() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV(binGo, "test", "-coverprofile", filepath.Join(binaryDir, "cover.out"), "./...")
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV(binLint, "run", "./...")
}

// Demo builds first, then runs the demo with an array bag and a chain bag.
func Demo() error {
	mg.Deps(Build)

	bin := filepath.Join(binaryDir, binaryName)
	for _, variant := range []string{"array", "chain"} {
		if err := sh.RunV(bin, "demo", "--variant", variant); err != nil {
			return err
		}
	}
	return nil
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	return sh.RunV(binGo, "clean")
}
