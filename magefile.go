//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target builds the binary.
var Default = Build

// Build compiles the webspectra binary into bin/.
func Build() error {
	return sh.RunV("go", "build", "-o", "bin/webspectra", "./cmd/webspectra")
}

// Test runs the full test suite.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet across the module.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// QA vets and tests in order.
func QA() error {
	mg.SerialDeps(Vet, Test)
	return nil
}

// Clean removes build artifacts.
func Clean() error {
	fmt.Println("removing bin/")
	return sh.Rm("bin")
}
