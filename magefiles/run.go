//go:build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Runs the testbed game. AGE_ASSETS overrides the asset root.
func (Run) Engine() error {
	fmt.Println("Run engine...")
	if _, err := executeCmd("go", withArgs(ageArgs("run")...), withStream()); err != nil {
		return err
	}
	return nil
}

// Bootstraps against the local hardware and prints the capability report.
func (Run) Check() error {
	if _, err := executeCmd("go", withArgs(ageArgs("check")...), withStream()); err != nil {
		return err
	}
	return nil
}

func ageArgs(command string) []string {
	args := []string{"run", ".", command}
	if root := os.Getenv("AGE_ASSETS"); root != "" {
		args = append(args, "--assets", root)
	}
	if mg.Verbose() {
		args = append(args, "--log-level", "debug")
	}
	return args
}
