// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

var (
	testFlag     bool
	packagesFlag bool
	lintFlag     bool
)

func done(msg string, err error) {
	fmt.Printf("Failed: %s: %s\n", msg, err)
	os.Exit(1)
}

func main() {
	ctx := context.Background()
	flag.BoolVar(&packagesFlag, "packages", false, "print the packages in this module")
	flag.BoolVar(&testFlag, "test", false, "run tests")
	flag.BoolVar(&lintFlag, "lint", false, "run lint")

	flag.Parse()

	if !packagesFlag && !testFlag && !lintFlag {
		fmt.Fprintf(os.Stderr, "at least one flag is required\n")
		flag.Usage()
		os.Exit(1)
	}

	if packagesFlag {
		pkgs, err := packages()
		if err != nil {
			done("finding packages", err)
		}
		fmt.Println(strings.Join(pkgs, " "))
		return
	}
	pkgs := flag.Args()
	if len(pkgs) == 0 {
		var err error
		pkgs, err = packages()
		if err != nil {
			done("finding packages", err)
		}
	}

	if testFlag {
		if err := runAll(ctx, "tests", pkgs, "go", "test", "-failfast", "--covermode=atomic", "-race"); err != nil {
			done("tests", err)
		}
	}

	if lintFlag {
		if err := runAll(ctx, "lint", pkgs, "golangci-lint", "run"); err != nil {
			done("lint", err)
		}
	}
}

// packages returns the directories containing go files, ignoring
// directories that the go tool ignores.
func packages() ([]string, error) {
	var dirs []string
	err := filepath.WalkDir(".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if name := d.Name(); path != "." && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") || name == "testdata") {
			return filepath.SkipDir
		}
		if matches, _ := filepath.Glob(filepath.Join(path, "*.go")); len(matches) > 0 {
			dirs = append(dirs, "./"+path)
		}
		return nil
	})
	return dirs, err
}

func runAll(ctx context.Context, what string, pkgs []string, command string, args ...string) error {
	failed := false
	for _, pkg := range pkgs {
		if err := run(ctx, pkg, command, args...); err != nil {
			fmt.Fprintf(os.Stderr, "%v: failed: %v\n", pkg, err)
			failed = true
		}
	}
	if failed {
		return fmt.Errorf("%v failed", what)
	}
	return nil
}

func run(ctx context.Context, pkg string, command string, args ...string) error {
	fmt.Printf("%v...\n", pkg)
	cmd := exec.CommandContext(ctx, command, append(args, pkg)...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	err := cmd.Run()
	if err == nil {
		fmt.Printf("%v... ok\n", pkg)
	} else {
		fmt.Printf("%v... failed\n", pkg)
	}
	return err
}
