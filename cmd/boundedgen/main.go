// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "boundedgen: error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var inputPath string
	var outputPath string
	var packageName string
	var checkOnly bool

	flagSet := pflag.NewFlagSet("boundedgen", pflag.ContinueOnError)
	flagSet.StringVar(&inputPath, "input", "", "JSONC definition file (required)")
	flagSet.StringVar(&outputPath, "output", "", "generated Go file path, or '-' for stdout")
	flagSet.StringVar(&packageName, "package", "", "package name (default: the definition file's package field)")
	flagSet.BoolVar(&checkOnly, "check", false, "validate the definitions without writing anything")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}
	if args := flagSet.Args(); len(args) > 0 {
		return fmt.Errorf("unexpected argument: %s", args[0])
	}
	if inputPath == "" {
		return fmt.Errorf("--input is required")
	}
	if !checkOnly && outputPath == "" {
		return fmt.Errorf("--output is required (or use --check)")
	}

	file, err := LoadDefinitions(inputPath)
	if err != nil {
		return err
	}
	if packageName != "" {
		file.Package = packageName
	}
	if err := file.Validate(); err != nil {
		return err
	}
	if checkOnly {
		fmt.Fprintf(os.Stderr, "boundedgen: %s: %d definitions OK\n", inputPath, len(file.Strings))
		return nil
	}

	source, err := Generate(file)
	if err != nil {
		return err
	}

	if outputPath == "-" {
		_, err := os.Stdout.Write(source)
		return err
	}
	if err := os.WriteFile(outputPath, source, 0644); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "boundedgen: wrote %s (%d definitions)\n", outputPath, len(file.Strings))
	return nil
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `boundedgen — generate bounded string types from a JSONC definition file.

Reads string type definitions (name, bounds, length unit, format,
capabilities) and emits the Go declarations: schema types, type
aliases over bounded.Str, and Parse functions. Bound violations
(min > max, max > capacity) fail generation, so they fail the build.

Usage:
  boundedgen --input defs.jsonc --output defs_gen.go [--package name]
  boundedgen --input defs.jsonc --check

Flags:
%s`, flagSet.FlagUsages())
}
