// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package secretbuf

import (
	"bufio"
	"bytes"
	"fmt"
	"os"

	"golang.org/x/term"
)

// ReadFromPath reads a secret from a file, or from stdin when path is
// "-". Leading and trailing whitespace is trimmed before the secret
// moves into a locked buffer; every intermediate heap copy is zeroed
// before returning. An empty secret (after trimming) is an error.
// The caller must Close the returned buffer.
func ReadFromPath(path string) (*Buffer, error) {
	var data []byte

	if path == "-" {
		scanner := bufio.NewScanner(os.Stdin)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, fmt.Errorf("reading stdin: %w", err)
			}
			return nil, fmt.Errorf("stdin is empty")
		}
		data = scanner.Bytes()
	} else {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, err
		}
	}

	return fromTransient(data)
}

// ReadPrompt writes prompt to stderr, reads a line from the terminal
// with echo disabled, and moves it into a locked buffer. Fails when
// stdin is not a terminal — piped input should use ReadFromPath("-"),
// which does not pretend to hide anything.
func ReadPrompt(prompt string) (*Buffer, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("stdin is not a terminal; use a file or '-' for piped input")
	}

	fmt.Fprint(os.Stderr, prompt)
	line, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("reading from terminal: %w", err)
	}

	return fromTransient(line)
}

// fromTransient trims data, moves the trimmed bytes into a locked
// buffer, and zeroes the full original slice — the trimmed slice
// aliases data, so NewFromBytes zeroing it still leaves any
// whitespace prefix/suffix bytes to clean up here.
func fromTransient(data []byte) (*Buffer, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		Zero(data)
		return nil, fmt.Errorf("secret is empty")
	}

	buffer, err := NewFromBytes(trimmed)
	Zero(data)
	if err != nil {
		return nil, err
	}
	return buffer, nil
}
