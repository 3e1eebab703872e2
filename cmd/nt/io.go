package main

import (
	"fmt"
	"io"
	"os"

	"github.com/nestedtext/nestedtext-go"
)

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writeOutput(path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func duplicatePolicy(name string) (nestedtext.DuplicateKeyPolicy, error) {
	switch name {
	case "first":
		return nestedtext.UseFirst, nil
	case "last":
		return nestedtext.UseLast, nil
	case "error":
		return nestedtext.Reject, nil
	default:
		return 0, fmt.Errorf("unknown duplicate-key policy %q (want first, last, or error)", name)
	}
}
