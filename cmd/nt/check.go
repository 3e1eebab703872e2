package main

import (
	"errors"
	"os"

	"github.com/nestedtext/nestedtext-go"
	"github.com/spf13/cobra"
)

var checkParams struct {
	input      string
	duplicates string
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate a NestedText document",
	Long: "Check parses the input and reports the first structural error with the\n" +
		"line number it was detected on.",
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&checkParams.input, "input", "i", "", "input file (default stdin)")
	checkCmd.Flags().StringVarP(&checkParams.duplicates, "duplicates", "d", "first", "duplicate-key policy: first, last, or error")
}

func runCheck(cmd *cobra.Command, args []string) error {
	data, err := readInput(checkParams.input)
	if err != nil {
		return err
	}
	policy, err := duplicatePolicy(checkParams.duplicates)
	if err != nil {
		return err
	}
	tree, err := nestedtext.ParseWithOptions(data, nestedtext.Options{DuplicateKeys: policy})
	if err != nil {
		var perr *nestedtext.ParseError
		if errors.As(err, &perr) {
			logger.Error("invalid document", "line", perr.Lno, "err", perr.Err, "detail", perr.Detail)
		} else {
			logger.Error("invalid document", "err", err)
		}
		os.Exit(1)
	}
	logger.Info("document is valid", "scalars", countScalars(tree))
	return nil
}

func countScalars(v nestedtext.Value) int {
	switch v := v.(type) {
	case nestedtext.String:
		return 1
	case nestedtext.List:
		n := 0
		for _, item := range v {
			n += countScalars(item)
		}
		return n
	case nestedtext.Object:
		n := 0
		for _, m := range v {
			n += countScalars(m.Value)
		}
		return n
	default:
		return 0
	}
}
