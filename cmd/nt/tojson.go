package main

import (
	"bytes"
	"encoding/json"

	"github.com/nestedtext/nestedtext-go"
	"github.com/spf13/cobra"
)

var toJSONParams struct {
	input      string
	output     string
	duplicates string
	compact    bool
}

var toJSONCmd = &cobra.Command{
	Use:   "to-json",
	Short: "Convert a NestedText document to JSON",
	Long: "Convert a NestedText document to JSON. Every scalar becomes a JSON\n" +
		"string; object member order is preserved.",
	RunE: runToJSON,
}

func init() {
	toJSONCmd.Flags().StringVarP(&toJSONParams.input, "input", "i", "", "input file (default stdin)")
	toJSONCmd.Flags().StringVarP(&toJSONParams.output, "output", "o", "", "output file (default stdout)")
	toJSONCmd.Flags().StringVarP(&toJSONParams.duplicates, "duplicates", "d", "first", "duplicate-key policy: first, last, or error")
	toJSONCmd.Flags().BoolVar(&toJSONParams.compact, "compact", false, "emit compact JSON")
}

func runToJSON(cmd *cobra.Command, args []string) error {
	data, err := readInput(toJSONParams.input)
	if err != nil {
		return err
	}
	policy, err := duplicatePolicy(toJSONParams.duplicates)
	if err != nil {
		return err
	}
	tree, err := nestedtext.ParseWithOptions(data, nestedtext.Options{DuplicateKeys: policy})
	if err != nil {
		return err
	}
	logger.Debug("parsed document", "bytes", len(data))

	out, err := nestedtext.ToJSON(tree)
	if err != nil {
		return err
	}
	if !toJSONParams.compact {
		var buf bytes.Buffer
		if err := json.Indent(&buf, out, "", "  "); err != nil {
			return err
		}
		out = buf.Bytes()
	}
	return writeOutput(toJSONParams.output, append(out, '\n'))
}
