package main

import (
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"
	"github.com/nestedtext/nestedtext-go"
	"github.com/spf13/cobra"
)

var fromParams struct {
	format string
	input  string
	output string
	indent int
}

var fromCmd = &cobra.Command{
	Use:   "from",
	Short: "Convert a JSON, TOML, or YAML document to NestedText",
	Long: "Convert a document in another format to NestedText. The conversion is\n" +
		"lossy with respect to types: numbers, booleans, and nulls all become\n" +
		"strings. JSON and YAML keep their key order; TOML tables are emitted\n" +
		"with sorted keys.",
	RunE: runFrom,
}

func init() {
	fromCmd.Flags().StringVarP(&fromParams.format, "format", "f", "json", "input format: json, toml, or yaml")
	fromCmd.Flags().StringVarP(&fromParams.input, "input", "i", "", "input file (default stdin)")
	fromCmd.Flags().StringVarP(&fromParams.output, "output", "o", "", "output file (default stdout)")
	fromCmd.Flags().IntVar(&fromParams.indent, "indent", 2, "spaces per nesting level")
}

func runFrom(cmd *cobra.Command, args []string) error {
	data, err := readInput(fromParams.input)
	if err != nil {
		return err
	}

	var tree nestedtext.Value
	switch fromParams.format {
	case "json":
		tree, err = nestedtext.FromJSON(data)
	case "toml":
		var doc map[string]any
		if err := toml.Unmarshal(data, &doc); err != nil {
			return err
		}
		tree, err = fromDecoded(doc)
	case "yaml":
		var doc any
		if err := yaml.UnmarshalWithOptions(data, &doc, yaml.UseOrderedMap()); err != nil {
			return err
		}
		tree, err = fromDecoded(doc)
	default:
		return fmt.Errorf("unknown input format %q (want json, toml, or yaml)", fromParams.format)
	}
	if err != nil {
		return err
	}
	logger.Debug("converted document", "format", fromParams.format)
	return writeOutput(fromParams.output, []byte(nestedtext.Stringify(tree, fromParams.indent)))
}

// fromDecoded converts a decoded TOML or YAML document into a value tree.
// yaml.MapSlice keeps the source's key order; plain maps are sorted.
func fromDecoded(doc any) (nestedtext.Value, error) {
	switch doc := doc.(type) {
	case nil:
		return nestedtext.String(""), nil
	case string:
		return nestedtext.String(doc), nil
	case time.Time:
		return nestedtext.String(doc.Format(time.RFC3339)), nil
	case yaml.MapSlice:
		obj := make(nestedtext.Object, 0, len(doc))
		for _, item := range doc {
			value, err := fromDecoded(item.Value)
			if err != nil {
				return nil, err
			}
			obj = append(obj, nestedtext.Member{Key: fmt.Sprint(item.Key), Value: value})
		}
		return obj, nil
	case map[string]any:
		obj := make(nestedtext.Object, 0, len(doc))
		for _, key := range slices.Sorted(maps.Keys(doc)) {
			value, err := fromDecoded(doc[key])
			if err != nil {
				return nil, err
			}
			obj = append(obj, nestedtext.Member{Key: key, Value: value})
		}
		return obj, nil
	case []any:
		list := make(nestedtext.List, 0, len(doc))
		for _, item := range doc {
			value, err := fromDecoded(item)
			if err != nil {
				return nil, err
			}
			list = append(list, value)
		}
		return list, nil
	case []map[string]any:
		// BurntSushi/toml decodes arrays of tables this way
		list := make(nestedtext.List, 0, len(doc))
		for _, item := range doc {
			value, err := fromDecoded(item)
			if err != nil {
				return nil, err
			}
			list = append(list, value)
		}
		return list, nil
	default:
		return nestedtext.String(fmt.Sprint(doc)), nil
	}
}
