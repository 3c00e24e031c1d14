package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"github.com/hasbyte1/go-underscore/objects"
)

var (
	errUnknownFormat = errors.New("unknown output format")
	errNoMatch       = errors.New("no element matches")
)

// readDocument loads the input document. JSON is tried first; anything else
// is decoded as YAML. An empty input is a nil document.
func (a *app) readDocument(cmd *cobra.Command) (any, error) {
	var (
		data []byte
		err  error
	)
	switch path := a.v.GetString("input.file"); path {
	case "", "-":
		data, err = io.ReadAll(cmd.InOrStdin())
	default:
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, nil
	}
	if gjson.ValidBytes(data) {
		a.log.Debug("decoding input", "format", "json", "bytes", len(data))
		return objects.FromJSON(data)
	}
	a.log.Debug("decoding input", "format", "yaml", "bytes", len(data))
	return objects.FromYAML(data)
}

// write prints v in the configured output format.
func (a *app) write(cmd *cobra.Command, v any) error {
	out := cmd.OutOrStdout()
	if s, ok := v.(string); ok && a.v.GetBool("output.raw") {
		_, err := fmt.Fprintln(out, s)
		return err
	}

	var (
		s   string
		err error
	)
	switch format := a.v.GetString("output.format"); format {
	case "json":
		if a.v.GetBool("output.pretty") {
			s, err = objects.ToPrettyJSON(v)
		} else {
			s, err = objects.ToJSON(v)
			s += "\n"
		}
	case "yaml", "yml":
		s, err = objects.ToYAML(v)
	default:
		return fmt.Errorf("%w: %q", errUnknownFormat, format)
	}
	if err != nil {
		return err
	}
	_, err = io.WriteString(out, s)
	return err
}

// parseValue reads a command line value as JSON, falling back to the raw
// string: `42` is a number, `"42"` and `hello` are strings.
func parseValue(s string) any {
	v, err := objects.FromJSON([]byte(s))
	if err != nil {
		return s
	}
	return v
}

func parseValues(args []string) []any {
	out := make([]any, len(args))
	for i, s := range args {
		out[i] = parseValue(s)
	}
	return out
}
