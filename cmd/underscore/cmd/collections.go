package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-underscore/arr"
	"github.com/hasbyte1/go-underscore/objects"
	"github.com/hasbyte1/go-underscore/repository"
)

func (a *app) pluckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pluck <path>",
		Short: "Print the value at path for every element",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.readDocument(cmd)
			if err != nil {
				return err
			}
			return a.write(cmd, objects.Pluck(doc, args[0]))
		},
	}
}

func (a *app) filterCmd() *cobra.Command {
	var op string
	c := &cobra.Command{
		Use:   "filter <key> <value>",
		Short: "Print the elements whose key compares to value",
		Long: `Print the elements whose value at key satisfies the comparison. --op is
one of eq, ne, lt, gt, lte, gte, contains, notContains, newer, older. It
defaults to contains when value is a JSON array and to eq otherwise.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, ops, err := a.predicate(cmd, op)
			if err != nil {
				return err
			}
			a.log.Debug("filter", "key", args[0], "op", op)
			return a.write(cmd, objects.FilterBy(doc, args[0], parseValue(args[1]), ops...))
		},
	}
	c.Flags().StringVar(&op, "op", "", "comparison operator")
	return c
}

func (a *app) findCmd() *cobra.Command {
	var op string
	c := &cobra.Command{
		Use:   "find <key> <value>",
		Short: "Print the first element whose key compares to value",
		Long: `Print the first element matched like "filter". The command fails when
no element matches.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, ops, err := a.predicate(cmd, op)
			if err != nil {
				return err
			}
			a.log.Debug("find", "key", args[0], "op", op)
			found, ok := objects.FindBy(doc, args[0], parseValue(args[1]), ops...)
			if !ok {
				return fmt.Errorf("%w: %s", errNoMatch, args[0])
			}
			return a.write(cmd, found)
		},
	}
	c.Flags().StringVar(&op, "op", "", "comparison operator")
	return c
}

// predicate reads the document and validates the --op flag.
func (a *app) predicate(cmd *cobra.Command, op string) (any, []objects.Operator, error) {
	var ops []objects.Operator
	if op != "" {
		parsed, err := objects.ParseOperator(op)
		if err != nil {
			return nil, nil, err
		}
		ops = append(ops, parsed)
	}
	doc, err := a.readDocument(cmd)
	if err != nil {
		return nil, nil, err
	}
	return doc, ops, nil
}

func (a *app) sortCmd() *cobra.Command {
	var desc bool
	c := &cobra.Command{
		Use:   "sort [path]",
		Short: "Print the elements ordered by the value at path",
		Long: `Print the elements ordered by the value at path, or by the elements
themselves without a path. The sort is stable in both directions.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.readDocument(cmd)
			if err != nil {
				return err
			}
			var by any
			if len(args) == 1 {
				by = args[0]
			}
			order := "asc"
			if desc {
				order = "desc"
			}
			return a.write(cmd, objects.Sort(doc, by, order))
		},
	}
	c.Flags().BoolVar(&desc, "desc", false, "sort in descending order")
	return c
}

func (a *app) unpackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unpack [attribute]",
		Short: "Print the contents of a single-entry wrapper object",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.readDocument(cmd)
			if err != nil {
				return err
			}
			return a.write(cmd, objects.Unpack(doc, args...))
		},
	}
}

func (a *app) queryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "query <jsonpath>",
		Short: "Print the nodes selected by an RFC 9535 JSONPath expression",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.readDocument(cmd)
			if err != nil {
				return err
			}
			a.log.Debug("query", "expr", args[0])
			nodes, err := arr.Query(doc, args[0])
			if err != nil {
				return err
			}
			return a.write(cmd, nodes)
		},
	}
}

func (a *app) fmtCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fmt",
		Short: "Re-encode the document in the output format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := a.readDocument(cmd)
			if err != nil {
				return err
			}
			return a.write(cmd, doc)
		},
	}
}

func (a *app) callCmd() *cobra.Command {
	var list bool
	c := &cobra.Command{
		Use:   "call <method> [args...]",
		Short: "Call a repository method on the document",
		Long: `Call a method of the document's handler-set (Strings, Number, Arrays,
Objects). Arguments are parsed as JSON when possible. --list prints the
methods available for the document.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if list {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.MinimumNArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.readDocument(cmd)
			if err != nil {
				return err
			}
			r, err := repository.From(doc)
			if err != nil {
				return err
			}
			if list {
				return a.write(cmd, r.Methods())
			}
			a.log.Debug("call", "handler", r.Handler(), "method", args[0])
			v, err := r.Call(args[0], parseValues(args[1:])...)
			if err != nil {
				return err
			}
			return a.write(cmd, v)
		},
	}
	c.Flags().BoolVar(&list, "list", false, "list the available methods")
	return c
}
