package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-underscore/dispatch"
)

func (a *app) kindCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kind [path]",
		Short: "Print the handler-set of the document or of the value at path",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.readDocument(cmd)
			if err != nil {
				return err
			}
			v := doc
			if len(args) == 1 {
				r, err := a.resolver()
				if err != nil {
					return err
				}
				v = r.Get(doc, args[0])
			}
			k, err := dispatch.KindOf(v)
			if err != nil {
				return err
			}
			a.log.Debug("resolved", "kind", k, "handler", k.HandlerSet())
			_, err = fmt.Fprintln(cmd.OutOrStdout(), k.HandlerSet())
			return err
		},
	}
}

func (a *app) getCmd() *cobra.Command {
	var def string
	c := &cobra.Command{
		Use:   "get <path>",
		Short: "Print the value at a dot-notation path",
		Long: `Print the value at a dot-notation path. A "*" segment fans out over
every child. Missing paths print --default, or null.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.readDocument(cmd)
			if err != nil {
				return err
			}
			r, err := a.resolver()
			if err != nil {
				return err
			}
			var fallback []any
			if cmd.Flags().Changed("default") {
				fallback = append(fallback, parseValue(def))
			}
			a.log.Debug("get", "path", args[0])
			return a.write(cmd, r.Get(doc, args[0], fallback...))
		},
	}
	c.Flags().StringVar(&def, "default", "", "value printed when the path is missing (JSON or raw string)")
	return c
}

func (a *app) hasCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "has <path>",
		Short: "Report whether a dot-notation path exists",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.readDocument(cmd)
			if err != nil {
				return err
			}
			r, err := a.resolver()
			if err != nil {
				return err
			}
			return a.write(cmd, r.Has(doc, args[0]))
		},
	}
}

func (a *app) setCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <path> <value>",
		Short: "Store a value at a dot-notation path and print the document",
		Long: `Store a value at a dot-notation path, creating missing intermediate
objects, and print the resulting document. The value is parsed as JSON when
possible and used as a plain string otherwise.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.readDocument(cmd)
			if err != nil {
				return err
			}
			r, err := a.resolver()
			if err != nil {
				return err
			}
			a.log.Debug("set", "path", args[0])
			return a.write(cmd, r.Set(doc, args[0], parseValue(args[1])))
		},
	}
}

func (a *app) removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <path>",
		Aliases: []string{"rm"},
		Short:   "Remove a dot-notation path and print the document",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.readDocument(cmd)
			if err != nil {
				return err
			}
			r, err := a.resolver()
			if err != nil {
				return err
			}
			a.log.Debug("remove", "path", args[0])
			return a.write(cmd, r.Remove(doc, args[0]))
		},
	}
}
