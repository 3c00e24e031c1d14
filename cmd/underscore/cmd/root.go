// Package cmd implements the underscore command line tool: path access,
// filtering, sorting and querying of JSON and YAML documents.
package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hasbyte1/go-underscore/objects"
)

// flagKeys maps viper keys to the persistent flags that set them.
var flagKeys = map[string]string{
	"log.level":      "log-level",
	"input.file":     "file",
	"output.format":  "output",
	"output.pretty":  "pretty",
	"output.raw":     "raw",
	"path.delimiter": "delimiter",
	"path.wildcard":  "wildcard",
}

// app carries the per-invocation state shared by every subcommand.
type app struct {
	cfgFile string
	v       *viper.Viper
	log     *slog.Logger
}

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the underscore command tree. Every call returns an
// independent tree with its own configuration, so tests can run commands in
// parallel.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: slog.New(slog.DiscardHandler)}

	root := &cobra.Command{
		Use:   "underscore",
		Short: "Query and reshape JSON and YAML documents",
		Long: `underscore reads a JSON or YAML document from --file or stdin and applies
one operation to it: dot-notation path access, filtering, sorting, plucking,
JSONPath queries or any repository method through "call".

Examples:
  underscore get user.address.city -f user.json
  underscore set user.name '"Ada"' < user.json
  underscore filter value 2000 --op lt < rows.json
  underscore sort child.sort --desc < rows.json
  underscore query '$.users[?@.age > 18].name' < users.yaml
  underscore call explode , -f list.json`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.initConfig(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.underscore.yaml)")
	pf.String("log-level", "warn", "log level (debug, info, warn, error)")
	pf.StringP("file", "f", "", "input document (default stdin)")
	pf.StringP("output", "o", "json", "output format (json, yaml)")
	pf.Bool("pretty", false, "indent JSON output")
	pf.BoolP("raw", "r", false, "print string results without JSON quotes")
	pf.String("delimiter", objects.DefaultPathOptions().Delimiter, "path delimiter used by get, has, set and remove")
	pf.String("wildcard", objects.DefaultPathOptions().Wildcard, "path wildcard used by get, has, set and remove")

	root.AddCommand(
		a.kindCmd(),
		a.getCmd(),
		a.hasCmd(),
		a.setCmd(),
		a.removeCmd(),
		a.pluckCmd(),
		a.filterCmd(),
		a.findCmd(),
		a.sortCmd(),
		a.unpackCmd(),
		a.queryCmd(),
		a.fmtCmd(),
		a.callCmd(),
	)
	return root
}

// initConfig binds the persistent flags, reads the config file and
// environment, then sets up logging.
func (a *app) initConfig(cmd *cobra.Command) error {
	pf := cmd.Root().PersistentFlags()
	for key, flag := range flagKeys {
		if err := a.v.BindPFlag(key, pf.Lookup(flag)); err != nil {
			return fmt.Errorf("bind --%s: %w", flag, err)
		}
	}

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			a.v.AddConfigPath(home)
		}
		a.v.AddConfigPath(".")
		a.v.SetConfigType("yaml")
		a.v.SetConfigName(".underscore")
	}

	a.v.SetEnvPrefix("UNDERSCORE")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(a.v.GetString("log.level"))); err != nil {
		return fmt.Errorf("invalid log level %q: %w", a.v.GetString("log.level"), err)
	}
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	if used := a.v.ConfigFileUsed(); used != "" {
		a.log.Debug("using config file", "path", used)
	}
	return nil
}

// resolver returns the path resolver configured by --delimiter and
// --wildcard.
func (a *app) resolver() (*objects.Resolver, error) {
	return objects.NewResolver(objects.PathOptions{
		Delimiter: a.v.GetString("path.delimiter"),
		Wildcard:  a.v.GetString("path.wildcard"),
	})
}
