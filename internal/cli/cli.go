package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/specialistvlad/viewbind/internal/app"
	"github.com/specialistvlad/viewbind/internal/config"
	"github.com/specialistvlad/viewbind/internal/hcl_adapter"
	"github.com/specialistvlad/viewbind/internal/yaml_adapter"
)

// envPrefix prefixes every environment variable the CLI reads.
const envPrefix = "VIEWBIND"

// defaultConfigPaths are read when neither --config nor VIEWBIND_CONFIG is
// given. Missing files are skipped.
var defaultConfigPaths = []string{"viewbind.hcl", "viewbind.yaml", "viewbind.yml"}

// Streams are the process streams commands write to. Logs go to Err.
type Streams struct {
	Out io.Writer
	Err io.Writer
}

// Runner starts the interactive UI of a built app. It is replaced in tests.
type Runner func(ctx context.Context, a *app.App) error

// Execute runs the command line args and returns the first error.
func Execute(ctx context.Context, streams Streams, args []string, runUI Runner) error {
	root := NewRootCommand(streams, runUI)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// NewRootCommand builds the viewbind command tree. Every call gets its own
// viper instance, so commands can be built repeatedly.
func NewRootCommand(streams Streams, runUI Runner) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if runUI == nil {
		runUI = func(ctx context.Context, a *app.App) error { return a.Run(ctx) }
	}

	root := &cobra.Command{
		Use:   "viewbind",
		Short: "Convention-based views for terminal UIs",
		Long: `viewbind finds the view of a view-model by name, binds the two together
and shows the result in a terminal UI.

Configuration is read from HCL (.hcl) or YAML (.yaml, .yml) files. Every
flag can also be set through a VIEWBIND_* environment variable, for example
VIEWBIND_LOG_LEVEL=debug.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(streams.Out)
	root.SetErr(streams.Err)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	flags := root.PersistentFlags()
	flags.StringSliceP("config", "c", defaultConfigPaths, "Configuration files or directories.")
	flags.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flags.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	flags.Bool("strict-naming", false, "Require view-model names to end in 'ViewModel'.")
	flags.String("startup", "", "Full name of the startup view-model.")
	_ = v.BindPFlags(flags)

	root.AddCommand(
		newRunCommand(v, streams, runUI),
		newListCommand(v, streams),
		newResolveCommand(v, streams),
	)
	return root
}

func newRunCommand(v *viper.Viper, streams Streams, runUI Runner) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Show the startup view-model in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := buildApp(v, streams, false)
			if err != nil {
				return err
			}
			return runUI(cmd.Context(), a)
		},
	}
}

func newListCommand(v *viper.Viper, streams Streams) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every view-model and the view it resolves to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := buildApp(v, streams, true)
			if err != nil {
				return err
			}
			return a.List(cmd.OutOrStdout())
		},
	}
}

func newResolveCommand(v *viper.Viper, streams Streams) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <ViewModelFullName>",
		Short: "Show the candidate names and the view of one view-model",
		Example: `  viewbind resolve Sample.ViewModels.WidgetViewModel
  viewbind resolve --strict-naming Docs.AboutViewModel`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(1)(cmd, args); err != nil {
				return usageError(err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp(v, streams, true)
			if err != nil {
				return err
			}
			return a.Resolve(cmd.OutOrStdout(), args[0])
		},
	}
}

// buildApp translates the merged flag and environment values into an app.
func buildApp(v *viper.Viper, streams Streams, lenient bool) (*app.App, error) {
	cfg, err := appConfig(v, lenient)
	if err != nil {
		return nil, err
	}
	if v.IsSet("config") {
		if err := checkConfigPaths(cfg.ConfigPaths); err != nil {
			return nil, fmt.Errorf("startup failed: %w", err)
		}
	}

	loader := config.Chain(hcl_adapter.NewLoader(), yaml_adapter.NewLoader())
	a, err := app.NewApp(streams.Err, cfg, loader)
	if err != nil {
		return nil, fmt.Errorf("startup failed: %w", err)
	}
	return a, nil
}

func appConfig(v *viper.Viper, lenient bool) (*app.Config, error) {
	cfg, err := app.NewConfig(app.Config{
		ConfigPaths:  configPaths(v),
		LogLevel:     strings.ToLower(v.GetString("log-level")),
		LogFormat:    strings.ToLower(v.GetString("log-format")),
		StrictNaming: v.GetBool("strict-naming"),
		Startup:      v.GetString("startup"),
		Lenient:      lenient,
	})
	if err != nil {
		return nil, usageError(err)
	}
	return cfg, nil
}

// configPaths reads the config paths. Environment values arrive as one
// string, so every entry is also split on commas.
func configPaths(v *viper.Viper) []string {
	if !v.IsSet("config") {
		return defaultConfigPaths
	}
	var paths []string
	for _, entry := range v.GetStringSlice("config") {
		for _, p := range strings.Split(entry, ",") {
			if p = strings.TrimSpace(p); p != "" {
				paths = append(paths, p)
			}
		}
	}
	return paths
}

// checkConfigPaths fails for every named path that does not exist.
func checkConfigPaths(paths []string) error {
	var errs []error
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				errs = append(errs, fmt.Errorf("config path '%s' does not exist", p))
				continue
			}
			errs = append(errs, fmt.Errorf("error accessing config path '%s': %w", p, err))
		}
	}
	return errors.Join(errs...)
}
