package cmd

import (
	"fmt"
	"io"
	"reflect"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/meghashyamc/gridtimer/config"
	"github.com/spf13/cobra"
)

var validateDump bool

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration",
	Long:  `Validate the effective configuration (file plus environment) and report unknown keys.`,
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&validateDump, "dump", false, "Dump full configuration with non-default values highlighted")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	out := cmd.OutOrStdout()

	source := cfg.ConfigFileUsed()
	if source == "" {
		source = "defaults and environment"
	}

	unknownKeys, err := findUnknownKeys(cfg)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not check for unknown keys: %v\n", err)
	}

	if err := cfg.Validate(); err != nil {
		red := color.New(color.FgRed, color.Bold)
		red.Fprintf(out, "Configuration is invalid: %s\n", source)
		for _, line := range strings.Split(err.Error(), "\n") {
			red.Fprintf(out, "   - %s\n", line)
		}
		return err
	}
	fmt.Fprintf(out, "Configuration is valid: %s\n", source)

	if len(unknownKeys) > 0 {
		red := color.New(color.FgRed, color.Bold)
		fmt.Fprintln(out)
		red.Fprintf(out, "WARNING: Found %d unknown configuration key(s):\n", len(unknownKeys))
		for _, key := range unknownKeys {
			red.Fprintf(out, "   - %s\n", key)
		}
		fmt.Fprintln(out, "\nThese keys will be ignored and may indicate typos.")
	}

	if validateDump {
		dumpConfig(out, cfg, config.Default())
	}

	return nil
}

// findUnknownKeys returns keys in the config file that nothing reads.
func findUnknownKeys(cfg *config.Config) ([]string, error) {
	fileKeys, err := cfg.FileKeys()
	if err != nil {
		return nil, err
	}

	known := config.KnownKeys()
	unknown := []string{}
	for _, key := range fileKeys {
		if !slices.Contains(known, key) {
			unknown = append(unknown, key)
		}
	}
	return unknown, nil
}

func dumpConfig(out io.Writer, cfg, defaultCfg *config.Config) {
	yellow := color.New(color.FgYellow, color.Bold)
	green := color.New(color.FgGreen)
	cyan := color.New(color.FgCyan, color.Bold)

	fmt.Fprintln(out, "\n"+strings.Repeat("=", 60))
	fmt.Fprintln(out, "FULL CONFIGURATION (values different from defaults are highlighted)")
	fmt.Fprintln(out, strings.Repeat("=", 60))

	cyan.Fprintln(out, "\n[window]")
	dumpField(out, "  width", cfg.GetWindowWidth(), defaultCfg.GetWindowWidth(), yellow, green)
	dumpField(out, "  height", cfg.GetWindowHeight(), defaultCfg.GetWindowHeight(), yellow, green)
	dumpField(out, "  title", cfg.GetWindowTitle(), defaultCfg.GetWindowTitle(), yellow, green)

	cyan.Fprintln(out, "\n[grid]")
	dumpField(out, "  count", cfg.GetGridCount(), defaultCfg.GetGridCount(), yellow, green)
	dumpField(out, "  canvas_size", cfg.GetGridCanvasSize(), defaultCfg.GetGridCanvasSize(), yellow, green)

	cyan.Fprintln(out, "\n[timer]")
	dumpField(out, "  default_minutes", cfg.GetDefaultMinutes(), defaultCfg.GetDefaultMinutes(), yellow, green)
	dumpField(out, "  refresh_interval", cfg.GetRefreshInterval(), defaultCfg.GetRefreshInterval(), yellow, green)

	cyan.Fprintln(out, "\n[log]")
	dumpField(out, "  level", cfg.GetLogLevel(), defaultCfg.GetLogLevel(), yellow, green)

	fmt.Fprintln(out, "\n"+strings.Repeat("=", 60))
}

// dumpField prints a field with color if it differs from default
func dumpField(out io.Writer, name string, value, defaultValue interface{}, modifiedColor, defaultColor *color.Color) {
	if reflect.DeepEqual(value, defaultValue) {
		_, _ = defaultColor.Fprintf(out, "%s = %v\n", name, value)
		return
	}
	_, _ = modifiedColor.Fprintf(out, "%s = %v  (modified from default: %v)\n", name, value, defaultValue)
}
