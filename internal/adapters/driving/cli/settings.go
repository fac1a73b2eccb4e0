package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change settings stored in ~/.astrolabe/config.toml.

Keys:
  chart.parallel      compute bodies concurrently (true/false)
  display.symbols     show glyphs next to names (true/false)
  history.enabled     save every computed chart (true/false)
  ephemeris.provider  planetary theory (kepler)

Use "settings reset <key>" to go back to a default.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print one setting",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsGet,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runSettingsSet,
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset <key>",
	Short: "Restore one setting to its default",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsReset,
}

var settingsWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive setup wizard",
	Long:  `Run an interactive wizard to configure all settings step by step.`,
	RunE:  runSettingsWizard,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsResetCmd)
	settingsCmd.AddCommand(settingsWizardCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	p := newPrinter(cmd)
	p.header("Current Settings")
	for _, key := range settingsService.Keys() {
		value, err := settingsService.Value(key)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", key, err)
		}
		p.line("  %-20s %s", key, value)
	}
	return nil
}

func runSettingsGet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	value, err := settingsService.Value(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), value)
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.SetValue(args[0], args[1]); err != nil {
		return fmt.Errorf("failed to set %s: %w", args[0], err)
	}

	value, err := settingsService.Value(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", args[0], value)
	return nil
}

func runSettingsReset(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key := args[0]
	if err := settingsService.SetValue(key, ""); err != nil {
		return fmt.Errorf("failed to reset %s: %w", key, err)
	}
	value, err := settingsService.Value(key)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s reset to %s\n", key, value)
	return nil
}

func runSettingsWizard(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	out := cmd.OutOrStdout()
	reader := bufio.NewReader(cmd.InOrStdin())

	fmt.Fprintln(out, "Astrolabe Settings Wizard")
	fmt.Fprintln(out, "=========================")
	fmt.Fprintln(out, "Press Enter to keep the current value.")
	fmt.Fprintln(out)

	for _, key := range settingsService.Keys() {
		current, err := settingsService.Value(key)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", key, err)
		}

		fmt.Fprintf(out, "%s [%s]: ", key, current)
		input, err := readLine(reader)
		if err != nil {
			return err
		}
		if input == "" {
			continue
		}

		if err := settingsService.SetValue(key, input); err != nil {
			return fmt.Errorf("failed to set %s: %w", key, err)
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Settings saved.")
	return nil
}

// readLine reads one trimmed line; EOF ends input without error.
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
