package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/recipe-book/internal/core/domain"
)

// storageKey is the one setting the wizard offers as a numbered choice.
const storageKey = "server.storage"

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change the backend URL, timeouts and reference server options.

Settings are stored in config.toml under ~/.recipes (or $RECIPES_HOME).`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change a setting",
	Long: `Change a single setting.

Keys:
  api.base_url          backend collection URL
  api.timeout_seconds   per-request timeout
  api.rate_limit        client requests per second (0 = unlimited)
  server.addr           reference server listen address
  server.path           reference server collection path
  server.storage        memory or sqlite
  server.data_dir       sqlite data directory
  server.rate_limit     server requests per second
  server.rate_burst     server burst size`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive setup wizard",
	Long:  `Walk through every setting, keeping the current value when the answer is empty.`,
	RunE:  runSettingsWizard,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsWizardCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[API]")
	cmd.Printf("  Base URL: %s\n", settings.API.BaseURL)
	cmd.Printf("  Timeout: %s\n", settings.API.Timeout)
	cmd.Printf("  Rate limit: %s\n", describeRate(settings.API.RateLimit))
	cmd.Println()

	cmd.Println("[Server]")
	cmd.Printf("  Address: %s\n", settings.Server.Addr)
	cmd.Printf("  Path: %s\n", settings.Server.Path)
	cmd.Printf("  Storage: %s\n", settings.Server.Storage.Description())
	if settings.Server.Storage == domain.StorageSQLite {
		dir := settings.Server.DataDir
		if dir == "" {
			dir = "(default)"
		}
		cmd.Printf("  Data dir: %s\n", dir)
	}
	cmd.Printf("  Rate limit: %s (burst %d)\n", describeRate(settings.Server.RateLimit), settings.Server.RateBurst)
	cmd.Println()

	if path := settingsService.Path(); path != "" {
		cmd.Printf("Config file: %s\n", path)
	}
	return nil
}

func describeRate(perSecond float64) string {
	if perSecond <= 0 {
		return "unlimited"
	}
	return strconv.FormatFloat(perSecond, 'f', -1, 64) + " req/s"
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return fmt.Errorf("%w (valid keys: %s)", err, strings.Join(settingsService.Keys(), ", "))
		}
		return fmt.Errorf("failed to save setting: %w", err)
	}

	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}

func runSettingsWizard(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	cmd.Println("Recipe Book Settings Wizard")
	cmd.Println("===========================")
	cmd.Println("Press Enter to keep the current value.")
	cmd.Println()

	reader := bufio.NewReader(cmd.InOrStdin())

	for _, key := range settingsService.Keys() {
		current, err := settingsService.Value(key)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", key, err)
		}

		var answer string
		if key == storageKey {
			answer = chooseStorage(cmd, reader, domain.StorageKind(current))
		} else {
			cmd.Printf("%s [%s]: ", key, current)
			answer = readLine(reader)
		}

		if answer == "" || answer == current {
			continue
		}
		if err := settingsService.Set(key, answer); err != nil {
			return fmt.Errorf("failed to set %s: %w", key, err)
		}
	}

	cmd.Println()
	cmd.Println("Settings saved.")
	return nil
}

// chooseStorage prompts for a storage kind by number.
func chooseStorage(cmd *cobra.Command, reader *bufio.Reader, current domain.StorageKind) string {
	kinds := domain.AllStorageKinds()
	defaultChoice := 1
	cmd.Printf("%s:\n", storageKey)
	for i, k := range kinds {
		if k == current {
			defaultChoice = i + 1
		}
		cmd.Printf("  %d. %s\n", i+1, k.Description())
	}
	cmd.Printf("Enter choice [%d]: ", defaultChoice)
	choice := parseChoice(readLine(reader), len(kinds), defaultChoice)
	return string(kinds[choice-1])
}

func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}
