// Package main provides the CLI entrypoint for typr.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"typr/internal/config"
	"typr/internal/engine"
	"typr/internal/model"
	"typr/internal/tui"
	"typr/internal/wordbank"
)

const (
	defaultMode       = string(model.ModeTime)
	defaultTime       = 30
	defaultWords      = 50
	defaultDifficulty = string(model.DifficultyNormal)
	defaultLength     = string(model.LengthAll)
)

var (
	testMode        string
	testTime        int
	testWords       int
	testDifficulty  string
	testNumbers     bool
	testPunctuation bool
	testLength      string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "typr",
		Short:         "Terminal typing speed test",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runTestCmd,
	}

	rootCmd.Flags().StringVar(&testMode, "mode", defaultMode, "test mode: time or words")
	rootCmd.Flags().IntVar(&testTime, "time", defaultTime, "time limit in seconds (time mode; 15/30/60/120 typical)")
	rootCmd.Flags().IntVar(&testWords, "words", defaultWords, "word count (words mode; 10/25/50/100 typical)")
	rootCmd.Flags().StringVar(&testDifficulty, "difficulty", defaultDifficulty, "difficulty: normal, expert, or master")
	rootCmd.Flags().BoolVar(&testNumbers, "numbers", false, "mix numbers into the word stream")
	rootCmd.Flags().BoolVar(&testPunctuation, "punctuation", false, "mix punctuation into the word stream")
	rootCmd.Flags().StringVar(&testLength, "length", defaultLength, "word length class: all, short, medium, long, or thicc")

	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runTestCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		// A broken config file should not block a typing test.
		logErrf("failed to load config, using defaults: %v\n", err)
		fileCfg = config.FileConfig{}
	}
	applyStringConfig(cmd, "mode", &testMode, fileCfg.Test.Mode)
	applyIntConfig(cmd, "time", &testTime, fileCfg.Test.Time)
	applyIntConfig(cmd, "words", &testWords, fileCfg.Test.Words)
	applyStringConfig(cmd, "difficulty", &testDifficulty, fileCfg.Test.Difficulty)
	applyBoolConfig(cmd, "numbers", &testNumbers, fileCfg.Test.Numbers)
	applyBoolConfig(cmd, "punctuation", &testPunctuation, fileCfg.Test.Punctuation)
	applyStringConfig(cmd, "length", &testLength, fileCfg.Test.Length)

	cfg := model.Config{
		Mode:               model.Mode(strings.ToLower(testMode)),
		TimeLimitSeconds:   testTime,
		WordCount:          testWords,
		Difficulty:         model.Difficulty(strings.ToLower(testDifficulty)),
		IncludeNumbers:     testNumbers,
		IncludePunctuation: testPunctuation,
		WordLengthClass:    model.LengthClass(strings.ToLower(testLength)),
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("typr needs an interactive terminal")
	}

	session := engine.New(cfg, wordbank.New())
	program := tea.NewProgram(tui.NewModel(session), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# typr configuration
# Uncomment a value to enable it. CLI flags override config values.

[test]
# mode = %q          # time or words
# time = %d            # Time limit in seconds (time mode)
# words = %d           # Word count (words mode)
# difficulty = %q  # normal, expert, or master
# numbers = false      # Mix numbers into the word stream
# punctuation = false  # Mix punctuation into the word stream
# length = %q         # all, short, medium, long, or thicc
`,
		defaultMode,
		defaultTime,
		defaultWords,
		defaultDifficulty,
		defaultLength,
	)
}
