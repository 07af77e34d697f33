package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nikbrunner/todo/internal/config"
	"github.com/nikbrunner/todo/internal/exporter"
	"github.com/nikbrunner/todo/internal/importer"
	"github.com/nikbrunner/todo/internal/logging"
	"github.com/nikbrunner/todo/internal/model"
	"github.com/nikbrunner/todo/internal/picker"
	"github.com/nikbrunner/todo/internal/search"
	"github.com/nikbrunner/todo/internal/storage"
	"github.com/nikbrunner/todo/internal/tui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

var (
	dirFlag      string
	logLevelFlag string
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit code.
// The logger is flushed on every path.
func run(args []string, stdout, stderr io.Writer) int {
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)

	err := rootCmd.Execute()
	if err != nil {
		logging.Error("command failed", zap.Error(err))
		fmt.Fprintln(stderr, err)
	}
	logging.Sync()

	if err != nil {
		return 1
	}
	return 0
}

var rootCmd = &cobra.Command{
	Use:           "todo",
	Short:         "Terminal todo-list manager",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dirFlag, "dir", "", "directory for .ftms list files (default: working directory)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "log level: debug, info, warn, error")

	rootCmd.AddCommand(catCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(findCmd)
}

// setup loads the config, starts logging and resolves the list library.
func setup() (*config.Config, *storage.Library, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	level := logLevelFlag
	if level == "" {
		level = cfg.LogLevel
	}
	if err := logging.Initialize(level, cfg.LogFile); err != nil {
		return nil, nil, err
	}

	dir := dirFlag
	if dir == "" {
		dir = cfg.SaveDir
	}
	return cfg, storage.NewLibrary(dir), nil
}

// runRoot runs the full interactive TUI.
func runRoot(cmd *cobra.Command, args []string) error {
	cfg, lib, err := setup()
	if err != nil {
		return err
	}

	var session *storage.SQLiteStorage
	list := model.NewList()
	if cfg.Autosave {
		session, err = storage.NewSQLiteStorage(cfg.SessionDB)
		if err != nil {
			return fmt.Errorf("opening session: %w", err)
		}
		defer session.Close()

		list, err = session.Load()
		if err != nil {
			return fmt.Errorf("loading session: %w", err)
		}
		logging.Info("session restored", zap.String("path", session.Path()), zap.Int("items", list.Len()))
	}

	app := tui.NewApp(tui.AppParams{
		List:        list,
		Files:       lib,
		Title:       cfg.Title,
		AddPosition: cfg.AddPosition,
	})

	p := tea.NewProgram(app, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("running app: %w", err)
	}

	if session != nil {
		finalApp := finalModel.(tui.App)
		if err := session.Save(finalApp.List()); err != nil {
			return fmt.Errorf("saving session: %w", err)
		}
		logging.Info("session saved", zap.Int("items", finalApp.List().Len()))
	}
	return nil
}

var catCmd = &cobra.Command{
	Use:   "cat <name>",
	Short: "Print the items of a saved list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, lib, err := setup()
		if err != nil {
			return err
		}
		return catAction(cmd.OutOrStdout(), lib, args[0])
	},
}

func catAction(w io.Writer, lib *storage.Library, name string) error {
	list, err := lib.Load(name)
	if err != nil {
		return err
	}
	for i, item := range list.Items {
		fmt.Fprintf(w, "%4d | %s\n", i+1, item)
	}
	return nil
}

var importCmd = &cobra.Command{
	Use:   "import <file.html> <name>",
	Short: "Collect <li> items from an HTML page into a saved list",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, lib, err := setup()
		if err != nil {
			return err
		}
		return importAction(cmd.OutOrStdout(), lib, args[0], args[1])
	},
}

func importAction(w io.Writer, lib *storage.Library, filePath, name string) error {
	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	list, err := importer.ParseHTMLItems(file)
	if err != nil {
		return fmt.Errorf("parsing HTML: %w", err)
	}

	if err := lib.Save(name, list); err != nil {
		return fmt.Errorf("saving list: %w", err)
	}

	logging.Info("imported list", zap.String("from", filePath), zap.String("to", lib.Path(name)))
	fmt.Fprintf(w, "Imported %d items to %s\n", list.Len(), lib.Path(name))
	return nil
}

var exportCmd = &cobra.Command{
	Use:   "export <name> [path]",
	Short: "Write a saved list as an HTML checklist",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, lib, err := setup()
		if err != nil {
			return err
		}
		var outputPath string
		if len(args) == 2 {
			outputPath = args[1]
		}
		return exportAction(cmd.OutOrStdout(), lib, args[0], outputPath)
	},
}

func exportAction(w io.Writer, lib *storage.Library, name, outputPath string) error {
	// Determine output path
	if outputPath == "" {
		var err error
		outputPath, err = exporter.DefaultExportPath(name)
		if err != nil {
			return fmt.Errorf("getting default export path: %w", err)
		}
	}

	list, err := lib.Load(name)
	if err != nil {
		return err
	}

	html := exporter.ExportHTML(name, list)
	if err := os.WriteFile(outputPath, []byte(html), 0644); err != nil {
		return fmt.Errorf("writing file: %w", err)
	}

	fmt.Fprintf(w, "Exported %d items to %s\n", list.Len(), outputPath)
	return nil
}

var findCmd = &cobra.Command{
	Use:   "find <name> <query>",
	Short: "Fuzzy-find an item in a saved list and copy it to the clipboard",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, lib, err := setup()
		if err != nil {
			return err
		}
		list, err := lib.Load(args[0])
		if err != nil {
			return err
		}

		query := strings.Join(args[1:], " ")
		results := search.FuzzySearchItems(list.Items, query)

		var selected search.Result
		switch len(results) {
		case 0:
			fmt.Fprintf(cmd.OutOrStdout(), "No items found for '%s'\n", query)
			return nil
		case 1:
			// Single result - select it directly
			selected = results[0]
		default:
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				// Piped output - list the matches instead of picking
				for _, r := range results {
					fmt.Fprintf(cmd.OutOrStdout(), "%4d | %s\n", r.Index+1, r.Text)
				}
				return nil
			}
			// Multiple results - show picker
			finalModel, err := tea.NewProgram(picker.New(results, query)).Run()
			if err != nil {
				return fmt.Errorf("running picker: %w", err)
			}
			var ok bool
			selected, ok = finalModel.(picker.Picker).Selected()
			if !ok {
				return nil
			}
		}

		if err := clipboard.WriteAll(selected.Text); err != nil {
			return fmt.Errorf("copying to clipboard: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Copied %d: %s\n", selected.Index+1, selected.Text)
		return nil
	},
}
