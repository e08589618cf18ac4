// Package cli provides the command-line interface for the idea diary.
package cli

import (
	"fmt"
	"io"

	"github.com/fukuside/aidea-memo/internal/app"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Command group IDs.
const (
	groupDiary = "diary"
	groupData  = "data"
	groupSetup = "setup"
)

// NewRootCommand creates the root command for the diary.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	var globals app.Options

	root := &cobra.Command{
		Use:   "diary",
		Short: "Personal idea diary",
		Long: `diary keeps a local journal of ideas and cause/effect logs.

Ideas carry a category, an optional action plan (method) and an outcome,
and can be marked executed. Logs record what was done and what came of it.
Everything is stored locally; use "diary export" for backups.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			// Skip if container is nil (e.g. in tests)
			if c == nil || c.AppConfig == nil {
				return
			}
			for _, w := range c.AppConfig.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
		},
	}

	// Applied before the container is built; see ParseGlobalOptions.
	registerGlobalFlags(root.PersistentFlags(), &globals)

	root.AddGroup(
		&cobra.Group{ID: groupDiary, Title: "Diary Commands:"},
		&cobra.Group{ID: groupData, Title: "Data Commands:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	ideaCmd := newIdeaCommand(c)
	ideaCmd.GroupID = groupDiary

	logCmd := newLogCommand(c)
	logCmd.GroupID = groupDiary

	mailCmd := newMailCommand(c)
	mailCmd.GroupID = groupDiary

	categoriesCmd := newCategoriesCommand(c)
	categoriesCmd.GroupID = groupDiary

	exportCmd := newExportCommand(c)
	exportCmd.GroupID = groupData

	importCmd := newImportCommand(c)
	importCmd.GroupID = groupData

	statusCmd := newStatusCommand(c)
	statusCmd.GroupID = groupData

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	root.AddCommand(
		ideaCmd,
		logCmd,
		mailCmd,
		categoriesCmd,
		exportCmd,
		importCmd,
		statusCmd,
		configCmd,
	)

	return root
}

func registerGlobalFlags(fs *pflag.FlagSet, opts *app.Options) {
	fs.StringVar(&opts.DataDir, "data-dir", "", "Data directory (overrides [store] dir)")
	fs.StringVar(&opts.ConfigDir, "config-dir", "", "Config directory (default $XDG_CONFIG_HOME/idea-diary)")
}

// ParseGlobalOptions extracts the global flags from args so the container can
// be built before the command tree runs. Unknown flags are ignored.
func ParseGlobalOptions(args []string) app.Options {
	var opts app.Options
	fs := pflag.NewFlagSet("diary", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	registerGlobalFlags(fs, &opts)
	_ = fs.Parse(args) // -h and friends surface again when cobra parses
	return opts
}
