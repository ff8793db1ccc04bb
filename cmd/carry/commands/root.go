// Package commands implements the CLI commands for the carry build cache tool.
package commands

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.trai.ch/carry/internal/app"
	"go.trai.ch/carry/internal/build"
	"go.trai.ch/carry/internal/core/domain"
)

const timeoutFlag = "timeout"

// CLI represents the command line interface for carry.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, op domain.Operation, args []string, opts app.RunOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "carry",
		Short:         "Restore and save build caches in CI jobs",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().IntP(timeoutFlag, "t", 0,
		"Abort the operation after this many seconds (default from config, 180)")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newFetchCmd())
	rootCmd.AddCommand(c.newAddCmd())
	rootCmd.AddCommand(c.newPushCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// runOperation builds the RunE shared by the operation commands.
func (c *CLI) runOperation(op domain.Operation) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		seconds, _ := cmd.Flags().GetInt(timeoutFlag)
		if seconds < 0 {
			return invalidTimeout(seconds)
		}
		return c.app.Run(cmd.Context(), op, args, app.RunOptions{
			Timeout: time.Duration(seconds) * time.Second,
		})
	}
}
