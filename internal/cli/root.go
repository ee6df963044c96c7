package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/fitforge/fitforge-cli/pkg/version"
)

var rootOpts Options

var rootCmd = &cobra.Command{
	Use:   "fitforge",
	Short: "fitforge: set up and manage your training profile",
	Long: `fitforge is the command-line client of the fitforge coaching platform.

It signs you in, walks you through the four-step training profile wizard,
and shows or deletes the profile stored on the platform.`,
	Version:      version.GetVersion(),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if deps != nil || cmd.Annotations[annotationNoDeps] == "true" {
			return nil
		}
		return InitDependencies(rootOpts)
	},
}

// annotationNoDeps marks commands that run without loading configuration.
const annotationNoDeps = "fitforge/no-deps"

// Execute runs the root command. Ctrl-C cancels the command context, which
// aborts any in-flight request.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("fitforge %s\n", version.GetVersion()))

	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&rootOpts.Verbose, "verbose", "v", false, "enable debug logging")
	pf.BoolVar(&rootOpts.NoColor, "no-color", false, "disable colors and animations")
	pf.StringVar(&rootOpts.ConfigDir, "config-dir", "", "configuration directory (default ~/.fitforge)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newLoginCmd(),
		newSignupCmd(),
		newLogoutCmd(),
		newTrainingCmd(),
		newConfigCmd(),
	)
}
