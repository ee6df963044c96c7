package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fitforge/fitforge-cli/pkg/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print the fitforge version",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationNoDeps: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "fitforge %s\n", version.GetFullVersion())
			return nil
		},
	}
}
