// Package cli implements the siteforge command line interface.
package cli

import (
	"github.com/spf13/cobra"
)

// Root builds the root command with all subcommands attached.
func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "siteforge",
		Short: "Siteforge CMS backend",
		Long:  `Siteforge is a multi-tenant CMS backend with configuration-driven infrastructure provider services.`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	root.AddCommand(ServeCmd)
	root.AddCommand(SeedCmd)
	root.AddCommand(TokenCmd)
	root.AddCommand(VersionCmd)

	return root
}
