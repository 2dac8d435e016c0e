package cli

import (
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("autos version %s\n", version)
		if chatModelName != "" {
			cmd.Printf("chat model: %s\n", chatModelName)
		}
		if embedModelName != "" {
			cmd.Printf("embedding model: %s\n", embedModelName)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
