package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"tambourine/cmd/tambourine/cmd/providers"
	"tambourine/cmd/tambourine/cmd/serve"
	"tambourine/cmd/tambourine/cmd/version"
)

var Verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tambourine",
	Short: "Provider registry and configuration server for Tambourine dictation",
	Long: `Provider registry and configuration server for Tambourine dictation.
- Reads provider credentials from the environment or a .env file
- Builds the speech-to-text and language-model providers that are configured
- Publishes them, with the default prompt sections, over a local HTTP API`,
	TraverseChildren: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(providers.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "V", false, "verbose output")
}
