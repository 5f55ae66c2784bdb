package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bemali/internal/config"
)

var v = config.NewViper()

// rootCmd runs the page.
var rootCmd = &cobra.Command{
	Use:   "bemali",
	Short: "Bem Ali - clinic and practitioner page in the terminal",
	Long: `bemali renders the Bem Ali landing page: the clinic's institutional
profile and Dra. Mara Magalhães' personal profile, switchable with m.

The welcome tagline is generated by Gemini when an API key is configured
(--api-key, BEMALI_API_KEY, GEMINI_API_KEY or API_KEY) and falls back to a
fixed phrase otherwise.

Logs are written to a file (--log-file); the terminal belongs to the page.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return config.LoadDotEnv()
	},
	RunE: runPage,
}

// taglineCmd generates one tagline and prints it.
var taglineCmd = &cobra.Command{
	Use:   "tagline",
	Short: "Generate one welcome tagline for --mode and print it",
	Args:  cobra.NoArgs,
	RunE:  runTagline,
}

// contentCmd prints the resolved content as YAML.
var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Validate the content (built-in or --content) and print it as YAML",
	Args:  cobra.NoArgs,
	RunE:  runContent,
}

func init() {
	config.RegisterFlags(rootCmd.PersistentFlags())
	if err := config.BindFlags(v, rootCmd.PersistentFlags()); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(taglineCmd)
	rootCmd.AddCommand(contentCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
