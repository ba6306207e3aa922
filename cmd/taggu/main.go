package main

import (
	"github.com/spf13/cobra"

	"github.com/taggu-go/taggu/cmd"
	"github.com/taggu-go/taggu/pkg/logging"
)

func rootMain(command *cobra.Command, arguments []string) {
	command.Help()
}

var rootCommand = &cobra.Command{
	Use:   "taggu",
	Short: "Taggu resolves hierarchical metadata over a file-tree-organized media library.",
	PersistentPreRunE: func(command *cobra.Command, arguments []string) error {
		if rootConfiguration.debug {
			logging.DebugEnabled = true
		}
		return loadDotEnv(rootConfiguration.envPath)
	},
	Run: rootMain,
}

var rootConfiguration struct {
	// configPath is the path to the library configuration file.
	configPath string
	// envPath is the path to an optional dotenv file.
	envPath string
	// debug enables verbose logging output.
	debug bool
}

func init() {
	flags := rootCommand.PersistentFlags()
	flags.StringVarP(&rootConfiguration.configPath, "config", "c", "taggu.yml", "Path to the library configuration file")
	flags.StringVar(&rootConfiguration.envPath, "env-file", ".env", "Path to an optional dotenv file")
	flags.BoolVar(&rootConfiguration.debug, "debug", false, "Enable verbose logging output")

	cobra.EnableCommandSorting = false

	rootCommand.AddCommand(
		lookupCommand,
		cacheCommand,
		configCommand,
	)
}

func main() {
	if err := rootCommand.Execute(); err != nil {
		cmd.Fatal(err)
	}
}
