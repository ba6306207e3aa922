package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taggu-go/taggu/cmd"
	"github.com/taggu-go/taggu/pkg/config"
)

var configCommand = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create a library configuration file",
	Args:  cmd.DisallowArguments,
}

func init() {
	configCommand.AddCommand(configInitCommand)
}

var configInitCommand = &cobra.Command{
	Use:   "init <root>",
	Short: "Write a default configuration file pointing at the given library root",
	Args:  cobra.ExactArgs(1),
	Run: cmd.Mainify(func(command *cobra.Command, arguments []string) error {
		cfg := &config.Configuration{
			Root: arguments[0],
			Pairs: []config.PairConfiguration{
				{Name: "self.yml", Target: "contains"},
				{Name: "item.yml", Target: "siblings"},
			},
			SortOrder: "name",
		}

		if err := config.Save(rootConfiguration.configPath, cfg); err != nil {
			return fmt.Errorf("unable to write configuration: %w", err)
		}

		fmt.Printf("Wrote configuration to %s\n", rootConfiguration.configPath)
		return nil
	}),
}
