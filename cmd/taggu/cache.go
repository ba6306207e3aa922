package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/taggu-go/taggu/cmd"
)

var cacheConfiguration struct {
	// force re-reads and re-plexes the meta-file even if already cached.
	force bool
}

var cacheCommand = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or populate the lookup session's meta-file cache",
	Args:  cmd.DisallowArguments,
}

func init() {
	flags := cacheStatCommand.Flags()
	flags.BoolVar(&cacheConfiguration.force, "force", false, "Re-read the meta-file even if already cached")
	cacheCommand.AddCommand(cacheStatCommand)
}

var cacheStatCommand = &cobra.Command{
	Use:   "stat <meta-path>",
	Short: "Cache a meta-file and report how many items it binds",
	Args:  cobra.ExactArgs(1),
	Run: cmd.Mainify(func(command *cobra.Command, arguments []string) error {
		metaPath := arguments[0]

		info, err := os.Stat(metaPath)
		if err != nil {
			return fmt.Errorf("unable to stat %q: %w", metaPath, err)
		}

		session, err := newSession()
		if err != nil {
			return err
		}

		if err := session.Cache().CacheMetaFile(metaPath, cacheConfiguration.force); err != nil {
			return err
		}
		items, err := session.Cache().GetMetaFile(metaPath)
		if err != nil {
			return err
		}

		fmt.Printf("Meta-file:   %s\n", metaPath)
		fmt.Printf("Size:        %s\n", humanize.Bytes(uint64(info.Size())))
		fmt.Printf("Modified:    %s\n", humanize.Time(info.ModTime()))
		fmt.Printf("Bound items: %d\n", len(items))
		return nil
	}),
}
