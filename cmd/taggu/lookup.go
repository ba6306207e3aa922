package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taggu-go/taggu/cmd"
	"github.com/taggu-go/taggu/pkg/lookup"
	"github.com/taggu-go/taggu/pkg/metadata"
)

var lookupConfiguration struct {
	// field is the metadata field name being looked up.
	field string
	// labels is a label-selector string, reserved for a future filtering
	// layer; parsed eagerly but not currently applied.
	labels string
}

var lookupCommand = &cobra.Command{
	Use:   "lookup",
	Short: "Perform a metadata lookup against the configured library",
	Args:  cmd.DisallowArguments,
}

func init() {
	for _, command := range []*cobra.Command{lookupOriginCommand, lookupParentsCommand, lookupChildrenCommand} {
		flags := command.Flags()
		flags.StringVarP(&lookupConfiguration.field, "field", "f", "", "Field name to look up")
		flags.StringVarP(&lookupConfiguration.labels, "labels", "l", "", "Label selector (reserved, not yet applied to filtering)")
		command.MarkFlagRequired("field")
		lookupCommand.AddCommand(command)
	}
}

func lookupOptions() (lookup.Options, error) {
	labelSelector, err := lookup.ParseLabels(lookupConfiguration.labels)
	if err != nil {
		return lookup.Options{}, fmt.Errorf("invalid label selector: %w", err)
	}
	return lookup.Options{FieldName: lookupConfiguration.field, Labels: labelSelector}, nil
}

func reportLookupResult(value metadata.MetaValue, ok bool) {
	if !ok {
		fmt.Println("(no value)")
		return
	}
	printMetaValue(value)
}

var lookupOriginCommand = &cobra.Command{
	Use:   "origin <item-path>",
	Short: "Look up a field directly on an item, via its own configured meta-files",
	Args:  cobra.ExactArgs(1),
	Run: cmd.Mainify(func(command *cobra.Command, arguments []string) error {
		session, err := newSession()
		if err != nil {
			return err
		}
		opts, err := lookupOptions()
		if err != nil {
			return err
		}
		value, ok, err := session.Origin(arguments[0], opts)
		if err != nil {
			return err
		}
		reportLookupResult(value, ok)
		return nil
	}),
}

var lookupParentsCommand = &cobra.Command{
	Use:   "parents <item-path>",
	Short: "Look up a field by walking an item's ancestors",
	Args:  cobra.ExactArgs(1),
	Run: cmd.Mainify(func(command *cobra.Command, arguments []string) error {
		session, err := newSession()
		if err != nil {
			return err
		}
		opts, err := lookupOptions()
		if err != nil {
			return err
		}
		value, ok, err := session.Parents(arguments[0], opts)
		if err != nil {
			return err
		}
		reportLookupResult(value, ok)
		return nil
	}),
}

var lookupChildrenCommand = &cobra.Command{
	Use:   "children <item-path>",
	Short: "Look up a field by recursively descending an item's selected children",
	Args:  cobra.ExactArgs(1),
	Run: cmd.Mainify(func(command *cobra.Command, arguments []string) error {
		session, err := newSession()
		if err != nil {
			return err
		}
		opts, err := lookupOptions()
		if err != nil {
			return err
		}
		value, ok, err := session.Children(arguments[0], opts)
		if err != nil {
			return err
		}
		reportLookupResult(value, ok)
		return nil
	}),
}
