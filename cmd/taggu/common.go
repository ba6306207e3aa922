package main

import (
	"fmt"

	"github.com/taggu-go/taggu/pkg/config"
	"github.com/taggu-go/taggu/pkg/logging"
	"github.com/taggu-go/taggu/pkg/lookup"
	"github.com/taggu-go/taggu/pkg/metadata"
)

// newSession loads the configured library and opens a lookup session over
// it.
func newSession() (*lookup.Session, error) {
	cfg, err := config.Load(rootConfiguration.configPath)
	if err != nil {
		return nil, fmt.Errorf("unable to load configuration: %w", err)
	}

	lib, err := cfg.BuildLibrary()
	if err != nil {
		return nil, fmt.Errorf("unable to construct library: %w", err)
	}

	return lookup.NewSession(lib, logging.RootLogger), nil
}

// printMetaValue renders a metadata.MetaValue for terminal output.
func printMetaValue(v metadata.MetaValue) {
	printMetaValueIndented(v, "")
}

func printMetaValueIndented(v metadata.MetaValue, indent string) {
	switch v.Kind {
	case metadata.KindNil:
		fmt.Println(indent + "~")
	case metadata.KindStr:
		fmt.Println(indent + v.Str)
	case metadata.KindSeq:
		for _, element := range v.Seq {
			fmt.Println(indent + "-")
			printMetaValueIndented(element, indent+"  ")
		}
	case metadata.KindMap:
		for _, kv := range v.Map {
			key := "~"
			if !kv.Key.IsNil() {
				key = kv.Key.Str()
			}
			fmt.Println(indent + key + ":")
			printMetaValueIndented(kv.Value, indent+"  ")
		}
	}
}
