package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// loadDotEnv loads variables from a "dotenv" file into the process
// environment, without overriding variables already set. A missing file is
// not an error.
//
// Ground: teacher's pkg/compose.LoadEnvironment.
func loadDotEnv(path string) error {
	variables, err := godotenv.Read(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("unable to load environment file (%s): %w", path, err)
	}
	for key, value := range variables {
		if _, set := os.LookupEnv(key); !set {
			os.Setenv(key, value)
		}
	}
	return nil
}
