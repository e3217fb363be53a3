// Package config provides functionality for loading and managing application configuration.
//
// Settings are read from environment variables once at process start, validated,
// and passed explicitly into the components that need them. The package also
// holds the logger and database settings structs shared by the REST API and
// the CLI.
package config
