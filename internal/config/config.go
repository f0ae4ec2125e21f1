package config

import (
	"errors"
	"os"
)

// CaseInsensitiveEnv is the environment toggle that disables case sensitivity
// when present. Its value is ignored.
const CaseInsensitiveEnv = "CASE_INSENSITIVE"

// ErrInsufficientArguments is returned when the query or filename is missing
var ErrInsufficientArguments = errors.New("not enough arguments")

// Config holds the settings for a single search run
type Config struct {
	query         string
	filename      string
	caseSensitive bool
}

// Build creates a Config from CLI-style arguments: program name, query,
// filename. Anything after the filename is ignored.
func Build(args []string, caseInsensitive bool) (*Config, error) {
	if len(args) < 3 {
		return nil, ErrInsufficientArguments
	}

	return &Config{
		query:         args[1],
		filename:      args[2],
		caseSensitive: !caseInsensitive,
	}, nil
}

// FromEnvironment builds a Config, checking the process environment for
// CaseInsensitiveEnv exactly once
func FromEnvironment(args []string) (*Config, error) {
	_, present := os.LookupEnv(CaseInsensitiveEnv)
	return Build(args, present)
}

// Query returns the text to search for
func (c *Config) Query() string {
	return c.query
}

// Filename returns the path of the file to search
func (c *Config) Filename() string {
	return c.filename
}

// CaseSensitive reports whether matching is case-sensitive
func (c *Config) CaseSensitive() bool {
	return c.caseSensitive
}
