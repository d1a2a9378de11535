package mdspan

import (
	"os"
	"strings"
)

// DetectColorSupport reports whether the environment asks for ANSI styling.
// NO_COLOR always wins, CLICOLOR_FORCE forces color on, and a dumb or unset
// TERM disables it. Callers should still check that output is a terminal.
func DetectColorSupport() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if force := os.Getenv("CLICOLOR_FORCE"); force != "" && force != "0" {
		return true
	}
	if os.Getenv("CLICOLOR") == "0" {
		return false
	}
	if os.Getenv("WT_SESSION") != "" {
		return true
	}
	term := strings.ToLower(os.Getenv("TERM"))
	if term == "" || term == "dumb" {
		return false
	}
	return true
}
