package main

import (
	"fmt"
	"strings"
)

// prelude words are defined in every session unless disabled.
var prelude = []wordOption{
	{"inc", "1 +"},
	{"squared", "dup *"},
}

// parseDefine parses a "name=body" word definition flag.
func parseDefine(def string) (wordOption, error) {
	name, body, ok := strings.Cut(def, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" || strings.Contains(name, " ") {
		return wordOption{}, fmt.Errorf("invalid word definition %q, want name=body", def)
	}
	return wordOption{name, strings.TrimSpace(body)}, nil
}
