package main

import "strings"

// originList collects a repeatable -mcp-origin flag, ignoring duplicates.
type originList []string

func (o *originList) String() string {
	if o == nil {
		return ""
	}
	return strings.Join(*o, ",")
}

func (o *originList) Set(value string) error {
	value = strings.TrimRight(strings.TrimSpace(value), "/")
	for _, existing := range *o {
		if existing == value {
			return nil
		}
	}
	*o = append(*o, value)
	return nil
}
