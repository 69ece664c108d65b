// Package sanitize rewrites raw model output into text the Mermaid
// renderer accepts.
package sanitize

import "strings"

// Rule is a single deterministic rewrite.
type Rule struct {
	Name  string
	Apply func(string) string
}

// ReplaceAll builds a rule that replaces every occurrence of old.
func ReplaceAll(name, old, new string) Rule {
	return Rule{
		Name: name,
		Apply: func(s string) string {
			return strings.ReplaceAll(s, old, new)
		},
	}
}

// ReplaceFirst builds a rule that replaces only the first occurrence of old.
func ReplaceFirst(name, old, new string) Rule {
	return Rule{
		Name: name,
		Apply: func(s string) string {
			return strings.Replace(s, old, new, 1)
		},
	}
}

// Rules run in order. Append new dialect fixes at the end.
var Rules = []Rule{
	ReplaceAll("strip-fences", "```", ""),
	ReplaceAll("single-quotes", `"`, `'`),
	// "end" is a reserved block terminator in flowcharts.
	ReplaceAll("end-node", "end[End]", "ends[End]"),
	// The model sometimes echoes the fence language tag.
	ReplaceFirst("strip-language-tag", "mermaid", ""),
}

// Sanitize applies Rules to raw.
func Sanitize(raw string) string {
	return Apply(raw, Rules...)
}

func Apply(raw string, rules ...Rule) string {
	for _, r := range rules {
		raw = r.Apply(raw)
	}
	return raw
}
