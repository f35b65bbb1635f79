package wferrors

import "github.com/mpvl/unique"

// stringSlice adapts []string to sort.Interface for unique.Sort.
type stringSlice []string

func (s stringSlice) Len() int           { return len(s) }
func (s stringSlice) Less(i, j int) bool { return s[i] < s[j] }
func (s stringSlice) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }

// DedupeLines sorts and removes duplicate rendered trace/error lines, used
// by the CLI when several failing test cases report the same frame (e.g. the
// same ProcessingNonComposition(Z844) entry surfacing from many cases in one
// run). It is purely a reporting convenience; it never affects control flow.
func DedupeLines(lines []string) []string {
	cp := append(stringSlice(nil), lines...)
	n := unique.Sort(cp)
	return []string(cp[:n])
}
