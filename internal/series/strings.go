package series

import "strings"

// StringAccessor exposes string-specific operations on a string series.
// Every operation is null-preserving.
type StringAccessor struct {
	s *Series[string]
}

// Str returns the string accessor for the series.
func Str(s *Series[string]) StringAccessor {
	return StringAccessor{s: s}
}

// Contains reports per position whether the value contains pattern.
func (a StringAccessor) Contains(pattern string) *Series[bool] {
	return ApplyValue(a.s, func(v string) bool {
		return strings.Contains(v, pattern)
	}).WithName(a.s.name + "_contains")
}

// StartsWith reports per position whether the value starts with prefix.
func (a StringAccessor) StartsWith(prefix string) *Series[bool] {
	return ApplyValue(a.s, func(v string) bool {
		return strings.HasPrefix(v, prefix)
	}).WithName(a.s.name + "_starts_with")
}

// EndsWith reports per position whether the value ends with suffix.
func (a StringAccessor) EndsWith(suffix string) *Series[bool] {
	return ApplyValue(a.s, func(v string) bool {
		return strings.HasSuffix(v, suffix)
	}).WithName(a.s.name + "_ends_with")
}

// Len returns the byte length of each value.
func (a StringAccessor) Len() *Series[uint32] {
	return ApplyValue(a.s, func(v string) uint32 {
		return uint32(len(v))
	}).WithName(a.s.name + "_len")
}

// Replace substitutes every occurrence of old with new in each value.
func (a StringAccessor) Replace(old, new string) *Series[string] {
	return ApplyValue(a.s, func(v string) string {
		return strings.ReplaceAll(v, old, new)
	})
}

// ToUpper upper-cases each value.
func (a StringAccessor) ToUpper() *Series[string] {
	return ApplyValue(a.s, strings.ToUpper)
}

// ToLower lower-cases each value.
func (a StringAccessor) ToLower() *Series[string] {
	return ApplyValue(a.s, strings.ToLower)
}

// Strip trims leading and trailing whitespace from each value.
func (a StringAccessor) Strip() *Series[string] {
	return ApplyValue(a.s, strings.TrimSpace)
}

// LStrip trims leading whitespace from each value.
func (a StringAccessor) LStrip() *Series[string] {
	return ApplyValue(a.s, func(v string) string {
		return strings.TrimLeft(v, " \t\n\r")
	})
}

// RStrip trims trailing whitespace from each value.
func (a StringAccessor) RStrip() *Series[string] {
	return ApplyValue(a.s, func(v string) string {
		return strings.TrimRight(v, " \t\n\r")
	})
}
