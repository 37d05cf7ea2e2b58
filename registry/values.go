// Copyright 2026 Microsoft. All rights reserved.
// MIT License

package registry

// Values holds the resolved arguments of one command invocation, keyed by
// argument name. Arguments that were not given and have no default are absent.
type Values map[string]interface{}

// Has reports whether name resolved to a value.
func (v Values) Has(name string) bool {
	_, ok := v[name]
	return ok
}

// String returns the string value of name, or "".
func (v Values) String(name string) string {
	s, _ := v[name].(string)
	return s
}

// Int returns the int value of name, or 0.
func (v Values) Int(name string) int {
	i, _ := v[name].(int)
	return i
}

// Bool returns the bool value of name, or false.
func (v Values) Bool(name string) bool {
	b, _ := v[name].(bool)
	return b
}

// Strings returns the list value of name, or nil.
func (v Values) Strings(name string) []string {
	s, _ := v[name].([]string)
	return s
}
