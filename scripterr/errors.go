// Package scripterr defines the error taxonomy shared by the script
// annotation packages.
//
// ConfigError reports malformed configuration at construction time and is
// never recovered. StructuralError reports a tree invariant that cannot be
// represented; it is fatal for the item being built, but leaves sibling
// items untouched. Non-fatal validation findings are not errors at all:
// they are collected as validate.Violation records.
package scripterr

import "fmt"

// ConfigError reports invalid language or grammar configuration.
type ConfigError struct {
	Field  string // offending configuration field
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s: %s", e.Field, e.Reason)
}

// Configf builds a ConfigError for the given field.
func Configf(field, format string, args ...any) *ConfigError {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// StructuralError reports an unrepresentable tree state: offset-alignment
// failure, vowel-count overflow, duplicate id, unknown sentinel kind.
type StructuralError struct {
	ItemID string // owning item, when known
	Node   string // node-path of the offending node, when known
	Reason string
}

func (e *StructuralError) Error() string {
	switch {
	case e.ItemID != "" && e.Node != "":
		return fmt.Sprintf("item %s: %s: %s", e.ItemID, e.Node, e.Reason)
	case e.Node != "":
		return fmt.Sprintf("%s: %s", e.Node, e.Reason)
	case e.ItemID != "":
		return fmt.Sprintf("item %s: %s", e.ItemID, e.Reason)
	}
	return e.Reason
}

// Structuralf builds a StructuralError without item or node context.
// Callers closer to the tree root attach context with At.
func Structuralf(format string, args ...any) *StructuralError {
	return &StructuralError{Reason: fmt.Sprintf(format, args...)}
}

// At returns a copy of e annotated with the owning item and node path.
// Existing context is kept.
func (e *StructuralError) At(itemID, node string) *StructuralError {
	out := *e
	if out.ItemID == "" {
		out.ItemID = itemID
	}
	if out.Node == "" {
		out.Node = node
	}
	return &out
}
