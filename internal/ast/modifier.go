package ast

import (
	"strings"

	"sable/internal/source"
)

// Modifiers is a bitset of declaration modifiers.
type Modifiers uint16

const (
	ModPublic Modifiers = 1 << iota
	ModPrivate
	ModStatic
	ModAbstract
	ModVirtual
	ModOverride
	ModExtern
	ModPartial
)

// Has reports whether all bits of m2 are set.
func (m Modifiers) Has(m2 Modifiers) bool { return m&m2 == m2 }

func (m Modifiers) String() string {
	if m == 0 {
		return ""
	}
	parts := make([]string, 0, 4)
	if m.Has(ModPublic) {
		parts = append(parts, "public")
	}
	if m.Has(ModPrivate) {
		parts = append(parts, "private")
	}
	if m.Has(ModStatic) {
		parts = append(parts, "static")
	}
	if m.Has(ModAbstract) {
		parts = append(parts, "abstract")
	}
	if m.Has(ModVirtual) {
		parts = append(parts, "virtual")
	}
	if m.Has(ModOverride) {
		parts = append(parts, "override")
	}
	if m.Has(ModExtern) {
		parts = append(parts, "extern")
	}
	if m.Has(ModPartial) {
		parts = append(parts, "partial")
	}
	return strings.Join(parts, " ")
}

// ModifierList carries the parsed modifiers and the span they cover.
type ModifierList struct {
	Flags Modifiers
	Span  source.Span
}

// Has reports whether all bits of m2 are set in the list's flags.
func (l ModifierList) Has(m2 Modifiers) bool { return l.Flags.Has(m2) }
