// Package animal defines the kennel's record types: a base Animal
// identity and the Dog record composed on top of it.
package animal

import "unicode/utf8"

// NameCapacity is the maximum number of bytes kept of an animal name.
// Longer names are truncated silently; truncation is never an error.
// The cap matches the historical 50-byte fixed buffer (49 visible
// bytes plus terminator).
const NameCapacity = 49

// Animal is the base identity record shared by every animal kind.
type Animal struct {
	name string
}

// NewAnimal returns an Animal whose name is bounded to NameCapacity bytes.
func NewAnimal(name string) Animal {
	return Animal{name: truncateName(name)}
}

// Name returns the stored (possibly truncated) name.
func (a Animal) Name() string {
	return a.name
}

// truncateName cuts s to at most NameCapacity bytes. If the cut lands
// inside a multi-byte rune, that trailing rune is dropped. Bytes that
// were already invalid UTF-8 in the input pass through untouched, same
// as names under the cap.
func truncateName(s string) string {
	if len(s) <= NameCapacity {
		return s
	}
	cut := s[:NameCapacity]
	for i := len(cut) - 1; i >= 0 && len(cut)-i < utf8.UTFMax; i-- {
		if !utf8.RuneStart(cut[i]) {
			continue
		}
		// cut[i] starts the final sequence; drop it only if the cut
		// left it short of its declared length.
		if n := leadByteLen(cut[i]); n > len(cut)-i {
			return cut[:i]
		}
		break
	}
	return cut
}

// leadByteLen reports the encoded length declared by a UTF-8 lead
// byte. Continuation and invalid bytes count as single bytes.
func leadByteLen(b byte) int {
	switch {
	case b < 0x80:
		return 1
	case b&0xE0 == 0xC0:
		return 2
	case b&0xF0 == 0xE0:
		return 3
	case b&0xF8 == 0xF0:
		return 4
	default:
		return 1
	}
}
