// Package dialogue holds what the people of a square have to say.
package dialogue

import "sort"

// Book maps each person to their line.
type Book struct {
	lines map[string]string
}

// NewBook copies lines into a Book.
func NewBook(lines map[string]string) *Book {
	b := &Book{lines: make(map[string]string, len(lines))}
	for who, line := range lines {
		b.lines[who] = line
	}
	return b
}

// People returns the names of everyone present, sorted.
func (b *Book) People() []string {
	names := make([]string, 0, len(b.lines))
	for who := range b.lines {
		names = append(names, who)
	}
	sort.Strings(names)
	return names
}

// Line returns what the named person says. Lookup is exact.
func (b *Book) Line(who string) (string, bool) {
	line, ok := b.lines[who]
	return line, ok
}

// Len is the number of people.
func (b *Book) Len() int { return len(b.lines) }
