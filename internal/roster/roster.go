// Package roster loads dog records from JSON roster files and emits
// their output lines in roster order.
package roster

import (
	"fmt"
	"io"
	"os"

	"github.com/bytedance/sonic"

	"github.com/olehluchkiv/kennel/internal/animal"
)

// Entry is one roster record as stored on disk.
type Entry struct {
	Name string `json:"name"`
}

// Parse decodes a JSON roster (an array of entries) and constructs one
// Dog per entry. Names pass through the same bounded-name policy as
// direct construction.
func Parse(data []byte) ([]*animal.Dog, error) {
	var entries []Entry
	if err := sonic.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decoding roster: %w", err)
	}

	dogs := make([]*animal.Dog, 0, len(entries))
	for _, e := range entries {
		dogs = append(dogs, animal.NewDog(e.Name))
	}
	return dogs, nil
}

// Load reads and parses the roster file at path.
func Load(path string) ([]*animal.Dog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading roster: %w", err)
	}
	return Parse(data)
}

// Marshal encodes dogs back into roster JSON, preserving order.
func Marshal(dogs []*animal.Dog) ([]byte, error) {
	entries := make([]Entry, len(dogs))
	for i, d := range dogs {
		entries[i] = Entry{Name: d.Name()}
	}

	data, err := sonic.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("encoding roster: %w", err)
	}
	return data, nil
}

// EmitAll writes the speak and summary lines for every dog, in order.
func EmitAll(w io.Writer, dogs []*animal.Dog) {
	for _, d := range dogs {
		d.Speak(w)
		d.PrintSummary(w)
	}
}

// Names returns the stored names in roster order.
func Names(dogs []*animal.Dog) []string {
	names := make([]string, len(dogs))
	for i, d := range dogs {
		names[i] = d.Name()
	}
	return names
}
