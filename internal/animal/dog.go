package animal

import (
	"fmt"
	"io"
)

// Species is the species label shared by every Dog. It belongs to the
// type, not to any instance, and never changes.
const Species = "Canis familiaris"

// defaultSecret is assigned at construction and never mutated afterwards.
const defaultSecret = "dog-secret"

// Dog composes the base Animal identity with a hidden secret field.
// A Dog owns its embedded Animal outright; there is no back-reference.
type Dog struct {
	Animal
	secret string
}

// NewDog returns a new Dog. The name is bounded to NameCapacity bytes
// (see truncateName) and the secret is always the fixed default.
func NewDog(name string) *Dog {
	return &Dog{
		Animal: NewAnimal(name),
		secret: defaultSecret,
	}
}

// Secret returns the dog's secret.
func (d *Dog) Secret() string {
	return d.secret
}

// Speak writes the dog's bark line to w:
//
//	<name> says: woof!
func (d *Dog) Speak(w io.Writer) {
	fmt.Fprintf(w, "%s says: woof!\n", d.name)
}

// PrintSummary writes the one-line record summary to w:
//
//	[Dog] <name> (species=Canis familiaris)
func (d *Dog) PrintSummary(w io.Writer) {
	fmt.Fprintf(w, "[Dog] %s (species=%s)\n", d.name, Species)
}
