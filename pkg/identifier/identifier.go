// Package identifier mints short random identifiers used as short codes
// and as user and visitor ids.
package identifier

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	// Alphabet is the set of symbols identifiers are drawn from.
	Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	// Length is the number of symbols in every identifier.
	Length = 6
)

// Generator produces identifiers of a fixed length drawn uniformly from Alphabet.
// It does not guarantee uniqueness; callers check for collisions.
type Generator struct {
	length int
}

// New returns a Generator producing identifiers of Length symbols.
func New() *Generator {
	return &Generator{length: Length}
}

// Generate returns a new random identifier.
func (g *Generator) Generate() (string, error) {
	const op = "identifier.Generator.Generate"

	id, err := gonanoid.Generate(Alphabet, g.length)
	if err != nil {
		return "", fmt.Errorf("%s: failed to generate identifier: %w", op, err)
	}

	return id, nil
}
