// Package generator produces random passwords from a chosen set of
// character classes.
package generator

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"
)

const (
	lowercase = "abcdefghijklmnopqrstuvwxyz"
	uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits    = "0123456789"
	symbols   = "!@#$%^&*"
)

// MaxLength bounds a single password.
const MaxLength = 4096

var (
	ErrInvalidLength = errors.New("invalid password length")
	ErrInvalidClass  = errors.New("invalid character class")
)

// Class is a set of character classes.
type Class uint8

const (
	Lowercase Class = 1 << iota
	Uppercase
	Digits
	Symbols

	// All enables every class.
	All = Lowercase | Uppercase | Digits | Symbols
)

var classAlphabets = []struct {
	class    Class
	letter   byte
	alphabet string
}{
	{Lowercase, 'l', lowercase},
	{Uppercase, 'u', uppercase},
	{Digits, 'd', digits},
	{Symbols, 's', symbols},
}

// Has reports whether every class in o is enabled in c.
func (c Class) Has(o Class) bool { return c&o == o }

// Toggle flips o in c.
func (c Class) Toggle(o Class) Class { return c ^ o }

// String renders c using the ParseClasses letters, e.g. "luds".
func (c Class) String() string {
	var sb strings.Builder
	for _, a := range classAlphabets {
		if c.Has(a.class) {
			sb.WriteByte(a.letter)
		}
	}
	return sb.String()
}

// Alphabet returns the pool for c: enabled alphabets in the fixed order
// lowercase, uppercase, digits, symbols. An empty set falls back to
// lowercase plus uppercase.
func Alphabet(c Class) string {
	if c&All == 0 {
		return lowercase + uppercase
	}
	var sb strings.Builder
	for _, a := range classAlphabets {
		if c.Has(a.class) {
			sb.WriteString(a.alphabet)
		}
	}
	return sb.String()
}

// Generator draws passwords from a randomness source.
type Generator struct {
	rand io.Reader
}

// New returns a Generator reading from r. A nil r means crypto/rand.
func New(r io.Reader) *Generator {
	if r == nil {
		r = rand.Reader
	}
	return &Generator{rand: r}
}

// Generate returns a password of exactly length characters. Every position is
// an independent uniform draw from Alphabet(classes); there is no guarantee
// that each enabled class actually appears.
func (g *Generator) Generate(length int, classes Class) (string, error) {
	if length < 1 || length > MaxLength {
		return "", fmt.Errorf("%w: %d (want 1..%d)", ErrInvalidLength, length, MaxLength)
	}

	charset := Alphabet(classes)
	size := big.NewInt(int64(len(charset)))

	var sb strings.Builder
	sb.Grow(length)
	for i := 0; i < length; i++ {
		n, err := rand.Int(g.rand, size)
		if err != nil {
			return "", fmt.Errorf("failed to read randomness: %w", err)
		}
		sb.WriteByte(charset[n.Int64()])
	}

	return sb.String(), nil
}

var defaultGenerator = New(nil)

// Generate uses crypto/rand.
func Generate(length int, classes Class) (string, error) {
	return defaultGenerator.Generate(length, classes)
}

// ParseLength parses a user-supplied length and checks its range.
func ParseLength(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLength, s)
	}
	if n < 1 || n > MaxLength {
		return 0, fmt.Errorf("%w: %d (want 1..%d)", ErrInvalidLength, n, MaxLength)
	}
	return n, nil
}

// ParseClasses parses letters l, u, d, s (any order, case-insensitive).
// An empty string yields the empty set, which Generate treats as letters only.
func ParseClasses(s string) (Class, error) {
	var c Class
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		found := false
		for _, a := range classAlphabets {
			if byte(r) == a.letter && r < 0x80 {
				c |= a.class
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("%w: %q", ErrInvalidClass, r)
		}
	}
	return c, nil
}
