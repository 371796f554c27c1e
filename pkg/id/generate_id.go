package id

import (
	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"
)

const (
	// Base36 is the quote number suffix alphabet.
	Base36    = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	SuffixLen = 6
)

var suffix = must(nanoid.CustomASCII(Base36, SuffixLen))

// New returns a random (v4) UUID string for record and session ids.
func New() string { return uuid.NewString() }

// Suffix returns SuffixLen random base36 characters.
func Suffix() string { return suffix() }

func must(gen func() string, err error) func() string {
	if err != nil {
		panic(err)
	}
	return gen
}
