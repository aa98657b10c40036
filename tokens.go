package main

import (
	"crypto/rand"
	"encoding/hex"
)

// RandomHex returns n random bytes hex-encoded (2n characters)
func RandomHex(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b)
}

// RandomFilename builds a collision-safe stored filename keeping the
// original extension (ext includes the leading dot)
func RandomFilename(ext string) string {
	return RandomHex(16) + ext
}
