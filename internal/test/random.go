package test

import (
	"math/rand/v2"
	"strings"
)

const (
	netIDLetters = "abcdefghijklmnopqrstuvwxyz"
	netIDDigits  = "0123456789"
)

// RandomNetID returns a campus style user id: two or three lowercase letters
// followed by one to four digits.
func RandomNetID() string {
	var b strings.Builder
	for range 2 + rand.IntN(2) {
		b.WriteByte(netIDLetters[rand.IntN(len(netIDLetters))])
	}
	for range 1 + rand.IntN(4) {
		b.WriteByte(netIDDigits[rand.IntN(len(netIDDigits))])
	}
	return b.String()
}

// RandomItemID returns a catalog item id with the given prefix.
func RandomItemID(prefix string) string {
	return prefix + "-" + RandomNetID()
}
