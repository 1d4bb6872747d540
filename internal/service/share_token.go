package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	shareTokenAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	// ShareTokenLength is the number of characters in a share hash.
	ShareTokenLength      = 10
	maxShareTokenAttempts = 5
)

var alphabetSize = big.NewInt(int64(len(shareTokenAlphabet)))

// generateShareToken draws ShareTokenLength symbols uniformly from the
// 62 character alphabet.
func generateShareToken() (string, error) {
	token := make([]byte, ShareTokenLength)
	for i := range token {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", fmt.Errorf("generate random index: %w", err)
		}
		token[i] = shareTokenAlphabet[n.Int64()]
	}
	return string(token), nil
}

// isShareToken reports whether s could have been produced by generateShareToken.
func isShareToken(s string) bool {
	if len(s) != ShareTokenLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9') {
			return false
		}
	}
	return true
}
