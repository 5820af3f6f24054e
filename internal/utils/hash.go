package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// HashString computes an HMAC-SHA256 signature over the given string
// using the provided hash key and returns the result as a hex-encoded string.
//
// It is used to sign session cookie values so that a tampered token is
// rejected before any store lookup happens.
func HashString(data string, hashKey string) string {
	return hex.EncodeToString(hashString([]byte(data), hashKey))
}

// VerifyString reports whether signature is a valid hex-encoded HMAC-SHA256
// digest of data under hashKey. The comparison is constant-time.
func VerifyString(data string, signature string, hashKey string) bool {
	want := hashString([]byte(data), hashKey)
	got, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}

	return hmac.Equal(want, got)
}

// hashString computes an HMAC-SHA256 digest over the given byte slice
// using the provided hash key. A new HMAC instance is created on each call.
func hashString(data []byte, hashKey string) []byte {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write(data)
	return hasher.Sum(nil)
}
