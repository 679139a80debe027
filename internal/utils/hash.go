// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// signatureSeparator separates a value from its signature in a signed string.
const signatureSeparator = "."

// HashString computes an HMAC-SHA256 signature over the given string
// using the provided hash key and returns the result as a hex-encoded string.
//
// Example usage:
//
//	signature := utils.HashString("some data", "my-secret-key")
func HashString(data string, hashKey string) string {
	return hex.EncodeToString(hashString([]byte(data), hashKey))
}

// SignString returns value followed by "." and its hex HMAC-SHA256 under
// hashKey. It is used to make session cookie values tamper-evident.
//
// Example usage:
//
//	cookieValue := utils.SignString(sessionID, secret)
func SignString(value, hashKey string) string {
	return value + signatureSeparator + HashString(value, hashKey)
}

// VerifySignedString checks a string produced by [SignString] and returns
// the original value. The signature is compared in constant time.
// ok is false when the input is malformed or the signature does not match.
func VerifySignedString(signed, hashKey string) (value string, ok bool) {
	idx := strings.LastIndex(signed, signatureSeparator)
	if idx <= 0 || idx == len(signed)-1 {
		return "", false
	}

	value = signed[:idx]
	got, err := hex.DecodeString(signed[idx+1:])
	if err != nil {
		return "", false
	}

	if !hmac.Equal(got, hashString([]byte(value), hashKey)) {
		return "", false
	}

	return value, true
}

// hashString computes an HMAC-SHA256 digest over the given byte slice
// using the provided hash key. A new HMAC instance is created on each call.
func hashString(data []byte, hashKey string) []byte {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write(data)
	return hasher.Sum(nil)
}
