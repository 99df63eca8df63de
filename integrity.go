package hellodict

import (
	"bytes"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
	"hash"
	"strings"
)

// integrityAlgorithms lists supported digests from weakest to strongest.
var integrityAlgorithms = []struct {
	name string
	new  func() hash.Hash
}{
	{"sha256", sha256.New},
	{"sha384", sha512.New384},
	{"sha512", sha512.New},
}

// VerifyIntegrity checks b against a subresource integrity value. Only the
// digests of the strongest algorithm present are considered; b passes if it
// matches any of them. A value with no supported digest fails.
func VerifyIntegrity(b []byte, integrity string) error {
	digests := make(map[string][][]byte)
	for _, token := range strings.Fields(integrity) {
		token, _, _ = strings.Cut(token, "?")
		alg, encoded, ok := strings.Cut(token, "-")
		if !ok {
			continue
		}
		digest, err := decodeDigest(encoded)
		if err != nil {
			continue
		}
		alg = strings.ToLower(alg)
		digests[alg] = append(digests[alg], digest)
	}

	for i := len(integrityAlgorithms) - 1; i >= 0; i-- {
		alg := integrityAlgorithms[i]
		expected, ok := digests[alg.name]
		if !ok {
			continue
		}
		h := alg.new()
		h.Write(b)
		actual := h.Sum(nil)
		for _, want := range expected {
			if bytes.Equal(want, actual) {
				return nil
			}
		}
		return Errorf(EINVALID, "integrity mismatch: %s digest does not match", alg.name)
	}

	return Errorf(EINVALID, "no supported integrity metadata in %q", integrity)
}

// Integrity returns the sha384 subresource integrity value of b.
func Integrity(b []byte) string {
	sum := sha512.Sum384(b)
	return "sha384-" + base64.StdEncoding.EncodeToString(sum[:])
}

func decodeDigest(s string) ([]byte, error) {
	if b, err := base64.StdEncoding.DecodeString(s); err == nil {
		return b, nil
	}
	return base64.RawStdEncoding.DecodeString(s)
}
