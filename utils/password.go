package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	pbkdf2Iterations = 600000
	pbkdf2SaltLength = 5
	pbkdf2KeyLength  = sha256.Size
)

const saltAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// HashPassword derives a salted PBKDF2-SHA256 hash of the password. The
// stored form is "pbkdf2:sha256:<iterations>$<salt>$<hexdigest>", which keeps
// hashes interchangeable with rows written by the previous deployment.
func HashPassword(password string) (string, error) {
	salt, err := randomSalt(pbkdf2SaltLength)
	if err != nil {
		return "", err
	}
	digest := pbkdf2.Key([]byte(password), []byte(salt), pbkdf2Iterations, pbkdf2KeyLength, sha256.New)
	return fmt.Sprintf("pbkdf2:sha256:%d$%s$%s", pbkdf2Iterations, salt, hex.EncodeToString(digest)), nil
}

// CheckPassword reports whether the plaintext password matches the stored
// hash. The iteration count embedded in the hash is honored, so older rows
// hashed with a different cost still verify.
func CheckPassword(stored, password string) bool {
	method, salt, want, ok := splitHash(stored)
	if !ok {
		return false
	}
	iterations := pbkdf2Iterations
	if parts := strings.SplitN(method, ":", 3); len(parts) >= 2 && parts[0] == "pbkdf2" && parts[1] == "sha256" {
		if len(parts) == 3 {
			n, err := strconv.Atoi(parts[2])
			if err != nil || n <= 0 {
				return false
			}
			iterations = n
		}
	} else {
		return false
	}

	wantDigest, err := hex.DecodeString(want)
	if err != nil {
		return false
	}
	got := pbkdf2.Key([]byte(password), []byte(salt), iterations, len(wantDigest), sha256.New)
	return subtle.ConstantTimeCompare(got, wantDigest) == 1
}

func splitHash(stored string) (method, salt, digest string, ok bool) {
	parts := strings.SplitN(stored, "$", 3)
	if len(parts) != 3 || parts[1] == "" || parts[2] == "" {
		return "", "", "", false
	}
	return parts[0], parts[1], parts[2], true
}

func randomSalt(n int) (string, error) {
	out := make([]byte, n)
	for i := range out {
		v, err := rand.Int(rand.Reader, big.NewInt(int64(len(saltAlphabet))))
		if err != nil {
			return "", err
		}
		out[i] = saltAlphabet[v.Int64()]
	}
	return string(out), nil
}
