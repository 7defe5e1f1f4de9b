// pkg/utils/random.go
package utils

import "crypto/rand"

const passwordCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GeneratedPasswordLength is the length of recovery passwords.
const GeneratedPasswordLength = 9

// GenerateRandomPassword returns a random alphanumeric string of the given
// length. Random bytes outside the charset are discarded rather than mapped,
// keeping the distribution uniform.
func GenerateRandomPassword(length int) (string, error) {
	out := make([]byte, 0, length)
	buf := make([]byte, length)

	for len(out) < length {
		if _, err := rand.Read(buf); err != nil {
			return "", err
		}
		for _, b := range buf {
			if int(b) < len(passwordCharset)*4 && len(out) < length {
				out = append(out, passwordCharset[int(b)%len(passwordCharset)])
			}
		}
	}

	return string(out), nil
}
