package helpers

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

// GenVerificationCode generates a secure random 6-digit code as a zero-padded
// string, used for email verification.
func GenVerificationCode() (string, error) {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}
	n := binary.BigEndian.Uint32(b[:])
	return fmt.Sprintf("%06d", n%1000000), nil
}
