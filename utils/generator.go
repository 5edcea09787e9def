package utils

import (
	"crypto/rand"
	"encoding/hex"
)

const roomCodeBytes = 8

// GenerateRoomCode returns a random identifier for a videocall room.
func GenerateRoomCode() (string, error) {
	b := make([]byte, roomCodeBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
