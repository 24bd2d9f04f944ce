package utils

import (
	"fmt"
	"math/rand"
)

func GenerateRandomOTP() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*")

func GenerateRandomPassword(length int) string {
	random_password := make([]rune, length)
	for i := range random_password {
		random_password[i] = letters[rand.Intn(len(letters))]
	}
	return string(random_password)
}

var hexDigits = "0123456789abcdef"

// GenerateSeedID produces ids like "seed-1a2b3c4d" for demo appointments so
// they are easy to spot and purge.
func GenerateSeedID() string {
	id := make([]byte, 8)
	for i := range id {
		id[i] = hexDigits[rand.Intn(len(hexDigits))]
	}
	return "seed-" + string(id)
}
