package utils

import (
	"math/rand"
	"os"
	"path/filepath"
)

var (
	letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")
)

// FileExists reports whether the named file or directory exists.
// This function is taken from https://github.com/lightningnetwork/lnd
func FileExists(name string) bool {
	if _, err := os.Stat(name); err != nil {
		if os.IsNotExist(err) {
			return false
		}
	}
	return true
}

// AppDataDir returns the directory where the named application keeps its
// config and log files. Falls back to a relative directory if the user's
// home directory cannot be determined
func AppDataDir(appName string) string {
	homeDir, err := os.UserHomeDir() // this should be OS agnostic
	if err != nil {
		return "." + appName
	}
	return filepath.Join(homeDir, "."+appName)
}

// RandSeq generates a random string of length n
func RandSeq(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}
