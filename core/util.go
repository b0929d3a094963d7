package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
)

// CleanString trims all leading and trailing whitespace in `s` and optionally uppers it.
func CleanString(s string, upper ...bool) string {
	s = strings.TrimSpace(s)
	if len(upper) > 0 && upper[0] {
		return strings.ToUpper(s)
	}
	return s
}

// Getwd tries to find the project root "scheduler".
// go-test changes the working directory to the test package being run during tests,
// which breaks config discovery.
// see: https://stackoverflow.com/questions/23847003/golang-tests-and-working-directory
func Getwd() string {
	root := "scheduler"
	wd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}
	currDir := wd
	for {
		if fi, err := os.Stat(currDir); err == nil {
			dirBase := filepath.Base(currDir)
			if dirBase == root && fi.IsDir() {
				return currDir
			}
		}
		newDir := filepath.Dir(currDir)
		if newDir == string(os.PathSeparator) || newDir == currDir {
			return wd
		}
		currDir = newDir
	}
}
