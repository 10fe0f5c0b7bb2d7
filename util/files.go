package util

import (
	"crypto/md5"
	"fmt"
	"io"
	"os"
)

// MD5File digests a corpus file so training runs can log exactly which
// data they saw.
func MD5File(fileName string) (string, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return "", err
	}
	defer file.Close()

	digest := md5.New()
	if _, err := io.Copy(digest, file); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", digest.Sum(nil)), nil
}
