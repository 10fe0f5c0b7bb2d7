package conf

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// Conf is a line-oriented configuration file: one value per line, blank
// lines and #-comments skipped. Used for entity label subsets.
type Conf struct {
	Values []string
}

func Read(reader io.Reader) (*Conf, error) {
	retval := make([]string, 0, 16)
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		retval = append(retval, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return &Conf{retval}, nil
}

func ReadFile(filename string) (*Conf, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Read(file)
}
