package storage

import (
	"bufio"
	"bytedata/pkg/common"
	"fmt"
	"os"
	"strconv"
)

// LoadValues reads one signed byte per line. Any malformed line fails the
// whole load and nothing read so far is returned.
func LoadValues(path string) ([]common.Value, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var values []common.Value
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		v, err := common.ParseValue(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, line, err)
		}
		values = append(values, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return values, nil
}

// SaveValues writes one value per line, replacing path.
func SaveValues(path string, values []common.Value) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	for _, v := range values {
		w.WriteString(strconv.Itoa(int(v)))
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
