package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// readSamples parses numbers separated by newlines, commas or whitespace.
func readSamples(r io.Reader) ([]float64, error) {
	var out []float64

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)

	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || r == ';' || r == ' ' || r == '\t'
		})
		for _, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			out = append(out, v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// openInput returns stdin for "" or "-", otherwise the named file.
func (a *app) openInput(name string) (io.ReadCloser, error) {
	if name == "" || name == "-" {
		return io.NopCloser(a.stdin), nil
	}
	return os.Open(name)
}

func (a *app) loadSamples(name string) ([]float64, error) {
	rc, err := a.openInput(name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	samples, err := readSamples(rc)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", displayName(name), err)
	}
	return samples, nil
}

func displayName(name string) string {
	if name == "" || name == "-" {
		return "stdin"
	}
	return name
}
