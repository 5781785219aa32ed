package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/kittech/kbproximity/internal/kbutil"
	"github.com/kittech/kbproximity/internal/keylayout"
	"github.com/kittech/kbproximity/internal/layoutconfig"
)

func buildLayout(doc *layoutconfig.Document) *keylayout.Layout {
	return keylayout.New(doc.Build())
}

// touchTrace is a raw touch trace read from a diagnostic file: one
// "x,y[,t]" triplet per non-empty line.
type touchTrace struct {
	xs, ys, times []int32
	hasTimes      bool
}

func readTrace(path string) (*touchTrace, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading trace %s: %w", path, err)
	}
	defer kbutil.CloseQuietly(f)

	trace := &touchTrace{}
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, ",")
		if len(fields) < 2 {
			return nil, fmt.Errorf("trace %s line %d: want \"x,y[,t]\", got %q", path, lineNo, line)
		}
		x, err := strconv.ParseInt(strings.TrimSpace(fields[0]), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("trace %s line %d: %w", path, lineNo, err)
		}
		y, err := strconv.ParseInt(strings.TrimSpace(fields[1]), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("trace %s line %d: %w", path, lineNo, err)
		}
		trace.xs = append(trace.xs, int32(x))
		trace.ys = append(trace.ys, int32(y))
		if len(fields) >= 3 {
			t, err := strconv.ParseInt(strings.TrimSpace(fields[2]), 10, 32)
			if err != nil {
				return nil, fmt.Errorf("trace %s line %d: %w", path, lineNo, err)
			}
			trace.times = append(trace.times, int32(t))
			trace.hasTimes = true
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading trace %s: %w", path, err)
	}
	if trace.hasTimes && len(trace.times) != len(trace.xs) {
		return nil, fmt.Errorf("trace %s: times column must be present on every line or none", path)
	}
	return trace, nil
}
