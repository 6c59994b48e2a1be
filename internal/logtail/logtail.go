package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Filter selects log lines. The zero value matches every line.
type Filter struct {
	// MinLevel drops records below this level when HasLevel is set.
	MinLevel slog.Level
	HasLevel bool
	// RequestID keeps only records carrying this request_id.
	RequestID string
}

// Match reports whether line passes the filter. Lines without a level
// attribute, such as continuation lines, only fail a RequestID filter.
func (f Filter) Match(line string) bool {
	if f.RequestID != "" && field(line, "request_id") != f.RequestID {
		return false
	}
	if !f.HasLevel {
		return true
	}
	raw := field(line, "level")
	if raw == "" {
		return true
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		return true
	}
	return level >= f.MinLevel
}

// Read returns at most maxLines matching lines from the end of the file at
// path. A missing file yields no lines. maxLines <= 0 returns every match.
func Read(path string, maxLines int, filter Filter) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if maxLines <= 0 {
		var lines []string
		for scanner.Scan() {
			if line := scanner.Text(); filter.Match(line) {
				lines = append(lines, line)
			}
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read log: %w", err)
		}
		return lines, nil
	}

	ring := make([]string, maxLines)
	count := 0
	idx := 0
	for scanner.Scan() {
		line := scanner.Text()
		if !filter.Match(line) {
			continue
		}
		ring[idx] = line
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := range count {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// field extracts the value of key from a slog text record. Quoted values are
// returned without their quotes.
func field(line, key string) string {
	prefix := key + "="
	rest := line
	for {
		i := strings.Index(rest, prefix)
		if i < 0 {
			return ""
		}
		if i == 0 || rest[i-1] == ' ' {
			rest = rest[i+len(prefix):]
			break
		}
		rest = rest[i+len(prefix):]
	}
	if strings.HasPrefix(rest, `"`) {
		end := strings.Index(rest[1:], `"`)
		if end < 0 {
			return rest[1:]
		}
		return rest[1 : end+1]
	}
	if end := strings.IndexByte(rest, ' '); end >= 0 {
		return rest[:end]
	}
	return rest
}
