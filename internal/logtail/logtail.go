package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/tidwall/gjson"
)

// Read returns at most maxLines from the end of the file at path. A
// maxLines of zero or less returns every line. A missing file yields no
// lines.
func Read(path string, maxLines int) ([]string, error) {
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
			lines = append(lines, scanner.Text())
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
		ring[idx] = scanner.Text()
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
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

var levelRank = map[string]int{
	"trace": 0,
	"debug": 1,
	"info":  2,
	"warn":  3,
	"error": 4,
	"fatal": 5,
	"panic": 6,
}

// Filter keeps JSON log lines whose level is at or above minLevel. Lines
// that are not JSON or carry no level are kept. An empty minLevel keeps
// everything.
func Filter(lines []string, minLevel string) ([]string, error) {
	minLevel = strings.ToLower(strings.TrimSpace(minLevel))
	if minLevel == "" {
		return lines, nil
	}
	if minLevel == "warning" {
		minLevel = "warn"
	}
	threshold, ok := levelRank[minLevel]
	if !ok {
		return nil, fmt.Errorf("unknown level %q", minLevel)
	}

	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if !gjson.Valid(line) {
			out = append(out, line)
			continue
		}
		rank, known := levelRank[gjson.Get(line, "level").String()]
		if !known || rank >= threshold {
			out = append(out, line)
		}
	}
	return out, nil
}

var reservedFields = map[string]bool{
	"time":      true,
	"level":     true,
	"component": true,
	"message":   true,
}

// Format renders a JSON log line as
// "<time> <LEVEL> [component] message key=value ...". Extra fields are
// sorted by key. Non-JSON lines are returned unchanged.
func Format(line string) string {
	if !gjson.Valid(line) {
		return line
	}
	parsed := gjson.Parse(line)
	if !parsed.IsObject() {
		return line
	}

	var b strings.Builder
	if ts := parsed.Get("time").String(); ts != "" {
		b.WriteString(ts)
		b.WriteByte(' ')
	}
	if level := parsed.Get("level").String(); level != "" {
		fmt.Fprintf(&b, "%-5s ", strings.ToUpper(level))
	}
	if component := parsed.Get("component").String(); component != "" {
		fmt.Fprintf(&b, "[%s] ", component)
	}
	b.WriteString(parsed.Get("message").String())

	var extras []string
	parsed.ForEach(func(key, value gjson.Result) bool {
		if !reservedFields[key.String()] {
			extras = append(extras, key.String()+"="+value.String())
		}
		return true
	})
	sort.Strings(extras)
	for _, kv := range extras {
		b.WriteByte(' ')
		b.WriteString(kv)
	}
	return strings.TrimRight(b.String(), " ")
}

// FormatLines applies Format to every line.
func FormatLines(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = Format(line)
	}
	return out
}
