// Package logtail reads and formats chuckle's JSON log file.
//
// # Overview
//
// Read returns the last N lines of a file without loading all of it, using a
// fixed-size ring buffer. Filter drops JSON records below a level, and Format
// turns a zerolog record into a single readable line:
//
//	{"level":"warn","component":"repository","kind":"connectivity","message":"joke fetch failed"}
//	→ WARN  [repository] joke fetch failed kind=connectivity
//
// Lines that are not JSON pass through Filter and Format untouched, so a log
// file written by an older build or by hand still prints.
//
// # Usage
//
//	lines, err := logtail.Read(path, 200)
//	if err != nil {
//		return err
//	}
//	lines, err = logtail.Filter(lines, "warn")
//	for _, line := range logtail.FormatLines(lines) {
//		fmt.Println(line)
//	}
//
// A missing log file is not an error; Read returns no lines.
package logtail
