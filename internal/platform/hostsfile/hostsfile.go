// Package hostsfile edits a marker-delimited managed section inside a
// hosts-format file. Lines outside the markers are never touched, so entries
// owned by other tools survive every rewrite.
package hostsfile

import "strings"

// Block is the managed section extracted from a file body.
type Block struct {
	Present bool
	Header  string   // full start-marker line, including any attributes
	Entries []string // lines between the markers
}

// Extract returns the managed section delimited by a start line beginning
// with startPrefix and a line equal to endMarker.
func Extract(body, startPrefix, endMarker string) Block {
	lines := strings.Split(body, "\n")
	block := Block{}
	inside := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case !inside && strings.HasPrefix(trimmed, startPrefix):
			inside = true
			block.Present = true
			block.Header = trimmed
		case inside && trimmed == endMarker:
			return block
		case inside:
			block.Entries = append(block.Entries, trimmed)
		}
	}
	if inside {
		// Unterminated section: treat what we saw as the block.
		return block
	}
	return Block{}
}

// Remove strips the managed section, markers included, leaving every other
// line byte-for-byte intact.
func Remove(body, startPrefix, endMarker string) string {
	lines := strings.Split(body, "\n")
	kept := make([]string, 0, len(lines))
	inside := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case !inside && strings.HasPrefix(trimmed, startPrefix):
			inside = true
		case inside && trimmed == endMarker:
			inside = false
		case !inside:
			kept = append(kept, line)
		}
	}
	out := strings.Join(kept, "\n")
	out = strings.TrimRight(out, "\n") + "\n"
	return out
}

// Replace removes any existing managed section and appends a fresh one with
// the given header line and entries.
func Replace(body, startPrefix, endMarker, header string, entries []string) string {
	out := Remove(body, startPrefix, endMarker)
	var b strings.Builder
	b.WriteString(out)
	if !strings.HasSuffix(out, "\n") {
		b.WriteString("\n")
	}
	b.WriteString(header)
	b.WriteString("\n")
	for _, entry := range entries {
		b.WriteString(entry)
		b.WriteString("\n")
	}
	b.WriteString(endMarker)
	b.WriteString("\n")
	return b.String()
}
