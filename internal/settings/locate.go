// Copyright (c) 2026 SweetBite
// SPDX-License-Identifier: MIT

package settings

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// SectionKind tells how a section was located.
type SectionKind int

const (
	SectionNone SectionKind = iota
	SectionManaged
	SectionLegacy
)

func (k SectionKind) String() string {
	switch k {
	case SectionManaged:
		return "managed"
	case SectionLegacy:
		return "legacy"
	default:
		return "none"
	}
}

// Section is a byte range [Start, End) of the document. End stops before the
// line break of the last line, so the separator after the section survives
// a replacement.
type Section struct {
	Start int
	End   int
	Kind  SectionKind
}

// Text returns the section contents.
func (s Section) Text(content string) string {
	return content[s.Start:s.End]
}

// line is one physical line. end excludes the line break, next is the start
// of the following line (len(content) on the last line).
type line struct {
	start, end, next int
}

func (l line) text(content string) string {
	return content[l.start:l.end]
}

func splitLines(content string) []line {
	var lines []line
	for pos := 0; pos < len(content); {
		idx := strings.IndexByte(content[pos:], '\n')
		if idx < 0 {
			lines = append(lines, line{start: pos, end: len(content), next: len(content)})
			break
		}
		end := pos + idx
		next := end + 1
		if end > pos && content[end-1] == '\r' {
			end--
		}
		lines = append(lines, line{start: pos, end: end, next: next})
		pos = next
	}
	return lines
}

// Locate finds the email settings section. A managed block takes precedence
// over a hand-written heading.
func Locate(content string) (Section, error) {
	lines := splitLines(content)

	sec, found, err := locateManaged(content, lines)
	if err != nil || found {
		return sec, err
	}
	return locateLegacy(content, lines)
}

func locateManaged(content string, lines []line) (Section, bool, error) {
	begin := -1
	for i, l := range lines {
		if strings.TrimSpace(l.text(content)) != BeginMarker {
			continue
		}
		if begin >= 0 {
			return Section{}, false, fmt.Errorf("%w: %q on lines %d and %d",
				ErrAmbiguousSection, BeginMarker, begin+1, i+1)
		}
		begin = i
	}
	if begin < 0 {
		return Section{}, false, nil
	}
	for _, l := range lines[begin+1:] {
		if strings.TrimSpace(l.text(content)) == EndMarker {
			return Section{Start: lines[begin].start, End: l.end, Kind: SectionManaged}, true, nil
		}
	}
	return Section{}, false, fmt.Errorf("%w (begins on line %d)", ErrUnterminatedSection, begin+1)
}

func locateLegacy(content string, lines []line) (Section, error) {
	head := -1
	for i, l := range lines {
		if !strings.HasPrefix(l.text(content), HeadingPrefix) {
			continue
		}
		if head >= 0 {
			return Section{}, fmt.Errorf("%w: %q on lines %d and %d",
				ErrAmbiguousSection, HeadingPrefix, head+1, i+1)
		}
		head = i
	}
	if head < 0 {
		return Section{}, ErrSectionNotFound
	}

	// depth counts brackets left open by the section so far; while it is
	// positive every line belongs to the unfinished expression.
	last, depth := head, 0
	for i := head + 1; i < len(lines); i++ {
		text := lines[i].text(content)
		if depth == 0 && !belongsToSection(text) {
			break
		}
		depth = max(depth+bracketDelta(text), 0)
		last = i
	}
	return Section{Start: lines[head].start, End: lines[last].end, Kind: SectionLegacy}, nil
}

// belongsToSection reports whether a line following the heading is part of
// the email section: an email assignment, an indented continuation, or a
// comment that does not start with a capital letter. Capitalised comments
// open the next section.
func belongsToSection(text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}
	if text[0] == ' ' || text[0] == '\t' {
		return true
	}
	if text[0] == '#' {
		rest := strings.TrimLeft(text[1:], " \t")
		r, _ := utf8.DecodeRuneInString(rest)
		return rest == "" || !unicode.IsUpper(r)
	}
	key, ok := assignmentKey(text)
	return ok && isEmailKey(key)
}

// bracketDelta returns opened minus closed brackets on a line, ignoring
// brackets inside string literals and after a comment.
func bracketDelta(text string) int {
	delta := 0
	var quote byte
	for i := 0; i < len(text); i++ {
		c := text[i]
		if quote != 0 {
			switch c {
			case '\\':
				i++
			case quote:
				quote = 0
			}
			continue
		}
		switch c {
		case '\'', '"':
			quote = c
		case '#':
			return delta
		case '(', '[', '{':
			delta++
		case ')', ']', '}':
			delta--
		}
	}
	return delta
}

// assignmentKey extracts NAME from a top-level "NAME = value" line.
func assignmentKey(text string) (string, bool) {
	eq := strings.IndexByte(text, '=')
	if eq <= 0 {
		return "", false
	}
	key := strings.TrimSpace(text[:eq])
	if key == "" || !isIdentifier(key) {
		return "", false
	}
	// "X == 1" is a comparison, not an assignment.
	if eq+1 < len(text) && text[eq+1] == '=' {
		return "", false
	}
	return key, true
}

func isIdentifier(s string) bool {
	for i, r := range s {
		switch {
		case r == '_', r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

func isEmailKey(key string) bool {
	switch {
	case strings.HasPrefix(key, "EMAIL_"):
		return true
	case key == "DEFAULT_FROM_EMAIL", key == "SERVER_EMAIL":
		return true
	default:
		return false
	}
}
