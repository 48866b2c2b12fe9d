package compiler

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/aretw0/fsacheck/pkg/domain"
)

// Format identifies the syntax of a declaration document.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
)

// FormatFor picks the format of a document from its file name.
func FormatFor(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatText
}

// Parse decodes data in the format implied by name.
func Parse(name string, data []byte) (domain.Declarations, error) {
	if FormatFor(name) == FormatYAML {
		return ParseYAML(data)
	}
	return ParseText(bytes.NewReader(data))
}

// ParseText reads the five bracketed declaration lines:
//
//	states=[a,b]
//	alpha=[0,1]
//	init.st=[a]
//	fin.st=[b]
//	trans=[a>0>b,b>1>a]
//
// Labels must appear in exactly this order. Blank lines after the last group
// are ignored; anything else there is malformed.
func ParseText(r io.Reader) (domain.Declarations, error) {
	var decl domain.Declarations

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)

	for _, label := range domain.Groups() {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return decl, fmt.Errorf("failed to read declarations: %w", err)
			}
			return decl, domain.MalformedInput()
		}
		tokens, err := parseLine(label, scanner.Text())
		if err != nil {
			return decl, err
		}
		decl.SetGroup(label, tokens)
	}

	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) != "" {
			return decl, domain.MalformedInput()
		}
	}
	if err := scanner.Err(); err != nil {
		return decl, fmt.Errorf("failed to read declarations: %w", err)
	}
	return decl, nil
}

// parseLine decodes `label=[t1,t2,...]`. An empty list yields no tokens;
// an empty token inside a non-empty list is malformed.
func parseLine(label, line string) ([]string, error) {
	line = strings.TrimRight(line, "\r")
	if line == "" || line[0] == '[' || !strings.Contains(line, "=") {
		return nil, domain.MalformedInput()
	}

	name, rest, _ := strings.Cut(line, "=")
	if name != label || !strings.HasPrefix(rest, "[") || !strings.HasSuffix(rest, "]") || len(rest) < 2 {
		return nil, domain.MalformedInput()
	}

	inner := rest[1 : len(rest)-1]
	if inner == "" {
		return []string{}, nil
	}
	tokens := strings.Split(inner, ",")
	for _, tok := range tokens {
		if tok == "" {
			return nil, domain.MalformedInput()
		}
	}
	return tokens, nil
}

// FormatTextDeclarations renders declarations back into the bracketed syntax.
func FormatTextDeclarations(decl domain.Declarations) string {
	var sb strings.Builder
	for _, label := range domain.Groups() {
		tokens, _ := decl.Group(label)
		sb.WriteString(label)
		sb.WriteString("=[")
		sb.WriteString(strings.Join(tokens, ","))
		sb.WriteString("]\n")
	}
	return sb.String()
}
