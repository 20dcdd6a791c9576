package minifier

import (
	"context"
	"regexp"
	"strings"

	"go.trai.ch/shade/internal/core/domain"
	"go.trai.ch/shade/internal/core/ports"
)

var _ ports.Analyzer = (*Scanner)(nil)

// declarator is one name with an optional array size.
const declarator = `[A-Za-z_]\w*\s*(?:\[[^\]]*\])?`

var (
	declPattern = regexp.MustCompile(
		`\b(?:in|out|uniform|attribute|varying)\s+(?:(?:lowp|mediump|highp)\s+)?\w+\s+` +
			`(` + declarator + `(?:\s*,\s*` + declarator + `)*)\s*;`,
	)
	identPattern        = regexp.MustCompile(`\b[A-Za-z_]\w*\b`)
	blockCommentPattern = regexp.MustCompile(`(?s)/\*.*?\*/`)
	spacePattern        = regexp.MustCompile(`[ \t]+`)
	punctPattern        = regexp.MustCompile(`\s*([;,{}()\[\]=])\s*`)
)

// reservedWords are never handed out as short names.
var reservedWords = map[string]struct{}{
	"do": {}, "if": {}, "in": {}, "for": {}, "out": {}, "int": {}, "else": {}, "void": {},
	"bool": {}, "true": {}, "false": {}, "float": {}, "while": {}, "break": {}, "const": {},
	"inout": {}, "return": {}, "struct": {}, "switch": {}, "case": {}, "discard": {},
}

// Scanner is the built-in analyzer. It collects every variable declared with a
// storage qualifier across all sources into one shared mapping. A declaration may
// list several names, as in "uniform float a, b[2];". Members of interface blocks
// such as "uniform Lights { ... };" are not collected.
type Scanner struct {
	minify bool
	rename bool
}

// NewScanner creates a Scanner. With minify set, comments and redundant whitespace
// are stripped. With rename set, declared names are replaced by short names.
func NewScanner(minify, rename bool) *Scanner {
	return &Scanner{minify: minify, rename: rename}
}

// Analyze scans every source. It never fails.
func (s *Scanner) Analyze(_ context.Context, sources map[string]string) (*domain.AnalysisResult, error) {
	names := make(map[string]struct{})
	for _, src := range sources {
		for _, m := range declPattern.FindAllStringSubmatch(stripComments(src), -1) {
			for decl := range strings.SplitSeq(m[1], ",") {
				name, _, _ := strings.Cut(decl, "[")
				names[strings.TrimSpace(name)] = struct{}{}
			}
		}
	}

	mappings := make(domain.VariableMapping, len(names))
	for name := range names {
		mappings[name] = name
	}
	if s.rename {
		mappings = shortNames(mappings.Names(), sources)
	}

	shaders := make(map[string]string, len(sources))
	for id, src := range sources {
		if s.minify {
			src = minifySource(src)
		}
		if s.rename {
			src = renameIdentifiers(src, mappings)
		}
		shaders[id] = src
	}

	return &domain.AnalysisResult{Shaders: shaders, Mappings: mappings}, nil
}

// shortNames assigns a, b, ..., Z, aa, ab, ... to names in order, skipping any
// identifier already used by a source.
func shortNames(names []string, sources map[string]string) domain.VariableMapping {
	taken := make(map[string]struct{})
	for _, src := range sources {
		for _, ident := range identPattern.FindAllString(src, -1) {
			taken[ident] = struct{}{}
		}
	}

	mappings := make(domain.VariableMapping, len(names))
	n := 0
	for _, name := range names {
		for {
			candidate := shortName(n)
			n++
			if _, ok := taken[candidate]; ok {
				continue
			}
			if _, ok := reservedWords[candidate]; ok {
				continue
			}
			mappings[name] = candidate
			break
		}
	}
	return mappings
}

const shortAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// shortName returns the n-th name in the sequence a..Z, aa..aZ, ba.., bijective base 52.
func shortName(n int) string {
	var b []byte
	for n++; n > 0; n = (n - 1) / len(shortAlphabet) {
		b = append(b, shortAlphabet[(n-1)%len(shortAlphabet)])
	}
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

// renameIdentifiers replaces every whole-word occurrence of a mapped name in one pass,
// so a short name is never renamed again.
func renameIdentifiers(src string, mappings domain.VariableMapping) string {
	if len(mappings) == 0 {
		return src
	}
	return identPattern.ReplaceAllStringFunc(src, func(ident string) string {
		if short, ok := mappings[ident]; ok {
			return short
		}
		return ident
	})
}

func stripComments(src string) string {
	src = blockCommentPattern.ReplaceAllString(src, " ")
	lines := strings.Split(src, "\n")
	for i, line := range lines {
		if idx := strings.Index(line, "//"); idx >= 0 {
			lines[i] = line[:idx]
		}
	}
	return strings.Join(lines, "\n")
}

// minifySource strips comments and whitespace line by line. Preprocessor
// directives keep a line of their own.
func minifySource(src string) string {
	var b strings.Builder
	for line := range strings.SplitSeq(stripComments(src), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "#") {
			if b.Len() > 0 && !strings.HasSuffix(b.String(), "\n") {
				b.WriteByte('\n')
			}
			b.WriteString(spacePattern.ReplaceAllString(line, " "))
			b.WriteByte('\n')
			continue
		}

		line = punctPattern.ReplaceAllString(spacePattern.ReplaceAllString(line, " "), "$1")
		if out := b.String(); out != "" && isWordByte(out[len(out)-1]) && isWordByte(line[0]) {
			b.WriteByte(' ')
		}
		b.WriteString(line)
	}
	return b.String()
}

func isWordByte(c byte) bool {
	return c == '_' || ('0' <= c && c <= '9') || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
