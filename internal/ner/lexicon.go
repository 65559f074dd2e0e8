package ner

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"weighbridge/internal/port"
)

//go:embed lexicon.yaml
var defaultLexicon []byte

type lexiconFile struct {
	Organizations []string `yaml:"organizations"`
	Suffixes      []string `yaml:"suffixes"`
}

// Lexicon recognizes organization names from a gazetteer of known names and
// from tokens ending in a corporate suffix such as 산업 or 주식회사.
// It is immutable after construction and safe for concurrent use.
type Lexicon struct {
	organizations []string // longest first
	suffixes      []string
}

var _ port.EntityRecognizer = (*Lexicon)(nil)

// ParseLexicon builds a Lexicon from YAML with organizations and suffixes lists.
func ParseLexicon(data []byte) (*Lexicon, error) {
	var f lexiconFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decoding lexicon: %w", err)
	}
	l := &Lexicon{
		organizations: cleanList(f.Organizations),
		suffixes:      cleanList(f.Suffixes),
	}
	if len(l.organizations) == 0 && len(l.suffixes) == 0 {
		return nil, fmt.Errorf("lexicon has no organizations or suffixes")
	}
	sort.SliceStable(l.organizations, func(i, j int) bool {
		return utf8.RuneCountInString(l.organizations[i]) > utf8.RuneCountInString(l.organizations[j])
	})
	return l, nil
}

// LoadLexicon reads a lexicon file. An empty path loads the built-in lexicon.
func LoadLexicon(path string) (*Lexicon, error) {
	if path == "" {
		return ParseLexicon(defaultLexicon)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading lexicon %s: %w", path, err)
	}
	return ParseLexicon(data)
}

func cleanList(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

// Stats returns the number of gazetteer names and suffixes.
func (l *Lexicon) Stats() (organizations, suffixes int) {
	return len(l.organizations), len(l.suffixes)
}

// Recognize returns organization entities ordered by position. Gazetteer
// names are matched anywhere in the text; suffix matches need a whole
// whitespace-delimited token with at least one rune before the suffix.
// Spans never overlap.
func (l *Lexicon) Recognize(text string) []port.Entity {
	var found []port.Entity
	overlaps := func(start, end int) bool {
		for _, e := range found {
			if start < e.End && e.Start < end {
				return true
			}
		}
		return false
	}

	for _, name := range l.organizations {
		for offset := 0; offset < len(text); {
			i := strings.Index(text[offset:], name)
			if i < 0 {
				break
			}
			start := offset + i
			end := start + len(name)
			if !overlaps(start, end) {
				found = append(found, port.Entity{Text: name, Label: port.EntityLabelOrganization, Start: start, End: end})
			}
			offset = end
		}
	}

	for _, tok := range tokens(text) {
		if overlaps(tok.start, tok.end) || !l.hasSuffix(tok.text) {
			continue
		}
		found = append(found, port.Entity{Text: tok.text, Label: port.EntityLabelOrganization, Start: tok.start, End: tok.end})
	}

	sort.Slice(found, func(i, j int) bool { return found[i].Start < found[j].Start })
	return found
}

func (l *Lexicon) hasSuffix(word string) bool {
	for _, s := range l.suffixes {
		if strings.HasSuffix(word, s) && utf8.RuneCountInString(word) > utf8.RuneCountInString(s) {
			return true
		}
	}
	return false
}

type token struct {
	text       string
	start, end int
}

// tokens splits text on whitespace and trims surrounding punctuation,
// keeping byte offsets into text.
func tokens(text string) []token {
	var out []token
	start := -1
	flush := func(end int) {
		if start < 0 {
			return
		}
		raw := text[start:end]
		trimmed := strings.TrimLeftFunc(raw, unicode.IsPunct)
		s := start + len(raw) - len(trimmed)
		trimmed = strings.TrimRightFunc(trimmed, unicode.IsPunct)
		if trimmed != "" {
			out = append(out, token{text: trimmed, start: s, end: s + len(trimmed)})
		}
		start = -1
	}
	for i, r := range text {
		if unicode.IsSpace(r) {
			flush(i)
			continue
		}
		if start < 0 {
			start = i
		}
	}
	flush(len(text))
	return out
}
