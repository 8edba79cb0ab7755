package relay

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"
)

// Message is one parsed relay record. Immutable once parsed; lifetime is a
// single reconciliation run.
type Message struct {
	Filename string            `json:"filename"`
	Date     string            `json:"date,omitempty"`
	From     string            `json:"from,omitempty"`
	Tags     []string          `json:"tags,omitempty"`
	Title    string            `json:"title,omitempty"`
	Sections map[string]string `json:"sections,omitempty"`
	BodyLen  int               `json:"bodyLen"`
}

// frontMatter is the recognized subset of the three-hyphen header block.
type frontMatter struct {
	Date string   `yaml:"date"`
	From string   `yaml:"from"`
	Tags []string `yaml:"tags"`
}

// ParseMessage parses a single relay file. It never fails: missing or
// malformed front matter degrades to empty metadata, and a body without
// headings yields no title and no sections.
func ParseMessage(filename, content string) Message {
	meta, body := splitFrontMatter(content)

	var fm frontMatter
	if meta != "" {
		// A syntactically broken header defaults every field, same as an
		// absent one. The batch must not abort on one bad message.
		_ = yaml.Unmarshal([]byte(meta), &fm)
	}

	title, sections := parseBody([]byte(body))

	return Message{
		Filename: filename,
		Date:     fm.Date,
		From:     fm.From,
		Tags:     fm.Tags,
		Title:    title,
		Sections: sections,
		BodyLen:  len(body),
	}
}

// splitFrontMatter splits content into the YAML header block and the body.
// The header must open with a "---" line at the very start and close with
// another "---" line. Without both delimiters the whole content is body.
func splitFrontMatter(content string) (meta, body string) {
	nl := strings.IndexByte(content, '\n')
	if nl < 0 {
		return "", content
	}
	if strings.TrimRight(content[:nl], " \r") != "---" {
		return "", content
	}

	idx := nl + 1
	for idx <= len(content) {
		next := strings.IndexByte(content[idx:], '\n')
		lineEnd := len(content)
		if next >= 0 {
			lineEnd = idx + next
		}
		if strings.TrimRight(content[idx:lineEnd], " \r") == "---" {
			meta = content[nl+1 : idx]
			if next >= 0 {
				return meta, content[lineEnd+1:]
			}
			return meta, ""
		}
		if next < 0 {
			break
		}
		idx = lineEnd + 1
	}
	// Opening delimiter without a closing one: treat everything as body.
	return "", content
}

// headingMark records where one heading sits in the raw body.
type headingMark struct {
	level        int
	text         string
	lineStart    int // offset of the first byte of the heading's line
	contentStart int // offset just past the heading's final line
}

// parseBody locates the title and the second-level sections of a message
// body. The markdown AST is only used to find headings; section content is
// sliced from the raw source between heading lines, so sub-headings and any
// markup inside a section survive verbatim.
func parseBody(body []byte) (string, map[string]string) {
	if len(bytes.TrimSpace(body)) == 0 {
		return "", nil
	}

	// Parsers are created per call; goldmark parser state is not shared
	// across the corpus fan-out.
	doc := goldmark.New().Parser().Parse(text.NewReader(body))

	var marks []headingMark
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		h, ok := n.(*ast.Heading)
		if !ok {
			continue
		}
		if m, ok := markFor(h, body); ok {
			marks = append(marks, m)
		}
	}

	var title string
	for _, m := range marks {
		if m.level == 2 {
			break
		}
		if m.level == 1 {
			title = m.text
			break
		}
	}

	var sections map[string]string
	for i, m := range marks {
		if m.level != 2 {
			continue
		}
		end := len(body)
		for _, next := range marks[i+1:] {
			if next.level == 2 {
				end = next.lineStart
				break
			}
		}
		content := strings.TrimSpace(string(body[m.contentStart:end]))
		key := strings.ToLower(m.text)
		if sections == nil {
			sections = make(map[string]string)
		}
		if prev, ok := sections[key]; ok && prev != "" && content != "" {
			content = prev + "\n\n" + content
		} else if ok && content == "" {
			content = prev
		}
		sections[key] = content
	}

	return title, sections
}

// markFor computes the raw-source coordinates of a heading node.
func markFor(h *ast.Heading, body []byte) (headingMark, bool) {
	lines := h.Lines()
	if lines.Len() == 0 {
		return headingMark{}, false
	}

	first := lines.At(0)
	last := lines.At(lines.Len() - 1)

	lineStart := bytes.LastIndexByte(body[:first.Start], '\n') + 1

	contentStart := last.Stop
	if contentStart < len(body) {
		if off := bytes.IndexByte(body[contentStart:], '\n'); off >= 0 {
			contentStart += off + 1
		} else {
			contentStart = len(body)
		}
	}

	var sb strings.Builder
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.Write(seg.Value(body))
	}

	return headingMark{
		level:        h.Level,
		text:         strings.TrimSpace(sb.String()),
		lineStart:    lineStart,
		contentStart: contentStart,
	}, true
}
