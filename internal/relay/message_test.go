package relay

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseMessage_FrontMatter(t *testing.T) {
	content := `---
date: 2025-06-18
from: parbati
tags: [bravli, mayapramana]
---

# Dyers gorge relay

## Status

Holding position at the gorge mouth.

## Next

Move the sensors upriver.
`
	msg := ParseMessage("2025-06-18--2300--dyers-gorge.md", content)

	if msg.Date != "2025-06-18" {
		t.Errorf("Date = %q, want 2025-06-18", msg.Date)
	}
	if msg.From != "parbati" {
		t.Errorf("From = %q, want parbati", msg.From)
	}
	if want := []string{"bravli", "mayapramana"}; !reflect.DeepEqual(msg.Tags, want) {
		t.Errorf("Tags = %v, want %v", msg.Tags, want)
	}
	if msg.Title != "Dyers gorge relay" {
		t.Errorf("Title = %q, want Dyers gorge relay", msg.Title)
	}
	if msg.Sections["status"] != "Holding position at the gorge mouth." {
		t.Errorf("status section = %q", msg.Sections["status"])
	}
	if msg.Sections["next"] != "Move the sensors upriver." {
		t.Errorf("next section = %q", msg.Sections["next"])
	}
	if msg.BodyLen == 0 {
		t.Error("BodyLen = 0, want > 0")
	}
}

func TestParseMessage_NoFrontMatter(t *testing.T) {
	content := "# Plain note\n\n## Status\n\nNothing to report.\n"
	msg := ParseMessage("plain.md", content)

	if msg.Date != "" || msg.From != "" || len(msg.Tags) != 0 {
		t.Errorf("metadata = %q/%q/%v, want empty", msg.Date, msg.From, msg.Tags)
	}
	if msg.Title != "Plain note" {
		t.Errorf("Title = %q, want Plain note", msg.Title)
	}
	if msg.Sections["status"] != "Nothing to report." {
		t.Errorf("status section = %q", msg.Sections["status"])
	}
	if msg.BodyLen != len(content) {
		t.Errorf("BodyLen = %d, want %d", msg.BodyLen, len(content))
	}
}

func TestParseMessage_MalformedFrontMatter(t *testing.T) {
	content := "---\ndate: [unclosed\n---\n\n# Title\n\nbody text\n"
	msg := ParseMessage("bad.md", content)

	if msg.Date != "" || msg.From != "" || len(msg.Tags) != 0 {
		t.Errorf("metadata = %q/%q/%v, want empty after broken header", msg.Date, msg.From, msg.Tags)
	}
	if msg.Title != "Title" {
		t.Errorf("Title = %q, want Title", msg.Title)
	}
}

func TestParseMessage_UnclosedFrontMatter(t *testing.T) {
	content := "---\ndate: 2025-01-01\n\n# Heading\n"
	msg := ParseMessage("unclosed.md", content)

	// No closing delimiter: the whole content is body, nothing is metadata.
	if msg.Date != "" {
		t.Errorf("Date = %q, want empty", msg.Date)
	}
	if msg.BodyLen != len(content) {
		t.Errorf("BodyLen = %d, want %d", msg.BodyLen, len(content))
	}
}

func TestParseMessage_SectionKeysLowercased(t *testing.T) {
	content := "## STATUS\n\nloud\n\n## Next Steps\n\nquiet\n"
	msg := ParseMessage("m.md", content)

	if _, ok := msg.Sections["status"]; !ok {
		t.Errorf("sections = %v, want key status", msg.Sections)
	}
	if _, ok := msg.Sections["next steps"]; !ok {
		t.Errorf("sections = %v, want key next steps", msg.Sections)
	}
}

func TestParseMessage_SubHeadingsStayInSection(t *testing.T) {
	content := "## Status\n\nintro line\n\n### Supply\n\ntwo crates short\n\n## Next\n\nmove on\n"
	msg := ParseMessage("m.md", content)

	status := msg.Sections["status"]
	if !strings.Contains(status, "### Supply") {
		t.Errorf("status section dropped the sub-heading: %q", status)
	}
	if !strings.Contains(status, "two crates short") {
		t.Errorf("status section dropped sub-heading content: %q", status)
	}
	if strings.Contains(status, "move on") {
		t.Errorf("status section leaked into the next section: %q", status)
	}
}

func TestParseMessage_TitleOnlyBeforeFirstSection(t *testing.T) {
	content := "## Status\n\nbody\n\n# Late heading\n"
	msg := ParseMessage("m.md", content)

	// A level-1 heading after the first section is content, not the title.
	if msg.Title != "" {
		t.Errorf("Title = %q, want empty", msg.Title)
	}
}

func TestParseMessage_DuplicateSectionsJoined(t *testing.T) {
	content := "## Status\n\nfirst\n\n## Status\n\nsecond\n"
	msg := ParseMessage("m.md", content)

	if want := "first\n\nsecond"; msg.Sections["status"] != want {
		t.Errorf("status section = %q, want %q", msg.Sections["status"], want)
	}
}

func TestParseMessage_Empty(t *testing.T) {
	msg := ParseMessage("empty.md", "")

	if msg.Title != "" || msg.Sections != nil || msg.BodyLen != 0 {
		t.Errorf("empty message parsed to %+v", msg)
	}
	if msg.Filename != "empty.md" {
		t.Errorf("Filename = %q, want empty.md", msg.Filename)
	}
}
