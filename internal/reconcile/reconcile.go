package reconcile

import (
	"sort"
	"strings"

	"github.com/vistaara/sutradhar/internal/entity"
	"github.com/vistaara/sutradhar/internal/relay"
)

// TagMap maps a relay tag to the entity ids it refers to. One tag may map to
// several entities and an entity may be reachable through several tags. It is
// hand-maintained configuration, injected per run.
type TagMap map[string][]string

// Exclusions names graph entities that are expected to be silent: structural
// anchors that exist regardless of activity, and child/leaf entities matched
// by id prefix.
type Exclusions struct {
	Structural    []string `yaml:"structural,omitempty"`
	ChildPrefixes []string `yaml:"childPrefixes,omitempty"`
}

// excluded reports whether id is structural or child-prefixed.
func (x Exclusions) excluded(id string) bool {
	for _, s := range x.Structural {
		if id == s {
			return true
		}
	}
	for _, p := range x.ChildPrefixes {
		if strings.HasPrefix(id, p) {
			return true
		}
	}
	return false
}

// EntityActivity folds all messages against the tag map, producing the
// filenames that mention each entity in chronological (= message) order.
// Every entry in the result has at least one filename; tags outside the map
// contribute nothing here.
func EntityActivity(msgs []relay.Message, tags TagMap) map[string][]string {
	activity := make(map[string][]string)
	for _, msg := range msgs {
		for _, tag := range msg.Tags {
			for _, id := range tags[tag] {
				activity[id] = append(activity[id], msg.Filename)
			}
		}
	}
	return activity
}

// GenerateReport cross-references the relay corpus against the tracked
// entity graph. It is a pure function of its inputs: same messages, graph,
// tags, and exclusions always produce the same Report.
func GenerateReport(msgs []relay.Message, g entity.Graph, tags TagMap, excl Exclusions) Report {
	activity := EntityActivity(msgs, tags)
	graphIDs := g.IDs()

	// Per-tag message counts over the whole corpus.
	tagCounts := make(map[string]int)
	for _, msg := range msgs {
		for _, tag := range msg.Tags {
			tagCounts[tag]++
		}
	}

	// Union of every observed tag's mapped entities.
	mapped := make(map[string]bool)
	for tag := range tagCounts {
		for _, id := range tags[tag] {
			mapped[id] = true
		}
	}

	// missing: mapped entities the graph does not declare.
	var missing []string
	for id := range mapped {
		if !graphIDs[id] {
			missing = append(missing, id)
		}
	}
	sort.Strings(missing)

	// quiet: declared entities with no activity, minus expected-silent ones.
	var quiet []string
	for id := range graphIDs {
		if excl.excluded(id) {
			continue
		}
		if len(activity[id]) > 0 {
			continue
		}
		quiet = append(quiet, id)
	}
	sort.Strings(quiet)

	// unmapped: observed tags with no map entry at all.
	var unmapped []UnmappedTag
	for tag, n := range tagCounts {
		if _, ok := tags[tag]; !ok {
			unmapped = append(unmapped, UnmappedTag{Tag: tag, Messages: n})
		}
	}
	sort.Slice(unmapped, func(i, j int) bool { return unmapped[i].Tag < unmapped[j].Tag })

	// active: by descending mention count, ties broken by id so the report
	// text is reproducible.
	active := make([]ActiveEntity, 0, len(activity))
	for id, files := range activity {
		active = append(active, ActiveEntity{
			ID:       id,
			Mentions: len(files),
			New:      !graphIDs[id],
		})
	}
	sort.Slice(active, func(i, j int) bool {
		if active[i].Mentions != active[j].Mentions {
			return active[i].Mentions > active[j].Mentions
		}
		return active[i].ID < active[j].ID
	})

	return Report{
		Summary: Summary{
			Messages:  len(msgs),
			Entities:  len(g.Entities),
			Relations: len(g.Relations),
			Active:    len(active),
			Quiet:     len(quiet),
			Missing:   len(missing),
			Unmapped:  len(unmapped),
		},
		Missing:  missing,
		Quiet:    quiet,
		Active:   active,
		Unmapped: unmapped,
		Activity: activity,
	}
}
