package entity

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
)

// ExtractScript scrapes a Graph out of a JS/TS data source. The artifact is
// owned by the website, not by this tool, so the extraction is deliberately
// structural rather than format-bound: any object literal carrying a quoted
// "id" value is an entity, any carrying quoted "source" and "target" values
// is a relation. Objects that match neither pattern contribute nothing, and
// malformed syntax degrades to whatever the parser could still recover; an
// unparseable source yields an empty graph, never an error.
func ExtractScript(source []byte) Graph {
	parser := tree_sitter.NewParser()
	defer parser.Close()

	lang := tree_sitter.NewLanguage(tree_sitter_typescript.LanguageTypescript())
	if err := parser.SetLanguage(lang); err != nil {
		return Graph{}
	}

	tree := parser.Parse(source, nil)
	if tree == nil {
		return Graph{}
	}
	defer tree.Close()

	var g Graph
	seen := make(map[string]bool)

	cursor := tree.RootNode().Walk()
	defer cursor.Close()
	walkObjects(cursor, source, &g, seen)

	return g
}

// walkObjects recursively visits every node, collecting entities and
// relations from object literals.
func walkObjects(cursor *tree_sitter.TreeCursor, source []byte, g *Graph, seen map[string]bool) {
	node := cursor.Node()

	if node.Kind() == "object" {
		collectObject(node, source, g, seen)
	}

	if cursor.GotoFirstChild() {
		walkObjects(cursor, source, g, seen)
		for cursor.GotoNextSibling() {
			walkObjects(cursor, source, g, seen)
		}
		cursor.GotoParent()
	}
}

// collectObject inspects the direct pairs of one object literal.
func collectObject(node *tree_sitter.Node, source []byte, g *Graph, seen map[string]bool) {
	strs := make(map[string]string)
	nums := make(map[string]float64)
	var children []string

	for i := uint(0); i < node.ChildCount(); i++ {
		pair := node.Child(i)
		if pair == nil || pair.Kind() != "pair" {
			continue
		}
		keyNode := pair.ChildByFieldName("key")
		valNode := pair.ChildByFieldName("value")
		if keyNode == nil || valNode == nil {
			continue
		}
		key := unquote(keyNode.Utf8Text(source))

		switch valNode.Kind() {
		case "string", "template_string":
			strs[key] = unquote(valNode.Utf8Text(source))
		case "number":
			if f, err := strconv.ParseFloat(valNode.Utf8Text(source), 64); err == nil {
				nums[key] = f
			}
		case "array":
			if key == "children" {
				children = stringElements(valNode, source)
			}
		}
	}

	if id, ok := strs["id"]; ok && id != "" && !seen[id] {
		seen[id] = true
		g.Entities = append(g.Entities, Entity{
			ID:       id,
			Kind:     strs["kind"],
			Mass:     nums["mass"],
			Color:    strs["color"],
			Children: children,
		})
		return
	}

	src, hasSrc := strs["source"]
	dst, hasDst := strs["target"]
	if hasSrc && hasDst && src != "" && dst != "" {
		g.Relations = append(g.Relations, Relation{
			Source:   src,
			Target:   dst,
			Strength: nums["strength"],
		})
	}
}

// stringElements returns the quoted string members of an array literal.
func stringElements(node *tree_sitter.Node, source []byte) []string {
	var out []string
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		if child != nil && child.Kind() == "string" {
			out = append(out, unquote(child.Utf8Text(source)))
		}
	}
	return out
}

func unquote(s string) string {
	return strings.Trim(s, "\"'`")
}

// LoadJSON decodes a Graph from a structured JSON document with "entities"
// and "relations" arrays. Unlike the script scrape this is strict: a
// collaborator that opts into JSON is expected to emit it correctly.
func LoadJSON(source []byte) (Graph, error) {
	var g Graph
	if err := json.Unmarshal(source, &g); err != nil {
		return Graph{}, fmt.Errorf("decode graph json: %w", err)
	}
	return g, nil
}

// LoadGraphFile reads the entity-graph source at path and dispatches on the
// file extension: .json is decoded strictly, anything else goes through the
// tolerant script scrape. An unreadable file is the caller's fatal condition.
func LoadGraphFile(path string) (Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Graph{}, fmt.Errorf("read graph source: %w", err)
	}
	if filepath.Ext(path) == ".json" {
		return LoadJSON(data)
	}
	return ExtractScript(data), nil
}
