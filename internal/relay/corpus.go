package relay

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// ErrDirNotFound is returned when the relay directory does not exist or is
// not a directory.
var ErrDirNotFound = errors.New("relay directory not found")

// readConcurrency caps the corpus fan-out. Relay corpora are small; this
// bounds open file handles, not throughput.
const readConcurrency = 8

// ReadCorpus lists all markdown files under dir recursively, sorts them by
// filename (timestamp prefixes make this chronological), and parses each.
// A malformed message degrades to defaults inside ParseMessage; the only
// fatal conditions are a missing directory and an unreadable file.
func ReadCorpus(ctx context.Context, dir string) ([]Message, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrDirNotFound, dir)
	}

	var paths []string
	walkErr := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != dir {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(d.Name(), ".md") {
			paths = append(paths, path)
		}
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("walk %s: %w", dir, walkErr)
	}

	sort.Slice(paths, func(i, j int) bool {
		bi, bj := filepath.Base(paths[i]), filepath.Base(paths[j])
		if bi != bj {
			return bi < bj
		}
		return paths[i] < paths[j]
	})

	// Reads fan out; results land at their path's index so chronological
	// order survives the concurrency.
	msgs := make([]Message, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(readConcurrency)

	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}
			msgs[i] = ParseMessage(filepath.Base(path), string(data))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return msgs, nil
}
