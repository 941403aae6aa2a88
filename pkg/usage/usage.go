// 16 Mar 2026

// Package usage looks up per organism codon usage distributions. The
// upstream pipeline writes one directory per taxonomy ID, each holding
// exactly one "*_dist.csv" file of "codon,frequency" lines. Zero or
// more than one matching file means the directory tree is broken and
// the whole run should stop, so that is an error, not something to
// paper over per column.
package usage

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

// Dist maps a codon to its observed frequency in the source organism.
type Dist map[string]float64

// Provider is anything that can produce a codon distribution for an
// organism. The column scorer only sees this interface.
type Provider interface {
	Dist(taxID string) (Dist, error)
}

var (
	ErrNotFound  = errors.New("no codon usage file")
	ErrAmbiguous = errors.New("more than one codon usage file")
)

// Dir serves distributions from a directory tree and memoizes them.
// The scorer asks once per non-bad codon per column, so without the
// cache we would glob the same directory thousands of times. The
// mutex makes it safe to share between column scoring workers.
type Dir struct {
	Root  string
	mu    sync.Mutex
	cache map[string]Dist
}

// NewDir returns a Dir provider rooted at root.
func NewDir(root string) *Dir {
	return &Dir{Root: root, cache: make(map[string]Dist)}
}

// Dist returns the codon distribution for one organism.
func (d *Dir) Dist(taxID string) (Dist, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if dist, ok := d.cache[taxID]; ok {
		return dist, nil
	}
	pattern := filepath.Join(d.Root, taxID, "*_dist.csv")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, err
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("tax_id %s: %w matching %s", taxID, ErrNotFound, pattern)
	case 1:
	default:
		return nil, fmt.Errorf("tax_id %s: %w matching %s", taxID, ErrAmbiguous, pattern)
	}
	dist, err := readDist(matches[0])
	if err != nil {
		return nil, fmt.Errorf("tax_id %s: %w", taxID, err)
	}
	d.cache[taxID] = dist
	return dist, nil
}

// readDist reads "codon,frequency" lines. There is no header line.
func readDist(fname string) (Dist, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	dist := make(Dist)
	scnr := bufio.NewScanner(fp)
	for scnr.Scan() {
		line := strings.TrimSpace(scnr.Text())
		if line == "" {
			continue
		}
		c, f, ok := strings.Cut(line, ",")
		if !ok {
			return nil, fmt.Errorf("%s: bad line %q", fname, line)
		}
		freq, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("%s: bad frequency in %q", fname, line)
		}
		dist[strings.TrimSpace(c)] = freq
	}
	if err := scnr.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	if len(dist) == 0 {
		return nil, fmt.Errorf("%s: empty distribution file", fname)
	}
	return dist, nil
}
