// 16 Mar 2026

package usage_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	. "github.com/lowrymj/Codon-Usage-IDRs/pkg/usage"
)

// wrtDist puts a distribution file for taxID under root.
func wrtDist(t *testing.T, root, taxID, fname, body string) string {
	t.Helper()
	dir := filepath.Join(root, taxID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, fname)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDist(t *testing.T) {
	root := t.TempDir()
	wrtDist(t, root, "83333", "ecoli_dist.csv", "ATG,1.0\nATA,0.17\nATC, 0.5\n")

	d := NewDir(root)
	dist, err := d.Dist("83333")
	if err != nil {
		t.Fatal(err)
	}
	if len(dist) != 3 || dist["ATG"] != 1.0 || dist["ATC"] != 0.5 {
		t.Fatal("distribution came back as", dist)
	}
	// an absent codon reads as zero frequency
	if dist["GGG"] != 0 {
		t.Fatal("absent codon should have frequency 0")
	}
}

func TestMemoized(t *testing.T) {
	root := t.TempDir()
	path := wrtDist(t, root, "9606", "human_dist.csv", "ATG,1.0\n")

	d := NewDir(root)
	if _, err := d.Dist("9606"); err != nil {
		t.Fatal(err)
	}
	// If the file is gone and the lookup still works, it was cached.
	os.Remove(path)
	if _, err := d.Dist("9606"); err != nil {
		t.Fatal("second lookup should come from the cache:", err)
	}
}

func TestMissingAndAmbiguous(t *testing.T) {
	root := t.TempDir()
	d := NewDir(root)
	if _, err := d.Dist("4932"); !errors.Is(err, ErrNotFound) {
		t.Fatal("want ErrNotFound, got", err)
	}

	wrtDist(t, root, "4932", "a_dist.csv", "ATG,1.0\n")
	wrtDist(t, root, "4932", "b_dist.csv", "ATG,1.0\n")
	if _, err := d.Dist("4932"); !errors.Is(err, ErrAmbiguous) {
		t.Fatal("want ErrAmbiguous, got", err)
	}
}

func TestBadLines(t *testing.T) {
	root := t.TempDir()
	wrtDist(t, root, "1", "x_dist.csv", "ATG;1.0\n")
	if _, err := NewDir(root).Dist("1"); err == nil {
		t.Fatal("expected an error for a line with no comma")
	}

	wrtDist(t, root, "2", "x_dist.csv", "ATG,one\n")
	if _, err := NewDir(root).Dist("2"); err == nil {
		t.Fatal("expected an error for a non numeric frequency")
	}

	wrtDist(t, root, "3", "x_dist.csv", "\n")
	if _, err := NewDir(root).Dist("3"); err == nil {
		t.Fatal("expected an error for an empty distribution")
	}
}
