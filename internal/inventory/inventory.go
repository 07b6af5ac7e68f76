// Package inventory walks a model directory once and renders what it finds.
// The fetch command consumes it as an indented tree, the reporter as a
// per-file size listing with totals.
package inventory

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Entry is one regular file discovered under a walked root.
type Entry struct {
	Path string // relative to the root, forward slashes
	Size int64
}

// Summary aggregates an enumeration.
type Summary struct {
	Files int
	Bytes int64
}

// Collect enumerates every regular file under root, sorted by path so output
// is deterministic across runs.
func Collect(root string) ([]Entry, error) {
	var entries []Entry

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		entries = append(entries, Entry{
			Path: filepath.ToSlash(rel),
			Size: info.Size(),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Path < entries[j].Path
	})

	return entries, nil
}

// Summarize totals file count and byte size across entries.
func Summarize(entries []Entry) Summary {
	var s Summary
	for _, e := range entries {
		s.Files++
		s.Bytes += e.Size
	}
	return s
}

// FormatSize renders a file size in megabytes when at least 1 MB, otherwise
// kilobytes, with one decimal place.
func FormatSize(bytes int64) string {
	const mb = 1024 * 1024
	if bytes >= mb {
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(mb))
	}
	return fmt.Sprintf("%.1f KB", float64(bytes)/1024)
}

// FormatGB renders a byte total in gigabytes with two decimal places.
func FormatGB(bytes int64) string {
	return fmt.Sprintf("%.2f GB", float64(bytes)/(1024*1024*1024))
}

// Tree writes an indented listing of every directory and file under root,
// file sizes in megabytes. Entries at each level come out name-sorted.
func Tree(w io.Writer, root string) error {
	return walkTree(w, root, 0)
}

func walkTree(w io.Writer, dir string, depth int) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	indent := strings.Repeat("  ", depth)
	for _, entry := range entries {
		if entry.IsDir() {
			fmt.Fprintf(w, "%s%s/\n", indent, entry.Name())
			if err := walkTree(w, filepath.Join(dir, entry.Name()), depth+1); err != nil {
				return err
			}
			continue
		}

		info, err := entry.Info()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s%s (%.1f MB)\n", indent, entry.Name(), float64(info.Size())/(1024*1024))
	}

	return nil
}
