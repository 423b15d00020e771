// Package library discovers sound clips on the filesystem.
package library

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"
)

var (
	ErrRoot = errors.New("invalid library root")
	errScan = errors.New("failed to scan library")
)

type Clip struct {
	Name string
	Path string
	Size int64
}

func (c Clip) HumanSize() string {
	if c.Path == "" {
		return "-"
	}

	return humanize.Bytes(uint64(max(c.Size, 0))) //nolint:gosec
}

// Demo returns placeholder clips for when no library is configured.
func Demo() []Clip {
	return []Clip{
		{Name: "Clip 1"},
		{Name: "Clip 2"},
		{Name: "Clip 3"},
	}
}

// Scan walks every root concurrently and returns the clips whose extension is one of exts
// and whose name contains query, both compared case-insensitively. Results are sorted by
// name then path.
func Scan(ctx context.Context, roots []string, exts []string, query string) ([]Clip, error) {
	var (
		mu    sync.Mutex
		clips []Clip
	)

	allowed := make(map[string]bool, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(ext)
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		allowed[ext] = true
	}
	query = strings.ToLower(query)

	group, groupCtx := errgroup.WithContext(ctx)

	for _, root := range roots {
		group.Go(func() error {
			found, err := scanRoot(groupCtx, root, allowed, query)
			if err != nil {
				return err
			}

			mu.Lock()
			clips = append(clips, found...)
			mu.Unlock()

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	slices.SortFunc(clips, func(a Clip, b Clip) int {
		if cmp := strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)); cmp != 0 {
			return cmp
		}

		return strings.Compare(a.Path, b.Path)
	})

	slog.Debug("Library scanned", slog.Int("roots", len(roots)), slog.Int("clips", len(clips)),
		slog.String("query", query))

	return clips, nil
}

func scanRoot(ctx context.Context, root string, allowed map[string]bool, query string) ([]Clip, error) {
	info, errStat := os.Stat(root)
	if errStat != nil {
		return nil, errors.Join(errStat, ErrRoot)
	}

	if !info.IsDir() {
		return nil, errors.Join(fmt.Errorf("%s is not a directory", root), ErrRoot)
	}

	var clips []Clip

	errWalk := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if ctx.Err() != nil {
			return ctx.Err()
		}

		if entry.IsDir() {
			return nil
		}

		ext := filepath.Ext(entry.Name())
		if !allowed[strings.ToLower(ext)] {
			return nil
		}

		name := strings.TrimSuffix(entry.Name(), ext)
		if query != "" && !strings.Contains(strings.ToLower(name), query) {
			return nil
		}

		fileInfo, errInfo := entry.Info()
		if errInfo != nil {
			return errInfo
		}

		clips = append(clips, Clip{Name: name, Path: path, Size: fileInfo.Size()})

		return nil
	})
	if errWalk != nil {
		return nil, errors.Join(errWalk, errScan)
	}

	return clips, nil
}
