// Package audio holds the playback collaborator used by the widget tree. Decoding and
// output are out of scope for clipdeck, LogPlayer only records what would be played.
package audio

import (
	"errors"
	"log/slog"
	"maps"
	"slices"

	"github.com/clipdeck/clipdeck/internal/library"
)

var ErrNotPlaying = errors.New("clip is not playing")

type Player interface {
	// Play starts a clip with the levels of its effects keyed by effect name.
	Play(clip library.Clip, levels map[string]float64) error
	Stop(clip library.Clip) error
}

// LogPlayer is a Player that logs play and stop requests and tracks what is playing.
type LogPlayer struct {
	playing map[string]map[string]float64
}

func NewLogPlayer() *LogPlayer {
	return &LogPlayer{playing: map[string]map[string]float64{}}
}

func key(clip library.Clip) string {
	if clip.Path != "" {
		return clip.Path
	}

	return clip.Name
}

func (p *LogPlayer) Play(clip library.Clip, levels map[string]float64) error {
	attrs := []any{slog.String("clip", clip.Name), slog.String("path", clip.Path)}
	for _, name := range slices.Sorted(maps.Keys(levels)) {
		attrs = append(attrs, slog.Float64(name, levels[name]))
	}

	slog.Info("Play", attrs...)
	p.playing[key(clip)] = maps.Clone(levels)

	return nil
}

func (p *LogPlayer) Stop(clip library.Clip) error {
	if _, found := p.playing[key(clip)]; !found {
		return ErrNotPlaying
	}

	slog.Info("Stop", slog.String("clip", clip.Name), slog.String("path", clip.Path))
	delete(p.playing, key(clip))

	return nil
}

// Playing returns the levels a clip was started with.
func (p *LogPlayer) Playing(clip library.Clip) (map[string]float64, bool) {
	levels, found := p.playing[key(clip)]

	return levels, found
}
