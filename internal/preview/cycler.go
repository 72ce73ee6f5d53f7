// Package preview animates hover previews by cycling through a video's
// chapter thumbnails at a fixed interval.
package preview

import (
	"context"
	"log/slog"
	"time"

	"github.com/vidkeep/vidkeep/internal/library"
)

// DefaultInterval is the frame interval when the config leaves it unset.
const DefaultInterval = 800 * time.Millisecond

// FrameFunc receives each frame as the cycler advances. index is the
// position within the video's chapter list.
type FrameFunc func(index int, frame library.ChapterThumb)

// Cycler steps through chapter thumbnails on a ticker. A video with no
// chapter thumbs produces no frames.
type Cycler struct {
	interval time.Duration
	logger   *slog.Logger
}

// New creates a cycler. Pass 0 for interval to use DefaultInterval.
func New(interval time.Duration, logger *slog.Logger) *Cycler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Cycler{interval: interval, logger: logger}
}

// Run cycles through the video's chapter thumbnails, wrapping around, until
// the context is canceled. The first frame fires immediately so the preview
// appears without waiting a full interval.
func (c *Cycler) Run(ctx context.Context, v *library.VideoRecord, fn FrameFunc) error {
	if len(v.Chapters) == 0 {
		c.logger.Debug("no chapter thumbs for preview", "video", v.ID)
		<-ctx.Done()
		return ctx.Err()
	}

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	idx := 0
	fn(idx, v.Chapters[idx])
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			idx = (idx + 1) % len(v.Chapters)
			fn(idx, v.Chapters[idx])
		}
	}
}
