package services

import (
	"fmt"
	"log/slog"

	"github.com/Joshua-Habif/OperatingSystemsSimulations/pager/models"
	"github.com/Joshua-Habif/OperatingSystemsSimulations/utils/random"
)

// ReplacementPolicy picks the frame to evict when no frame is free.
type ReplacementPolicy interface {
	Name() string
	SelectVictim(frames *FrameTable, clock int) (int, error)
}

// NewReplacementPolicy returns the policy named by algorithm. Any name other than
// "fifo" or "lru" selects random replacement.
// TODO: reject unknown names once callers stop relying on the random fallback.
func NewReplacementPolicy(algorithm string, source random.Source) ReplacementPolicy {
	switch algorithm {
	case "fifo":
		return FIFO{}
	case "lru":
		return LRU{}
	case "random":
		return Random{source: source}
	default:
		slog.Warn("Unknown replacement algorithm, using random", "algorithm", algorithm)
		return Random{source: source}
	}
}

// FIFO evicts the page loaded first.
type FIFO struct{}

func (FIFO) Name() string { return "fifo" }

func (FIFO) SelectVictim(frames *FrameTable, _ int) (int, error) {
	return oldest(frames, func(f models.Frame) int { return f.LoadTick })
}

// LRU evicts the page used least recently.
type LRU struct{}

func (LRU) Name() string { return "lru" }

func (LRU) SelectVictim(frames *FrameTable, _ int) (int, error) {
	return oldest(frames, func(f models.Frame) int { return f.LastUsedTick })
}

// Random evicts the frame named by the next random number.
type Random struct {
	source random.Source
}

func (Random) Name() string { return "random" }

func (p Random) SelectVictim(frames *FrameTable, _ int) (int, error) {
	if frames.Size() == 0 {
		return -1, fmt.Errorf("%w: no frames to evict", models.ErrFrameTableCorrupted)
	}
	r, err := p.source.Next()
	if err != nil {
		return -1, err
	}
	return r % frames.Size(), nil
}

// oldest returns the occupied frame with the smallest tick, the lowest index winning ties.
func oldest(frames *FrameTable, tick func(models.Frame) int) (int, error) {
	victim := -1
	victimTick := 0
	for i, frame := range frames.Frames() {
		if frame.IsEmpty() {
			continue
		}
		if victim == -1 || tick(frame) < victimTick {
			victim = i
			victimTick = tick(frame)
		}
	}
	if victim == -1 {
		return -1, fmt.Errorf("%w: no occupied frame to evict", models.ErrFrameTableCorrupted)
	}
	return victim, nil
}
