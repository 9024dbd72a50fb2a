package services

import (
	"fmt"

	"github.com/Joshua-Habif/OperatingSystemsSimulations/pager/models"
	"github.com/Joshua-Habif/OperatingSystemsSimulations/utils/list"
)

// FrameTable is physical memory: a fixed number of frames addressed by index.
type FrameTable struct {
	frames list.List[models.Frame]
}

func NewFrameTable(size int) *FrameTable {
	return &FrameTable{frames: list.NewArrayList(size, models.EmptyFrame())}
}

func (t *FrameTable) Size() int {
	return t.frames.Size()
}

// Frame returns a copy of the frame at index.
func (t *FrameTable) Frame(index int) (models.Frame, error) {
	frame, err := t.frames.Get(index)
	if err != nil {
		return frame, fmt.Errorf("%w: %v", models.ErrFrameTableCorrupted, err)
	}
	return frame, nil
}

// Frames returns a copy of every frame in index order.
func (t *FrameTable) Frames() []models.Frame {
	return t.frames.GetAll()
}

// Find returns the index of the frame holding page of process.
func (t *FrameTable) Find(process, page int) (int, bool) {
	_, index, found := t.frames.Find(func(f models.Frame) bool {
		return f.Holds(process, page)
	})
	return index, found
}

// Touch records a hit. The load tick is left alone.
func (t *FrameTable) Touch(index, clock int) error {
	frame, err := t.Frame(index)
	if err != nil {
		return err
	}
	frame.LastUsedTick = clock
	return t.frames.Set(index, frame)
}

// FindFreeFrame returns the highest-indexed empty frame.
func (t *FrameTable) FindFreeFrame() (int, bool) {
	for i := t.Size() - 1; i >= 0; i-- {
		frame, err := t.frames.Get(i)
		if err == nil && frame.IsEmpty() {
			return i, true
		}
	}
	return -1, false
}

// Install loads page of process into the frame at index, overwriting whatever it held.
func (t *FrameTable) Install(index, process, page, clock int) error {
	err := t.frames.Set(index, models.Frame{
		Owner:        process,
		Page:         page,
		LastUsedTick: clock,
		LoadTick:     clock,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrFrameTableCorrupted, err)
	}
	return nil
}

// Occupied counts the frames holding a page.
func (t *FrameTable) Occupied() int {
	count := 0
	for _, frame := range t.frames.GetAll() {
		if !frame.IsEmpty() {
			count++
		}
	}
	return count
}
