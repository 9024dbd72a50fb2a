package services

import (
	"testing"
)

func TestFrameTable_FindFreeFrameScansFromTheTop(t *testing.T) {
	table := NewFrameTable(3)

	index, ok := table.FindFreeFrame()
	if !ok || index != 2 {
		t.Fatalf("Expected free frame 2, got %d (found %v)", index, ok)
	}

	if err := table.Install(2, 0, 5, 0); err != nil {
		t.Fatalf("Install returned error: %v", err)
	}

	index, ok = table.FindFreeFrame()
	if !ok || index != 1 {
		t.Errorf("Expected free frame 1, got %d (found %v)", index, ok)
	}
}

func TestFrameTable_Full(t *testing.T) {
	table := NewFrameTable(2)
	_ = table.Install(0, 0, 0, 0)
	_ = table.Install(1, 1, 0, 1)

	if _, ok := table.FindFreeFrame(); ok {
		t.Error("Expected no free frame")
	}
	if table.Occupied() != 2 {
		t.Errorf("Expected 2 occupied frames, got %d", table.Occupied())
	}
}

func TestFrameTable_FindAndTouch(t *testing.T) {
	table := NewFrameTable(3)
	_ = table.Install(2, 0, 5, 0)

	index, ok := table.Find(0, 5)
	if !ok || index != 2 {
		t.Fatalf("Expected page 5 of process 0 in frame 2, got %d (found %v)", index, ok)
	}
	if _, ok := table.Find(1, 5); ok {
		t.Error("Expected page 5 of process 1 not to be resident")
	}

	if err := table.Touch(2, 7); err != nil {
		t.Fatalf("Touch returned error: %v", err)
	}
	frame, _ := table.Frame(2)
	if frame.LastUsedTick != 7 || frame.LoadTick != 0 {
		t.Errorf("Expected last used 7 and load 0, got %+v", frame)
	}
}

func TestFrameTable_OutOfRange(t *testing.T) {
	table := NewFrameTable(1)

	if err := table.Install(1, 0, 0, 0); err == nil {
		t.Error("Expected error installing into frame 1 of a 1-frame table")
	}
	if _, err := table.Frame(-1); err == nil {
		t.Error("Expected error reading frame -1")
	}
}
