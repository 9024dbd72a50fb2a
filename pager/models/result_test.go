package models

import "testing"

func TestResult_Totals(t *testing.T) {
	result := Result{
		Clock: 20,
		Processes: []ProcessStats{
			{Process: 1, PageFaults: 5, Evictions: 2, ResidencySum: 7, References: 5},
			{Process: 2, PageFaults: 3, Evictions: 0, ResidencySum: 0, References: 5},
			{Process: 3, PageFaults: 4, Evictions: 1, ResidencySum: 5, References: 5},
		},
	}

	if got := result.TotalFaults(); got != 12 {
		t.Errorf("Expected 12 faults, got %d", got)
	}
	if got := result.TotalEvictions(); got != 3 {
		t.Errorf("Expected 3 evictions, got %d", got)
	}

	avg, ok := result.OverallAverageResidency()
	if !ok || avg != 4 {
		t.Errorf("Expected overall average 4, got %v (defined %v)", avg, ok)
	}

	avg, ok = result.Processes[0].AverageResidency()
	if !ok || avg != 3.5 {
		t.Errorf("Expected process 1 average 3.5, got %v (defined %v)", avg, ok)
	}

	if _, ok := result.Processes[1].AverageResidency(); ok {
		t.Error("Expected process 2 average to be undefined")
	}
}

func TestResult_NoEvictions(t *testing.T) {
	result := Result{Processes: []ProcessStats{{Process: 1}}}

	if _, ok := result.OverallAverageResidency(); ok {
		t.Error("Expected overall average to be undefined")
	}
}

func TestSimulationConfig_Counts(t *testing.T) {
	tests := []struct {
		cfg       SimulationConfig
		frames    int
		processes int
	}{
		{SimulationConfig{MachineSize: 20, PageSize: 10, JobMix: 1}, 2, 1},
		{SimulationConfig{MachineSize: 100, PageSize: 10, JobMix: 2}, 10, 4},
		{SimulationConfig{MachineSize: 40, PageSize: 5, JobMix: 4}, 8, 4},
	}

	for _, tt := range tests {
		if got := tt.cfg.FrameCount(); got != tt.frames {
			t.Errorf("FrameCount() = %d, want %d", got, tt.frames)
		}
		if got := tt.cfg.ProcessCount(); got != tt.processes {
			t.Errorf("ProcessCount() = %d, want %d", got, tt.processes)
		}
	}
}

func TestFrame_Empty(t *testing.T) {
	frame := EmptyFrame()
	if !frame.IsEmpty() {
		t.Error("Expected empty frame")
	}
	frame = Frame{Owner: 0, Page: 3}
	if frame.IsEmpty() || !frame.Holds(0, 3) || frame.Holds(1, 3) {
		t.Errorf("Unexpected ownership for %+v", frame)
	}
}
