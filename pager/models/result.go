package models

// ProcessStats are the final counters of a process. Process is 1-based, as printed in the report.
type ProcessStats struct {
	Process      int `json:"process"`
	PageFaults   int `json:"page_faults"`
	Evictions    int `json:"evictions"`
	ResidencySum int `json:"residency_sum"`
	References   int `json:"references"`
}

// AverageResidency is undefined (false) when the process never had a page evicted.
func (s ProcessStats) AverageResidency() (float64, bool) {
	if s.Evictions == 0 {
		return 0, false
	}
	return float64(s.ResidencySum) / float64(s.Evictions), true
}

// Result is the outcome of a finished run.
type Result struct {
	Clock     int            `json:"clock"`
	Processes []ProcessStats `json:"processes"`
}

func (r Result) TotalFaults() int {
	total := 0
	for _, p := range r.Processes {
		total += p.PageFaults
	}
	return total
}

func (r Result) TotalEvictions() int {
	total := 0
	for _, p := range r.Processes {
		total += p.Evictions
	}
	return total
}

func (r Result) TotalResidency() int {
	total := 0
	for _, p := range r.Processes {
		total += p.ResidencySum
	}
	return total
}

// OverallAverageResidency is undefined (false) when nothing was evicted in the whole run.
func (r Result) OverallAverageResidency() (float64, bool) {
	evictions := r.TotalEvictions()
	if evictions == 0 {
		return 0, false
	}
	return float64(r.TotalResidency()) / float64(evictions), true
}
