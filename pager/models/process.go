package models

// ProcessState is the bookkeeping of one simulated process.
type ProcessState struct {
	NextWord           int
	Touched            bool
	PageFaults         int
	Evictions          int
	ResidencySum       int
	ReferencesServiced int
}

func NewProcessState() ProcessState {
	return ProcessState{NextWord: -1}
}
