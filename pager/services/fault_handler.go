package services

import (
	"log/slog"

	"github.com/Joshua-Habif/OperatingSystemsSimulations/pager/models"
)

// Fault describes how a page fault was resolved.
type Fault struct {
	Frame   int
	Evicted *models.Frame // nil when a free frame was used
}

// handleFault loads page of process, into a free frame if there is one,
// otherwise into the frame chosen by the replacement policy.
func (s *Simulation) handleFault(process, page int) (Fault, error) {
	s.processes[process].PageFaults++

	if index, ok := s.frames.FindFreeFrame(); ok {
		return Fault{Frame: index}, s.frames.Install(index, process, page, s.clock)
	}

	index, err := s.policy.SelectVictim(s.frames, s.clock)
	if err != nil {
		return Fault{}, err
	}
	victim, err := s.frames.Frame(index)
	if err != nil {
		return Fault{}, err
	}

	var evicted *models.Frame
	if !victim.IsEmpty() {
		residency := s.clock - victim.LoadTick
		owner := &s.processes[victim.Owner]
		owner.Evictions++
		owner.ResidencySum += residency

		slog.Debug("Page evicted",
			"pid", victim.Owner+1, "page", victim.Page, "frame", index, "residency", residency,
			"by_pid", process+1, "by_page", page)
		evicted = &victim
	}

	if err := s.frames.Install(index, process, page, s.clock); err != nil {
		return Fault{}, err
	}
	return Fault{Frame: index, Evicted: evicted}, nil
}
