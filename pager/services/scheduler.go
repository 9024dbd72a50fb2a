package services

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/Joshua-Habif/OperatingSystemsSimulations/pager/helpers"
	"github.com/Joshua-Habif/OperatingSystemsSimulations/pager/models"
	"github.com/Joshua-Habif/OperatingSystemsSimulations/utils/random"
)

// Quantum is the most references a process is served per turn.
const Quantum = 3

// Simulation is the state of a single run. Runs share nothing, so several can execute in parallel
// as long as each has its own random source.
type Simulation struct {
	cfg       models.SimulationConfig
	frames    *FrameTable
	processes []models.ProcessState
	clock     int
	workload  *Workload
	policy    ReplacementPolicy
	entropy   *tracedSource
	trace     *Trace
}

type Option func(*Simulation)

// WithTrace writes the debugging output selected by the debug level to out.
func WithTrace(out io.Writer) Option {
	return func(s *Simulation) {
		s.trace = NewTrace(out, s.cfg.DebugLevel)
	}
}

// NewSimulation validates cfg and prepares an empty frame table and fresh processes.
func NewSimulation(cfg models.SimulationConfig, source random.Source, opts ...Option) (*Simulation, error) {
	if err := helpers.Validate(cfg); err != nil {
		return nil, err
	}

	s := &Simulation{
		cfg:    cfg,
		frames: NewFrameTable(cfg.FrameCount()),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.entropy = &tracedSource{source: source, trace: s.trace}
	s.policy = NewReplacementPolicy(cfg.Algorithm, s.entropy)
	s.workload = NewWorkload(cfg.ProcessSize, models.JobMixTable[cfg.JobMix], s.entropy)

	s.processes = make([]models.ProcessState, cfg.ProcessCount())
	for i := range s.processes {
		s.processes[i] = models.NewProcessState()
	}

	slog.Debug("Simulation ready",
		"frames", s.frames.Size(), "processes", len(s.processes), "algorithm", s.policy.Name())
	return s, nil
}

// Simulate runs cfg to completion against source.
func Simulate(cfg models.SimulationConfig, source random.Source, opts ...Option) (models.Result, error) {
	s, err := NewSimulation(cfg, source, opts...)
	if err != nil {
		return models.Result{}, err
	}
	return s.Run()
}

// Run round-robins the processes until every one of them has been served its references.
// A finished process still takes its turn, serving nothing.
func (s *Simulation) Run() (models.Result, error) {
	total := len(s.processes) * s.cfg.NumReferences

	served := 0
	for _, p := range s.processes {
		served += p.ReferencesServiced
	}

	current := 0
	for served < total {
		for q := 0; q < Quantum && s.processes[current].ReferencesServiced < s.cfg.NumReferences; q++ {
			if err := s.serve(current); err != nil {
				return s.Result(), fmt.Errorf("process %d at time %d: %w", current+1, s.clock+1, err)
			}
			served++
		}
		current = (current + 1) % len(s.processes)
	}

	if err := s.trace.Err(); err != nil {
		return s.Result(), fmt.Errorf("error writing trace: %w", err)
	}

	slog.Info("Simulation finished", "references", served, "faults", s.Result().TotalFaults())
	return s.Result(), nil
}

// serve resolves one reference of process and computes the word it references next.
func (s *Simulation) serve(process int) error {
	state := &s.processes[process]
	s.entropy.process = process

	word := state.NextWord
	if !state.Touched {
		state.Touched = true
		word = s.workload.FirstReference(process)
	}
	page := word / s.cfg.PageSize

	if index, ok := s.frames.Find(process, page); ok {
		if err := s.frames.Touch(index, s.clock); err != nil {
			return err
		}
		s.trace.Hit(process, word, page, s.clock+1, index)
	} else {
		fault, err := s.handleFault(process, page)
		if err != nil {
			return err
		}
		s.trace.Fault(process, word, page, s.clock+1, fault)
	}

	state.ReferencesServiced++
	s.clock++

	next, err := s.workload.NextReference(process, word)
	if err != nil {
		return err
	}
	state.NextWord = next
	return nil
}

// Result snapshots the counters of every process.
func (s *Simulation) Result() models.Result {
	result := models.Result{
		Clock:     s.clock,
		Processes: make([]models.ProcessStats, len(s.processes)),
	}
	for i, p := range s.processes {
		result.Processes[i] = models.ProcessStats{
			Process:      i + 1,
			PageFaults:   p.PageFaults,
			Evictions:    p.Evictions,
			ResidencySum: p.ResidencySum,
			References:   p.ReferencesServiced,
		}
	}
	return result
}

// Frames returns a copy of the frame table.
func (s *Simulation) Frames() []models.Frame {
	return s.frames.Frames()
}
