package services

import (
	"math"

	"github.com/Joshua-Habif/OperatingSystemsSimulations/pager/models"
	"github.com/Joshua-Habif/OperatingSystemsSimulations/utils/random"
)

// FirstWord scaled by the 1-based process number gives each process its entry point.
const FirstWord = 111

// Workload generates the references of each process from its job mix probabilities.
type Workload struct {
	processSize   int
	probabilities []models.Probabilities
	source        random.Source
}

func NewWorkload(processSize int, probabilities []models.Probabilities, source random.Source) *Workload {
	return &Workload{
		processSize:   processSize,
		probabilities: probabilities,
		source:        source,
	}
}

// FirstReference is the entry point of process, no random number is consumed.
func (w *Workload) FirstReference(process int) int {
	return (FirstWord * (process + 1)) % w.processSize
}

// NextReference draws the word process references after currentWord.
func (w *Workload) NextReference(process, currentWord int) (int, error) {
	r, err := w.source.Next()
	if err != nil {
		return 0, err
	}
	y := float64(r) / (math.MaxInt32 + 1.0)
	p := w.probabilities[process]

	switch {
	case y < p[0]:
		return (currentWord + 1) % w.processSize, nil
	case y < p[0]+p[1]:
		return (currentWord - 5 + w.processSize) % w.processSize, nil
	case y < p[0]+p[1]+p[2]:
		return (currentWord + 4) % w.processSize, nil
	}

	r, err = w.source.Next()
	if err != nil {
		return 0, err
	}
	return r % w.processSize, nil
}
