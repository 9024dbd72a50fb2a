package helpers

import (
	"fmt"
	"strconv"

	"github.com/Joshua-Habif/OperatingSystemsSimulations/pager/models"
)

const Usage = "Usage: pager <machine size> <page size> <process size> <job mix> <references per process> <fifo|lru|random> [debug level]\n" +
	"       pager serve"

type numericArg struct {
	name  string
	value string
	dest  *int
}

// ParseArgs builds a SimulationConfig from the positional arguments, without the program name.
//
// Parameters:
//   - args: machine size, page size, process size, job mix, references per process,
//     replacement algorithm and an optional debug level.
//
// Example:
//
//	func main() {
//		cfg, err := helpers.ParseArgs([]string{"10", "10", "20", "1", "10", "lru", "0"})
//	}
func ParseArgs(args []string) (models.SimulationConfig, error) {
	var cfg models.SimulationConfig

	if len(args) < 6 {
		return cfg, fmt.Errorf("%w: expected at least 6 arguments, got %d", models.ErrConfiguration, len(args))
	}

	numbers := []numericArg{
		{"machine size", args[0], &cfg.MachineSize},
		{"page size", args[1], &cfg.PageSize},
		{"process size", args[2], &cfg.ProcessSize},
		{"job mix", args[3], &cfg.JobMix},
		{"number of references", args[4], &cfg.NumReferences},
	}
	if len(args) > 6 {
		numbers = append(numbers, numericArg{"debug level", args[6], &cfg.DebugLevel})
	}

	for _, n := range numbers {
		value, err := strconv.Atoi(n.value)
		if err != nil {
			return cfg, fmt.Errorf("%w: %s %q is not a number", models.ErrConfiguration, n.name, n.value)
		}
		*n.dest = value
	}
	cfg.Algorithm = args[5]

	return cfg, Validate(cfg)
}

// Validate checks the values a run cannot start without.
func Validate(cfg models.SimulationConfig) error {
	switch {
	case cfg.MachineSize <= 0:
		return fmt.Errorf("%w: machine size must be positive, got %d", models.ErrConfiguration, cfg.MachineSize)
	case cfg.PageSize <= 0:
		return fmt.Errorf("%w: page size must be positive, got %d", models.ErrConfiguration, cfg.PageSize)
	case cfg.MachineSize%cfg.PageSize != 0:
		return fmt.Errorf("%w: machine size %d is not a multiple of page size %d", models.ErrConfiguration, cfg.MachineSize, cfg.PageSize)
	case cfg.ProcessSize <= 0:
		return fmt.Errorf("%w: process size must be positive, got %d", models.ErrConfiguration, cfg.ProcessSize)
	case models.JobMixTable[cfg.JobMix] == nil:
		return fmt.Errorf("%w: job mix must be between 1 and 4, got %d", models.ErrConfiguration, cfg.JobMix)
	case cfg.NumReferences < 0:
		return fmt.Errorf("%w: number of references cannot be negative, got %d", models.ErrConfiguration, cfg.NumReferences)
	case cfg.DebugLevel < 0:
		return fmt.Errorf("%w: debug level cannot be negative, got %d", models.ErrConfiguration, cfg.DebugLevel)
	}
	return nil
}
