package services

import (
	"fmt"
	"io"
	"strings"

	"github.com/Joshua-Habif/OperatingSystemsSimulations/pager/models"
)

// WriteReport prints the configuration followed by the faults and average residency
// of every process and of the whole run.
func WriteReport(w io.Writer, cfg models.SimulationConfig, result models.Result) error {
	var b strings.Builder

	fmt.Fprintf(&b, "The machine size is %d\n", cfg.MachineSize)
	fmt.Fprintf(&b, "The page size is %d\n", cfg.PageSize)
	fmt.Fprintf(&b, "The process size is %d\n", cfg.ProcessSize)
	fmt.Fprintf(&b, "The job mix number is %d\n", cfg.JobMix)
	fmt.Fprintf(&b, "The number of references per process is %d\n", cfg.NumReferences)
	fmt.Fprintf(&b, "The replacement algorithm is %s\n", cfg.Algorithm)
	fmt.Fprintf(&b, "The level of debugging output is %d", cfg.DebugLevel)

	for _, p := range result.Processes {
		if avg, ok := p.AverageResidency(); ok {
			fmt.Fprintf(&b, "\n\nProcess %d had %d page faults and %.2f average residency.\n", p.Process, p.PageFaults, avg)
		} else {
			fmt.Fprintf(&b, "\n\nProcess %d had %d page faults.\n\tWith no evictions, the average residence is undefined.\n", p.Process, p.PageFaults)
		}
	}

	if avg, ok := result.OverallAverageResidency(); ok {
		fmt.Fprintf(&b, "\nThe total number of faults is %d and the overall average residency is %.2f.\n", result.TotalFaults(), avg)
	} else {
		fmt.Fprintf(&b, "\nThe total number of faults is %d.\n\tWith no evictions, the overall average residence is undefined.\n", result.TotalFaults())
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Report renders WriteReport into a string.
func Report(cfg models.SimulationConfig, result models.Result) string {
	var b strings.Builder
	_ = WriteReport(&b, cfg, result)
	return b.String()
}
