package services

import (
	"errors"
	"testing"

	"github.com/Joshua-Habif/OperatingSystemsSimulations/pager/models"
	"github.com/Joshua-Habif/OperatingSystemsSimulations/utils/random"
)

// Random numbers landing y = r / 2^31 in a given band.
const (
	yZero  = 0
	ySixty = 1288490188 // 0.6
	ySeven = 1503238553 // 0.7
	yEight = 1717986918 // 0.8
	yMax   = 2147483647
)

func TestWorkload_FirstReference(t *testing.T) {
	workload := NewWorkload(20, models.JobMixTable[4], random.NewSliceSource())

	want := []int{11, 2, 13, 4}
	for process, expected := range want {
		if got := workload.FirstReference(process); got != expected {
			t.Errorf("FirstReference(%d) = %d, want %d", process, got, expected)
		}
	}
}

func TestWorkload_NextReference(t *testing.T) {
	tests := []struct {
		name    string
		process int
		word    int
		draws   []int
		want    int
	}{
		{"sequential", 0, 10, []int{yZero}, 11},
		{"sequential wraps", 0, 19, []int{yZero}, 0},
		{"backward", 0, 10, []int{yEight}, 5},
		{"backward wraps", 3, 2, []int{ySixty}, 17},
		{"forward", 1, 10, []int{yEight}, 14},
		{"forward wraps", 3, 18, []int{ySeven}, 2},
		{"random", 3, 10, []int{yMax, 45}, 5},
		{"random past c", 3, 10, []int{yEight, 7}, 7},
		{"never random when weights add to one", 2, 10, []int{yMax}, 14},
	}

	for _, tt := range tests {
		source := random.NewSliceSource(tt.draws...)
		workload := NewWorkload(20, models.JobMixTable[4], source)

		got, err := workload.NextReference(tt.process, tt.word)
		if err != nil {
			t.Errorf("%s: unexpected error %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s: NextReference(%d, %d) = %d, want %d", tt.name, tt.process, tt.word, got, tt.want)
		}
		if source.Drawn() != len(tt.draws) {
			t.Errorf("%s: expected %d draws, got %d", tt.name, len(tt.draws), source.Drawn())
		}
	}
}

func TestWorkload_AlwaysRandom(t *testing.T) {
	source := random.NewSliceSource(0, 57)
	workload := NewWorkload(20, models.JobMixTable[3], source)

	got, err := workload.NextReference(0, 3)
	if err != nil || got != 17 {
		t.Errorf("Expected 17, got %d (err %v)", got, err)
	}
}

func TestWorkload_Exhausted(t *testing.T) {
	workload := NewWorkload(20, models.JobMixTable[3], random.NewSliceSource(0))

	if _, err := workload.NextReference(0, 3); !errors.Is(err, random.ErrSourceExhausted) {
		t.Errorf("Expected ErrSourceExhausted, got %v", err)
	}
}
