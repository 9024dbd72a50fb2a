package services

import (
	"errors"
	"testing"

	"github.com/Joshua-Habif/OperatingSystemsSimulations/pager/models"
	"github.com/Joshua-Habif/OperatingSystemsSimulations/utils/random"
)

func TestOldest_TiesGoToLowestIndex(t *testing.T) {
	table := NewFrameTable(4)
	for i := 0; i < 4; i++ {
		_ = table.Install(i, i, i, 3)
	}

	for _, policy := range []ReplacementPolicy{FIFO{}, LRU{}} {
		victim, err := policy.SelectVictim(table, 4)
		if err != nil {
			t.Fatalf("%s: unexpected error %v", policy.Name(), err)
		}
		if victim != 0 {
			t.Errorf("%s: expected victim 0, got %d", policy.Name(), victim)
		}
	}
}

func TestFIFOAndLRU_Differ(t *testing.T) {
	table := NewFrameTable(3)
	_ = table.Install(0, 0, 0, 5)
	_ = table.Install(1, 0, 1, 2)
	_ = table.Install(2, 0, 2, 2)
	_ = table.Touch(1, 9)

	victim, _ := FIFO{}.SelectVictim(table, 10)
	if victim != 1 {
		t.Errorf("FIFO: expected victim 1, got %d", victim)
	}

	victim, _ = LRU{}.SelectVictim(table, 10)
	if victim != 2 {
		t.Errorf("LRU: expected victim 2, got %d", victim)
	}
}

func TestOldest_EmptyTable(t *testing.T) {
	table := NewFrameTable(2)

	if _, err := (FIFO{}).SelectVictim(table, 0); !errors.Is(err, models.ErrFrameTableCorrupted) {
		t.Errorf("Expected ErrFrameTableCorrupted, got %v", err)
	}
}

func TestRandom_SelectVictim(t *testing.T) {
	table := NewFrameTable(3)
	policy := Random{source: random.NewSliceSource(7, 9)}

	victim, err := policy.SelectVictim(table, 0)
	if err != nil || victim != 1 {
		t.Errorf("Expected victim 1, got %d (err %v)", victim, err)
	}
	victim, err = policy.SelectVictim(table, 0)
	if err != nil || victim != 0 {
		t.Errorf("Expected victim 0, got %d (err %v)", victim, err)
	}

	if _, err := policy.SelectVictim(table, 0); !errors.Is(err, random.ErrSourceExhausted) {
		t.Errorf("Expected ErrSourceExhausted, got %v", err)
	}
}

func TestNewReplacementPolicy(t *testing.T) {
	tests := map[string]string{
		"fifo":   "fifo",
		"lru":    "lru",
		"random": "random",
		"FIFO":   "random",
		"clock":  "random",
		"":       "random",
	}

	for algorithm, want := range tests {
		policy := NewReplacementPolicy(algorithm, random.NewSliceSource())
		if policy.Name() != want {
			t.Errorf("NewReplacementPolicy(%q) = %s, want %s", algorithm, policy.Name(), want)
		}
	}
}
