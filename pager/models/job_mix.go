package models

// Probabilities are the A, B and C transition weights of a process.
// Whatever is left up to 1 is the chance of a fully random reference.
type Probabilities [3]float64

// JobMixTable maps each job mix to the probabilities of its processes.
var JobMixTable = map[int][]Probabilities{
	1: {{1, 0, 0}},
	2: {{1, 0, 0}, {1, 0, 0}, {1, 0, 0}, {1, 0, 0}},
	3: {{0, 0, 0}, {0, 0, 0}, {0, 0, 0}, {0, 0, 0}},
	4: {
		{0.75, 0.25, 0},
		{0.75, 0, 0.25},
		{0.75, 0.125, 0.125},
		{0.5, 0.125, 0.125},
	},
}
