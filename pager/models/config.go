package models

// Config holds the runtime settings read from configs/pager.json.
type Config struct {
	PortPager  int    `json:"port_pager"`
	RandomFile string `json:"random_file"`
	LogLevel   string `json:"log_level"`
	LogPath    string `json:"log_path"`
}

var PagerConfig *Config

func DefaultConfig() *Config {
	return &Config{
		PortPager:  8005,
		RandomFile: "random-numbers.txt",
		LogLevel:   "INFO",
	}
}

// SimulationConfig describes one run: the machine, the processes and the replacement algorithm.
type SimulationConfig struct {
	MachineSize   int    `json:"machine_size"`
	PageSize      int    `json:"page_size"`
	ProcessSize   int    `json:"process_size"`
	JobMix        int    `json:"job_mix"`
	NumReferences int    `json:"num_references"`
	Algorithm     string `json:"algorithm"`
	DebugLevel    int    `json:"debug_level"`
}

// FrameCount is the number of physical frames.
func (c SimulationConfig) FrameCount() int {
	return c.MachineSize / c.PageSize
}

// ProcessCount is 1 for job mix 1 and 4 otherwise.
func (c SimulationConfig) ProcessCount() int {
	return len(JobMixTable[c.JobMix])
}
