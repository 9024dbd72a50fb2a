package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// InitConfig reads the JSON file at filePath and decodes it into config, which must be a pointer.
// Fields missing from the file keep the value they had before the call, so callers can preload defaults.
//
// Parameters:
//   - filePath: location of the configuration file
//   - config: pointer to any struct with json tags
//
// Example:
//
//	type TestConfig struct {
//		Name  string `json:"name"`
//		Value int    `json:"value"`
//	}
//	func main() {
//		testConfig := TestConfig{Value: 1}
//		err := config.InitConfig("./test.json", &testConfig)
//	}
func InitConfig(filePath string, config any) error {
	if err := setupConfig(filePath, config); err != nil {
		return fmt.Errorf("error loading config %s: %w", filePath, err)
	}
	return nil
}

func setupConfig(filePath string, config any) error {
	configFile, err := os.Open(filePath)
	if err != nil {
		return err
	}
	defer configFile.Close()

	jsonParser := json.NewDecoder(configFile)
	jsonParser.DisallowUnknownFields()

	return jsonParser.Decode(config)
}
