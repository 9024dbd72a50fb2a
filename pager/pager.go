package main

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"

	pagerHandler "github.com/Joshua-Habif/OperatingSystemsSimulations/pager/handlers"
	"github.com/Joshua-Habif/OperatingSystemsSimulations/pager/helpers"
	"github.com/Joshua-Habif/OperatingSystemsSimulations/pager/models"
	"github.com/Joshua-Habif/OperatingSystemsSimulations/pager/services"
	"github.com/Joshua-Habif/OperatingSystemsSimulations/utils/config"
	"github.com/Joshua-Habif/OperatingSystemsSimulations/utils/log"
	"github.com/Joshua-Habif/OperatingSystemsSimulations/utils/random"
	"github.com/Joshua-Habif/OperatingSystemsSimulations/utils/web/handlers"
	"github.com/Joshua-Habif/OperatingSystemsSimulations/utils/web/server"
)

const ConfigPath = "pager/configs/pager.json"

func main() {
	models.PagerConfig = models.DefaultConfig()
	configErr := config.InitConfig(ConfigPath, models.PagerConfig)
	if configErr != nil && !errors.Is(configErr, fs.ErrNotExist) {
		fmt.Fprintln(os.Stderr, configErr)
		os.Exit(1)
	}

	closeLog, err := log.InitLogger(models.PagerConfig.LogPath, models.PagerConfig.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	if configErr != nil {
		slog.Debug("No config file, using defaults", "path", ConfigPath)
	}

	if len(os.Args) > 1 && os.Args[1] == "serve" {
		serve()
		return
	}

	if err := run(os.Args[1:]); err != nil {
		slog.Error(err.Error())
		if errors.Is(err, models.ErrConfiguration) {
			fmt.Fprintln(os.Stderr, helpers.Usage)
		}
		closeLog()
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := helpers.ParseArgs(args)
	if err != nil {
		return err
	}

	source, err := random.OpenFile(models.PagerConfig.RandomFile)
	if err != nil {
		return err
	}
	defer source.Close()

	output := bufio.NewWriter(os.Stdout)
	result, err := services.Simulate(cfg, source, services.WithTrace(output))
	if err != nil {
		output.Flush()
		return err
	}

	if err := services.WriteReport(output, cfg, result); err != nil {
		return err
	}
	return output.Flush()
}

func serve() {
	http.HandleFunc("GET /", handlers.HandshakeHandler("Welcome to the pager"))
	http.HandleFunc("GET /pager", handlers.HandshakeHandler("Pager running"))
	http.HandleFunc("POST /pager/simulate", pagerHandler.SimulateHandler(models.PagerConfig.RandomFile))

	if err := server.InitServer(models.PagerConfig.PortPager); err != nil {
		slog.Error(fmt.Sprintf("error initializing server: %v", err))
		os.Exit(1)
	}
}
