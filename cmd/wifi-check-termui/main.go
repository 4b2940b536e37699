package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"

	"wifi-check-termui/internal/app"
	"wifi-check-termui/internal/config"
	"wifi-check-termui/internal/wifi"
)

var version = "n/a"

func main() {
	var (
		versionFlag  = flag.Bool("version", false, "application version")
		debugFlag    = flag.Bool("debug", false, "run application in debug mode")
		configFlag   = flag.String("config", "", "path to the config file")
		intervalFlag = flag.Duration("interval", 0, "sampling interval, overrides the config file")
	)

	flag.Parse()

	if *versionFlag {
		fmt.Println(version)
		os.Exit(0)
	}

	confDir := configDir()

	configPath := *configFlag
	if configPath == "" {
		configPath = filepath.Join(confDir, "config.yaml")
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Println("Config error:", err)
		os.Exit(1)
	}

	if *intervalFlag > 0 {
		seconds := int(intervalFlag.Seconds())
		if seconds < 1 {
			seconds = 1
		}
		cfg.Sampling.IntervalSeconds = seconds
	}

	logger := newLogger(cfg, confDir, *debugFlag)

	logger.Info("creating socket")
	socket, err := wifi.Connect()
	if err != nil {
		fmt.Println("Socket error:", err)
		logger.Error(err)
		os.Exit(1)
	}

	logger.Info("app started..")
	code := app.New(socket, cfg, logger).Run()

	if err := socket.Close(); err != nil {
		logger.Error(err)
	}
	os.Exit(code)
}

// newLogger writes one log file per run under the config dir.
func newLogger(cfg config.Config, confDir string, debug bool) *log.Logger {
	logger := log.New()
	logger.Out = io.Discard

	logDir := cfg.Logging.Dir
	if logDir == "" {
		logDir = confDir
	}
	if logDir != "" {
		if err := os.MkdirAll(logDir, 0755); err == nil {
			name := fmt.Sprintf("run-%d.log", time.Now().Unix())
			file, err := os.OpenFile(filepath.Join(logDir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
			if err == nil {
				logger.Out = file
			}
		}
	}

	if level, err := log.ParseLevel(cfg.Logging.Level); err == nil {
		logger.SetLevel(level)
	}
	if debug {
		logger.SetLevel(log.DebugLevel)
	}

	return logger
}

func configDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, "wifi-check-termui")
}
