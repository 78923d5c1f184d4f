package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"Attic/internal/config"

	"github.com/sirupsen/logrus"
)

// LogService owns the application logger, configured from the log section
// of the server config. Unrecognized settings keep the logrus defaults.
type LogService struct {
	Log *logrus.Logger
}

func NewLogService(configuration *config.Configuration) LogService {
	log := logrus.New()
	cfg := configuration.Server.LogConfig

	if level, err := logrus.ParseLevel(strings.ToLower(cfg.Level)); err == nil {
		log.SetLevel(level)
	}

	switch cfg.Format {
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		log.SetFormatter(&logrus.TextFormatter{})
	}

	switch cfg.Output {
	case "stdout":
		log.SetOutput(os.Stdout)
	case "file":
		if cfg.LogPath == "" {
			log.Warn("file log output requires logPath to be set")
			break
		}
		name := fmt.Sprintf("attic-%s.log", time.Now().Format("2006-01-02"))
		file, err := os.OpenFile(
			filepath.Join(strings.TrimRight(cfg.LogPath, "/"), name),
			os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666,
		)
		if err != nil {
			log.Fatal(err)
		}
		log.SetOutput(file)
	}

	return LogService{Log: log}
}
