package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config pilote le logger global; tout vient de l'environnement.
type Config struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"text"` // text ou json
	Output string `env:"LOG_OUTPUT" envDefault:"stdout"` // stdout, file, both

	// Rotation (utilisée quand Output inclut un fichier).
	Path       string `env:"LOG_PATH" envDefault:"./logs"`
	File       string `env:"LOG_FILE" envDefault:"app.log"`
	MaxSize    int    `env:"LOG_MAX_SIZE" envDefault:"100"` // Mo
	MaxBackups int    `env:"LOG_MAX_BACKUPS" envDefault:"7"`
	MaxAge     int    `env:"LOG_MAX_AGE" envDefault:"7"` // jours
	Compress   bool   `env:"LOG_COMPRESS" envDefault:"true"`
}

// Init configure le logger logrus global depuis l'environnement et retourne
// l'entrée racine de l'application.
func Init() (*logrus.Entry, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("logger config: %w", err)
	}

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	if cfg.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	switch cfg.Output {
	case "file":
		logrus.SetOutput(rotatingFile(cfg))
	case "both":
		logrus.SetOutput(io.MultiWriter(os.Stdout, rotatingFile(cfg)))
	default:
		logrus.SetOutput(os.Stdout)
	}

	return logrus.WithField("app", "liveline"), nil
}

func rotatingFile(cfg Config) io.Writer {
	return &lumberjack.Logger{
		Filename:   filepath.Join(cfg.Path, cfg.File),
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	}
}
