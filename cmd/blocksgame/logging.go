package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/kataras/golog"

	"github.com/lixenwraith/blocksgame/config"
)

const (
	logDir      = "logs"
	logFileName = "blocksgame.log"
	maxLogSize  = 10 * 1024 * 1024
)

// logPrefixes are the package child loggers whose level follows the configuration
var logPrefixes = []string{"[main]", "[loop]", "[audio]", "[terminal]", "[remote]", "[blocks]"}

// setupLogging routes log output to a file, or discards it when neither debug nor a log
// file is configured; the terminal owns stdout while the game runs
func setupLogging(debug bool, cfg config.Log) *os.File {
	if !debug && cfg.File == "" {
		golog.SetOutput(io.Discard)
		log.SetOutput(io.Discard)
		return nil
	}

	path := cfg.File
	if path == "" {
		if err := os.MkdirAll(logDir, 0755); err != nil {
			golog.SetOutput(io.Discard)
			log.SetOutput(io.Discard)
			return nil
		}
		path = filepath.Join(logDir, logFileName)
	}

	rotate(path)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		golog.SetOutput(io.Discard)
		log.SetOutput(io.Discard)
		return nil
	}

	level := cfg.Level
	if debug {
		level = "debug"
	}
	golog.SetOutput(f)
	golog.SetLevel(level)
	for _, p := range logPrefixes {
		golog.Child(p).SetLevel(level)
	}
	log.SetOutput(f)

	golog.Infof("logging started at level %s", level)
	return f
}

// rotate renames an oversized log with a timestamp suffix
func rotate(path string) {
	info, err := os.Stat(path)
	if err != nil || info.Size() <= maxLogSize {
		return
	}
	ext := filepath.Ext(path)
	base := path[:len(path)-len(ext)]
	rotated := fmt.Sprintf("%s-%s%s", base, time.Now().Format("20060102-150405"), ext)
	os.Rename(path, rotated)
}
