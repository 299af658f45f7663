package main

import (
	"os"

	"github.com/ScottBrooks/flyscene"
	log "github.com/sirupsen/logrus"
)

func main() {
	cmd := flyscene.NewCommand("flysphere", "FlySphere", false)
	if err := cmd.Execute(); err != nil {
		log.WithError(err).Error("flysphere failed")
		os.Exit(1)
	}
}
