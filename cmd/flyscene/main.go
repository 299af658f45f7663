package main

import (
	"os"

	"github.com/ScottBrooks/flyscene"
	log "github.com/sirupsen/logrus"
)

func main() {
	cmd := flyscene.NewCommand("flyscene", "FlyScene", true)
	if err := cmd.Execute(); err != nil {
		log.WithError(err).Error("flyscene failed")
		os.Exit(1)
	}
}
