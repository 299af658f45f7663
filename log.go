package flyscene

import (
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("pkg", "flyscene")
