package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

var Log *logrus.Logger

func BoostrapLogger() {
	Log = logrus.New()
	Log.SetFormatter(&logrus.TextFormatter{
		DisableColors: false,
		DisableQuote:  false,
		FullTimestamp: false,
	})
	Log.SetLevel(logrus.DebugLevel)
	Log.SetReportCaller(true)
	Log.SetOutput(os.Stdout)
}
