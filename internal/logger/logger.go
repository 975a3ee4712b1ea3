package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

var L *logrus.Logger

func Init() {
	L = logrus.New()
	L.SetOutput(os.Stdout)
	L.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	L.SetLevel(logrus.InfoLevel)
}

// Get garante um logger utilizável mesmo quando Init não rodou (testes).
func Get() *logrus.Logger {
	if L == nil {
		Init()
	}
	return L
}
