package main

import (
	"context"
	"errors"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/3-lines-studio/welcome/cmd/welcome/app/cmd"
)

func main() {
	if err := cmd.NewWelcomeCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			logrus.Error(err)
		}
		os.Exit(1)
	}
}
