package main

import (
	"github.com/sirupsen/logrus"

	"github.com/hubman-io/hubman/cmd/cli"
)

func main() {
	if err := cli.GetCommandOptions().Execute(); err != nil {
		logrus.Fatalf("Failed to execute command: %v", err)
	}
}
