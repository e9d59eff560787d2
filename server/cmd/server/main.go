package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/bloodduel/config"
	"github.com/automoto/bloodduel/logger"
	"github.com/automoto/bloodduel/server/core"
	"github.com/automoto/bloodduel/shared/protocol"
	"github.com/sirupsen/logrus"
)

func main() {
	envErr := config.LoadEnv()
	logger.Init()
	log := logger.For("relay")
	if envErr != nil {
		log.WithError(envErr).Warn("ignoring .env")
	}

	port := flag.Uint("port", uint(config.EnvInt("RELAY_PORT", int(config.Network.DefaultPort))), "Relay port")
	version := flag.String("version", protocol.Version, "Required client protocol version (empty = accept any)")
	flag.Parse()

	server := core.NewServer(*version)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Info("shutting down relay")
		server.Stop()
		os.Exit(0)
	}()

	log.WithFields(logrus.Fields{"port": *port, "version": *version}).Info("starting relay")
	if err := server.Start(*port); err != nil {
		log.WithError(err).Fatal("relay stopped")
	}
}
