// Package agent runs the passthrough daemon, either in the foreground or
// as an OS-managed service.
package agent

import (
	"os"

	"github.com/kardianos/service"
	"github.com/sirupsen/logrus"

	"github.com/hubman-io/hubman/internal/config"
	"github.com/hubman-io/hubman/internal/daemon"
)

// StartWebService builds and starts the passthrough daemon.
func StartWebService(cfg *config.Config) (*daemon.Server, error) {
	server, err := daemon.NewServer(cfg)
	if err != nil {
		return nil, err
	}

	if err := server.Start(); err != nil {
		return nil, err
	}

	return server, nil
}

// ServiceProgram implements the service.Interface
type ServiceProgram struct {
	exit   chan struct{}
	config *config.Config
	server *daemon.Server
}

func (p *ServiceProgram) Start(s service.Service) error {
	logrus.Infoln("JupyterHub manager service starting")
	go p.run()
	return nil
}

func (p *ServiceProgram) run() {
	server, err := StartWebService(p.config)
	if err != nil {
		logrus.WithError(err).Errorf("Failed to start web service")
		return
	}

	p.server = server
	logrus.Infoln("JupyterHub manager service is running")
}

func (p *ServiceProgram) Stop(s service.Service) error {
	logrus.Infoln("JupyterHub manager service stopping")
	if p.server != nil {
		p.server.Stop()
	}
	close(p.exit)
	return nil
}

// CreateService creates a new OS service instance wrapping the daemon.
func CreateService(cfg *config.Config) (service.Service, error) {
	svcConfig := getServiceConfig()

	prg := &ServiceProgram{
		exit:   make(chan struct{}),
		config: cfg,
	}

	return service.New(prg, svcConfig)
}

// getServiceConfig returns the service configuration
func getServiceConfig() *service.Config {
	exePath, err := os.Executable()
	if err != nil {
		logrus.Fatal(err)
	}

	return &service.Config{
		Name:        "hubman",
		DisplayName: "JupyterHub Manager Service",
		Description: "Local management API for a JupyterHub instance",
		Executable:  exePath,
		Arguments: []string{
			"server", // Runs the web server
		},
	}
}
