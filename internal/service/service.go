// Package service implements the registry operations on top of the store:
// registration, discovery, listing, unregistration, and the healthcheck loop.
package service

import (
	"time"

	"github.com/aleostudio/a2a-registry/internal/adapter/agentclient"
	"github.com/aleostudio/a2a-registry/internal/config"
	"github.com/aleostudio/a2a-registry/internal/registry"
)

type Service struct {
	store  *registry.Store
	client *agentclient.Client
	config *config.Config
}

func New(store *registry.Store, client *agentclient.Client, cfg *config.Config) *Service {
	return &Service{
		store:  store,
		client: client,
		config: cfg,
	}
}

// Status describes the registry for the health endpoint.
type Status struct {
	Agents        int
	CheckInterval time.Duration
	Version       string
}

func (s *Service) Status() Status {
	return Status{
		Agents:        s.store.Count(),
		CheckInterval: s.config.HealthCheckInterval,
		Version:       s.config.AppVersion,
	}
}
