package service

import (
	"context"
	"log"
	"time"
)

// RunHealthcheckLoop periodically probes every registered agent and evicts
// the ones that stay unreachable. It blocks until ctx is cancelled; an
// in-progress sweep stops at the next probe boundary.
func (s *Service) RunHealthcheckLoop(ctx context.Context) {
	ticker := time.NewTicker(s.config.HealthCheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweepAgents(ctx)
		}
	}
}

// sweepAgents probes a point-in-time snapshot of endpoints. Agents registered
// after the snapshot wait for the next sweep; agents unregistered mid-sweep
// make the probe result a no-op in the store.
func (s *Service) sweepAgents(ctx context.Context) {
	endpoints := s.store.Endpoints()

	for _, endpoint := range endpoints {
		select {
		case <-ctx.Done():
			return
		default:
		}

		probeCtx, cancel := context.WithTimeout(ctx, s.config.ProbeTimeout)
		alive := s.client.CheckAlive(probeCtx, endpoint)
		cancel()

		outcome := s.store.RecordProbeResult(endpoint, alive)
		if !outcome.Known || alive {
			continue
		}

		if outcome.Evicted {
			log.Printf("Agent '%s' at %s deregistered (unreachable after %d checks)",
				outcome.Name, endpoint, s.store.MaxFailures())
		} else {
			log.Printf("Agent %s healthcheck failed (%d/%d)",
				endpoint, outcome.Failures, s.store.MaxFailures())
		}
	}
}
