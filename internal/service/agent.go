package service

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/aleostudio/a2a-registry/internal/adapter/agentclient"
	"github.com/aleostudio/a2a-registry/internal/domain"
	"github.com/aleostudio/a2a-registry/internal/registry"
)

// RegisterAgent fetches the candidate's agent card, validates it, and commits
// it into the store. rawURL must be an absolute http(s) URL; it is rejected
// before any network I/O otherwise. Fetch failures yield *domain.UpstreamError
// and invalid cards yield *domain.CardValidationError, so callers can tell
// the two apart.
func (s *Service) RegisterAgent(ctx context.Context, rawURL string) (*domain.AgentRecord, error) {
	endpoint, err := normalizeEndpoint(rawURL)
	if err != nil {
		return nil, err
	}

	fetchCtx, cancel := context.WithTimeout(ctx, s.config.FetchTimeout)
	defer cancel()

	body, err := s.client.FetchCard(fetchCtx, endpoint)
	if err != nil {
		return nil, &domain.UpstreamError{URL: agentclient.CardURL(endpoint), Err: err}
	}

	card, err := domain.ParseAgentCard(body)
	if err != nil {
		return nil, err
	}

	record := s.store.Put(endpoint, *card)
	log.Printf("Agent '%s' registered at %s", card.Name, endpoint)
	return &record, nil
}

// UnregisterAgent removes an agent by URL. Returns the normalized endpoint
// that was removed, or domain.ErrAgentNotFound.
func (s *Service) UnregisterAgent(rawURL string) (string, error) {
	endpoint := strings.TrimRight(rawURL, "/")
	if err := s.store.Remove(endpoint); err != nil {
		return "", err
	}
	log.Printf("Agent at %s unregistered", endpoint)
	return endpoint, nil
}

// DiscoverAgents returns every registered agent with a skill matching the
// keyword. An empty result is not an error.
func (s *Service) DiscoverAgents(skill string) []domain.AgentRecord {
	return registry.MatchSkill(s.store.Snapshot(), skill)
}

// ListAgents returns all registered agents.
func (s *Service) ListAgents() []domain.AgentRecord {
	return s.store.Snapshot()
}

func normalizeEndpoint(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidURL, rawURL)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidURL, rawURL)
	}
	return strings.TrimRight(rawURL, "/"), nil
}
