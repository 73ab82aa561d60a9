// Package domain defines the agent card model and the registry's error taxonomy.
package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// AgentSkill describes one capability advertised by an agent card.
type AgentSkill struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// AgentCard is the manifest an agent serves from its well-known path.
type AgentCard struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Skills      []AgentSkill `json:"skills"`
}

// AgentRecord is one registered agent as held by the store.
type AgentRecord struct {
	ID           string    `json:"id"`
	Endpoint     string    `json:"url"`
	Card         AgentCard `json:"card"`
	Failures     int       `json:"-"`
	RegisteredAt time.Time `json:"registered_at"`
}

// ParseAgentCard decodes and validates an agent card document.
// Optional fields default to their zero values; unknown fields are ignored.
// Returns *CardValidationError when the document decodes but is structurally
// invalid.
func ParseAgentCard(data []byte) (*AgentCard, error) {
	var card AgentCard
	if err := json.Unmarshal(data, &card); err != nil {
		return nil, &CardValidationError{Problems: []string{fmt.Sprintf("not a valid JSON object: %v", err)}}
	}

	var problems []string
	if card.Name == "" {
		problems = append(problems, "name is required")
	}
	for i, skill := range card.Skills {
		if skill.Name == "" {
			problems = append(problems, fmt.Sprintf("skills[%d].name is required", i))
		}
	}
	if len(problems) > 0 {
		return nil, &CardValidationError{Problems: problems}
	}

	if card.Skills == nil {
		card.Skills = []AgentSkill{}
	}
	for i := range card.Skills {
		if card.Skills[i].Tags == nil {
			card.Skills[i].Tags = []string{}
		}
	}
	return &card, nil
}
