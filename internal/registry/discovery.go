package registry

import (
	"strings"

	"github.com/aleostudio/a2a-registry/internal/domain"
)

// MatchSkill filters a snapshot down to the records where keyword is a
// case-insensitive substring of any skill's name, description, or tags.
// A record appears at most once no matter how many skills match.
func MatchSkill(records []domain.AgentRecord, keyword string) []domain.AgentRecord {
	keyword = strings.ToLower(keyword)
	matches := []domain.AgentRecord{}

	for _, record := range records {
		for _, skill := range record.Card.Skills {
			if skillMatches(skill, keyword) {
				matches = append(matches, record)
				break
			}
		}
	}
	return matches
}

func skillMatches(skill domain.AgentSkill, keyword string) bool {
	if strings.Contains(strings.ToLower(skill.Name), keyword) {
		return true
	}
	if strings.Contains(strings.ToLower(skill.Description), keyword) {
		return true
	}
	for _, tag := range skill.Tags {
		if strings.Contains(strings.ToLower(tag), keyword) {
			return true
		}
	}
	return false
}
