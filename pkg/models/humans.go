// Package models contains the value types exchanged with the rentahuman.ai
// API. All identifiers are assigned by the remote service; the client only
// constructs these from parsed responses and never mutates them afterward.
//
// Go field names are the internal naming convention; the JSON tags carry the
// wire (camelCase) names, so marshaling a decoded entity reproduces the
// original payload keys.
package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// CryptoWallet is a payout wallet attached to a human profile.
type CryptoWallet struct {
	Chain   string `json:"chain"`
	Address string `json:"address"`
}

// Skill is a named capability category offered on the platform.
type Skill struct {
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

// SkillList decodes the /skills response, which is not uniform across
// deployments: it may be a bare string array or an array of skill objects.
type SkillList []Skill

// UnmarshalJSON accepts either ["Packages", ...] or [{"name": ...}, ...].
func (s *SkillList) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err == nil {
		out := make(SkillList, 0, len(names))
		for _, n := range names {
			out = append(out, Skill{Name: n})
		}
		*s = out
		return nil
	}

	var objs []Skill
	if err := json.Unmarshal(data, &objs); err != nil {
		return fmt.Errorf("skills payload is neither string nor object list: %w", err)
	}
	*s = SkillList(objs)
	return nil
}

// Human is a hireable profile on rentahuman.ai.
type Human struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Location       string         `json:"location,omitempty"`
	Rate           float64        `json:"rate,omitempty"` // hourly rate in USD
	Skills         []string       `json:"skills,omitempty"`
	Bio            string         `json:"bio,omitempty"`
	Availability   string         `json:"availability,omitempty"`
	CryptoWallets  []CryptoWallet `json:"cryptoWallets,omitempty"`
	Rating         float64        `json:"rating,omitempty"`
	CompletedTasks int            `json:"completedTasks,omitempty"`
	CreatedAt      string         `json:"createdAt,omitempty"`
}

// Summary returns a one-line profile summary for agent consumption.
func (h Human) Summary() string {
	parts := []string{fmt.Sprintf("%s (%s)", h.Name, h.ID)}
	if h.Location != "" {
		parts = append(parts, "in "+h.Location)
	}
	if h.Rate > 0 {
		parts = append(parts, fmt.Sprintf("$%s/hr", formatRate(h.Rate)))
	}
	if len(h.Skills) > 0 {
		skills := h.Skills
		if len(skills) > 5 {
			skills = skills[:5]
		}
		parts = append(parts, "skills: "+strings.Join(skills, ", "))
	}
	if h.Rating > 0 {
		parts = append(parts, fmt.Sprintf("rating: %.1f", h.Rating))
	}
	return strings.Join(parts, " | ")
}

// Review is a rating left for a human after a completed task.
type Review struct {
	ID        string  `json:"id,omitempty"`
	Rating    float64 `json:"rating"`
	Comment   string  `json:"comment,omitempty"`
	CreatedAt string  `json:"createdAt,omitempty"`
}

func formatRate(rate float64) string {
	return strconv.FormatFloat(rate, 'f', -1, 64)
}
