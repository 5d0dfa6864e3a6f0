// Package assignment suggests which practitioner should pick up an unassigned injury.
package assignment

import (
	"fmt"
	"strings"

	"github.com/yigit/injurydesk/internal/app/models"
	"github.com/yigit/injurydesk/internal/pkg/apperrors"
)

// Criteria selects the signals that add to a practitioner's load score
type Criteria struct {
	// Specialization adds 1 when the practitioner is not a physiotherapist
	Specialization bool `json:"specialization"`
	// ActiveLoad adds the practitioner's number of active assignments
	ActiveLoad     bool `json:"activeLoad"`
}

// DefaultCriteria scores on specialization only
var DefaultCriteria = Criteria{Specialization: true}

// ParseCriteria reads a comma separated list of "specialization" and "workload".
// An empty string yields DefaultCriteria.
func ParseCriteria(raw string) (Criteria, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultCriteria, nil
	}

	var c Criteria
	for _, part := range strings.Split(raw, ",") {
		switch strings.ToLower(strings.TrimSpace(part)) {
		case "specialization", "specialisation":
			c.Specialization = true
		case "workload", "load", "active":
			c.ActiveLoad = true
		case "":
		default:
			return Criteria{}, apperrors.NewValidationError(fmt.Sprintf("unknown assignment criterion %q", part))
		}
	}

	return c, nil
}

// Score is one practitioner's load score broken down by signal
type Score struct {
	PractitionerID      string `json:"practitionerId"`
	Name                string `json:"name"`
	SpecializationScore int    `json:"specializationScore"`
	ActiveAssignments   int    `json:"activeAssignments"`
	Total               int    `json:"total"`
}

// Suggestion pairs an injury with the lowest scoring practitioner
type Suggestion struct {
	InjuryID       string   `json:"injuryId"`
	StudentID      string   `json:"studentId"`
	PractitionerID string   `json:"practitionerId"`
	Criteria       Criteria `json:"criteria"`
	Scores         []Score  `json:"scores"`
}

// Suggest picks the first reported injury (or the first injury when none is reported)
// and the practitioner with the lowest load score. Ties keep practitioner order.
// It reports false when there are no injuries, and also when there are no
// practitioners, since an injury alone cannot form a pairing.
func Suggest(injuries []models.Injury, practitioners []models.User, active []models.Assignment, criteria Criteria) (Suggestion, bool) {
	if len(injuries) == 0 || len(practitioners) == 0 {
		return Suggestion{}, false
	}

	candidate := injuries[0]
	for _, injury := range injuries {
		if injury.Status == models.InjuryStatusReported {
			candidate = injury
			break
		}
	}

	// Active counts are always reported, but only scored under ActiveLoad
	load := make(map[string]int)
	for _, a := range active {
		if a.Active {
			load[a.PractitionerID]++
		}
	}

	scores := make([]Score, 0, len(practitioners))
	best := 0
	for i := range practitioners {
		p := &practitioners[i]
		s := Score{PractitionerID: p.ID, Name: p.DisplayName()}

		if criteria.Specialization && !models.ContainsFold(p.SpecializationName(), "physio") {
			s.SpecializationScore = 1
		}
		s.ActiveAssignments = load[p.ID]

		s.Total = s.SpecializationScore
		if criteria.ActiveLoad {
			s.Total += s.ActiveAssignments
		}

		scores = append(scores, s)
		if s.Total < scores[best].Total {
			best = i
		}
	}

	return Suggestion{
		InjuryID:       candidate.ID,
		StudentID:      candidate.StudentID,
		PractitionerID: scores[best].PractitionerID,
		Criteria:       criteria,
		Scores:         scores,
	}, true
}
