package ledger

import "fmt"

// Purpose represents what an executed spending paid for
type Purpose string

const (
	// PurposeProduction represents paying for unit production
	PurposeProduction Purpose = "PRODUCTION"

	// PurposeConstruction represents placing structures through construction effects
	PurposeConstruction Purpose = "CONSTRUCTION"

	// PurposeResearch represents paying resource costs attached to research
	PurposeResearch Purpose = "RESEARCH"

	// PurposeLeadership represents spending influence for command tokens
	PurposeLeadership Purpose = "LEADERSHIP"

	// PurposeAgenda represents influence committed to votes and riders
	PurposeAgenda Purpose = "AGENDA"
)

// AllPurposes returns all valid spend purposes
func AllPurposes() []Purpose {
	return []Purpose{
		PurposeProduction,
		PurposeConstruction,
		PurposeResearch,
		PurposeLeadership,
		PurposeAgenda,
	}
}

// String returns the string representation of the Purpose
func (p Purpose) String() string {
	return string(p)
}

// IsValid checks if the purpose is valid
func (p Purpose) IsValid() bool {
	switch p {
	case PurposeProduction,
		PurposeConstruction,
		PurposeResearch,
		PurposeLeadership,
		PurposeAgenda:
		return true
	default:
		return false
	}
}

// ToPhase maps the purpose to the game phase it is reported under
func (p Purpose) ToPhase() (Phase, error) {
	phase, exists := PurposeToPhaseMap[p]
	if !exists {
		return "", fmt.Errorf("unknown purpose: %s", p)
	}
	return phase, nil
}

// ParsePurpose parses a string into a Purpose
func ParsePurpose(s string) (Purpose, error) {
	p := Purpose(s)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid purpose: %s", s)
	}
	return p, nil
}

// Phase represents the game phase a spend is reported under
type Phase string

const (
	// PhaseStrategy covers strategy-card driven spending
	PhaseStrategy Phase = "STRATEGY_PHASE"

	// PhaseAction covers spending during tactical and component actions
	PhaseAction Phase = "ACTION_PHASE"

	// PhaseAgenda covers spending while laws and directives are resolved
	PhaseAgenda Phase = "AGENDA_PHASE"
)

// AllPhases returns all valid phases
func AllPhases() []Phase {
	return []Phase{
		PhaseStrategy,
		PhaseAction,
		PhaseAgenda,
	}
}

// PurposeToPhaseMap maps spend purposes to their reporting phase
var PurposeToPhaseMap = map[Purpose]Phase{
	PurposeProduction:   PhaseAction,
	PurposeConstruction: PhaseAction,
	PurposeResearch:     PhaseAction,
	PurposeLeadership:   PhaseStrategy,
	PurposeAgenda:       PhaseAgenda,
}

// String returns the string representation of the Phase
func (p Phase) String() string {
	return string(p)
}

// IsValid checks if the phase is valid
func (p Phase) IsValid() bool {
	switch p {
	case PhaseStrategy, PhaseAction, PhaseAgenda:
		return true
	default:
		return false
	}
}

// ParsePhase parses a string into a Phase
func ParsePhase(s string) (Phase, error) {
	p := Phase(s)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid phase: %s", s)
	}
	return p, nil
}
