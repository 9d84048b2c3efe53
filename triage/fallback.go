package triage

import "github.com/poiesic/careguide/core"

// Fixed terminal states. They bypass rule evaluation entirely.
const (
	EmptyInputRuleID     = "empty_input"
	EmptyInputConfidence = 0.2
	FallbackRuleID       = "fallback"
	FallbackConfidence   = 0.3

	// NonSpecificConditionKey is the condition key of both terminal states.
	NonSpecificConditionKey = "비특이적 증상"

	noRuleMatchedReason = "no_rule_matched"
)

func (t *Triager) emptyInputCandidate() core.Candidate {
	return core.Candidate{
		ConditionKey:        NonSpecificConditionKey,
		DisplayLabel:        "추가 정보 필요",
		SuspectedConditions: []string{"증상이 충분히 입력되지 않아 추가 정보가 필요합니다"},
		Departments:         []string{"내과"},
		Emergency:           false,
		Urgency:             core.UrgencyObserve,
		ActionReason:        "증상 정보가 부족해 우선 추가 정보가 필요합니다.",
		NextActions:         []string{"통증 위치/기간/동반 증상을 조금 더 구체적으로 입력해 주세요."},
		Confidence:          EmptyInputConfidence,
		ConfidenceLabel:     t.label(EmptyInputConfidence),
		RuleID:              EmptyInputRuleID,
		Evidence:            core.RuleEvidence{Reason: EmptyInputRuleID},
	}
}

func (t *Triager) fallbackCandidate() core.Candidate {
	return core.Candidate{
		ConditionKey:        NonSpecificConditionKey,
		DisplayLabel:        "비특이적 증상",
		SuspectedConditions: []string{"비특이적 증상으로 추가 평가가 필요합니다"},
		Departments:         []string{"내과"},
		Emergency:           false,
		Urgency:             core.UrgencyRoutine,
		ActionReason:        "입력된 증상만으로 특정 패턴이 뚜렷하지 않아 일반 진료를 권장합니다.",
		NextActions:         []string{"증상이 지속/악화되면 내과 진료를 권장합니다."},
		Confidence:          FallbackConfidence,
		ConfidenceLabel:     t.label(FallbackConfidence),
		RuleID:              FallbackRuleID,
		Evidence:            core.RuleEvidence{Reason: noRuleMatchedReason},
	}
}
