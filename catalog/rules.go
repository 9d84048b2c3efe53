package catalog

import "github.com/poiesic/careguide/core"

// defaultRules is the built-in triage rule table. Order matters: it is the
// evaluation order and the final tie-break after confidence, emergency
// status and weight.
var defaultRules = []core.Rule{
	{
		ID:              "rlq_abdominal_pain_pattern",
		ConditionKey:    "복부 질환",
		DisplayLabel:    "우하복부 급성 복통 패턴(수술적 원인 평가 필요 가능)",
		GateKeywords:    []string{"오른쪽", "우하", "오른쪽아랫배", "오른쪽 아랫배", "우하복부"},
		SupportKeywords: []string{"복통", "배", "통증", "구토", "식욕", "발열", "열", "걷기", "움직", "반발", "눌렀"},
		Departments:     []string{"외과", "응급의학과"},
		Emergency:       false,
		Urgency:         core.UrgencyUrgent,
		Weight:          0.78,
		ActionReason:    "오른쪽 아랫배 통증은 일부 경우 빠른 평가가 필요한 원인과 연관될 수 있어, 오늘 안에 진료를 권장합니다.",
		NextActions: []string{
			"오늘 안에 외과 또는 응급의학과 진료를 권장합니다.",
			"발열/구토/통증 악화/걷기 어려움/눌렀다 뗄 때 심해짐이 있으면 응급실 방문을 고려하세요.",
			"통증 시작 시점, 위치 변화, 동반 증상(구토/발열/설사)을 메모해 의료진에게 전달하세요.",
		},
	},
	{
		ID:              "acute_coronary_syndrome_pattern",
		ConditionKey:    "급성 관상동맥 증후군",
		DisplayLabel:    "흉통-심혈관 위험 패턴",
		GateKeywords:    []string{"가슴", "흉통"},
		SupportKeywords: []string{"통증", "쥐어짜", "압박", "식은땀", "호흡곤란", "방사"},
		Departments:     []string{"응급의학과", "심장내과"},
		Emergency:       true,
		Urgency:         core.UrgencyEmergency,
		Weight:          0.95,
		ActionReason:    "흉통과 동반 증상은 즉시 평가가 필요한 경우가 있어, 지체 없이 진료가 필요합니다.",
		NextActions: []string{
			"즉시 응급실 방문을 권장합니다.",
			"가능하면 혼자 이동하지 말고 주변 도움을 받으세요.",
		},
	},
	{
		ID:              "respiratory_distress_pattern",
		ConditionKey:    "급성 호흡기 질환",
		DisplayLabel:    "호흡곤란 위험 패턴",
		GateKeywords:    []string{"호흡", "숨"},
		SupportKeywords: []string{"곤란", "가쁘", "쌕쌕", "천명", "청색", "가슴"},
		Departments:     []string{"응급의학과", "호흡기내과"},
		Emergency:       true,
		Urgency:         core.UrgencyEmergency,
		Weight:          0.90,
		ActionReason:    "호흡곤란은 중증 원인과 연관될 수 있어 즉시 평가가 필요합니다.",
		NextActions: []string{
			"즉시 응급실 방문을 권장합니다.",
			"입술/손끝이 파래지거나 의식이 흐려지면 즉시 119를 고려하세요.",
		},
	},
	{
		ID:              "acute_pharyngitis_pattern",
		ConditionKey:    "급성 인두염",
		DisplayLabel:    "인후통-상기도 감염 패턴",
		GateKeywords:    []string{"목", "인후"},
		SupportKeywords: []string{"아프", "삼키", "따끔", "기침", "발열", "미열", "콧물"},
		Departments:     []string{"이비인후과"},
		Emergency:       false,
		Urgency:         core.UrgencyRoutine,
		Weight:          0.65,
		ActionReason:    "흔한 상기도 증상 패턴과 유사하나, 증상이 지속되면 평가가 필요합니다.",
		NextActions: []string{
			"증상이 3~5일 이상 지속되거나 고열이 있으면 진료를 권장합니다.",
			"호흡곤란/심한 탈수/의식 변화가 있으면 즉시 응급실을 고려하세요.",
		},
	},
	{
		ID:              "acute_abdominal_pain_general",
		ConditionKey:    "복부 질환",
		DisplayLabel:    "급성 복통 패턴",
		GateKeywords:    []string{"복통", "배"},
		SupportKeywords: []string{"구토", "설사", "발열", "오른쪽", "압통", "식욕"},
		Departments:     []string{"내과"},
		Emergency:       false,
		Urgency:         core.UrgencyRoutine,
		Weight:          0.60,
		ActionReason:    "복통은 다양한 원인이 있어, 증상 양상에 따라 진료가 필요할 수 있습니다.",
		NextActions: []string{
			"통증이 지속되거나 악화되면 내과 진료를 권장합니다.",
			"혈변/토혈/심한 탈수/복부가 딱딱해지는 느낌이 있으면 응급실을 고려하세요.",
		},
	},
}
