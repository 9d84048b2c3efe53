package catalog

import "github.com/poiesic/careguide/core"

// ReferenceYear is the year treated as "now" when computing recency for the
// built-in corpus.
const ReferenceYear = 2025

// defaultCorpus is the built-in evidence corpus. Documents without a URL get
// a PubMed search link derived from SearchQuery at retrieval time.
var defaultCorpus = []core.EvidenceDoc{
	{
		ID:           "pharyngitis-adults-2021",
		Title:        "Acute pharyngitis in adults",
		Source:       "PubMed",
		Type:         core.DocTypeReview,
		Year:         2021,
		Organization: "The Lancet",
		Abstract:     "급성 인두염은 바이러스 감염이 가장 흔한 원인이며, 대부분 대증 치료로 호전된다. 항생제는 제한적으로 사용해야 한다.",
		Conditions:   []string{"급성 인두염"},
		Keywords:     []string{"인두염", "인후통", "목 통증", "바이러스", "대증 치료", "항생제", "pharyngitis", "sore throat"},
		SearchQuery:  "acute pharyngitis adults",
	},
	{
		ID:           "sore-throat-prescribing-2018",
		Title:        "Sore throat (acute): antimicrobial prescribing",
		Source:       "Guideline",
		Type:         core.DocTypeGuideline,
		Year:         2018,
		Organization: "NICE",
		Abstract:     "급성 인후 감염에서 항생제 처방이 필요한 경우를 선별하기 위한 점수 체계와 지연 처방 전략을 제시한다.",
		Conditions:   []string{"급성 인두염"},
		Keywords:     []string{"목 통증", "항생제 처방", "지연 처방", "antimicrobial prescribing"},
		SearchQuery:  "sore throat antimicrobial prescribing guideline",
	},
	{
		ID:           "strep-antigen-test-2020",
		Title:        "Rapid antigen detection test for group A streptococcus in children with pharyngitis",
		Source:       "Cochrane Library",
		Type:         core.DocTypeSystematic,
		Year:         2020,
		Organization: "Cochrane Database of Systematic Reviews",
		Abstract:     "소아 인후 감염에서 A군 연쇄상구균 신속 항원 검사의 진단 정확도를 체계적으로 분석하였다.",
		Conditions:   []string{"급성 인두염"},
		Keywords:     []string{"인두염", "연쇄상구균", "신속 항원 검사", "pharyngitis", "streptococcus"},
		SearchQuery:  "rapid antigen detection test group A streptococcus pharyngitis",
	},
	{
		ID:           "acs-management-2020",
		Title:        "Management of acute coronary syndromes",
		Source:       "PubMed",
		Type:         core.DocTypeReview,
		Year:         2020,
		Organization: "NEJM",
		Abstract:     "급성 관상동맥 증후군은 흉통과 발한을 동반하며, 조기 진단과 즉각적인 응급 처치가 생존율을 결정한다.",
		Conditions:   []string{"급성 관상동맥 증후군"},
		Keywords:     []string{"급성 관상동맥 증후군", "흉통", "심근경색", "발한", "acute coronary syndrome"},
		SearchQuery:  "management of acute coronary syndromes",
	},
	{
		ID:           "acs-esc-guideline-2023",
		Title:        "ESC Guidelines for the management of acute coronary syndromes",
		Source:       "Guideline",
		Type:         core.DocTypeGuideline,
		Year:         2023,
		Organization: "European Society of Cardiology",
		Abstract:     "흉통 환자의 초기 평가, 심전도와 고감도 트로포닌 기반 진단, 재관류 치료 시점에 대한 권고를 제시한다.",
		Conditions:   []string{"급성 관상동맥 증후군"},
		Keywords:     []string{"흉통", "심근경색", "트로포닌", "심전도", "acute coronary syndrome", "chest pain"},
		SearchQuery:  "ESC guidelines acute coronary syndromes",
	},
	{
		ID:           "chest-pain-emergency-2021",
		Title:        "Evaluation of acute chest pain in the emergency department",
		Source:       "PubMed",
		Type:         core.DocTypeEmergency,
		Year:         2021,
		Organization: "Circulation",
		Abstract:     "응급실 흉통 환자에서 위험 분류 도구를 활용해 고위험 환자를 신속히 선별하는 절차를 정리하였다.",
		Conditions:   []string{"급성 관상동맥 증후군"},
		Keywords:     []string{"흉통", "응급실", "위험 분류", "식은땀", "chest pain", "emergency department"},
		SearchQuery:  "acute chest pain emergency department evaluation",
	},
	{
		ID:           "dyspnea-emergency-2022",
		Title:        "Approach to acute dyspnea in the emergency department",
		Source:       "PubMed",
		Type:         core.DocTypeEmergency,
		Year:         2022,
		Organization: "Emergency Medicine Clinics of North America",
		Abstract:     "급성 호흡곤란 환자에서 저산소증, 청색증, 의식 변화 등 즉각적인 처치가 필요한 징후를 우선 확인한다.",
		Conditions:   []string{"급성 호흡기 질환"},
		Keywords:     []string{"호흡곤란", "저산소증", "청색증", "응급실", "dyspnea", "respiratory distress"},
		SearchQuery:  "acute dyspnea emergency department",
	},
	{
		ID:           "asthma-strategy-2024",
		Title:        "Global strategy for asthma management and prevention",
		Source:       "Guideline",
		Type:         core.DocTypeGuideline,
		Year:         2024,
		Organization: "Global Initiative for Asthma",
		Abstract:     "천식 급성 악화 시 쌕쌕거림과 호흡곤란의 중증도 평가 및 단계적 치료 방법을 제시한다.",
		Conditions:   []string{"급성 호흡기 질환"},
		Keywords:     []string{"천식", "쌕쌕", "천명", "호흡곤란", "asthma", "wheezing"},
		SearchQuery:  "global strategy asthma management prevention",
	},
	{
		ID:           "copd-exacerbation-2019",
		Title:        "Treatment of acute exacerbations of chronic obstructive pulmonary disease",
		Source:       "Cochrane Library",
		Type:         core.DocTypeSystematic,
		Year:         2019,
		Organization: "Cochrane Database of Systematic Reviews",
		Abstract:     "만성 폐쇄성 폐질환 급성 악화에서 기관지 확장제와 전신 스테로이드의 효과를 종합하였다.",
		Conditions:   []string{"급성 호흡기 질환"},
		Keywords:     []string{"만성 폐쇄성 폐질환", "급성 악화", "숨가쁨", "copd", "exacerbation"},
		SearchQuery:  "acute exacerbation COPD treatment systematic review",
	},
	{
		ID:           "acute-abdominal-pain-2019",
		Title:        "Evaluation of acute abdominal pain",
		Source:       "PubMed",
		Type:         core.DocTypeReview,
		Year:         2019,
		Organization: "BMJ",
		Abstract:     "복통은 비특이적인 증상일 수 있으나, 위치와 양상에 따라 외과적 질환 가능성을 평가해야 한다.",
		Conditions:   []string{"복부 질환"},
		Keywords:     []string{"복통", "급성 복증", "구토", "발열", "abdominal pain"},
		SearchQuery:  "evaluation of acute abdominal pain",
	},
	{
		ID:           "appendicitis-guideline-2020",
		Title:        "Diagnosis and treatment of acute appendicitis: 2020 update of the WSES Jerusalem guidelines",
		Source:       "Guideline",
		Type:         core.DocTypeGuideline,
		Year:         2020,
		Organization: "World Journal of Emergency Surgery",
		Abstract:     "우하복부 통증, 반발 압통, 발열이 있는 환자에서 급성 충수염의 진단 점수와 영상 검사 활용을 권고한다.",
		Conditions:   []string{"복부 질환"},
		Keywords:     []string{"충수염", "우하복부", "오른쪽 아랫배", "반발 압통", "appendicitis"},
		SearchQuery:  "acute appendicitis WSES Jerusalem guidelines",
	},
	{
		ID:           "appendicitis-scoring-2021",
		Title:        "Clinical scoring systems for suspected appendicitis in adults",
		Source:       "PubMed",
		Type:         core.DocTypeClinical,
		Year:         2021,
		Organization: "JAMA Surgery",
		Abstract:     "오른쪽 아랫배 통증 성인 환자에서 임상 점수 체계를 이용한 위험도 분류의 성능을 비교하였다.",
		Conditions:   []string{"복부 질환"},
		Keywords:     []string{"충수염", "오른쪽 아랫배", "임상 점수", "식욕 부진", "appendicitis score"},
		SearchQuery:  "clinical scoring suspected appendicitis adults",
	},
	{
		ID:           "gi-bleeding-emergency-2021",
		Title:        "Emergency management of acute upper gastrointestinal bleeding",
		Source:       "PubMed",
		Type:         core.DocTypeEmergency,
		Year:         2021,
		Organization: "Gut",
		Abstract:     "토혈이나 흑색변을 보이는 환자에서 혈역학적 안정화와 조기 내시경 시행 기준을 정리하였다.",
		Conditions:   []string{"복부 질환"},
		Keywords:     []string{"토혈", "혈변", "검은 변", "위장관 출혈", "gastrointestinal bleeding"},
		SearchQuery:  "emergency management upper gastrointestinal bleeding",
	},
	{
		ID:           "nonspecific-symptoms-2017",
		Title:        "Persistent physical symptoms in primary care",
		Source:       "PubMed",
		Type:         core.DocTypeReview,
		Year:         2017,
		Organization: "BMJ",
		Abstract:     "뚜렷한 원인이 확인되지 않는 비특이적 신체 증상에 대해 일차 진료에서의 단계적 평가와 추적 관찰을 제안한다.",
		Conditions:   []string{"비특이적 증상"},
		Keywords:     []string{"비특이적 증상", "일차 진료", "추적 관찰", "primary care"},
		SearchQuery:  "persistent physical symptoms primary care",
	},
	{
		ID:           "telephone-triage-red-flags-2020",
		Title:        "Red flag symptoms in telephone triage",
		Source:       "PubMed",
		Type:         core.DocTypeClinical,
		Year:         2020,
		Organization: "British Journal of General Practice",
		Abstract:     "전화 트리아지에서 흉통, 호흡곤란, 의식 저하 등 경고 증상을 놓치지 않기 위한 질문 구성을 분석하였다.",
		Conditions:   []string{"비특이적 증상", "급성 관상동맥 증후군", "급성 호흡기 질환"},
		Keywords:     []string{"경고 증상", "트리아지", "흉통", "호흡곤란", "red flag", "triage"},
		SearchQuery:  "red flag symptoms telephone triage",
	},
}

// defaultVocabulary holds the synonym and red-flag tables used to build
// retrieval queries.
var defaultVocabulary = core.Vocabulary{
	Synonyms: map[string][]string{
		"급성 인두염": {"인후통", "목감기", "pharyngitis", "sore throat"},
		"급성 관상동맥 증후군": {"흉통", "심근경색", "협심증", "acute coronary syndrome", "chest pain"},
		"급성 호흡기 질환": {"호흡곤란", "천식", "dyspnea", "respiratory distress"},
		"복부 질환": {"복통", "충수염", "abdominal pain", "appendicitis"},
		"비특이적 증상": {"일차 진료", "primary care"},
	},
	RedFlags: []core.RedFlagCategory{
		{Name: "cardiac", Phrases: []string{"흉통", "가슴 통증", "쥐어짜", "식은땀", "방사통", "가슴이 답답"}},
		{Name: "respiratory", Phrases: []string{"호흡곤란", "숨이 차", "숨쉬기 힘", "청색증", "입술이 파래"}},
		{Name: "gastrointestinal", Phrases: []string{"토혈", "혈변", "검은 변", "복부가 딱딱", "심한 복통"}},
	},
}
