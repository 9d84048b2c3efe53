package core

// EvidenceKind tags the variant held by an EvidencePayload.
type EvidenceKind int

const (
	// EvidenceAbsent means no evidence accompanies the retrieval request.
	EvidenceAbsent EvidenceKind = iota
	// EvidenceText is an opaque, already-serialized evidence string.
	EvidenceText
	// EvidenceMapping is a flat structured mapping, usually a RuleEvidence.
	EvidenceMapping
)

func (k EvidenceKind) String() string {
	switch k {
	case EvidenceAbsent:
		return "absent"
	case EvidenceText:
		return "text"
	case EvidenceMapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// EvidencePayload is the evidence supplied to retrieval: absent, a text
// string, or a structured mapping. The zero value is EvidenceAbsent.
type EvidencePayload struct {
	kind   EvidenceKind
	text   string
	fields map[string]any
}

// NoEvidence returns an absent payload.
func NoEvidence() EvidencePayload {
	return EvidencePayload{kind: EvidenceAbsent}
}

// TextEvidence wraps an evidence string.
func TextEvidence(text string) EvidencePayload {
	return EvidencePayload{kind: EvidenceText, text: text}
}

// MappingEvidence wraps a structured mapping. A nil mapping is treated as
// an empty one. The mapping is copied one level deep.
func MappingEvidence(fields map[string]any) EvidencePayload {
	cp := make(map[string]any, len(fields))
	for k, v := range fields {
		cp[k] = v
	}
	return EvidencePayload{kind: EvidenceMapping, fields: cp}
}

// EvidenceFromRule builds a mapping payload from a rule evaluation.
func EvidenceFromRule(ev RuleEvidence) EvidencePayload {
	return EvidencePayload{kind: EvidenceMapping, fields: ev.AsMapping()}
}

// Kind returns the variant tag.
func (p EvidencePayload) Kind() EvidenceKind {
	return p.kind
}

// Text returns the text of an EvidenceText payload, or "".
func (p EvidencePayload) Text() string {
	return p.text
}

// Fields returns the mapping of an EvidenceMapping payload, or nil.
func (p EvidencePayload) Fields() map[string]any {
	return p.fields
}

// StringList extracts a list of strings stored under key. Non-mapping
// payloads and values of any other shape yield nil.
func (p EvidencePayload) StringList(key string) []string {
	if p.kind != EvidenceMapping {
		return nil
	}
	switch v := p.fields[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
