package badger

import (
	"fmt"
)

// Key prefixes for different data types
const (
	rulePrefix          = "rule"
	ruleIDSeq           = "ruleseq"
	documentPrefix      = "evdoc"
	documentCondPrefix  = "evdocc"
	documentIDSeq       = "evdocseq"
	conditionKeyDivider = "\x00"
)

// makeRuleKey generates a key for a rule by ID.
func makeRuleKey(id string) []byte {
	return []byte(fmt.Sprintf("%s:%s", rulePrefix, id))
}

// makeDocumentKey generates a key for an evidence document by ID.
func makeDocumentKey(id string) []byte {
	return []byte(fmt.Sprintf("%s:%s", documentPrefix, id))
}

// makeDocumentConditionKey generates a composite key for the condition index.
// Format: prefix:condition\x00docID
func makeDocumentConditionKey(conditionKey, docID string) []byte {
	prefix := makePartialDocumentConditionKey(conditionKey)
	buf := make([]byte, len(prefix)+len(docID))
	offset := copy(buf, prefix)
	copy(buf[offset:], docID)
	return buf
}

// makePartialDocumentConditionKey generates a partial key for condition queries.
// Format: prefix:condition\x00
func makePartialDocumentConditionKey(conditionKey string) []byte {
	return []byte(documentCondPrefix + ":" + conditionKey + conditionKeyDivider)
}
