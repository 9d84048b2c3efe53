package retrieval

import (
	"math"
	"net/url"
	"sort"
	"strings"

	"github.com/poiesic/careguide/core"
	"github.com/poiesic/careguide/textnorm"
)

// PubMedSearchURL prefixes the search link given to documents without a URL.
const PubMedSearchURL = "https://pubmed.ncbi.nlm.nih.gov/?term="

// indexedDoc caches the normalized views of a document used for matching.
type indexedDoc struct {
	doc         core.EvidenceDoc
	keywordText string
	titleTokens map[string]struct{}
	bodyTokens  map[string]struct{}
}

func indexDocuments(docs []core.EvidenceDoc) []indexedDoc {
	out := make([]indexedDoc, len(docs))
	for i, d := range docs {
		normalized := make([]string, 0, len(d.Keywords))
		for _, kw := range d.Keywords {
			if n := textnorm.Normalize(kw); n != "" {
				normalized = append(normalized, n)
			}
		}
		d.Conditions = append([]string(nil), d.Conditions...)
		d.Keywords = append([]string(nil), d.Keywords...)
		out[i] = indexedDoc{
			doc:         d,
			keywordText: strings.Join(normalized, " "),
			titleTokens: textnorm.TokenSet(d.Title),
			bodyTokens:  textnorm.TokenSet(d.Abstract),
		}
	}
	return out
}

// ScoreDocuments ranks docs against q and returns at most topK results with
// a positive score. topK below 1 is treated as 1.
func ScoreDocuments(q core.Query, docs []core.EvidenceDoc, topK int, p Params) []core.ScoredDoc {
	return scoreIndexed(q, indexDocuments(docs), topK, p)
}

type scored struct {
	raw float64
	doc core.ScoredDoc
}

func scoreIndexed(q core.Query, docs []indexedDoc, topK int, p Params) []core.ScoredDoc {
	topK = max(topK, 1)

	results := make([]scored, 0, len(docs))
	for i := range docs {
		raw, ev := scoreDocument(q, &docs[i], p)
		if raw <= 0 {
			continue
		}
		doc := docs[i].doc
		doc.Conditions = append([]string(nil), doc.Conditions...)
		doc.Keywords = append([]string(nil), doc.Keywords...)
		if doc.URL == "" {
			doc.URL = fallbackURL(doc, q.ConditionKey)
		}
		results = append(results, scored{raw: raw, doc: core.ScoredDoc{EvidenceDoc: doc, Evidence: ev}})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].raw > results[j].raw
	})
	if len(results) > topK {
		results = results[:topK]
	}

	out := make([]core.ScoredDoc, len(results))
	for i, r := range results {
		out[i] = r.doc
	}
	return out
}

func scoreDocument(q core.Query, d *indexedDoc, p Params) (float64, core.RetrievalEvidence) {
	conditionMatch := q.ConditionKey != "" && d.doc.HasCondition(q.ConditionKey)
	bonus := 0.0
	if conditionMatch {
		bonus = p.ConditionBonus
	}

	var matchedKeywords, matchedTitle, matchedBody []string
	for _, term := range q.Terms {
		if d.keywordText != "" && strings.Contains(d.keywordText, term) {
			matchedKeywords = append(matchedKeywords, term)
		}
		if _, ok := d.titleTokens[term]; ok {
			matchedTitle = append(matchedTitle, term)
		}
		if _, ok := d.bodyTokens[term]; ok {
			matchedBody = append(matchedBody, term)
		}
	}

	overlap := p.KeywordWeight*float64(len(matchedKeywords)) +
		p.TitleWeight*float64(len(matchedTitle)) +
		p.BodyWeight*float64(len(matchedBody))

	typeWeight := p.TypeWeight(d.doc.Type)
	recency := recencyBoost(d.doc.Year, p)
	redFlagBoost := 0.0
	if len(q.RedFlags) > 0 {
		if d.doc.Type == core.DocTypeEmergency {
			redFlagBoost += p.EmergencyRedFlagBoost
		}
		if d.doc.Type == core.DocTypeGuideline || d.doc.Type == core.DocTypeClinical {
			redFlagBoost += p.SupportiveRedFlagBoost
		}
	}

	raw := (bonus+overlap)*typeWeight + recency + redFlagBoost

	return raw, core.RetrievalEvidence{
		Score:           round(raw, 2),
		ConditionMatch:  conditionMatch,
		DocType:         d.doc.Type,
		TypeWeight:      typeWeight,
		RecencyBoost:    recency,
		RedFlags:        append([]string{}, q.RedFlags...),
		RedFlagBoost:    redFlagBoost,
		MatchedKeywords: sortedUnique(matchedKeywords),
		MatchedTitle:    sortedUnique(matchedTitle),
		MatchedBody:     sortedUnique(matchedBody),
	}
}

func recencyBoost(year int, p Params) float64 {
	age := max(p.ReferenceYear-year, 0)
	return round(math.Max(0, p.RecencyCeiling-p.RecencyDecay*float64(age)), 3)
}

func fallbackURL(doc core.EvidenceDoc, conditionKey string) string {
	term := strings.TrimSpace(doc.SearchQuery)
	if term == "" {
		term = conditionKey
	}
	return PubMedSearchURL + url.QueryEscape(term)
}

func sortedUnique(terms []string) []string {
	out := textnorm.Dedupe(terms)
	sort.Strings(out)
	return out
}

func round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
