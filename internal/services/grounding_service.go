package services

import (
	"context"
	"fmt"
	"log"
	"math"
	"regexp"
	"strings"

	"yatra/internal/models/request_models"
	"yatra/internal/models/response_models"
	"yatra/internal/repositories"
)

// GroundingServiceInterface flags hallucinations in assistant text: place
// names absent from the POI reference table and factual claims with no
// word overlap against the knowledge base. Thresholds are deliberately
// lenient so alternate spellings and rephrasings do not fail the check.
type GroundingServiceInterface interface {
	Evaluate(ctx context.Context, req request_models.GroundingRequest) response_models.EvaluationReport
}

type GroundingService struct {
	refRepo   repositories.POIReferenceRepository
	knowledge repositories.KnowledgeRepository
}

func NewGroundingService(refRepo repositories.POIReferenceRepository, knowledge repositories.KnowledgeRepository) GroundingServiceInterface {
	return &GroundingService{
		refRepo:   refRepo,
		knowledge: knowledge,
	}
}

var (
	quotedNameRe   = regexp.MustCompile(`"([^"]+)"`)
	titleCaseRe    = regexp.MustCompile(`\b([A-Z][a-z]+(?:\s+[A-Z][a-z]+)+)\b`)
	poiNamePunctRe = regexp.MustCompile(`[-_.,;:'()]+`)
	multiSpaceRe   = regexp.MustCompile(`\s+`)
	sentenceEndRe  = regexp.MustCompile(`[.!?]+`)
	longWordRe     = regexp.MustCompile(`\b\w{4,}\b`)
)

// Landmark names matched case-insensitively even when prose casing hides
// them from the title-case extractor.
var landmarkPatterns = []string{
	"City Palace",
	"Lake Pichola",
	"Jagdish Temple",
	"Saheliyon ki Bari",
	"Fateh Sagar",
	"Monsoon Palace",
	"Ahar Museum",
	"Bharatiya Lok Kala",
}

var claimIndicators = []*regexp.Regexp{
	regexp.MustCompile(`(?i)is (?:a|an|the)`),
	regexp.MustCompile(`(?i)was (?:a|an|the)`),
	regexp.MustCompile(`(?i)has (?:a|an|the)`),
	regexp.MustCompile(`(?i)located (?:at|in)`),
	regexp.MustCompile(`(?i)known (?:for|as)`),
	regexp.MustCompile(`(?i)famous (?:for|as)`),
	regexp.MustCompile(`(?i)built (?:in|by)`),
	regexp.MustCompile(`(?i)established`),
}

// Canonical Udaipur names and alternate spellings always treated as known.
var knownUdaipurNames = []string{
	"sajjangarh palace", "sajjangarh", "monsoon palace",
	"ghanta ghar", "clock tower",
	"dharohar school", "dharohar museum", "dharohar",
	"saheliyon ki bari", "sahelion ki bari",
	"bagore ki haveli", "bagore ki haveli museum",
	"jagdish temple", "jag mandir",
	"bharatiya lok kala", "bharatiya lok kala museum", "lok kala museum",
	"crystal gallery", "fateh prakash palace",
	"vintage car", "classic car", "vintage and classic car",
}

// Non-POI terms the title-case extractor picks up: dishes, deities, time
// slots, nicknames, generic descriptive phrases.
var groundingBlocklist = []string{
	"dal bati churma", "dal baati churma", "dal bati", "baati churma",
	"laal maans", "laal maas", "lal maans",
	"lord vishnu", "lord shiva", "lord krishna", "lord brahma",
	"rajasthani cuisine", "traditional cuisine", "street food",
	"boat ride", "scenic views", "morning light", "evening light",
	"late morning", "early morning", "early afternoon", "late afternoon",
	"early evening", "late evening", "lunch break", "morning break",
	"city of lakes", "city of lakes udaipur", "mewar kingdom", "mewar",
	"local restaurant", "local eatery", "local cafe", "local shop", "local market",
	"main market", "old city", "old city market",
	"historic palace", "famous temple", "lake view", "roof top", "rooftop",
	"traditional market", "scenic view", "palace complex", "temple complex",
	"museum complex", "garden complex", "historic site", "cultural center", "cultural centre",
	"royal family", "vintage car", "classic car", "vintage and classic",
	"historic palace complex", "famous temple complex", "lake view restaurant",
	"mewar festival", "shilpgram fair", "cultural festival", "traditional craft",
	"budget breakdown", "entry fees", "world heritage site", "unesco world heritage site",
}

func (g *GroundingService) Evaluate(ctx context.Context, req request_models.GroundingRequest) response_models.EvaluationReport {
	if strings.TrimSpace(req.Response) == "" {
		return response_models.EvaluationReport{
			Passed:  true,
			Score:   1.0,
			Issues:  []string{},
			Details: map[string]any{"reason": "Empty response"},
		}
	}

	issues := []string{}
	knownNames := g.buildKnownNameSet(ctx, req.KnownPOIs)

	mentioned := extractPOINames(req.Response)
	var unverified []string
	for _, name := range mentioned {
		if name == "" || isBlocklisted(name) {
			continue
		}
		if !matchesKnownName(name, knownNames) && len(name) > 3 {
			unverified = append(unverified, name)
		}
	}

	// One unknown name is tolerated; an alternate spelling or a genuinely
	// new place should not fail the check.
	if len(unverified) >= 2 {
		shown := unverified
		if len(shown) > 5 {
			shown = shown[:5]
		}
		issues = append(issues, fmt.Sprintf("Unverified POI names mentioned: %s", strings.Join(shown, ", ")))
	}

	claims := extractClaims(req.Response)
	ungrounded := g.ungroundedClaims(ctx, claims)
	if len(ungrounded) >= 4 {
		issues = append(issues, fmt.Sprintf("Potentially ungrounded claims (%d found)", len(ungrounded)))
	}

	if len(req.Sources) > 0 {
		if issue, flagged := sourceCoverageIssue(req.Sources, mentioned); flagged {
			issues = append(issues, issue)
		}
	}

	passed := len(issues) == 0
	score := 1.0
	if !passed {
		score = math.Max(0.0, 1.0-float64(len(issues))*0.2)
	}

	return response_models.EvaluationReport{
		Passed: passed,
		Score:  math.Round(score*100) / 100,
		Issues: issues,
		Details: map[string]any{
			"mentioned_pois":    len(mentioned),
			"unverified_pois":   len(unverified),
			"claims_checked":    len(claims),
			"ungrounded_claims": len(ungrounded),
		},
	}
}

// buildKnownNameSet merges caller-provided POIs with the reference table
// and the canonical alternate-spelling list. Every entry is also indexed
// under its normalized form and its first two words.
func (g *GroundingService) buildKnownNameSet(ctx context.Context, provided []request_models.POIInput) map[string]bool {
	names := make(map[string]bool, 64)
	for _, n := range knownUdaipurNames {
		names[n] = true
	}

	add := func(name string) {
		name = strings.TrimSpace(name)
		if name == "" {
			return
		}
		lower := strings.ToLower(name)
		names[lower] = true
		names[normalizePOIName(name)] = true
		words := strings.Fields(lower)
		if len(words) >= 2 {
			names[words[0]+" "+words[1]] = true
		}
	}

	if len(provided) > 0 {
		for _, p := range provided {
			add(p.Name)
		}
	} else if records, err := g.refRepo.List(ctx, 200); err != nil {
		log.Printf("POI reference table unavailable for grounding check: %v", err)
	} else {
		for _, r := range records {
			add(r.Name)
		}
	}

	for n := range names {
		names[normalizePOIName(n)] = true
	}
	return names
}

func (g *GroundingService) ungroundedClaims(ctx context.Context, claims []string) []string {
	var kbText strings.Builder
	for _, section := range []string{"overview", "attractions", "tips"} {
		text, err := g.knowledge.GetContext(ctx, section)
		if err != nil {
			log.Printf("knowledge base section %q unavailable: %v", section, err)
			continue
		}
		kbText.WriteString(text)
		kbText.WriteString(" ")
	}

	kbWords := map[string]bool{}
	for _, w := range longWordRe.FindAllString(strings.ToLower(kbText.String()), -1) {
		kbWords[w] = true
	}

	if len(claims) > 10 {
		claims = claims[:10]
	}
	var ungrounded []string
	for _, claim := range claims {
		claimWords := map[string]bool{}
		for _, w := range longWordRe.FindAllString(strings.ToLower(claim), -1) {
			claimWords[w] = true
		}
		// Very short claims are noisy, skip them.
		if len(claimWords) < 4 {
			continue
		}
		overlap := 0
		for w := range claimWords {
			if kbWords[w] {
				overlap++
			}
		}
		ratio := float64(overlap) / float64(len(claimWords))
		// Grounded when at least 10% of the words overlap or at least two
		// words match; rephrasings and synonyms keep most real claims in.
		if ratio >= 0.10 || overlap >= 2 {
			continue
		}
		if len(claim) > 100 {
			claim = claim[:100]
		}
		ungrounded = append(ungrounded, claim)
	}
	return ungrounded
}

func sourceCoverageIssue(sources []request_models.POIInput, mentioned []string) (string, bool) {
	sourceNorm := map[string]bool{}
	for _, s := range sources {
		if n := normalizePOIName(s.Name); n != "" {
			sourceNorm[n] = true
		}
	}
	if len(sourceNorm) == 0 {
		return "", false
	}
	mentionedNorm := map[string]bool{}
	for _, m := range mentioned {
		if n := normalizePOIName(m); n != "" {
			mentionedNorm[n] = true
		}
	}
	covered := 0
	for sn := range sourceNorm {
		for mn := range mentionedNorm {
			if sn == mn || strings.Contains(mn, sn) || strings.Contains(sn, mn) {
				covered++
				break
			}
		}
	}
	coverage := float64(covered) / float64(len(sourceNorm))
	if coverage < 0.5 {
		return fmt.Sprintf("Response only mentions %d/%d provided POIs", covered, len(sourceNorm)), true
	}
	return "", false
}

// extractPOINames pulls candidate place names from text: quoted strings,
// title-case phrases, and the landmark list. Deduplicated, order of first
// appearance preserved.
func extractPOINames(text string) []string {
	var candidates []string
	for _, m := range quotedNameRe.FindAllStringSubmatch(text, -1) {
		candidates = append(candidates, m[1])
	}
	for _, m := range titleCaseRe.FindAllStringSubmatch(text, -1) {
		candidates = append(candidates, m[1])
	}
	lower := strings.ToLower(text)
	for _, pattern := range landmarkPatterns {
		if strings.Contains(lower, strings.ToLower(pattern)) {
			candidates = append(candidates, pattern)
		}
	}

	seen := map[string]bool{}
	var names []string
	for _, c := range candidates {
		c = strings.TrimSpace(c)
		if len(c) <= 2 || seen[c] {
			continue
		}
		seen[c] = true
		names = append(names, c)
	}
	return names
}

// normalizePOIName lowercases and collapses punctuation so alternate
// spellings ("Saheliyon-ki-Bari") compare equal.
func normalizePOIName(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = poiNamePunctRe.ReplaceAllString(s, " ")
	s = multiSpaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

func isBlocklisted(name string) bool {
	lower := strings.TrimSpace(strings.ToLower(name))
	for _, bl := range groundingBlocklist {
		if strings.Contains(lower, bl) || strings.Contains(bl, lower) {
			return true
		}
	}
	return false
}

func matchesKnownName(name string, known map[string]bool) bool {
	lower := strings.ToLower(name)
	norm := normalizePOIName(name)
	for kn := range known {
		if strings.Contains(kn, lower) || strings.Contains(lower, kn) {
			return true
		}
		if norm != "" && (strings.Contains(kn, norm) || strings.Contains(norm, kn)) {
			return true
		}
	}
	return false
}

// extractClaims splits text into sentences and keeps those long enough to
// carry a factual statement.
func extractClaims(text string) []string {
	var claims []string
	for _, sentence := range sentenceEndRe.Split(text, -1) {
		sentence = strings.TrimSpace(sentence)
		if len(sentence) <= 20 {
			continue
		}
		for _, ind := range claimIndicators {
			if ind.MatchString(sentence) {
				claims = append(claims, sentence)
				break
			}
		}
	}
	return claims
}
