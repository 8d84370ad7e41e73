package match

import (
	"math"
	"strings"

	"smartrecruit/internal/model"
)

const (
	maxTitleScore     = 3.0
	maxKeywordScore   = 5.0
	maxSeniorityScore = 2.0

	// keywordLimit caps how many extracted keywords are considered per job.
	keywordLimit = 30
	// keywordCoverage is the fraction of keywords a candidate should cover
	// for a full keyword-overlap score.
	keywordCoverage = 0.6
	// minKeywordTarget keeps the hit target meaningful for short postings.
	minKeywordTarget = 5
	// neutralKeywordScore is used when a posting yields no keywords at all.
	neutralKeywordScore = 2.5
)

// seniorityLadder is the ordered level scale used for alignment. Earlier
// entries are more junior; matching is first-hit in ladder order.
var seniorityLadder = []string{
	"intern", "junior", "mid", "senior", "lead", "manager", "director", "vp", "c-level",
}

// Score ranks a candidate against a job on a 0-10 scale. It is a pure,
// deterministic function of its inputs: title relevance (max 3.0), keyword
// overlap (max 5.0) and seniority alignment (max 2.0), clamped to [0, 10]
// and rounded to one decimal place. It is a heuristic ranking aid, not an
// admission decision; the eligibility gate is a separate component with a
// separate scale.
func Score(job *model.Job, cand *model.Candidate) float64 {
	corpus := candidateCorpus(cand)

	total := titleRelevance(job.Title, corpus) +
		keywordOverlap(job, corpus) +
		seniorityAlignment(job, cand)

	if total < 0 {
		total = 0
	}
	if total > 10 {
		total = 10
	}
	return math.Round(total*10) / 10
}

// candidateCorpus flattens everything known about a candidate into one
// lowercase haystack: derived title, experience titles and descriptions,
// education degree/major fields and the raw resume text.
func candidateCorpus(cand *model.Candidate) string {
	var b strings.Builder
	b.WriteString(cand.CurrentTitle())
	for _, exp := range cand.Experiences {
		b.WriteString(" ")
		b.WriteString(exp.Title)
		b.WriteString(" ")
		b.WriteString(exp.Description)
	}
	for _, edu := range cand.Educations {
		b.WriteString(" ")
		b.WriteString(edu.Degree)
		b.WriteString(" ")
		b.WriteString(edu.Major)
	}
	b.WriteString(" ")
	b.WriteString(cand.ResumeText)
	return strings.ToLower(b.String())
}

// titleRelevance scores how much of the job title appears in the candidate
// corpus. Only title words longer than 3 characters qualify; zero qualifying
// words scores zero.
func titleRelevance(jobTitle, corpus string) float64 {
	var total, matched int
	for _, word := range strings.Fields(strings.ToLower(jobTitle)) {
		if len(word) <= 3 {
			continue
		}
		total++
		if strings.Contains(corpus, word) {
			matched++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(matched) / float64(total) * maxTitleScore
}

// keywordOverlap scores coverage of the posting's extracted keywords.
// A keyword hits on a verbatim match, or through a plural ("s") or gerund
// ("ing") fallback. The target is 60% of the considered keywords, never
// fewer than five. When the posting yields no keywords at all the component
// degrades to a neutral 2.5 rather than zero.
func keywordOverlap(job *model.Job, corpus string) float64 {
	source := job.Title + " " + job.Description + " " + job.Qualifications
	keywords := ExtractKeywords(source, keywordLimit)
	if len(keywords) == 0 {
		return neutralKeywordScore
	}

	var hits int
	for _, kw := range keywords {
		if keywordHit(corpus, kw) {
			hits++
		}
	}

	target := int(math.Ceil(keywordCoverage * float64(len(keywords))))
	if target < minKeywordTarget {
		target = minKeywordTarget
	}

	score := float64(hits) / float64(target) * maxKeywordScore
	if score > maxKeywordScore {
		score = maxKeywordScore
	}
	return score
}

func keywordHit(corpus, kw string) bool {
	if strings.Contains(corpus, kw) {
		return true
	}
	if strings.HasSuffix(kw, "s") && strings.Contains(corpus, strings.TrimSuffix(kw, "s")) {
		return true
	}
	if strings.HasSuffix(kw, "ing") && strings.Contains(corpus, strings.TrimSuffix(kw, "ing")) {
		return true
	}
	return false
}

// seniorityAlignment compares ladder positions inferred from the job's
// experience-level label or title against the candidate's derived title.
// Candidate at or above the job level earns the full 2.0, exactly one level
// below earns 1.0; when either side is unreadable the component is a
// neutral 1.0.
func seniorityAlignment(job *model.Job, cand *model.Candidate) float64 {
	jobIdx := ladderIndex(job.ExperienceLevel + " " + job.Title)
	candIdx := ladderIndex(cand.CurrentTitle())

	if jobIdx < 0 || candIdx < 0 {
		return 1.0
	}
	switch {
	case candIdx >= jobIdx:
		return maxSeniorityScore
	case candIdx == jobIdx-1:
		return 1.0
	default:
		return 0
	}
}

func ladderIndex(text string) int {
	text = strings.ToLower(text)
	for i, level := range seniorityLadder {
		if strings.Contains(text, level) {
			return i
		}
	}
	return -1
}
