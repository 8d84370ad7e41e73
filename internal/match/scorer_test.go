package match

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"smartrecruit/internal/model"
)

func sampleJob() *model.Job {
	return &model.Job{
		ID:              "job-1",
		Title:           "Senior Backend Engineer",
		Description:     "Build microservice APIs in Go with PostgreSQL, Kafka and Kubernetes. Go services run on Kubernetes.",
		Qualifications:  "Golang, PostgreSQL, Kafka, Docker, Kubernetes, distributed systems",
		ExperienceLevel: "senior",
	}
}

func sampleCandidate() *model.Candidate {
	return &model.Candidate{
		ID:   "cand-1",
		Name: "Aisha Khan",
		Experiences: []model.Experience{
			{
				Title:       "Senior Software Engineer",
				Company:     "Acme",
				StartDate:   time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC),
				IsCurrent:   true,
				Description: "Built Go microservices with PostgreSQL and Kafka on Kubernetes.",
			},
		},
		Educations: []model.Education{
			{Institution: "NUST", Degree: "BS", Major: "Computer Science"},
		},
		ResumeText: "Go, Golang, Docker, Kubernetes, distributed systems, backend engineer",
	}
}

func TestScore_RangeAndPrecision(t *testing.T) {
	candidates := []*model.Candidate{
		sampleCandidate(),
		{ID: "empty"},
		{ID: "resume-only", ResumeText: "plumbing and carpentry"},
	}

	for _, cand := range candidates {
		got := Score(sampleJob(), cand)
		assert.GreaterOrEqual(t, got, 0.0)
		assert.LessOrEqual(t, got, 10.0)
		// exactly one decimal digit
		assert.InDelta(t, got, math.Round(got*10)/10, 1e-9)
	}
}

func TestScore_Deterministic(t *testing.T) {
	job, cand := sampleJob(), sampleCandidate()
	first := Score(job, cand)
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, Score(job, cand))
	}
}

func TestTitleRelevance(t *testing.T) {
	t.Run("all words absent scores zero", func(t *testing.T) {
		got := titleRelevance("Forklift Operator", "go microservices postgres")
		assert.Zero(t, got)
	})

	t.Run("short words do not qualify", func(t *testing.T) {
		// only "lead" qualifies; "of" and "it" are dropped
		got := titleRelevance("Lead of IT", "lead engineer")
		assert.InDelta(t, 3.0, got, 1e-9)
	})

	t.Run("no qualifying words scores zero", func(t *testing.T) {
		assert.Zero(t, titleRelevance("VP of IT", "vp it"))
	})

	t.Run("blood bank manager example", func(t *testing.T) {
		cand := &model.Candidate{
			Experiences: []model.Experience{{
				Title:       "Manager Blood Bank",
				IsCurrent:   true,
				StartDate:   time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
				Description: "Ran the blood bank at a tertiary care hospital.",
			}},
		}
		got := titleRelevance("Senior Blood Bank Manager", candidateCorpus(cand))
		// 3 of 4 qualifying words present ("senior" missing)
		assert.GreaterOrEqual(t, got, 2.25)
	})
}

func TestKeywordOverlap(t *testing.T) {
	t.Run("all extracted keywords miss scores zero not neutral", func(t *testing.T) {
		job := sampleJob()
		got := keywordOverlap(job, "unrelated retail cashier background")
		assert.Zero(t, got)
	})

	t.Run("no extractable keywords degrades to neutral", func(t *testing.T) {
		job := &model.Job{Title: "IT", Description: "a of in 123", Qualifications: "42"}
		got := keywordOverlap(job, "anything")
		assert.Equal(t, 2.5, got)
	})

	t.Run("full coverage caps at five", func(t *testing.T) {
		job := sampleJob()
		corpus := candidateCorpus(sampleCandidate())
		got := keywordOverlap(job, corpus)
		assert.LessOrEqual(t, got, 5.0)
		assert.Greater(t, got, 0.0)
	})

	t.Run("plural and gerund fallbacks count as hits", func(t *testing.T) {
		assert.True(t, keywordHit("container orchestration", "containers"))
		assert.True(t, keywordHit("monitor dashboards", "monitoring"))
		assert.False(t, keywordHit("retail cashier", "kubernetes"))
	})
}

func TestSeniorityAlignment(t *testing.T) {
	job := func(level, title string) *model.Job {
		return &model.Job{ExperienceLevel: level, Title: title}
	}
	cand := func(title string) *model.Candidate {
		return &model.Candidate{Experiences: []model.Experience{{
			Title: title, IsCurrent: true, StartDate: time.Now(),
		}}}
	}

	tests := []struct {
		name string
		job  *model.Job
		cand *model.Candidate
		want float64
	}{
		{"candidate above job level", job("senior", "Backend Engineer"), cand("Engineering Manager"), 2.0},
		{"candidate at job level", job("senior", "Backend Engineer"), cand("Senior Engineer"), 2.0},
		{"candidate one level below", job("", "Senior Backend Engineer"), cand("Mid Level Engineer"), 1.0},
		{"candidate far below", job("director", "Engineering Director"), cand("Junior Developer"), 0.0},
		{"job level unreadable", job("", "Backend Engineer"), cand("Senior Engineer"), 1.0},
		{"candidate level unreadable", job("senior", "Senior Engineer"), cand("Software Engineer"), 1.0},
		{"no current experience", job("senior", "Senior Engineer"), &model.Candidate{}, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, seniorityAlignment(tt.job, tt.cand))
		})
	}
}
