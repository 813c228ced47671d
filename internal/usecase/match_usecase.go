package usecase

import (
	"context"
	"log"

	"career-engine/internal/domain/matching"
	"career-engine/internal/domain/profile"
	"career-engine/internal/embedding"
)

const (
	defaultMatchLimit = 10
	maxMatchLimit     = 100
)

type MatchUsecase interface {
	Match(ctx context.Context, p profile.UserProfile, jobs []profile.Job, limit int) ([]matching.Result, error)
}

// Match ranks postings for a profile: one profile embedding, one batch
// of job embeddings, then the composite scorer per job.
type Match struct {
	embedder embedding.Embedder
	logger   *log.Logger
}

func NewMatchUsecase(embedder embedding.Embedder, logger *log.Logger) *Match {
	if logger == nil {
		logger = log.Default()
	}
	return &Match{embedder: embedder, logger: logger}
}

func (u *Match) Match(ctx context.Context, p profile.UserProfile, jobs []profile.Job, limit int) ([]matching.Result, error) {
	if limit == 0 {
		limit = defaultMatchLimit
	}
	if limit < 1 || limit > maxMatchLimit {
		return nil, ErrInvalidInput
	}
	if len(jobs) == 0 {
		return []matching.Result{}, nil
	}

	u.logger.Printf("[Match] ranking %d jobs for user %s", len(jobs), p.UserID)

	profileVec := u.embedder.Embed(ctx, p.EmbeddingText())

	jobTexts := make([]string, len(jobs))
	for i, j := range jobs {
		jobTexts[i] = j.EmbeddingText()
	}
	jobVecs := u.embedder.EmbedBatch(ctx, jobTexts)

	results := make([]matching.Result, 0, len(jobs))
	for i, j := range jobs {
		sim := embedding.Cosine(profileVec, jobVecs[i])
		results = append(results, matching.ScoreJob(p, j, sim))
	}

	matching.SortResults(results)
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}
