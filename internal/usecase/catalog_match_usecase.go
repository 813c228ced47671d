package usecase

import (
	"context"
	"log"

	"career-engine/internal/domain/matching"
	"career-engine/internal/domain/profile"
	"career-engine/internal/repository"
)

// catalogScanSize bounds how many stored postings one catalog match
// considers. Each posting costs an embedding call on a cold cache.
const catalogScanSize = 200

// CatalogMatchItem joins a match result with the catalog metadata the
// caller needs to render it.
type CatalogMatchItem struct {
	matching.Result
	Title    string
	Company  string
	Location string
}

type CatalogMatchUsecase interface {
	MatchCatalog(ctx context.Context, p profile.UserProfile, limit int) ([]CatalogMatchItem, error)
}

type CatalogMatch struct {
	jobs    repository.JobRepository
	matcher MatchUsecase
	logger  *log.Logger
}

func NewCatalogMatchUsecase(jobs repository.JobRepository, matcher MatchUsecase, logger *log.Logger) *CatalogMatch {
	if logger == nil {
		logger = log.Default()
	}
	return &CatalogMatch{jobs: jobs, matcher: matcher, logger: logger}
}

func (u *CatalogMatch) MatchCatalog(ctx context.Context, p profile.UserProfile, limit int) ([]CatalogMatchItem, error) {
	if u.jobs == nil {
		return nil, ErrCatalogUnavailable
	}

	rows, err := u.jobs.ListJobs(ctx, catalogScanSize, 0)
	if err != nil {
		u.logger.Printf("[Catalog] list jobs failed: %v", err)
		return nil, ErrInternal
	}

	jobs := make([]profile.Job, 0, len(rows))
	meta := make(map[string]repository.CatalogJob, len(rows))
	for _, row := range rows {
		jobs = append(jobs, catalogJobToDomain(row))
		meta[row.JobID] = row
	}

	results, err := u.matcher.Match(ctx, p, jobs, limit)
	if err != nil {
		return nil, err
	}

	out := make([]CatalogMatchItem, 0, len(results))
	for _, res := range results {
		row := meta[res.JobID]
		out = append(out, CatalogMatchItem{
			Result:   res,
			Title:    row.Title,
			Company:  row.Company,
			Location: row.Location,
		})
	}
	return out, nil
}

func catalogJobToDomain(row repository.CatalogJob) profile.Job {
	posted := ""
	if row.PostedAt != nil {
		posted = row.PostedAt.Format("2006-01-02")
	}
	return profile.Job{
		JobID:        row.JobID,
		Title:        row.Title,
		Company:      row.Company,
		Description:  row.Description,
		Requirements: row.Requirements,
		Location:     row.Location,
		WorkType:     profile.WorkStyle(row.WorkType),
		SalaryMin:    row.SalaryMin,
		SalaryMax:    row.SalaryMax,
		Tags:         row.Tags,
		PostedDate:   posted,
	}
}
