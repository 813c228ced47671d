package repository

import (
	"context"
	"time"

	"career-engine/internal/database"
)

// CatalogJob is one stored posting from the jobs catalog.
type CatalogJob struct {
	JobID        string
	Title        string
	Company      string
	Description  string
	Location     string
	WorkType     string
	SalaryMin    *int
	SalaryMax    *int
	Requirements []string
	Tags         []string
	PostedAt     *time.Time
}

type JobRepository interface {
	ListJobs(ctx context.Context, limit, offset int) ([]CatalogJob, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const listJobsQuery = `
SELECT id, title, company, description, location, work_type,
       salary_min, salary_max, requirements, tags, posted_at
FROM jobs
ORDER BY posted_at DESC NULLS LAST, id
LIMIT $1 OFFSET $2
`

func (r *PostgresJobRepository) ListJobs(ctx context.Context, limit, offset int) ([]CatalogJob, error) {
	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.db.Query(ctx, listJobsQuery, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]CatalogJob, 0, limit)
	for rows.Next() {
		var j CatalogJob
		if err := rows.Scan(
			&j.JobID,
			&j.Title,
			&j.Company,
			&j.Description,
			&j.Location,
			&j.WorkType,
			&j.SalaryMin,
			&j.SalaryMax,
			&j.Requirements,
			&j.Tags,
			&j.PostedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
