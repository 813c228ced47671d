package dto

import "career-engine/internal/domain/profile"

type ProfileRequest struct {
	UserID            string   `json:"user_id"`
	Skills            []string `json:"skills"`
	ExperienceLevel   string   `json:"experience_level,omitempty"`
	YearsOfExperience int      `json:"years_of_experience,omitempty"`
	Roles             []string `json:"roles"`
	WorkStyle         string   `json:"work_style,omitempty"`
	Industries        []string `json:"industries"`
	Location          string   `json:"location,omitempty"`
	WillingToRelocate bool     `json:"willing_to_relocate"`
	SalaryMin         *int     `json:"salary_min,omitempty"`
	SalaryMax         *int     `json:"salary_max,omitempty"`
	Goal              string   `json:"goal,omitempty"`
	CVText            string   `json:"cv_text,omitempty"`
}

func (r ProfileRequest) ToDomain() profile.UserProfile {
	return profile.UserProfile{
		UserID:            r.UserID,
		Skills:            r.Skills,
		ExperienceLevel:   profile.ExperienceLevel(r.ExperienceLevel),
		YearsOfExperience: r.YearsOfExperience,
		Roles:             r.Roles,
		WorkStyle:         profile.WorkStyle(r.WorkStyle),
		Industries:        r.Industries,
		Location:          r.Location,
		WillingToRelocate: r.WillingToRelocate,
		SalaryMin:         r.SalaryMin,
		SalaryMax:         r.SalaryMax,
		Goal:              r.Goal,
		CVText:            r.CVText,
	}
}

type JobRequest struct {
	JobID        string   `json:"job_id"`
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
	Location     string   `json:"location,omitempty"`
	WorkType     string   `json:"work_type,omitempty"`
	SalaryMin    *int     `json:"salary_min,omitempty"`
	SalaryMax    *int     `json:"salary_max,omitempty"`
	Tags         []string `json:"tags"`
	PostedDate   string   `json:"posted_date,omitempty"`
}

func (r JobRequest) ToDomain() profile.Job {
	return profile.Job{
		JobID:        r.JobID,
		Title:        r.Title,
		Company:      r.Company,
		Description:  r.Description,
		Requirements: r.Requirements,
		Location:     r.Location,
		WorkType:     profile.WorkStyle(r.WorkType),
		SalaryMin:    r.SalaryMin,
		SalaryMax:    r.SalaryMax,
		Tags:         r.Tags,
		PostedDate:   r.PostedDate,
	}
}

func JobsToDomain(jobs []JobRequest) []profile.Job {
	out := make([]profile.Job, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, j.ToDomain())
	}
	return out
}
