package profile

// ExperienceLevel is a coarse career stage. An empty value means the
// user never declared one.
type ExperienceLevel string

const (
	LevelEntry     ExperienceLevel = "entry"
	LevelMid       ExperienceLevel = "mid"
	LevelSenior    ExperienceLevel = "senior"
	LevelExecutive ExperienceLevel = "executive"
)

// Rank orders levels for distance comparisons. Unknown values map to 0.
func (l ExperienceLevel) Rank() int {
	switch l {
	case LevelEntry:
		return 1
	case LevelMid:
		return 2
	case LevelSenior:
		return 3
	case LevelExecutive:
		return 4
	default:
		return 0
	}
}

// WorkStyle covers both user preference and posting work type.
type WorkStyle string

const (
	WorkRemote   WorkStyle = "remote"
	WorkHybrid   WorkStyle = "hybrid"
	WorkOnsite   WorkStyle = "onsite"
	WorkFlexible WorkStyle = "flexible"
)

// UserProfile is the request-scoped view of a user. It is read-only
// after construction.
type UserProfile struct {
	UserID            string
	Skills            []string
	ExperienceLevel   ExperienceLevel
	YearsOfExperience int
	Roles             []string
	WorkStyle         WorkStyle
	Industries        []string
	Location          string
	WillingToRelocate bool
	SalaryMin         *int
	SalaryMax         *int
	Goal              string
	CVText            string
}

// Job is a posting to rank against a profile.
type Job struct {
	JobID        string
	Title        string
	Company      string
	Description  string
	Requirements []string
	Location     string
	WorkType     WorkStyle
	SalaryMin    *int
	SalaryMax    *int
	Tags         []string
	PostedDate   string
}
