package domain

// Item dates use the YYYY-MM format the editor's month inputs produce.

type ExperienceItem struct {
	ID               string `json:"id"`
	Company          string `json:"company"`
	Role             string `json:"role"`
	StartDate        string `json:"startDate"`
	EndDate          string `json:"endDate,omitempty"`
	Description      string `json:"description"`
	City             string `json:"city,omitempty"`
	Country          string `json:"country,omitempty"`
	CurrentlyWorking bool   `json:"currentlyWorking"`
}

func (i ExperienceItem) EntityID() string { return i.ID }

type EducationItem struct {
	ID          string   `json:"id"`
	School      string   `json:"school"`
	Degree      string   `json:"degree"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate,omitempty"`
	Description string   `json:"description,omitempty"`
	City        string   `json:"city,omitempty"`
	Country     string   `json:"country,omitempty"`
	GPA         string   `json:"gpa,omitempty"`
	Coursework  []string `json:"coursework,omitempty"`
}

func (i EducationItem) EntityID() string { return i.ID }

// Skill proficiency levels offered by the editor.
const (
	SkillBeginner     = "Beginner"
	SkillIntermediate = "Intermediate"
	SkillAdvanced     = "Advanced"
	SkillExpert       = "Expert"
)

type SkillItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Level    string `json:"level,omitempty"`
	Category string `json:"category,omitempty"`
}

func (i SkillItem) EntityID() string { return i.ID }

type ProjectItem struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate,omitempty"`
	URL          string   `json:"url,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
}

func (i ProjectItem) EntityID() string { return i.ID }

// CustomItem is the free-form entry used by custom sections. It also
// absorbs items whose section type is no longer recognized.
type CustomItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
}

func (i CustomItem) EntityID() string { return i.ID }
