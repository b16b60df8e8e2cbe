// Package profile holds the portfolio owner's resume data. It backs the chat
// relay's system prompt and the read-only project listing.
package profile

// Profile 作品集主人的完整简历
type Profile struct {
	Name           string
	Location       string
	Email          string
	Phone          string
	GitHub         string
	LinkedIn       string
	Summary        string
	Education      []Education
	Experience     []Experience
	Skills         []SkillGroup
	SoftSkills     []string
	Projects       []Project
	Achievements   []Achievement
	Certifications []Certification
}

type Education struct {
	Degree     string
	School     string
	Location   string
	Period     string
	Highlights []string
}

type Experience struct {
	Title        string
	Company      string
	Period       string
	Achievements []string
}

// Skill Level 为 0-100 的自评熟练度
type Skill struct {
	Name  string
	Level int
}

type SkillGroup struct {
	Category string
	Skills   []Skill
}

// Project 对外展示的项目
type Project struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Summary      string   `json:"summary"`
	Description  string   `json:"description"`
	Image        string   `json:"image"`
	Technologies []string `json:"technologies"`
	Category     string   `json:"category"`
	Year         string   `json:"year"`
	GitHub       string   `json:"github,omitempty"`
	Demo         string   `json:"demo,omitempty"`
	Featured     bool     `json:"featured"`
}

type Achievement struct {
	Title string
	Date  string
}

type Certification struct {
	Title  string
	Issuer string
	Date   string
}

// ListProjects 返回项目列表的副本，featuredOnly 为 true 时只返回精选项目
func (p *Profile) ListProjects(featuredOnly bool) []Project {
	out := make([]Project, 0, len(p.Projects))
	for _, proj := range p.Projects {
		if featuredOnly && !proj.Featured {
			continue
		}
		proj.Technologies = append([]string(nil), proj.Technologies...)
		out = append(out, proj)
	}
	return out
}
