package profile

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"
)

// systemPromptTemplate 简历助手的系统提示词 (Go template)
const systemPromptTemplate = `You are an AI assistant for {{.profile.Name}}'s portfolio website. Answer questions about their background, skills, projects, and experience using the information below.

## Personal Information
- Name: {{.profile.Name}}
- Location: {{.profile.Location}}
- Email: {{.profile.Email}}
- Phone: {{.profile.Phone}}
- GitHub: {{.profile.GitHub}}
- LinkedIn: {{.profile.LinkedIn}}

## Summary
{{.profile.Summary}}

## Education
{{range .profile.Education}}{{.N}}. {{.Degree}}
   - {{.School}}, {{.Location}} — {{.Period}}
{{range .Highlights}}   - {{.}}
{{end}}{{end}}
## Work Experience
{{range .profile.Experience}}{{.Title}} — {{.Company}} ({{.Period}})
{{range .Achievements}}- {{.}}
{{end}}{{end}}
## Skills
{{range .profile.Skills}}- {{.Category}}: {{.Skills}}
{{end}}- Soft Skills: {{.profile.SoftSkills}}

## Projects
{{range .profile.Projects}}{{.N}}. {{.Title}} ({{.Year}}) — {{.Summary}}
   Tech: {{.Tech}}
{{end}}
## Achievements
{{range .profile.Achievements}}- {{.Title}} ({{.Date}})
{{end}}
## Certifications
{{range .profile.Certifications}}- {{.Title}} — {{.Issuer}} ({{.Date}})
{{end}}
Be friendly, concise, and accurate. If asked something unrelated to {{.profile.Name}}'s resume or portfolio, politely redirect the conversation back to their professional background.`

// SystemPrompt 用简历数据渲染系统提示词
func (p *Profile) SystemPrompt(ctx context.Context) (string, error) {
	tpl := prompt.FromMessages(schema.GoTemplate, schema.SystemMessage(systemPromptTemplate))

	messages, err := tpl.Format(ctx, map[string]any{"profile": p.promptView()})
	if err != nil {
		return "", fmt.Errorf("render system prompt: %w", err)
	}
	if len(messages) != 1 {
		return "", fmt.Errorf("render system prompt: expected 1 message, got %d", len(messages))
	}

	return strings.TrimSpace(messages[0].Content), nil
}

// LoadSystemPrompt 启动时加载一次系统提示词
// path 非空时读取文件覆盖内置提示词
func LoadSystemPrompt(ctx context.Context, p *Profile, path string) (string, error) {
	if path == "" {
		return p.SystemPrompt(ctx)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read system prompt file: %w", err)
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", fmt.Errorf("system prompt file %s is empty", path)
	}
	return text, nil
}

type educationView struct {
	N          int
	Degree     string
	School     string
	Location   string
	Period     string
	Highlights []string
}

type skillLine struct {
	Category string
	Skills   string
}

type projectView struct {
	N       int
	Title   string
	Year    string
	Summary string
	Tech    string
}

// promptView 模板只做字段替换，编号和拼接在这里预先算好
type promptView struct {
	*Profile
	Education  []educationView
	Skills     []skillLine
	SoftSkills string
	Projects   []projectView
}

func (p *Profile) promptView() *promptView {
	view := &promptView{
		Profile:    p,
		SoftSkills: strings.Join(p.SoftSkills, ", "),
	}

	for i, e := range p.Education {
		view.Education = append(view.Education, educationView{
			N: i + 1, Degree: e.Degree, School: e.School, Location: e.Location, Period: e.Period, Highlights: e.Highlights,
		})
	}

	for _, g := range p.Skills {
		parts := make([]string, 0, len(g.Skills))
		for _, s := range g.Skills {
			parts = append(parts, fmt.Sprintf("%s (%d%%)", s.Name, s.Level))
		}
		view.Skills = append(view.Skills, skillLine{Category: g.Category, Skills: strings.Join(parts, ", ")})
	}

	for i, proj := range p.Projects {
		view.Projects = append(view.Projects, projectView{
			N: i + 1, Title: proj.Title, Year: proj.Year, Summary: proj.Summary, Tech: strings.Join(proj.Technologies, ", "),
		})
	}

	return view
}
