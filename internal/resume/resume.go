package resume

import (
	"strconv"
	"strings"
)

// Basics holds identity and contact information.
type Basics struct {
	Name     string
	Email    string
	Phone    string
	Location string
	Tagline  string
	Profiles map[string]string // platform -> URL
}

// Education is one educational entry.
type Education struct {
	Institution string
	Area        string
	StudyType   string
	StartDate   string
	EndDate     string
	Courses     []string
}

// Job is one professional experience entry.
type Job struct {
	Company    string
	Position   string
	Location   string
	StartDate  string
	EndDate    string
	Highlights []string
}

// Skills groups technical skills by category.
type Skills struct {
	ToolsAndPlatforms []string
	Professional      []string
}

// Resume is the full static resume payload.
type Resume struct {
	Basics    Basics
	Education []Education
	Jobs      []Job
	Skills    Skills
}

// Data is the resume content served by the informational commands.
// Static by design; there is no loader.
var Data = Resume{
	Basics: Basics{
		Name:     "Jayant Singh Bisht",
		Email:    "iamjayant246@gmail.com",
		Phone:    "988 839 52 52",
		Location: "Chandigarh, India",
		Tagline: "A developer dedicated to crafting scalable web solutions. " +
			"I specialize in building AI-powered platforms and immersive web experiences.",
		Profiles: map[string]string{
			"linkedin": "https://www.linkedin.com/in/kindajayant/",
			"github":   "https://github.com/KindaJayant",
		},
	},
	Education: []Education{
		{
			Institution: "Thapar Institute of Engineering and Technology",
			Area:        "Computer Science and Business Systems",
			StudyType:   "BE",
			StartDate:   "Oct 2022",
			EndDate:     "Jun 2026",
			Courses: []string{
				"Data Structures",
				"Object Oriented Programming",
				"Operating Systems",
				"Computer Networks",
				"Database Management Systems",
				"Artificial Intelligence",
			},
		},
	},
	Jobs: []Job{
		{
			Company:   "The Future University",
			Position:  "AI Engineer Intern",
			Location:  "Chandigarh, IN",
			StartDate: "Jan 2026",
			EndDate:   "Present",
			Highlights: []string{
				"Developed and deployed an institutional-grade AI stock scoring system evaluating 5000+ Indian equities, fully automated via n8n + Gemini LLMs.",
				"Built 5+ core trading workflows for a new AI-powered trading platform, reducing manual analysis steps by 30%.",
				"Designed ChatGPT-powered Chart Analyser and Portfolio Analyser workflows serving 4,000+ active users.",
			},
		},
		{
			Company:   "NVISH Solutions",
			Position:  "Web Developer Intern",
			Location:  "Chandigarh, IN",
			StartDate: "Jun 2024",
			EndDate:   "Jul 2024",
			Highlights: []string{
				"Implemented a MongoDB solution that improved data accessibility for analytics, supporting a 75% reduction in retrieval times.",
				"Spearheaded a component standardization initiative that reduced page bounce rates by 15%.",
			},
		},
	},
	Skills: Skills{
		ToolsAndPlatforms: []string{"C++", "n8n", "MongoDB", "Git", "React", "AWS", "SQL", "Firebase"},
		Professional: []string{
			"Data analysis", "API integration", "user journey optimization",
			"backend performance tuning", "cross-functional collaboration",
		},
	},
}

// Project is one catalog entry, addressable by id or slug.
type Project struct {
	ID          int
	Slug        string
	Title       string
	Description string
	Tech        []string
	GitHub      string
	Live        string
}

// Projects is the static project catalog.
var Projects = []Project{
	{
		ID:          1,
		Slug:        "voice-interview",
		Title:       "AI Voice Interview Platform",
		Description: "AI-based interview simulator with 90% accuracy in voice-to-text. Features reduced latency speech synthesis and robust error handling.",
		Tech:        []string{"Next.js", "Vapi", "React.js", "Firebase"},
		GitHub:      "https://github.com/KindaJayant",
	},
	{
		ID:          2,
		Slug:        "lms-saas",
		Title:       "LMS SaaS AI Platform",
		Description: "Full-stack LMS with AI voice tutoring, payments, and auth. Sub-second response times and reusable UI components.",
		Tech:        []string{"Next.js", "TypeScript", "Supabase", "Clerk", "Stripe", "Vapi"},
		GitHub:      "https://github.com/KindaJayant",
	},
	{
		ID:          3,
		Slug:        "rag-engine",
		Title:       "AI Workflow Engine",
		Description: "Scalable RAG-based LLM backend with async job processing, improving retrieval relevance by 2x over keyword search.",
		Tech:        []string{"LLM", "RAG", "Async Processing", "API"},
		GitHub:      "https://github.com/KindaJayant",
	},
	{
		ID:          4,
		Slug:        "stock-scoring",
		Title:       "AI Stock Scoring System",
		Description: "Institutional-grade system evaluating 5000+ equities using multi-pillar analysis, fully automated via n8n and Gemini LLMs.",
		Tech:        []string{"n8n", "Gemini LLM", "Automated Workflows"},
	},
}

// FindProject resolves a user-supplied token against the catalog.
// Matches, in order: numeric id, exact slug, case-insensitive title prefix.
func FindProject(token string) *Project {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil
	}
	lower := strings.ToLower(token)
	for i := range Projects {
		p := &Projects[i]
		if strconv.Itoa(p.ID) == token || p.Slug == lower {
			return p
		}
	}
	for i := range Projects {
		p := &Projects[i]
		if strings.HasPrefix(strings.ToLower(p.Title), lower) {
			return p
		}
	}
	return nil
}
