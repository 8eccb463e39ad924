package catalog

import (
	"errors"
	"fmt"
	"strings"
)

const (
	PostingIDField      = "ID"
	PostingCompanyField = "Company"
	PostingLevelField   = "ExperienceLevel"
)

// Posting is a job description the resume is scored against.
type Posting struct {
	ID              string   `json:"id" mapstructure:"id"`
	Title           string   `json:"title" mapstructure:"title"`
	Company         string   `json:"company" mapstructure:"company"`
	Description     string   `json:"description" mapstructure:"description"`
	RequiredSkills  []string `json:"required_skills" mapstructure:"required_skills"`
	PreferredSkills []string `json:"preferred_skills" mapstructure:"preferred_skills"`
	ExperienceLevel string   `json:"experience_level" mapstructure:"experience_level"`
	SalaryRange     string   `json:"salary_range" mapstructure:"salary_range"`
}

func (p *Posting) GetStringField(name string) string {
	switch name {
	case PostingIDField:
		return p.ID
	case PostingCompanyField:
		return p.Company
	case PostingLevelField:
		return p.ExperienceLevel
	default:
		return ""
	}
}

// Validate checks a catalog before it is handed to the matcher.
func Validate(postings []*Posting) error {
	if len(postings) == 0 {
		return errors.New("catalog has no postings")
	}

	seen := make(map[string]struct{}, len(postings))
	for idx, p := range postings {
		if p == nil {
			return fmt.Errorf("posting #%d is empty", idx)
		}
		id := strings.TrimSpace(p.ID)
		if id == "" {
			return fmt.Errorf("posting #%d (%q) has no id", idx, p.Title)
		}
		if _, ok := seen[id]; ok {
			return fmt.Errorf("duplicate posting id %q", id)
		}
		seen[id] = struct{}{}
		if strings.TrimSpace(p.Title) == "" {
			return fmt.Errorf("posting %q has no title", id)
		}
	}

	return nil
}

// Default returns a fresh copy of the built-in catalog.
func Default() []*Posting {
	return []*Posting{
		{
			ID:              "1",
			Title:           "Senior Data Scientist",
			Company:         "Tech Innovations Inc.",
			Description:     "We're looking for a Senior Data Scientist with strong Python skills, experience with machine learning frameworks like TensorFlow or PyTorch, and expertise in data analysis. Requirements include 5+ years of experience, advanced degree in Computer Science or related field, and proficiency with SQL and big data technologies.",
			RequiredSkills:  []string{"python", "machine learning", "tensorflow", "pytorch", "sql", "data analysis"},
			PreferredSkills: []string{"aws", "docker", "kubernetes", "spark"},
			ExperienceLevel: "senior",
			SalaryRange:     "$120,000 - $160,000",
		},
		{
			ID:              "2",
			Title:           "Full Stack Developer",
			Company:         "Web Solutions LLC",
			Description:     "Join our team as a Full Stack Developer. You'll work with modern technologies including React, Node.js, Python, and cloud platforms. Ideal candidate has 3+ years of experience, strong JavaScript skills, and experience with database design and RESTful APIs.",
			RequiredSkills:  []string{"javascript", "react", "node.js", "python", "sql", "rest api"},
			PreferredSkills: []string{"aws", "docker", "typescript", "mongodb"},
			ExperienceLevel: "mid",
			SalaryRange:     "$90,000 - $120,000",
		},
		{
			ID:              "3",
			Title:           "Machine Learning Engineer",
			Company:         "AI Pioneers Corp",
			Description:     "Machine Learning Engineer needed to design and implement ML systems. Requires expertise in Python, deep learning, model deployment, and MLOps. Experience with cloud platforms and containerization is a plus.",
			RequiredSkills:  []string{"python", "machine learning", "deep learning", "mlops", "docker"},
			PreferredSkills: []string{"kubernetes", "aws", "azure", "tensorflow", "pytorch"},
			ExperienceLevel: "mid-senior",
			SalaryRange:     "$110,000 - $150,000",
		},
		{
			ID:              "4",
			Title:           "DevOps Engineer",
			Company:         "Cloud Systems Ltd",
			Description:     "DevOps Engineer to manage our cloud infrastructure. Skills needed: AWS, Docker, Kubernetes, CI/CD pipelines, Terraform, and monitoring tools. Linux administration and scripting skills required.",
			RequiredSkills:  []string{"aws", "docker", "kubernetes", "ci/cd", "terraform", "linux"},
			PreferredSkills: []string{"python", "bash", "jenkins", "prometheus"},
			ExperienceLevel: "mid-senior",
			SalaryRange:     "$100,000 - $140,000",
		},
		{
			ID:              "5",
			Title:           "Data Analyst",
			Company:         "Business Insights Co.",
			Description:     "Data Analyst position focusing on business intelligence and reporting. Required: SQL, Python, data visualization (Tableau/Power BI), statistical analysis. Experience with ETL processes and database management.",
			RequiredSkills:  []string{"sql", "python", "data visualization", "tableau", "statistics"},
			PreferredSkills: []string{"power bi", "excel", "etl", "postgresql"},
			ExperienceLevel: "entry-mid",
			SalaryRange:     "$65,000 - $85,000",
		},
	}
}
