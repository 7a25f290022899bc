// Package taxonomy holds the static skill vocabulary and heuristic lexicons
// used by the extractors. All data is read-only after initialization and safe
// for unsynchronized concurrent reads.
package taxonomy

import (
	"encoding/json"
	"fmt"
)

// Category is a named, ordered group of skill phrases. Skill phrases are
// stored lowercase; matching is always case-insensitive substring matching.
type Category struct {
	Name   string   `json:"name"`
	Skills []string `json:"skills"`
}

// Taxonomy is an immutable categorized skill vocabulary. Every skill belongs
// to exactly one category, and category iteration order is fixed so that
// extraction output is deterministic.
type Taxonomy struct {
	categories []Category
}

// defaultCategories mirrors the curated vocabulary the analyzer ships with.
var defaultCategories = []Category{
	{
		Name: "programming_languages",
		Skills: []string{
			"python", "java", "javascript", "typescript", "c++", "c#", "ruby", "go",
			"rust", "php", "swift", "kotlin", "scala", "r", "matlab", "perl", "bash",
		},
	},
	{
		Name: "web_technologies",
		Skills: []string{
			"react", "angular", "vue", "nextjs", "nodejs", "express", "django", "flask",
			"fastapi", "spring", "rails", "laravel", "asp.net", "html", "css", "sass",
			"tailwind", "bootstrap", "jquery", "webpack", "vite",
		},
	},
	{
		Name: "databases",
		Skills: []string{
			"sql", "mysql", "postgresql", "mongodb", "redis", "elasticsearch", "dynamodb",
			"firebase", "oracle", "sqlite", "cassandra", "neo4j", "mariadb", "supabase",
		},
	},
	{
		Name: "cloud_devops",
		Skills: []string{
			"aws", "azure", "gcp", "docker", "kubernetes", "terraform", "jenkins",
			"github actions", "ci/cd", "ansible", "puppet", "chef", "nginx", "apache",
			"linux", "unix", "cloudflare", "heroku", "vercel", "netlify",
		},
	},
	{
		Name: "data_ml",
		Skills: []string{
			"machine learning", "deep learning", "nlp", "natural language processing",
			"computer vision", "tensorflow", "pytorch", "scikit-learn", "pandas", "numpy",
			"spark", "hadoop", "data analysis", "data science", "neural networks",
			"keras", "opencv", "huggingface", "llm", "ai", "artificial intelligence",
		},
	},
	{
		Name: "tools_practices",
		Skills: []string{
			"git", "agile", "scrum", "rest api", "graphql", "microservices", "api design",
			"unit testing", "integration testing", "tdd", "bdd", "jira", "confluence",
			"figma", "postman", "swagger",
		},
	},
	{
		Name: "soft_skills",
		Skills: []string{
			"leadership", "communication", "problem solving", "teamwork", "project management",
			"critical thinking", "time management", "creativity", "adaptability", "mentoring",
		},
	},
}

// defaultTaxonomy is built once at process start and never mutated.
var defaultTaxonomy = &Taxonomy{categories: defaultCategories}

// Default returns the built-in skill taxonomy.
func Default() *Taxonomy {
	return defaultTaxonomy
}

// New builds a taxonomy from an explicit category list. Categories with no
// skills or duplicate names are rejected.
func New(categories []Category) (*Taxonomy, error) {
	if len(categories) == 0 {
		return nil, fmt.Errorf("taxonomy must contain at least one category")
	}

	seen := make(map[string]bool, len(categories))
	for _, cat := range categories {
		if cat.Name == "" {
			return nil, fmt.Errorf("taxonomy category has empty name")
		}
		if seen[cat.Name] {
			return nil, fmt.Errorf("duplicate taxonomy category: %s", cat.Name)
		}
		seen[cat.Name] = true
		if len(cat.Skills) == 0 {
			return nil, fmt.Errorf("taxonomy category %s has no skills", cat.Name)
		}
	}

	// Copy so later mutation of the caller's slice cannot leak in.
	copied := make([]Category, len(categories))
	copy(copied, categories)
	return &Taxonomy{categories: copied}, nil
}

// ParseJSON builds a taxonomy from a JSON document of the form
// {"categories": [{"name": "...", "skills": ["...", ...]}, ...]}.
// Callers should validate the document against the taxonomy schema first
// (see internal/schemas).
func ParseJSON(data []byte) (*Taxonomy, error) {
	var doc struct {
		Categories []Category `json:"categories"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse taxonomy JSON: %w", err)
	}
	return New(doc.Categories)
}

// Categories returns the ordered category list.
func (t *Taxonomy) Categories() []Category {
	return t.categories
}

// SkillCount returns the total number of skill phrases across all categories.
func (t *Taxonomy) SkillCount() int {
	count := 0
	for _, cat := range t.categories {
		count += len(cat.Skills)
	}
	return count
}
