// Package extraction pulls skill names out of free-form resume text, using an
// LLM when one is configured and a local vocabulary scan otherwise.
package extraction

// Vocabulary is an ordered list of known skill names. Order is significant:
// Fallback reports matches in vocabulary order.
type Vocabulary []string

var defaultVocabulary = Vocabulary{
	"React", "JavaScript", "TypeScript", "CSS", "HTML", "Git", "Node.js",
	"MongoDB", "REST APIs", "PostgreSQL", "Docker", "Python", "Machine Learning",
	"TensorFlow", "PyTorch", "SQL", "Pandas", "Statistics", "Data Visualization",
	"Linux", "CI/CD", "Kubernetes", "AWS", "Solidity", "Figma", "UI/UX Design",
	"Swift", "Xcode", "iOS Development", "OOP", "GraphQL", "Redis", "Firebase",
	"Vue", "Angular", "Express", "Django", "Flask", "Spring Boot", "Java", "C++",
	"C#", "Go", "Rust", "PHP", "Ruby", "Scala", "Kotlin", "R", "MATLAB", "Tableau",
	"Power BI", "Spark", "NLP", "CUDA", "Web3.js", "Ethers.js", "Terraform",
	"Jenkins", "GitLab CI", "GitHub Actions", "Selenium", "Jest", "Pytest",
}

// DefaultVocabulary returns a copy of the built-in skill vocabulary.
func DefaultVocabulary() Vocabulary {
	out := make(Vocabulary, len(defaultVocabulary))
	copy(out, defaultVocabulary)
	return out
}
