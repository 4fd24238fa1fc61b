package types

// Supported programming languages. Skill requests naming anything else are
// rejected before touching the store.
var Languages = []string{
	"C++",
	"Javascript",
	"Python",
	"Java",
	"Lua",
	"Rust",
	"Go",
	"Julia",
}

// Proficiency levels, lowest to highest.
var SkillLevels = []string{
	"beginner",
	"experienced",
	"expert",
}

func ValidLanguage(language string) bool {
	for _, l := range Languages {
		if l == language {
			return true
		}
	}
	return false
}

func ValidSkillLevel(level string) bool {
	for _, l := range SkillLevels {
		if l == level {
			return true
		}
	}
	return false
}

// SkillEntry is the wire shape of one (language, level) association.
type SkillEntry struct {
	Language string `json:"language"`
	Level    string `json:"level"`
}
