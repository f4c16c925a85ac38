package outline

// Entry is a finalized heading with level, text and page.
type Entry struct {
	Level string `json:"level"` // One of "H1", "H2", "H3"
	Text  string `json:"text"`
	Page  int    `json:"page"` // 1-based
}

// Document is the final structured output for one source document.
type Document struct {
	Title   string  `json:"title"`
	Outline []Entry `json:"outline"`
}

// Levels a heading entry may carry, in nesting order.
const (
	LevelH1 = "H1"
	LevelH2 = "H2"
	LevelH3 = "H3"
)

func validLevel(level string) bool {
	return level == LevelH1 || level == LevelH2 || level == LevelH3
}
