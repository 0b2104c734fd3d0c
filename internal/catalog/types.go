package catalog

// Lesson is a single entry in the lesson catalog.
type Lesson struct {
	ID        int        `json:"id"`
	Title     string     `json:"title"`
	Category  string     `json:"category"`
	Content   string     `json:"content"`
	Code      string     `json:"code,omitempty"`
	Exercises []Exercise `json:"exercises,omitempty"`
	Quiz      []Question `json:"quiz,omitempty"`
}

// Exercise is a practice task attached to a lesson.
type Exercise struct {
	Prompt      string `json:"prompt"`
	StarterCode string `json:"starter_code,omitempty"`
	Hint        string `json:"hint,omitempty"`
	Solution    string `json:"solution,omitempty"`
}

// Question is a multiple-choice quiz question for a lesson.
type Question struct {
	Text        string   `json:"text"`
	Options     []string `json:"options"`
	Answer      int      `json:"answer"`
	Explanation string   `json:"explanation,omitempty"`
}

// Category groups lessons under one heading, preserving catalog order.
type Category struct {
	Name    string
	Lessons []Lesson
}
