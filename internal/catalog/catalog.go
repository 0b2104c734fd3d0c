// Package catalog loads and validates the lesson catalog (lessons.json).
package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed lessons.json
var defaultLessons embed.FS

// Catalog holds the loaded lessons, indexed by id.
type Catalog struct {
	lessons []Lesson
	byID    map[int]Lesson
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// compiled returns the lessons schema, compiling it once.
func compiled() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any),
		// not raw bytes. Marshal then unmarshal to get a clean any
		// representation.
		defBytes, err := json.Marshal(lessonsSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://lessons.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}

// Parse validates raw against the lessons schema and builds a Catalog.
func Parse(raw []byte) (*Catalog, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("lessons file is not valid JSON: %w", err)
	}

	schema, err := compiled()
	if err != nil {
		return nil, fmt.Errorf("compile lessons schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("lessons file failed validation: %w", err)
	}

	var lessons []Lesson
	if err := json.Unmarshal(raw, &lessons); err != nil {
		return nil, fmt.Errorf("decode lessons: %w", err)
	}

	byID := make(map[int]Lesson, len(lessons))
	for _, l := range lessons {
		if _, dup := byID[l.ID]; dup {
			return nil, fmt.Errorf("duplicate lesson id %d", l.ID)
		}
		byID[l.ID] = l
	}

	return &Catalog{lessons: lessons, byID: byID}, nil
}

// Load reads and parses the lessons file at path. An empty path loads
// the embedded starter catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lessons file: %w", err)
	}
	return Parse(raw)
}

// Default returns the embedded starter catalog.
func Default() (*Catalog, error) {
	raw, err := defaultLessons.ReadFile("lessons.json")
	if err != nil {
		return nil, fmt.Errorf("read embedded lessons: %w", err)
	}
	return Parse(raw)
}

// Lessons returns all lessons in catalog order.
func (c *Catalog) Lessons() []Lesson {
	return c.lessons
}

// Lesson returns the lesson with the given id.
func (c *Catalog) Lesson(id int) (Lesson, bool) {
	l, ok := c.byID[id]
	return l, ok
}

// Len returns the number of lessons.
func (c *Catalog) Len() int {
	return len(c.lessons)
}

// Categories groups lessons by category, preserving first-seen order.
func (c *Catalog) Categories() []Category {
	index := make(map[string]int)
	var cats []Category
	for _, l := range c.lessons {
		name := l.Category
		i, seen := index[name]
		if !seen {
			i = len(cats)
			index[name] = i
			cats = append(cats, Category{Name: name})
		}
		cats[i].Lessons = append(cats[i].Lessons, l)
	}
	return cats
}

// Key returns the string form of a lesson id used in stored progress
// and quiz-stats mappings, where JSON object keys force strings.
func Key(id int) string {
	return strconv.Itoa(id)
}

// ParseKey converts a stored lesson key back to a lesson id.
func ParseKey(key string) (int, error) {
	return strconv.Atoi(key)
}
