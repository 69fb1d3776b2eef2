package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/archive/constants"
)

//go:embed archive.yaml
var defaultContent []byte

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid content")

// Load parses the embedded showcase definition
func Load() (*Content, error) {
	return Parse(defaultContent)
}

// LoadFile parses a showcase definition from disk
func LoadFile(path string) (*Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading content: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a showcase definition
func Parse(data []byte) (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("loading content: %w", err)
	}
	if err := validate(&c); err != nil {
		return nil, fmt.Errorf("loading content: %w: %w", ErrInvalid, err)
	}
	return &c, nil
}

func validate(c *Content) error {
	if c.Version != 1 {
		return fmt.Errorf("unsupported version: %d", c.Version)
	}
	if strings.TrimSpace(c.Title) == "" {
		return fmt.Errorf("title is required")
	}

	if len(c.Widgets) == 0 {
		return fmt.Errorf("at least one widget is required")
	}
	ids := make(map[string]struct{}, len(c.Widgets))
	for i, w := range c.Widgets {
		if strings.TrimSpace(w.ID) == "" {
			return fmt.Errorf("widget %d id is required", i)
		}
		if _, exists := ids[w.ID]; exists {
			return fmt.Errorf("duplicate widget id: %s", w.ID)
		}
		ids[w.ID] = struct{}{}
		switch w.Kind {
		case KindDossier, KindPlaylist, KindQuiz, KindCalendar, KindGauge, KindTicket:
		default:
			return fmt.Errorf("widget %s: unknown kind %q", w.ID, w.Kind)
		}
		if w.Cols < 1 || w.Cols > constants.GridColumns || w.Rows < 1 {
			return fmt.Errorf("widget %s: span %dx%d out of grid", w.ID, w.Cols, w.Rows)
		}
	}
	if _, ok := ids[c.Special]; !ok {
		return fmt.Errorf("special widget %q not found", c.Special)
	}

	if len(c.Quiz.Steps) == 0 {
		return fmt.Errorf("quiz needs at least one step")
	}
	for i, s := range c.Quiz.Steps {
		if s.Correct < 0 || s.Correct >= len(s.Answers) {
			return fmt.Errorf("quiz step %d: correct index %d out of range", i, s.Correct)
		}
	}

	if len(c.Gallery) == 0 {
		return fmt.Errorf("gallery needs at least one place")
	}
	if len(c.Moods.Items) == 0 {
		return fmt.Errorf("at least one mood is required")
	}

	target, err := time.ParseInLocation(TargetLayout, c.Calendar.Target, time.Local)
	if err != nil {
		return fmt.Errorf("calendar target: %w", err)
	}
	c.target = target
	return nil
}
