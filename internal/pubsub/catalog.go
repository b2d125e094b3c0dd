package pubsub

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"sync"
)

var (
	ErrInvalidTopic   = errors.New("invalid topic")
	ErrDuplicateTopic = errors.New("topic already registered")
)

// Topic names are hierarchical: module.entity.action.
var topicNamePattern = regexp.MustCompile(`^[a-z][a-z0-9]*(\.[a-z][a-z0-9_]*)+$`)

// Topic documents an event published on the bus.
type Topic struct {
	Name        string `json:"name"`
	Module      string `json:"module"`
	Description string `json:"description"`
	Example     string `json:"example"`
}

// Describe builds the catalog entry for event, rendering example as its JSON
// payload.
func Describe[T any](event Event[T], module string, example T) (Topic, error) {
	data, err := json.Marshal(example)
	if err != nil {
		return Topic{}, fmt.Errorf("encode %s example: %w", event.Name(), err)
	}
	return Topic{
		Name:        event.Name(),
		Module:      module,
		Description: event.Description(),
		Example:     string(data),
	}, nil
}

// Catalog lists the topics modules publish. Modules register their topics
// during the register phase; the CLI prints them.
type Catalog struct {
	mu     sync.RWMutex
	topics map[string]Topic
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{topics: make(map[string]Topic)}
}

// Register adds t. Names must be unique and well formed, and every topic
// needs a description.
func (c *Catalog) Register(t Topic) error {
	if !topicNamePattern.MatchString(t.Name) {
		return fmt.Errorf("%w: name %q", ErrInvalidTopic, t.Name)
	}
	if strings.TrimSpace(t.Description) == "" {
		return fmt.Errorf("%w: %s has no description", ErrInvalidTopic, t.Name)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.topics[t.Name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateTopic, t.Name)
	}
	c.topics[t.Name] = t
	return nil
}

// Get returns the topic called name.
func (c *Catalog) Get(name string) (Topic, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	t, ok := c.topics[name]
	return t, ok
}

// List returns every topic ordered by name.
func (c *Catalog) List() []Topic {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Topic, 0, len(c.topics))
	for _, t := range c.topics {
		out = append(out, t)
	}
	slices.SortFunc(out, func(a, b Topic) int { return strings.Compare(a.Name, b.Name) })
	return out
}
