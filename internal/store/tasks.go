package store

import (
	"errors"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vlinks/planner/internal/model"
	"github.com/vlinks/planner/internal/storage"
)

const tasksKey = "tasks"

// defaultTaskMinutes is assumed for completed tasks without an estimate
// when building the hourly distribution.
const defaultTaskMinutes = 30

var (
	tagPattern      = regexp.MustCompile(`#(\w+)`)
	durationPattern = regexp.MustCompile(`(?i)(\d+)\s*(minutes|min|hours|hour|h)`)
)

// TaskStore owns the to-do list, newest first.
type TaskStore struct {
	mu     sync.Mutex
	tasks  []*model.Task
	db     storage.Persistence
	logger *zap.Logger
	now    func() time.Time
}

// NewTaskStore restores the task list from persistence, falling back to
// an empty list on absent or unreadable data.
func NewTaskStore(db storage.Persistence, logger *zap.Logger) *TaskStore {
	s := &TaskStore{db: db, logger: logger, now: time.Now}
	if err := db.Load(tasksKey, &s.tasks); err != nil {
		if !errors.Is(err, storage.ErrNoRecord) {
			logger.Warn("Discarding unreadable task data", zap.Error(err))
		}
		s.tasks = nil
	}
	return s
}

// ParsedInput is the result of breaking down a quick-add line.
type ParsedInput struct {
	Title         string
	Tags          []string
	EstimatedTime int // minutes, 0 when absent
}

// ParseQuickInput extracts "#tag" tokens and a trailing duration such
// as "45min" or "2h" from a quick-add line, leaving the rest as the
// title.
func ParseQuickInput(text string) ParsedInput {
	var p ParsedInput

	for _, m := range tagPattern.FindAllStringSubmatch(text, -1) {
		p.Tags = append(p.Tags, m[1])
	}
	text = strings.TrimSpace(tagPattern.ReplaceAllString(text, ""))

	if m := durationPattern.FindStringSubmatch(text); m != nil {
		v, _ := strconv.Atoi(m[1])
		if strings.HasPrefix(strings.ToLower(m[2]), "h") {
			v *= 60
		}
		p.EstimatedTime = v
		text = strings.TrimSpace(strings.Replace(text, m[0], "", 1))
	}

	p.Title = strings.Join(strings.Fields(text), " ")
	return p
}

// Add parses the quick-add line and prepends the resulting task. An
// input that reduces to an empty title is refused.
func (s *TaskStore) Add(input string, priority model.Priority, energy model.EnergyLevel) (*model.Task, error) {
	p := ParseQuickInput(input)
	if p.Title == "" {
		return nil, ErrEmptyTitle
	}

	t := &model.Task{
		ID:             uuid.NewString(),
		Title:          p.Title,
		Priority:       priority,
		EnergyRequired: energy,
		Tags:           p.Tags,
		EstimatedTime:  p.EstimatedTime,
		CreatedAt:      s.now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append([]*model.Task{t}, s.tasks...)
	s.persist()

	s.logger.Info("Task added",
		zap.String("id", t.ID),
		zap.String("title", t.Title),
		zap.Strings("tags", t.Tags),
		zap.Int("estimated_minutes", t.EstimatedTime))
	return t, nil
}

// Toggle flips done state, stamping or clearing CompletedAt.
func (s *TaskStore) Toggle(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tasks {
		if t.ID != id {
			continue
		}
		t.Done = !t.Done
		if t.Done {
			done := s.now()
			t.CompletedAt = &done
		} else {
			t.CompletedAt = nil
		}
		s.persist()
		return nil
	}
	return ErrNotFound
}

// Delete removes the matching task; absent ids are a no-op.
func (s *TaskStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.tasks {
		if t.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			s.persist()
			return
		}
	}
}

// Find resolves an id or an unambiguous id prefix.
func (s *TaskStore) Find(idOrPrefix string) (*model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var match *model.Task
	for _, t := range s.tasks {
		if !strings.HasPrefix(t.ID, idOrPrefix) {
			continue
		}
		if match != nil {
			return nil, errors.New("store: ambiguous id prefix")
		}
		match = t
	}
	if match == nil {
		return nil, ErrNotFound
	}
	copied := *match
	return &copied, nil
}

// Pending returns open tasks, newest first.
func (s *TaskStore) Pending() []*model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*model.Task
	for _, t := range s.tasks {
		if !t.Done {
			copied := *t
			out = append(out, &copied)
		}
	}
	return out
}

// CompletedToday returns tasks completed on the current calendar day.
func (s *TaskStore) CompletedToday() []*model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	today := s.now()
	var out []*model.Task
	for _, t := range s.tasks {
		if t.CompletedOn(today) {
			copied := *t
			out = append(out, &copied)
		}
	}
	return out
}

// TagCount is one entry of the top-tags ranking.
type TagCount struct {
	Tag   string
	Count int
}

// DailyStats summarizes today's completed work.
type DailyStats struct {
	CompletedCount int
	LearnedMinutes int
	Hourly         [24]int // estimated minutes bucketed by completion hour
	TopTags        []TagCount
}

// Stats computes the growth analytics for the current day.
func (s *TaskStore) Stats() DailyStats {
	completed := s.CompletedToday()

	var st DailyStats
	st.CompletedCount = len(completed)

	counts := make(map[string]int)
	for _, t := range completed {
		st.LearnedMinutes += t.EstimatedTime

		minutes := t.EstimatedTime
		if minutes == 0 {
			minutes = defaultTaskMinutes
		}
		st.Hourly[t.CompletedAt.Hour()] += minutes

		for _, tag := range t.Tags {
			counts[tag]++
		}
	}

	for tag, n := range counts {
		st.TopTags = append(st.TopTags, TagCount{Tag: tag, Count: n})
	}
	sort.Slice(st.TopTags, func(i, j int) bool {
		if st.TopTags[i].Count != st.TopTags[j].Count {
			return st.TopTags[i].Count > st.TopTags[j].Count
		}
		return st.TopTags[i].Tag < st.TopTags[j].Tag
	})
	if len(st.TopTags) > 5 {
		st.TopTags = st.TopTags[:5]
	}
	return st
}

func (s *TaskStore) persist() {
	if err := s.db.Save(tasksKey, s.tasks); err != nil {
		s.logger.Warn("Failed to persist tasks", zap.Error(err))
	}
}
