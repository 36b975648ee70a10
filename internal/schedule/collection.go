// Package schedule owns the in-memory meeting list, its chronological
// ordering and its persistence.
package schedule

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/idilsaglam/meetings/internal/model"
	"github.com/idilsaglam/meetings/internal/tz"
)

var (
	ErrNoSelection = errors.New("no meeting selected")
	ErrNotFound    = errors.New("meeting not found")
)

// Store persists the whole collection at once.
type Store interface {
	Load() ([]model.Meeting, error)
	Save([]model.Meeting) error
}

// Row is one display line: a meeting with its time in every zone.
type Row struct {
	ID    uuid.UUID
	Title string
	Times map[tz.Zone]string
}

// Collection holds meetings in insertion order.
type Collection struct {
	store    Store
	log      logrus.FieldLogger
	meetings []model.Meeting
}

func New(store Store, log logrus.FieldLogger) *Collection {
	return &Collection{store: store, log: log}
}

// Load replaces the in-memory list with the stored one.
func (c *Collection) Load() error {
	ms, err := c.store.Load()
	if err != nil {
		return fmt.Errorf("load meetings: %w", err)
	}
	c.meetings = ms
	c.log.WithField("count", len(ms)).Debug("meetings loaded")
	return nil
}

// Persist writes the collection in insertion order, replacing prior content.
func (c *Collection) Persist() error {
	if err := c.store.Save(c.meetings); err != nil {
		return fmt.Errorf("save meetings: %w", err)
	}
	return nil
}

func (c *Collection) Len() int { return len(c.meetings) }

// Add validates in, appends the meeting and persists. On any error the
// collection is unchanged.
func (c *Collection) Add(in model.Input) (model.Meeting, error) {
	m, err := in.Meeting()
	if err != nil {
		return model.Meeting{}, err
	}
	c.meetings = append(c.meetings, m)
	if err := c.Persist(); err != nil {
		c.meetings = c.meetings[:len(c.meetings)-1]
		c.log.WithError(err).Error("add rolled back")
		return model.Meeting{}, err
	}
	c.log.WithFields(logrus.Fields{
		"id":    m.ID,
		"title": m.Title,
		"zone":  m.Zone,
	}).Info("meeting added")
	return m, nil
}

// Remove deletes the meeting with the given id and persists.
func (c *Collection) Remove(id uuid.UUID) (model.Meeting, error) {
	if id == uuid.Nil {
		return model.Meeting{}, ErrNoSelection
	}
	i := slices.IndexFunc(c.meetings, func(m model.Meeting) bool { return m.ID == id })
	if i < 0 {
		return model.Meeting{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	prev := c.meetings
	removed := c.meetings[i]
	c.meetings = slices.Delete(slices.Clone(c.meetings), i, i+1)
	if err := c.Persist(); err != nil {
		c.meetings = prev
		c.log.WithError(err).WithField("id", id).Error("remove rolled back")
		return model.Meeting{}, err
	}
	c.log.WithFields(logrus.Fields{
		"id":    removed.ID,
		"title": removed.Title,
	}).Info("meeting removed")
	return removed, nil
}

// RemoveAt deletes the meeting at a 1-based position of the chronological
// view. Zero means nothing was selected.
func (c *Collection) RemoveAt(position int) (model.Meeting, error) {
	if position == 0 {
		return model.Meeting{}, ErrNoSelection
	}
	m, err := c.At(position)
	if err != nil {
		return model.Meeting{}, err
	}
	return c.Remove(m.ID)
}

// At returns the meeting at a 1-based position of the chronological view.
func (c *Collection) At(position int) (model.Meeting, error) {
	if position < 1 || position > len(c.meetings) {
		return model.Meeting{}, fmt.Errorf("%w: index out of range: have %d, got %d",
			ErrNotFound, len(c.meetings), position)
	}
	n := 0
	for m := range c.Chronological() {
		n++
		if n == position {
			return m, nil
		}
	}
	return model.Meeting{}, ErrNotFound
}

// Chronological yields meetings ascending by absolute instant, ties kept
// in insertion order. Each range sorts a fresh snapshot.
func (c *Collection) Chronological() iter.Seq[model.Meeting] {
	return func(yield func(model.Meeting) bool) {
		for _, m := range sortChronological(c.meetings) {
			if !yield(m) {
				return
			}
		}
	}
}

// Rows converts the chronological view for display.
func (c *Collection) Rows() ([]Row, error) {
	rows := make([]Row, 0, len(c.meetings))
	for m := range c.Chronological() {
		times, err := m.Times()
		if err != nil {
			return nil, fmt.Errorf("convert %q: %w", m.Title, err)
		}
		rows = append(rows, Row{ID: m.ID, Title: m.Title, Times: times})
	}
	return rows, nil
}

type keyed struct {
	m   model.Meeting
	key time.Time
}

func sortChronological(ms []model.Meeting) []model.Meeting {
	ks := make([]keyed, len(ms))
	for i, m := range ms {
		// Zones are validated on the way in; a bad one sorts first.
		key, _ := tz.SortKey(m.Local, m.Zone)
		ks[i] = keyed{m: m, key: key}
	}
	slices.SortStableFunc(ks, func(a, b keyed) int { return a.key.Compare(b.key) })
	out := make([]model.Meeting, len(ks))
	for i, k := range ks {
		out[i] = k.m
	}
	return out
}
