// Package entry defines the persisted journal record: one CBT seven-column
// reflection with before/after mood ratings.
package entry

import (
	"time"
)

// Mood is one named emotion with a self-rated intensity from 1 to 5.
type Mood struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// Moods is an ordered mood list. Names are unique within one list.
type Moods []Mood

// LevelFor returns the rated level for the named emotion, or 0 when the
// list does not contain it.
func (m Moods) LevelFor(name string) int {
	for _, mood := range m {
		if mood.Name == name {
			return mood.Level
		}
	}
	return 0
}

// Contains reports whether the named emotion appears in the list.
func (m Moods) Contains(name string) bool {
	for _, mood := range m {
		if mood.Name == name {
			return true
		}
	}
	return false
}

// Draft holds the caller-supplied fields of an entry, everything except the
// id and date the store assigns.
type Draft struct {
	Situation       string `json:"situation"`
	AutoThought     string `json:"autoThought"`
	BeforeMoods     Moods  `json:"beforeMoods"`
	AfterMoods      Moods  `json:"afterMoods"`
	Evidence        string `json:"evidence"`
	CounterEvidence string `json:"counterEvidence"`
	NewThought      string `json:"newThought"`
	IsFavorite      bool   `json:"isFavorite"`
}

// Entry is one journal record. The json field names are the on-disk
// contract and are read back across app runs; do not rename them.
type Entry struct {
	ID              string    `json:"id"`
	Date            Timestamp `json:"date"`
	Situation       string    `json:"situation"`
	AutoThought     string    `json:"autoThought"`
	BeforeMoods     Moods     `json:"beforeMoods"`
	AfterMoods      Moods     `json:"afterMoods"`
	Evidence        string    `json:"evidence"`
	CounterEvidence string    `json:"counterEvidence"`
	NewThought      string    `json:"newThought"`
	IsFavorite      bool      `json:"isFavorite"`
}

// New builds a full entry from a draft with the assigned id and timestamp.
func New(id string, at time.Time, d Draft) Entry {
	e := Entry{
		ID:              id,
		Date:            Timestamp{Time: at},
		Situation:       d.Situation,
		AutoThought:     d.AutoThought,
		BeforeMoods:     d.BeforeMoods,
		AfterMoods:      d.AfterMoods,
		Evidence:        d.Evidence,
		CounterEvidence: d.CounterEvidence,
		NewThought:      d.NewThought,
		IsFavorite:      d.IsFavorite,
	}
	e.Normalize()
	return e
}

// Normalize fills absent mood lists so every entry carries all ten fields.
func (e *Entry) Normalize() {
	if e.BeforeMoods == nil {
		e.BeforeMoods = Moods{}
	}
	if e.AfterMoods == nil {
		e.AfterMoods = Moods{}
	}
}

// Mentions reports whether either mood list references the named emotion.
func (e Entry) Mentions(name string) bool {
	return e.BeforeMoods.Contains(name) || e.AfterMoods.Contains(name)
}

func (e Entry) Title() string {
	return e.Situation
}
