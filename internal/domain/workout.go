package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

var ErrIndexOutOfRange = errors.New("exercise index out of range")

// SetCount is the prescribed number of sets. It is usually an integer
// ("4") but may be a free-text token such as "Falha" or "Máx".
type SetCount string

// Sets builds a numeric SetCount.
func Sets(n int) SetCount {
	return SetCount(strconv.Itoa(n))
}

func (s SetCount) String() string { return string(s) }

// MarshalJSON emits numeric set counts as JSON numbers and tokens as strings.
func (s SetCount) MarshalJSON() ([]byte, error) {
	if n, err := strconv.Atoi(string(s)); err == nil {
		return []byte(strconv.Itoa(n)), nil
	}
	return json.Marshal(string(s))
}

// UnmarshalJSON accepts either a JSON number or a JSON string.
func (s *SetCount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = SetCount(strings.TrimSpace(str))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*s = SetCount(n.String())
	return nil
}

// ExerciseSet is one prescribed line item inside a workout. The exercise name
// is a denormalized copy, catalog renames do not propagate.
type ExerciseSet struct {
	Name string   `json:"name"`
	Sets SetCount `json:"sets"`
	Reps string   `json:"reps"`           // "8-10", "45s", "Falha"
	Load string   `json:"load,omitempty"` // unit-less, e.g. "60" or "25/10"
	Obs  string   `json:"obs"`
}

// AssignedExercise is a standalone exercise prescription held by a client,
// tagged with the catalog exercise it came from.
type AssignedExercise struct {
	ExerciseSet
	OriginalID int64 `json:"originalId"`
}

// Workout is a named, ordered list of exercise sets. Order is the prescribed
// execution order.
type Workout struct {
	ID          int64         `json:"id"`
	Title       string        `json:"title"`
	Exercises   []ExerciseSet `json:"exercises"`
	AIGenerated bool          `json:"aiGenerated,omitempty"`
}

// Clone returns a deep copy sharing no mutable state with w.
func (w Workout) Clone() Workout {
	c := w
	c.Exercises = cloneSets(w.Exercises)
	return c
}

// CloneAs returns a deep copy carrying a new id and title. When resetLoads is
// set every load is cleared and all other fields are kept as they are.
func (w Workout) CloneAs(id int64, title string, resetLoads bool) Workout {
	c := w.Clone()
	c.ID = id
	c.Title = title
	if resetLoads {
		for i := range c.Exercises {
			c.Exercises[i].Load = ""
		}
	}
	return c
}

// ReorderExercises moves the element at from to position to, shifting the
// elements in between. A fresh slice is returned; the input is left untouched.
func ReorderExercises(sets []ExerciseSet, from, to int) ([]ExerciseSet, error) {
	if from < 0 || from >= len(sets) || to < 0 || to >= len(sets) {
		return nil, ErrIndexOutOfRange
	}
	out := cloneSets(sets)
	if from == to {
		return out, nil
	}
	moved := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out[:to], append([]ExerciseSet{moved}, out[to:]...)...)
	return out, nil
}

func cloneSets(sets []ExerciseSet) []ExerciseSet {
	if sets == nil {
		return nil
	}
	out := make([]ExerciseSet, len(sets))
	copy(out, sets)
	return out
}
