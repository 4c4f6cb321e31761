package domain_test

import (
	"encoding/json"
	"testing"

	"alcyxob/trainer-backoffice/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWorkout() domain.Workout {
	return domain.Workout{
		ID:    101,
		Title: "HIPERTROFIA - TREINO A",
		Exercises: []domain.ExerciseSet{
			{Name: "Supino Reto Barra", Sets: domain.Sets(4), Reps: "8-10", Load: "60", Obs: "Carga progressiva"},
			{Name: "Tríceps Corda + Rosca Direta", Sets: domain.Sets(3), Reps: "15+15", Load: "25/10", Obs: "Super-série"},
			{Name: "Barra Fixa", Sets: domain.Sets(3), Reps: "Falha", Obs: "Ou Graviton"},
		},
	}
}

func TestWorkout_Clone_Isolation(t *testing.T) {
	src := testWorkout()
	c := src.Clone()

	c.Exercises[0].Load = "999"
	c.Exercises[1].Obs = "changed"
	c.Title = "other"
	assert.Equal(t, "60", src.Exercises[0].Load)
	assert.Equal(t, "Super-série", src.Exercises[1].Obs)
	assert.Equal(t, "HIPERTROFIA - TREINO A", src.Title)

	src.Exercises[2].Reps = "10"
	assert.Equal(t, "Falha", c.Exercises[2].Reps)
}

func TestWorkout_CloneAs_ResetLoads(t *testing.T) {
	src := testWorkout()
	c := src.CloneAs(900, "Cópia", true)

	assert.Equal(t, int64(900), c.ID)
	assert.Equal(t, "Cópia", c.Title)
	require.Len(t, c.Exercises, len(src.Exercises))
	for i, ex := range c.Exercises {
		assert.Empty(t, ex.Load)
		assert.Equal(t, src.Exercises[i].Name, ex.Name)
		assert.Equal(t, src.Exercises[i].Sets, ex.Sets)
		assert.Equal(t, src.Exercises[i].Reps, ex.Reps)
		assert.Equal(t, src.Exercises[i].Obs, ex.Obs)
	}
	// source keeps its loads
	assert.Equal(t, "60", src.Exercises[0].Load)
	assert.Equal(t, "25/10", src.Exercises[1].Load)
}

func TestWorkout_CloneAs_KeepLoads(t *testing.T) {
	src := testWorkout()
	c := src.CloneAs(901, "Cópia", false)
	assert.Equal(t, src.Exercises, c.Exercises)
	c.Exercises[0].Load = "70"
	assert.Equal(t, "60", src.Exercises[0].Load)
}

func TestReorderExercises(t *testing.T) {
	sets := []domain.ExerciseSet{{Name: "a"}, {Name: "b"}, {Name: "c"}, {Name: "d"}}
	names := func(s []domain.ExerciseSet) []string {
		out := make([]string, len(s))
		for i := range s {
			out[i] = s[i].Name
		}
		return out
	}

	tests := []struct {
		name     string
		from, to int
		want     []string
	}{
		{"forward", 0, 2, []string{"b", "c", "a", "d"}},
		{"backward", 3, 1, []string{"a", "d", "b", "c"}},
		{"to end", 1, 3, []string{"a", "c", "d", "b"}},
		{"to start", 2, 0, []string{"c", "a", "b", "d"}},
		{"same index", 1, 1, []string{"a", "b", "c", "d"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ReorderExercises(sets, tt.from, tt.to)
			require.NoError(t, err)
			assert.Equal(t, tt.want, names(got))
			assert.Equal(t, []string{"a", "b", "c", "d"}, names(sets))
		})
	}

	_, err := domain.ReorderExercises(sets, -1, 2)
	assert.ErrorIs(t, err, domain.ErrIndexOutOfRange)
	_, err = domain.ReorderExercises(sets, 0, 4)
	assert.ErrorIs(t, err, domain.ErrIndexOutOfRange)
}

func TestSetCount_JSON(t *testing.T) {
	var ex domain.ExerciseSet
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Barra","sets":4,"reps":"10","obs":""}`), &ex))
	assert.Equal(t, domain.SetCount("4"), ex.Sets)

	require.NoError(t, json.Unmarshal([]byte(`{"name":"Barra","sets":"Máx","reps":"10","obs":""}`), &ex))
	assert.Equal(t, domain.SetCount("Máx"), ex.Sets)

	out, err := json.Marshal(domain.ExerciseSet{Name: "x", Sets: domain.Sets(3), Reps: "12"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"x","sets":3,"reps":"12","obs":""}`, string(out))

	out, err = json.Marshal(domain.ExerciseSet{Name: "x", Sets: "Falha", Reps: "12"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"x","sets":"Falha","reps":"12","obs":""}`, string(out))
}
