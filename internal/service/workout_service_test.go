package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alcyxob/trainer-backoffice/internal/domain"
	"alcyxob/trainer-backoffice/internal/service"
)

func sampleSets() []domain.ExerciseSet {
	return []domain.ExerciseSet{
		{Name: "Agachamento Livre", Sets: domain.Sets(4), Reps: "8", Load: "100", Obs: "Profundo"},
		{Name: "Leg Press 45", Sets: domain.Sets(3), Reps: "12", Load: "200"},
		{Name: "Prancha Abdominal", Sets: "Máx", Reps: "60s"},
	}
}

func TestWorkoutService_CreateWorkout(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	w, err := env.workouts.CreateWorkout(ctx, "  Treino A  ", sampleSets())
	require.NoError(t, err)
	assert.Equal(t, "Treino A", w.Title)
	assert.Greater(t, w.ID, int64(501))
	assert.False(t, w.AIGenerated)

	stored, err := env.workouts.GetWorkoutByID(ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, sampleSets(), stored.Exercises)

	list, err := env.workouts.ListWorkouts(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 14)
	assert.Equal(t, w.ID, list[len(list)-1].ID)
}

func TestWorkoutService_CreateWorkout_Validation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.workouts.CreateWorkout(ctx, " ", sampleSets())
	assert.ErrorIs(t, err, service.ErrValidationFailed)

	_, err = env.workouts.CreateWorkout(ctx, "Treino", nil)
	assert.ErrorIs(t, err, service.ErrValidationFailed)

	_, err = env.workouts.CreateWorkout(ctx, "Treino", []domain.ExerciseSet{{Sets: domain.Sets(3), Reps: "10"}})
	assert.ErrorIs(t, err, service.ErrValidationFailed)

	n, err := env.store.Workouts().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 13, n)
}

func TestWorkoutService_DeleteWorkout_KeepsClientCopies(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.trainer.AssignWorkout(ctx, 1, 101)
	require.NoError(t, err)

	require.NoError(t, env.workouts.DeleteWorkout(ctx, 101))
	_, err = env.workouts.GetWorkoutByID(ctx, 101)
	assert.ErrorIs(t, err, service.ErrWorkoutNotFound)
	assert.ErrorIs(t, env.workouts.DeleteWorkout(ctx, 101), service.ErrWorkoutNotFound)

	c, err := env.clients.GetClientByID(ctx, 1)
	require.NoError(t, err)
	assert.True(t, c.HasWorkout(101))
}

func TestWorkoutService_CloneWorkout(t *testing.T) {
	ctx := context.Background()

	t.Run("library copy with default title", func(t *testing.T) {
		env := newTestEnv(t)

		res, err := env.workouts.CloneWorkout(ctx, 101, service.CloneOptions{AddToLibrary: true})
		require.NoError(t, err)
		require.NotNil(t, res.LibraryWorkout)
		assert.Nil(t, res.ClientWorkout)
		assert.Equal(t, "HIPERTROFIA - TREINO A (Peito e Tríceps) (Cópia)", res.LibraryWorkout.Title)
		assert.NotEqual(t, int64(101), res.LibraryWorkout.ID)
		assert.Equal(t, "60", res.LibraryWorkout.Exercises[0].Load)

		stored, err := env.workouts.GetWorkoutByID(ctx, res.LibraryWorkout.ID)
		require.NoError(t, err)
		assert.Equal(t, *res.LibraryWorkout, *stored)
	})

	t.Run("reset loads leaves the source untouched", func(t *testing.T) {
		env := newTestEnv(t)

		res, err := env.workouts.CloneWorkout(ctx, 101, service.CloneOptions{
			Title:        "Treino A - Reset",
			ResetLoads:   true,
			AddToLibrary: true,
		})
		require.NoError(t, err)
		for _, ex := range res.LibraryWorkout.Exercises {
			assert.Empty(t, ex.Load)
			assert.NotEmpty(t, ex.Reps)
		}

		source, err := env.workouts.GetWorkoutByID(ctx, 101)
		require.NoError(t, err)
		assert.Equal(t, "60", source.Exercises[0].Load)
		assert.Equal(t, "HIPERTROFIA - TREINO A (Peito e Tríceps)", source.Title)
	})

	t.Run("both destinations get distinct ids", func(t *testing.T) {
		env := newTestEnv(t)

		res, err := env.workouts.CloneWorkout(ctx, 102, service.CloneOptions{
			AddToLibrary:   true,
			TargetClientID: 3,
		})
		require.NoError(t, err)
		require.NotNil(t, res.LibraryWorkout)
		require.NotNil(t, res.ClientWorkout)
		assert.Equal(t, int64(3), res.ClientID)
		assert.NotEqual(t, res.LibraryWorkout.ID, res.ClientWorkout.ID)

		c, err := env.clients.GetClientByID(ctx, 3)
		require.NoError(t, err)
		require.Len(t, c.AssignedWorkouts, 1)
		assert.Equal(t, res.ClientWorkout.ID, c.AssignedWorkouts[0].ID)

		_, err = env.workouts.GetWorkoutByID(ctx, res.ClientWorkout.ID)
		assert.ErrorIs(t, err, service.ErrWorkoutNotFound)
	})

	t.Run("rejected requests change nothing", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.workouts.CloneWorkout(ctx, 101, service.CloneOptions{})
		assert.ErrorIs(t, err, service.ErrValidationFailed)

		_, err = env.workouts.CloneWorkout(ctx, 999, service.CloneOptions{AddToLibrary: true})
		assert.ErrorIs(t, err, service.ErrWorkoutNotFound)

		_, err = env.workouts.CloneWorkout(ctx, 101, service.CloneOptions{AddToLibrary: true, TargetClientID: 99})
		assert.ErrorIs(t, err, service.ErrClientNotFound)

		n, err := env.store.Workouts().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 13, n)
	})
}

func TestWorkoutService_ReorderExercises(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	w, err := env.workouts.CreateWorkout(ctx, "Pernas", sampleSets())
	require.NoError(t, err)

	reordered, err := env.workouts.ReorderExercises(ctx, w.ID, 2, 0)
	require.NoError(t, err)
	names := make([]string, 0, len(reordered.Exercises))
	for _, ex := range reordered.Exercises {
		names = append(names, ex.Name)
	}
	assert.Equal(t, []string{"Prancha Abdominal", "Agachamento Livre", "Leg Press 45"}, names)

	_, err = env.workouts.ReorderExercises(ctx, w.ID, 0, 3)
	assert.ErrorIs(t, err, service.ErrValidationFailed)

	stored, err := env.workouts.GetWorkoutByID(ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, reordered.Exercises, stored.Exercises)

	_, err = env.workouts.ReorderExercises(ctx, 999, 0, 1)
	assert.ErrorIs(t, err, service.ErrWorkoutNotFound)
}
