package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alcyxob/trainer-backoffice/internal/domain"
	"alcyxob/trainer-backoffice/internal/messaging"
	"alcyxob/trainer-backoffice/internal/service"
)

func TestTrainerService_NewClientCompletesFirstWorkout(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	ana, err := env.clients.CreateClient(ctx, service.ClientInput{Name: "Ana"})
	require.NoError(t, err)
	require.Empty(t, ana.ProgressLogs)

	w, err := env.workouts.CreateWorkout(ctx, "Treino A", sampleSets())
	require.NoError(t, err)
	_, err = env.trainer.AssignWorkout(ctx, ana.ID, w.ID)
	require.NoError(t, err)

	res, err := env.trainer.CompleteWorkout(ctx, ana.ID, w.ID)
	require.NoError(t, err)

	require.Len(t, res.Client.ProgressLogs, 1)
	log := res.Client.ProgressLogs[0]
	assert.Equal(t, "15/12", log.Date)
	assert.Equal(t, 1, log.WorkoutsCompleted)
	assert.Equal(t, 70.0, log.Weight)
	assert.Equal(t, log, res.Log)
	assert.Equal(t, domain.ClientActive, res.Client.Status)
	assert.Equal(t, "15/12/2025", res.Client.LastTraining)

	text := res.Share.Text
	assert.Contains(t, text, "Olá Ana!")
	assert.Contains(t, text, "*Treino Realizado: Treino A*")
	lines := []string{
		"✅ Agachamento Livre: 4x8 [100kg]",
		"✅ Leg Press 45: 3x12 [200kg]",
		"✅ Prancha Abdominal: Máxx60s",
	}
	last := -1
	for _, l := range lines {
		i := strings.Index(text, l)
		require.GreaterOrEqual(t, i, 0, l)
		assert.Greater(t, i, last, "exercise lines keep workout order")
		last = i
	}
	assert.Equal(t, messaging.WhatsAppLink(text), res.Share.Link)
}

func TestTrainerService_CompleteWorkout_SameDayBumpsLog(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.trainer.AssignWorkout(ctx, 4, 201)
	require.NoError(t, err)

	_, err = env.trainer.CompleteWorkout(ctx, 4, 201)
	require.NoError(t, err)
	res, err := env.trainer.CompleteWorkout(ctx, 4, 201)
	require.NoError(t, err)

	require.Len(t, res.Client.ProgressLogs, 1)
	assert.Equal(t, 2, res.Client.ProgressLogs[0].WorkoutsCompleted)
	assert.Equal(t, 2, res.Log.WorkoutsCompleted)
	// the inactive client is active again
	assert.Equal(t, domain.ClientActive, res.Client.Status)
}

func TestTrainerService_CompleteWorkout_CarriesLatestWeight(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.trainer.AssignWorkout(ctx, 1, 101)
	require.NoError(t, err)

	res, err := env.trainer.CompleteWorkout(ctx, 1, 101)
	require.NoError(t, err)
	require.Len(t, res.Client.ProgressLogs, 6)
	assert.Equal(t, "15/12", res.Log.Date)
	assert.Equal(t, 83.0, res.Log.Weight)
	assert.Equal(t, 1, res.Log.WorkoutsCompleted)
}

func TestTrainerService_CompleteWorkout_Rejections(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.trainer.CompleteWorkout(ctx, 1, 101)
	assert.ErrorIs(t, err, service.ErrWorkoutNotAssigned)

	_, err = env.trainer.CompleteWorkout(ctx, 99, 101)
	assert.ErrorIs(t, err, service.ErrClientNotFound)

	c, err := env.clients.GetClientByID(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, c.ProgressLogs, 5)
	assert.Equal(t, "28/11/2025", c.LastTraining)
}

func TestTrainerService_AssignWorkout(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	c, err := env.trainer.AssignWorkout(ctx, 3, 101)
	require.NoError(t, err)
	require.Len(t, c.AssignedWorkouts, 1)

	_, err = env.trainer.AssignWorkout(ctx, 3, 101)
	assert.ErrorIs(t, err, service.ErrWorkoutAlreadyAssigned)

	_, err = env.trainer.AssignWorkout(ctx, 3, 999)
	assert.ErrorIs(t, err, service.ErrWorkoutNotFound)

	_, err = env.trainer.AssignWorkout(ctx, 99, 101)
	assert.ErrorIs(t, err, service.ErrClientNotFound)

	stored, err := env.clients.GetClientByID(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, stored.AssignedWorkouts, 1)
}

func TestTrainerService_AssignedCopyIsIsolated(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.trainer.AssignWorkout(ctx, 3, 101)
	require.NoError(t, err)

	_, err = env.workouts.ReorderExercises(ctx, 101, 0, 5)
	require.NoError(t, err)

	c, err := env.clients.GetClientByID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "Supino Reto Barra", c.AssignedWorkouts[0].Exercises[0].Name)

	lib, err := env.workouts.GetWorkoutByID(ctx, 101)
	require.NoError(t, err)
	assert.Equal(t, "Supino Reto Barra", lib.Exercises[5].Name)
}

func TestTrainerService_RemoveAssignedWorkout(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.trainer.AssignWorkout(ctx, 3, 101)
	require.NoError(t, err)
	_, err = env.trainer.AssignWorkout(ctx, 3, 102)
	require.NoError(t, err)

	c, err := env.trainer.RemoveAssignedWorkout(ctx, 3, 101)
	require.NoError(t, err)
	require.Len(t, c.AssignedWorkouts, 1)
	assert.Equal(t, int64(102), c.AssignedWorkouts[0].ID)

	_, err = env.trainer.RemoveAssignedWorkout(ctx, 3, 101)
	assert.ErrorIs(t, err, service.ErrWorkoutNotAssigned)

	// the library keeps its original
	_, err = env.workouts.GetWorkoutByID(ctx, 101)
	assert.NoError(t, err)
}

func TestTrainerService_AssignExercise(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	c, err := env.trainer.AssignExercise(ctx, 5, service.ExercisePrescription{ExerciseID: 11})
	require.NoError(t, err)
	require.Len(t, c.AssignedExercises, 1)
	got := c.AssignedExercises[0]
	assert.Equal(t, "Agachamento Livre", got.Name)
	assert.Equal(t, int64(11), got.OriginalID)
	assert.Equal(t, domain.Sets(3), got.Sets)
	assert.Equal(t, "10", got.Reps)

	c, err = env.trainer.AssignExercise(ctx, 5, service.ExercisePrescription{
		ExerciseID: 11, Sets: "5", Reps: "5", Load: "120", Obs: "Pausa de 3min",
	})
	require.NoError(t, err)
	require.Len(t, c.AssignedExercises, 2)
	assert.Equal(t, "120", c.AssignedExercises[1].Load)

	_, err = env.trainer.AssignExercise(ctx, 5, service.ExercisePrescription{ExerciseID: 999})
	assert.ErrorIs(t, err, service.ErrExerciseNotFound)
}

func TestTrainerService_RemoveAssignedExercise(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for _, id := range []int64{1, 6, 11} {
		_, err := env.trainer.AssignExercise(ctx, 5, service.ExercisePrescription{ExerciseID: id})
		require.NoError(t, err)
	}

	c, err := env.trainer.RemoveAssignedExercise(ctx, 5, 1)
	require.NoError(t, err)
	require.Len(t, c.AssignedExercises, 2)
	assert.Equal(t, int64(1), c.AssignedExercises[0].OriginalID)
	assert.Equal(t, int64(11), c.AssignedExercises[1].OriginalID)

	_, err = env.trainer.RemoveAssignedExercise(ctx, 5, 2)
	assert.ErrorIs(t, err, service.ErrAssignedExerciseIndex)
	_, err = env.trainer.RemoveAssignedExercise(ctx, 5, -1)
	assert.ErrorIs(t, err, service.ErrAssignedExerciseIndex)
}
