package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"alcyxob/trainer-backoffice/internal/domain"
	"alcyxob/trainer-backoffice/internal/repository/memory"
	"alcyxob/trainer-backoffice/internal/service"
)

type fakeImages struct {
	err  error
	keys []string
}

func (f *fakeImages) PresignedImageURL(_ context.Context, key string) (string, error) {
	f.keys = append(f.keys, key)
	if f.err != nil {
		return "", f.err
	}
	return "https://bucket.example/" + key + "?X-Amz-Signature=abc", nil
}

func TestExerciseService_ListExercises(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	all, err := env.exercises.ListExercises(ctx, "", "")
	require.NoError(t, err)
	assert.Len(t, all, 32)

	all, err = env.exercises.ListExercises(ctx, "", service.AllMuscleGroups)
	require.NoError(t, err)
	assert.Len(t, all, 32)

	chest, err := env.exercises.ListExercises(ctx, "", "Peito")
	require.NoError(t, err)
	assert.Len(t, chest, 5)
	for _, ex := range chest {
		assert.Equal(t, "Peito", ex.MuscleGroup)
	}

	supino, err := env.exercises.ListExercises(ctx, "SUPINO", "")
	require.NoError(t, err)
	require.Len(t, supino, 2)
	assert.Equal(t, "Supino Reto Barra", supino[0].Name)
	assert.Equal(t, "Supino Inclinado Halteres", supino[1].Name)

	none, err := env.exercises.ListExercises(ctx, "supino", "Pernas")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestExerciseService_MuscleGroupsInCatalogOrder(t *testing.T) {
	env := newTestEnv(t)

	groups, err := env.exercises.MuscleGroups(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Peito", "Costas", "Pernas", "Ombros", "Bíceps", "Tríceps", "Core", "Cardio", "Funcional",
	}, groups)
}

func TestExerciseService_GetExerciseByID(t *testing.T) {
	env := newTestEnv(t)

	ex, err := env.exercises.GetExerciseByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Supino Reto Barra", ex.Name)

	_, err = env.exercises.GetExerciseByID(context.Background(), 999)
	assert.ErrorIs(t, err, service.ErrExerciseNotFound)
}

func TestExerciseService_ImageURL(t *testing.T) {
	store, err := memory.NewStore([]domain.Exercise{
		{ID: 1, Name: "Supino Reto", MuscleGroup: "Peito"},
		{ID: 2, Name: "Remada", MuscleGroup: "Costas", ImageRef: "https://cdn.example/remada.png"},
		{ID: 3, Name: "Stiff", MuscleGroup: "Pernas", ImageRef: "exercises/stiff.jpg"},
	}, nil, nil)
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("placeholder without storage", func(t *testing.T) {
		svc := service.NewExerciseService(store.Exercises(), nil, zap.NewNop())

		url, err := svc.ImageURL(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "https://placehold.co/800x600/e2e8f0/1e293b?text=Supino%20Reto", url)

		url, err = svc.ImageURL(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, "https://placehold.co/800x600/e2e8f0/1e293b?text=Stiff", url)
	})

	t.Run("absolute url is kept", func(t *testing.T) {
		images := &fakeImages{}
		svc := service.NewExerciseService(store.Exercises(), images, zap.NewNop())

		url, err := svc.ImageURL(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example/remada.png", url)
		assert.Empty(t, images.keys)
	})

	t.Run("object key is presigned", func(t *testing.T) {
		images := &fakeImages{}
		svc := service.NewExerciseService(store.Exercises(), images, zap.NewNop())

		url, err := svc.ImageURL(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, "https://bucket.example/exercises/stiff.jpg?X-Amz-Signature=abc", url)
		assert.Equal(t, []string{"exercises/stiff.jpg"}, images.keys)
	})

	t.Run("presign failure falls back to placeholder", func(t *testing.T) {
		svc := service.NewExerciseService(store.Exercises(), &fakeImages{err: errors.New("boom")}, zap.NewNop())

		url, err := svc.ImageURL(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, "https://placehold.co/800x600/e2e8f0/1e293b?text=Stiff", url)
	})

	t.Run("unknown exercise", func(t *testing.T) {
		svc := service.NewExerciseService(store.Exercises(), nil, zap.NewNop())
		_, err := svc.ImageURL(ctx, 42)
		assert.ErrorIs(t, err, service.ErrExerciseNotFound)
	})
}
