package seed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alcyxob/trainer-backoffice/internal/domain"
	"alcyxob/trainer-backoffice/internal/seed"
)

func TestLoad_EmbeddedFixtures(t *testing.T) {
	data, err := seed.Load()
	require.NoError(t, err)

	assert.Len(t, data.Exercises, 32)
	assert.Len(t, data.Workouts, 13)
	assert.Len(t, data.Clients, 5)

	assert.Equal(t, "Supino Reto Barra", data.Exercises[0].Name)
	assert.Equal(t, "Funcional", data.Exercises[31].MuscleGroup)

	first := data.Workouts[0]
	assert.Equal(t, int64(101), first.ID)
	require.Len(t, first.Exercises, 6)
	assert.Equal(t, domain.Sets(4), first.Exercises[0].Sets)
	assert.Equal(t, "60", first.Exercises[0].Load)
	assert.Empty(t, first.Exercises[5].Load)

	joao := data.Clients[0]
	assert.Equal(t, domain.ClientActive, joao.Status)
	assert.Equal(t, domain.PlanOnline, joao.PlanType)
	assert.Equal(t, "Mastercard •••• 4242", joao.PaymentMethod)
	require.Len(t, joao.ProgressLogs, 5)
	last, _ := joao.LatestLog()
	assert.Equal(t, "28/11", last.Date)
	assert.InDelta(t, 83.0, last.Weight, 0.001)
	require.NotNil(t, last.VolumeLoad)
	assert.InDelta(t, 14500.0, *last.VolumeLoad, 0.001)

	ana := data.Clients[3]
	assert.Equal(t, domain.ClientInactive, ana.Status)
	assert.Equal(t, domain.PlanHybrid, ana.PlanType)
	assert.Equal(t, domain.PaymentOverdue, ana.PaymentStatus)
	assert.Empty(t, ana.ProgressLogs)
	assert.NotNil(t, ana.AssignedWorkouts)
}

func TestParse_TokenSetCount(t *testing.T) {
	workouts := []byte(`
[[workout]]
id = 9
title = "Desafio"

[[workout.exercise]]
name = "Flexão de Braços"
sets = "Máx"
reps = "Falha"
`)
	data, err := seed.Parse(nil, workouts, nil)
	require.NoError(t, err)
	require.Len(t, data.Workouts, 1)
	assert.Equal(t, domain.SetCount("Máx"), data.Workouts[0].Exercises[0].Sets)
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name              string
		exercises         string
		workouts, clients string
	}{
		{name: "unknown status", clients: "[[client]]\nid = 1\nname = \"X\"\nstatus = \"Ativo\"\n"},
		{name: "missing set count", workouts: "[[workout]]\nid = 1\ntitle = \"T\"\n[[workout.exercise]]\nname = \"A\"\n"},
		{name: "exercise without id", exercises: "[[exercise]]\nname = \"A\"\n"},
		{name: "not toml", workouts: "[[workout"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := seed.Parse([]byte(tt.exercises), []byte(tt.workouts), []byte(tt.clients))
			assert.Error(t, err)
		})
	}
}
