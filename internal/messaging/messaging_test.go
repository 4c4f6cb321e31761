package messaging_test

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alcyxob/trainer-backoffice/internal/domain"
	"alcyxob/trainer-backoffice/internal/messaging"
)

func TestWorkoutCompleted(t *testing.T) {
	w := domain.Workout{
		Title: "Treino A",
		Exercises: []domain.ExerciseSet{
			{Name: "Supino Reto Barra", Sets: domain.Sets(4), Reps: "8-10", Load: "60"},
			{Name: "Barra Fixa", Sets: domain.Sets(3), Reps: "Falha"},
			{Name: "Flexão de Braços", Sets: "Máx", Reps: "15", Load: "25/10"},
		},
	}

	got := messaging.WorkoutCompleted("Ana", "30/11/2025", w)

	want := "Olá Ana! 🚀\n\n" +
		"Treino de hoje (30/11/2025) concluído com sucesso!\n\n" +
		"*Treino Realizado: Treino A*\n" +
		"✅ Supino Reto Barra: 4x8-10 [60kg]\n" +
		"✅ Barra Fixa: 3xFalha\n" +
		"✅ Flexão de Braços: Máxx15 [25/10kg]" +
		"\n\nContinue focado! 💪"
	assert.Equal(t, want, got)
}

func TestWorkoutCompleted_NoExercises(t *testing.T) {
	got := messaging.WorkoutCompleted("Ana", "30/11/2025", domain.Workout{Title: "Vazio"})
	assert.True(t, strings.HasSuffix(got, "*Treino Realizado: Vazio*\n\n\nContinue focado! 💪"))
}

func TestWhatsAppLink(t *testing.T) {
	text := "Olá Ana! (teste) 100% *ok*\nfim"
	link := messaging.WhatsAppLink(text)

	require.True(t, strings.HasPrefix(link, "https://wa.me/?text="))
	encoded := strings.TrimPrefix(link, "https://wa.me/?text=")
	assert.Equal(t, "Ol%C3%A1%20Ana!%20(teste)%20100%25%20*ok*%0Afim", encoded)

	decoded, err := url.QueryUnescape(encoded)
	require.NoError(t, err)
	assert.Equal(t, text, decoded)
}

func TestNewMessage(t *testing.T) {
	m := messaging.NewMessage("oi")
	assert.Equal(t, "oi", m.Text)
	assert.Equal(t, "https://wa.me/?text=oi", m.Link)
}
