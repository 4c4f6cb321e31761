// Package messaging composes the texts sent to clients and the deep links
// that open them in WhatsApp. Delivery itself happens outside this service.
package messaging

import (
	"fmt"
	"net/url"
	"strings"

	"alcyxob/trainer-backoffice/internal/domain"
)

const whatsAppBase = "https://wa.me/?text="

// Message is an outbound text together with its deep link.
type Message struct {
	Text string `json:"text"`
	Link string `json:"link"`
}

// NewMessage pairs text with its WhatsApp deep link.
func NewMessage(text string) Message {
	return Message{Text: text, Link: WhatsAppLink(text)}
}

// WhatsAppLink returns the wa.me link carrying text percent-encoded.
func WhatsAppLink(text string) string {
	return whatsAppBase + EncodeComponent(text)
}

// WorkoutCompleted is the share text for a finished workout. date is the long
// form of the training day.
func WorkoutCompleted(clientName, date string, w domain.Workout) string {
	lines := make([]string, 0, len(w.Exercises))
	for _, ex := range w.Exercises {
		line := fmt.Sprintf("✅ %s: %sx%s", ex.Name, ex.Sets, ex.Reps)
		if ex.Load != "" {
			line += fmt.Sprintf(" [%skg]", ex.Load)
		}
		lines = append(lines, line)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Olá %s! 🚀\n\n", clientName)
	fmt.Fprintf(&b, "Treino de hoje (%s) concluído com sucesso!\n\n", date)
	fmt.Fprintf(&b, "*Treino Realizado: %s*\n", w.Title)
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n\nContinue focado! 💪")
	return b.String()
}

// EncodeComponent escapes everything except the characters a URI component
// may carry unescaped: A-Z a-z 0-9 - _ . ! ~ * ' ( )
func EncodeComponent(s string) string {
	escaped := url.QueryEscape(s)
	escaped = strings.ReplaceAll(escaped, "+", "%20")
	r := strings.NewReplacer("%21", "!", "%27", "'", "%28", "(", "%29", ")", "%2A", "*")
	return r.Replace(escaped)
}
