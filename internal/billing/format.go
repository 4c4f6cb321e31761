package billing

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"alcyxob/trainer-backoffice/internal/domain"
)

// FormatBRL formats v in Brazilian notation with two decimals: 1234.5 -> "1.234,50".
func FormatBRL(v float64) string {
	neg := v < 0
	cents := int64(math.Round(math.Abs(v) * 100))
	whole := strconv.FormatInt(cents/100, 10)

	var b strings.Builder
	if neg && cents != 0 {
		b.WriteByte('-')
	}
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	fmt.Fprintf(&b, ",%02d", cents%100)
	return b.String()
}

// ReminderMessage is the payment reminder sent to a client. It has no effect
// on the client record.
func ReminderMessage(c *domain.Client) string {
	return fmt.Sprintf(
		"Olá %s, tudo bem? 👋\n\n"+
			"Passando para lembrar sobre a mensalidade do seu plano *%s*.\n"+
			"💲 Valor: *R$ %s*\n"+
			"📅 Vencimento: %s\n\n"+
			"Fico no aguardo do comprovante. Qualquer dúvida, estou à disposição! 🚀",
		c.Name, c.PlanType.Label(), FormatBRL(c.MonthlyFee), c.NextPaymentDate,
	)
}
