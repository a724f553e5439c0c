package notifications

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"

	"github.com/tawdev/mahtaaj-sub005/internal/reservation"
)

var reservationConfirmationTmpl = template.Must(template.New("reservation_confirmation").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 560px; margin: 0 auto;">
  <h2>Confirmation de réservation</h2>
  <p>Bonjour {{.Name}},</p>
  <p>Votre réservation <strong>{{.ItemName}}</strong> a bien été enregistrée.</p>
  <table cellpadding="6" style="border-collapse: collapse;">
    <tr><td>Référence</td><td><strong>{{.ID}}</strong></td></tr>
    {{if .PreferredDate}}<tr><td>Date souhaitée</td><td>{{.PreferredDate}}</td></tr>{{end}}
    {{if .Location}}<tr><td>Adresse</td><td>{{.Location}}</td></tr>{{end}}
    <tr><td>Montant</td><td><strong>{{.FinalPrice}} {{.Currency}}</strong></td></tr>
  </table>
  <p>Notre équipe vous contactera au {{.Phone}} pour convenir du passage.</p>
  <p>Merci de votre confiance.</p>
</div>
`))

// SendReservationConfirmation emails the booking summary to the customer.
func (c *BrevoClient) SendReservationConfirmation(ctx context.Context, res reservation.Reservation) (string, error) {
	if c == nil {
		return "", errors.New("brevo client is nil")
	}
	subject := fmt.Sprintf("Confirmation de réservation - %s", res.ItemName)

	var body bytes.Buffer
	if err := reservationConfirmationTmpl.Execute(&body, res); err != nil {
		return "", fmt.Errorf("reservation email template: %w", err)
	}
	return c.sendHTML(ctx, res.Email, res.Name, subject, body.String())
}
