package mailer

import (
	"bytes"
	"fmt"
	"html/template"
)

type Type string

const (
	TypeBookingConfirmation Type = "booking_confirmation"
	TypePaymentConfirmation Type = "payment_confirmation"
	TypeAdminNotification   Type = "admin_notification"
)

var bookingConfirmationTmpl = template.Must(template.New("booking_confirmation").Parse(`
<h2>Seu agendamento foi confirmado!</h2>
<p>Olá <strong>{{.CustomerName}}</strong>,</p>
<p>Seu agendamento foi realizado com sucesso!</p>

<h3>Detalhes do Agendamento:</h3>
<ul>
  <li><strong>Serviço:</strong> {{.ServiceName}}</li>
  <li><strong>Data:</strong> {{.Date}}</li>
  <li><strong>Horário:</strong> {{.Time}}</li>
  <li><strong>Veículo:</strong> {{.VehicleModel}} ({{.VehiclePlate}})</li>
  <li><strong>Valor:</strong> {{.Price}}</li>
</ul>

<p>Se houver alguma dúvida, entre em contato conosco pelo WhatsApp.</p>
<p>Obrigado por escolher a Lemon's Car!</p>
`))

var paymentConfirmationTmpl = template.Must(template.New("payment_confirmation").Parse(`
<h2>Seu pagamento foi confirmado!</h2>
<p>Olá <strong>{{.CustomerName}}</strong>,</p>
<p>Recebemos seu pagamento com sucesso!</p>

<h3>Detalhes do Pagamento:</h3>
<ul>
  <li><strong>Valor:</strong> {{.Amount}}</li>
  <li><strong>Método:</strong> {{.PaymentMethod}}</li>
  <li><strong>ID da Transação:</strong> {{.TransactionID}}</li>
</ul>

<p>Seu agendamento está confirmado. Vemos você em breve!</p>
`))

var adminNotificationTmpl = template.Must(template.New("admin_notification").Parse(`
<h2>Nova notificação de administrador</h2>
<p><strong>Tipo:</strong> {{.NotificationType}}</p>
<p><strong>Usuário:</strong> {{.UserName}}</p>
<p><strong>Email:</strong> {{.UserEmail}}</p>
<p><strong>Mensagem:</strong> {{.Message}}</p>
`))

// BookingData fills the booking-confirmation template.
type BookingData struct {
	CustomerName string
	ServiceName  string
	Date         string
	Time         string
	VehicleModel string
	VehiclePlate string
	Price        string
}

// PaymentData fills the payment-confirmation template.
type PaymentData struct {
	CustomerName  string
	Amount        string
	PaymentMethod string
	TransactionID string
}

// AdminData fills the admin-notification template.
type AdminData struct {
	NotificationType string
	UserName         string
	UserEmail        string
	Message          string
}

// RenderTemplate produces the subject and HTML body for a message type.
func RenderTemplate(t Type, data any) (subject string, html string, err error) {
	var tmpl *template.Template

	switch t {
	case TypeBookingConfirmation:
		tmpl = bookingConfirmationTmpl
		subject = "Agendamento Confirmado - Lemon's Car"
	case TypePaymentConfirmation:
		tmpl = paymentConfirmationTmpl
		subject = "Pagamento Confirmado - Lemon's Car"
	case TypeAdminNotification:
		tmpl = adminNotificationTmpl
		subject = "[ADMIN] Nova notificação - Lemon's Car"
	default:
		return "", "", fmt.Errorf("unknown email type %q", t)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", "", err
	}
	return subject, buf.String(), nil
}
