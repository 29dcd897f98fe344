package email

import (
	"crypto/tls"
	"fmt"
	"strconv"

	"github.com/wneessen/go-mail"
)

// Client representa el cliente de correo electrónico
type Client struct {
	host      string
	port      int
	user      string
	password  string
	fromName  string
	fromEmail string
}

// NewClient crea una nueva instancia del cliente de email
func NewClient(host, portStr, user, password, fromName, fromEmail string) (*Client, error) {
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("puerto SMTP inválido: %w", err)
	}

	return &Client{
		host:      host,
		port:      port,
		user:      user,
		password:  password,
		fromName:  fromName,
		fromEmail: fromEmail,
	}, nil
}

// SendEmail envía un correo electrónico
func (c *Client) SendEmail(to, subject, htmlBody string) error {
	m := mail.NewMsg()

	if err := m.From(fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail)); err != nil {
		return fmt.Errorf("error al configurar remitente: %w", err)
	}

	if err := m.To(to); err != nil {
		return fmt.Errorf("error al configurar destinatario: %w", err)
	}

	m.Subject(subject)
	m.SetBodyString(mail.TypeTextHTML, htmlBody)

	client, err := mail.NewClient(c.host,
		mail.WithPort(c.port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(c.user),
		mail.WithPassword(c.password),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithTLSConfig(&tls.Config{
			ServerName: c.host,
		}),
	)
	if err != nil {
		return fmt.Errorf("error al crear cliente SMTP (host=%s port=%d): %w", c.host, c.port, err)
	}

	if err := client.DialAndSend(m); err != nil {
		return fmt.Errorf("error al enviar correo (host=%s port=%d): %w", c.host, c.port, err)
	}

	return nil
}

// SendWelcome envía el aviso de alta de cuenta a una persona recién
// registrada
func (c *Client) SendWelcome(to, fullName, login string) error {
	subject := fmt.Sprintf("Cuenta creada - %s", c.fromName)
	htmlBody := generarHTMLBienvenida(fullName, login)

	return c.SendEmail(to, subject, htmlBody)
}

func generarHTMLBienvenida(fullName, login string) string {
	return fmt.Sprintf(`
		<html>
		<body style="font-family: Arial, sans-serif; color: #333;">
			<h2>Bienvenido(a), %s</h2>
			<p>Se ha creado una cuenta para usted en el sistema de administración escolar.</p>
			<p>Su login de acceso es: <strong>%s</strong></p>
			<p>Su contraseña le será entregada por el administrador.</p>
			<hr>
			<p style="font-size: 12px; color: #999;">Este es un mensaje automático, no responda a este correo.</p>
		</body>
		</html>
	`, fullName, login)
}
