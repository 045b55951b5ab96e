package notifier

import (
	"auction-engine/utils"
	"fmt"
	"net/smtp"
)

// Notifier sends a "you won" message to an auction winner. Failures are
// non-fatal to the caller: the closeout executor logs and continues.
type Notifier interface {
	NotifyWinner(email, productName string, amount float64) error
}

// SMTPNotifier delivers winner notifications over a plain SMTP relay
type SMTPNotifier struct {
	addr string // host:port of the relay
	from string
}

// NewSMTPNotifier creates an SMTPNotifier for the given relay address and
// sender.
func NewSMTPNotifier(addr, from string) *SMTPNotifier {
	return &SMTPNotifier{addr: addr, from: from}
}

// NotifyWinner sends the winner email
func (n *SMTPNotifier) NotifyWinner(email, productName string, amount float64) error {
	body := fmt.Sprintf(
		"To: %s\r\nSubject: You won the auction for %s\r\n\r\nCongratulations! Your bid of %.2f won the auction for %s.\r\n",
		email, productName, amount, productName,
	)
	if err := smtp.SendMail(n.addr, nil, n.from, []string{email}, []byte(body)); err != nil {
		return fmt.Errorf("notifier: send winner mail to %s: %w", email, err)
	}
	return nil
}

// LogNotifier records notifications in the application log instead of sending
// mail. Used when no SMTP relay is configured.
type LogNotifier struct{}

// NewLogNotifier creates a LogNotifier
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

// NotifyWinner logs the notification and always succeeds
func (n *LogNotifier) NotifyWinner(email, productName string, amount float64) error {
	utils.Info("winner notification", map[string]any{
		"email":   email,
		"product": productName,
		"amount":  amount,
	})
	return nil
}
