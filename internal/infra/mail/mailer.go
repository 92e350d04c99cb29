package mail

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"vtcquote/internal/pkg/config"
	"vtcquote/internal/pkg/errs"
	"vtcquote/internal/pkg/money"
	"vtcquote/internal/usecase/commands"
	"vtcquote/internal/usecase/queries"

	"gopkg.in/gomail.v2"
)

// Mailer sends quote PDFs over SMTP.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewMailer(cfg config.SMTPConfig) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
	}
}

var _ commands.QuoteMailer = (*Mailer)(nil)

func (m *Mailer) SendQuote(ctx context.Context, to string, companyName string, view *queries.QuoteView, pdf []byte) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", fmt.Sprintf("Votre devis %s", companyName))
	msg.SetBody("text/plain", quoteBody(companyName, view))
	msg.Attach("devis.pdf", gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := io.Copy(w, bytes.NewReader(pdf))
		return err
	}))

	// gomail has no context support; honor cancellation before dialing.
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if err := m.dialer.DialAndSend(msg); err != nil {
		return errs.Wrap(err, "failed to send quote email")
	}
	return nil
}

func quoteBody(companyName string, view *queries.QuoteView) string {
	return fmt.Sprintf(
		"Bonjour,\n\nVeuillez trouver ci-joint votre devis pour le trajet du %s à %s.\n\n"+
			"Départ : %s\nArrivée : %s\nTotal TTC : %s\n\nCordialement,\n%s\n",
		view.DepartureDate.Format("02/01/2006"), view.DepartureTime,
		view.PickupLabel, view.DropoffLabel,
		money.FormatEUR(money.Round2(view.Breakdown.TotalTTC)),
		companyName,
	)
}
