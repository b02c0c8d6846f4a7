package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	texttemplate "text/template"

	"github.com/samandr77/materials/internal/entity"
)

const accountMailSubject = "Your materials account"

var (
	accountMailHTML = template.Must(template.New("account-html").Parse(`<p>Hello {{.Name}},</p>
<p>An account has been created for you.</p>
<p>Email: <b>{{.Email}}</b><br>
{{- if .Password}}Password: <b>{{.Password}}</b>{{else}}Password: ask your administrator{{end}}</p>
<p>Sign in at <a href="{{.LoginURL}}">{{.LoginURL}}</a> and change your password.</p>`))

	accountMailText = texttemplate.Must(texttemplate.New("account-text").Parse(`Hello {{.Name}},

An account has been created for you.

Email: {{.Email}}
{{if .Password}}Password: {{.Password}}{{else}}Password: ask your administrator{{end}}

Sign in at {{.LoginURL}} and change your password.
`))
)

var errMailDisabled = errors.New("mailer is not configured")

type accountMail struct {
	Name     string
	Email    string
	Password string
	LoginURL string
}

// SendAccountMail mails the account details to the owner of a freshly
// created account. When the event asks for it, a one-time password is
// generated and stored first, so the password only ever travels by mail.
func (s *Service) SendAccountMail(ctx context.Context, event entity.AccountCreated) error {
	if s.mailer == nil {
		return errMailDisabled
	}

	data := accountMail{Name: event.Name, Email: event.Email, LoginURL: s.opts.FrontendURL + "/login"}

	if event.IssuePassword {
		password := GeneratePassword()

		hash, err := HashPassword(password)
		if err != nil {
			return err
		}

		if _, err := s.repo.UpdateUser(ctx, event.UserID, entity.UserUpdate{Password: &hash}); err != nil {
			return fmt.Errorf("set one-time password for user %d: %w", event.UserID, err)
		}

		data.Password = password
	}

	var html, plain bytes.Buffer

	if err := accountMailHTML.Execute(&html, data); err != nil {
		return fmt.Errorf("render account mail: %w", err)
	}

	if err := accountMailText.Execute(&plain, data); err != nil {
		return fmt.Errorf("render account mail: %w", err)
	}

	if err := s.mailer.SendMessage(accountMailSubject, html.String(), plain.String(), event.Email); err != nil {
		return fmt.Errorf("send account mail to user %d: %w", event.UserID, err)
	}

	slog.InfoContext(ctx, "account mail sent", "user_id", event.UserID)

	return nil
}
