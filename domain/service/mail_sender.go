// domain/service/mail_sender.go
package service

// MailSender is the port to the outgoing mail transport. Dispatch is
// fire-and-forget from the caller's point of view; delivery failures must
// never fail the originating request.
type MailSender interface {
	Send(to, subject, body string) error
}
