package booking

import (
	"github.com/lemonscar/detailing-api/internal/audit"
	"github.com/lemonscar/detailing-api/internal/mailer"
)

// AuditSink and MailSink are what the use cases need from the async
// dispatchers. Tests swap in recording fakes.
type AuditSink interface {
	Dispatch(ev audit.Event)
}

type MailSink interface {
	Dispatch(msg mailer.Message)
}
