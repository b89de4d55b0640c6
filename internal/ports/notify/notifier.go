package notify

import "context"

type Kind string

const (
	KindReminder Kind = "recordatorio"
	KindAlert    Kind = "alerta"
	KindInfo     Kind = "informacion"
)

type Message struct {
	UserID string
	Kind   Kind
	Title  string
	Body   string
}

// Notifier es fire-and-forget: no hay acuse de recibo y los fallos se
// resuelven (o loguean) dentro de la implementación.
type Notifier interface {
	Notify(ctx context.Context, msg Message)
}

// Nop descarta todo.
type Nop struct{}

func (Nop) Notify(context.Context, Message) {}
