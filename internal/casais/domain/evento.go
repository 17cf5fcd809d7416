package domain

import "time"

// Evento is a calendar entry. Unlike Casal it is shared by every account;
// CriadoPor only records who created it.
type Evento struct {
	ID        string
	Titulo    string
	Descricao string
	Data      string // YYYY-MM-DD, optionally followed by a time
	CriadoPor string
	IsDelete  bool
	CreatedAt time.Time
}

type EventoPatch struct {
	Titulo    string
	Descricao string
	Data      string
}

func (e *Evento) Apply(p EventoPatch) {
	setIfNotEmpty(&e.Titulo, p.Titulo)
	setIfNotEmpty(&e.Descricao, p.Descricao)
	setIfNotEmpty(&e.Data, p.Data)
}
