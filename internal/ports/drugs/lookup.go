package drugs

import "context"

// Info describe un medicamento de referencia.
type Info struct {
	Name           string
	Description    string
	OverTheCounter bool // venta libre
	GenericName    string
	Source         string
}

// Lookup es un diccionario de medicamentos intercambiable.
// Lookup devuelve apperr.ErrNotFound si no hay coincidencia exacta.
type Lookup interface {
	Lookup(ctx context.Context, name string) (Info, error)
	Suggest(ctx context.Context, query string, limit int) ([]string, error)
}

// Severity es la gravedad de una interacción entre dos medicamentos.
type Severity string

const (
	SeverityMild     Severity = "leve"
	SeverityModerate Severity = "moderado"
	SeveritySevere   Severity = "grave"
)

// Rank ordena de más grave a menos grave.
func (s Severity) Rank() int {
	switch s {
	case SeveritySevere:
		return 0
	case SeverityModerate:
		return 1
	default:
		return 2
	}
}

// Interaction es una interacción conocida entre DrugA y DrugB (en minúsculas).
type Interaction struct {
	DrugA          string
	DrugB          string
	Severity       Severity
	Description    string
	Recommendation string
	Source         string
}

// InteractionChecker devuelve las interacciones entre pares de names.
// Los nombres desconocidos se ignoran.
type InteractionChecker interface {
	Interactions(ctx context.Context, names []string) ([]Interaction, error)
}
