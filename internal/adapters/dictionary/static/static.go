package static

import (
	"context"
	"sort"
	"strings"

	"medirecord/internal/platform/apperr"
	"medirecord/internal/ports/drugs"
)

const (
	SourceName   = "static"
	DefaultLimit = 5
)

type entry = drugs.Info

// Dictionary es la tabla local de medicamentos comunes.
type Dictionary struct {
	keys []string // ordenadas
}

func New() *Dictionary {
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return &Dictionary{keys: keys}
}

var _ drugs.Lookup = (*Dictionary)(nil)

var unaccent = strings.NewReplacer("á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ü", "u")

// normalize: minúsculas, sin espacios extremos ni tildes ("Losartán" -> "losartan").
func normalize(s string) string {
	return unaccent.Replace(strings.ToLower(strings.TrimSpace(s)))
}

func (d *Dictionary) Lookup(_ context.Context, name string) (drugs.Info, error) {
	e, ok := table[normalize(name)]
	if !ok {
		return drugs.Info{}, apperr.NotFound("drug")
	}
	e.Source = SourceName
	return e, nil
}

// Suggest: claves que contienen la búsqueda o están contenidas en ella.
func (d *Dictionary) Suggest(_ context.Context, query string, limit int) ([]string, error) {
	q := normalize(query)
	if q == "" {
		return []string{}, nil
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	out := make([]string, 0, limit)
	for _, k := range d.keys {
		if strings.Contains(k, q) || strings.Contains(q, k) {
			out = append(out, k)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

// Names devuelve todas las claves ordenadas.
func (d *Dictionary) Names() []string {
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}
