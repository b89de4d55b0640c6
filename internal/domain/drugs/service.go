package drugs

import (
	"context"
	"errors"
	"sort"
	"strings"

	"medirecord/internal/domain/medications"
	"medirecord/internal/platform/apperr"
	"medirecord/internal/platform/logger"
	"medirecord/internal/ports/drugs"
)

const (
	DefaultLimit = 5
	MaxLimit     = 20
)

type (
	Info        = drugs.Info
	Interaction = drugs.Interaction
)

// ActiveMedications da los medicamentos del usuario (medications.Service).
type ActiveMedications interface {
	List(ctx context.Context, userID string, f medications.ListFilter) ([]medications.Medication, error)
}

// Service consulta primero el diccionario principal y, si no hay
// coincidencia, el de respaldo (opcional).
type Service struct {
	primary  drugs.Lookup
	fallback drugs.Lookup
	meds     ActiveMedications
	log      logger.Logger
}

func NewService(primary, fallback drugs.Lookup, log logger.Logger) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{
		primary:  primary,
		fallback: fallback,
		log:      log.With(map[string]any{"component": "drugs"}),
	}
}

// SetMedications habilita UserInteractions.
func (s *Service) SetMedications(meds ActiveMedications) {
	s.meds = meds
}

func (s *Service) Lookup(ctx context.Context, name string) (Info, error) {
	if strings.TrimSpace(name) == "" {
		return Info{}, apperr.InvalidInput("name is required")
	}

	info, err := s.primary.Lookup(ctx, name)
	if err == nil || !errors.Is(err, apperr.ErrNotFound) || s.fallback == nil {
		return info, err
	}

	info, ferr := s.fallback.Lookup(ctx, name)
	if ferr != nil {
		if !errors.Is(ferr, apperr.ErrNotFound) {
			s.log.Warn("fallback dictionary failed", map[string]any{"name": name, "err": ferr})
		}
		return Info{}, err
	}
	return info, nil
}

// Suggest completa con el respaldo solo si el principal no llega al límite;
// se piden limit nombres al respaldo porque puede repetir los del principal.
// Un fallo del respaldo no invalida los resultados del principal.
func (s *Service) Suggest(ctx context.Context, query string, limit int) ([]string, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	out, err := s.primary.Suggest(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	if s.fallback == nil || len(out) >= limit || strings.TrimSpace(query) == "" {
		return out, nil
	}

	more, err := s.fallback.Suggest(ctx, query, limit)
	if err != nil {
		s.log.Warn("fallback suggest failed", map[string]any{"query": query, "err": err})
		return out, nil
	}

	seen := make(map[string]bool, len(out))
	for _, n := range out {
		seen[n] = true
	}
	for _, n := range more {
		if seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

// CheckInteractions cruza names contra el diccionario principal y, si lo
// soporta, el de respaldo. Ante el mismo par gana el principal. Resultado
// ordenado de más grave a menos grave.
func (s *Service) CheckInteractions(ctx context.Context, names []string) ([]Interaction, error) {
	out := make([]Interaction, 0)
	if countDistinct(names) < 2 {
		return out, nil
	}

	seen := map[string]bool{}
	add := func(items []Interaction) {
		for _, it := range items {
			k := pairKey(it.DrugA, it.DrugB)
			if seen[k] {
				continue
			}
			seen[k] = true
			out = append(out, it)
		}
	}

	if c, ok := s.primary.(drugs.InteractionChecker); ok {
		items, err := c.Interactions(ctx, names)
		if err != nil {
			return nil, err
		}
		add(items)
	}
	if c, ok := s.fallback.(drugs.InteractionChecker); ok {
		items, err := c.Interactions(ctx, names)
		if err != nil {
			s.log.Warn("fallback interactions failed", map[string]any{"err": err})
		} else {
			add(items)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if ri, rj := out[i].Severity.Rank(), out[j].Severity.Rank(); ri != rj {
			return ri < rj
		}
		return pairKey(out[i].DrugA, out[i].DrugB) < pairKey(out[j].DrugA, out[j].DrugB)
	})
	return out, nil
}

// UserInteractions revisa los medicamentos activos del usuario entre sí.
func (s *Service) UserInteractions(ctx context.Context, userID string) ([]Interaction, error) {
	if s.meds == nil {
		return nil, apperr.New(apperr.CodeInternal, "medications source not configured")
	}
	items, err := s.meds.List(ctx, userID, medications.ListFilter{ActiveOnly: true})
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(items))
	for _, m := range items {
		names = append(names, m.Name)
	}
	return s.CheckInteractions(ctx, names)
}

func pairKey(a, b string) string {
	a, b = strings.ToLower(a), strings.ToLower(b)
	if a > b {
		a, b = b, a
	}
	return a + "|" + b
}

func countDistinct(names []string) int {
	set := map[string]bool{}
	for _, n := range names {
		if n = strings.ToLower(strings.TrimSpace(n)); n != "" {
			set[n] = true
		}
	}
	return len(set)
}
