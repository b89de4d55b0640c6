package rxnorm

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"medirecord/internal/platform/apperr"
	"medirecord/internal/platform/httpclient"
	"medirecord/internal/platform/logger"
	"medirecord/internal/ports/drugs"
)

const (
	SourceName     = "rxnorm"
	DefaultBaseURL = "https://rxnav.nlm.nih.gov"
	defaultLimit   = 5
)

type Config struct {
	BaseURL string
	Timeout time.Duration
	Log     logger.Logger
}

// Client consulta la API REST de RxNav (NLM).
type Client struct {
	http *httpclient.Client
}

var (
	_ drugs.Lookup             = (*Client)(nil)
	_ drugs.InteractionChecker = (*Client)(nil)
)

func New(cfg Config) (*Client, error) {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = DefaultBaseURL
	}
	hc, err := httpclient.New(httpclient.Options{
		BaseURL: base,
		Timeout: cfg.Timeout,
		Log:     cfg.Log,
	})
	if err != nil {
		return nil, err
	}
	return &Client{http: hc}, nil
}

type rxcuiResponse struct {
	IDGroup struct {
		Name     string   `json:"name"`
		RxNormID []string `json:"rxnormId"`
	} `json:"idGroup"`
}

type approximateResponse struct {
	ApproximateGroup struct {
		Candidate []struct {
			RxCUI string `json:"rxcui"`
			Name  string `json:"name"`
			Score string `json:"score"`
		} `json:"candidate"`
	} `json:"approximateGroup"`
}

// Lookup resuelve un nombre exacto a su RXCUI.
func (c *Client) Lookup(ctx context.Context, name string) (drugs.Info, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return drugs.Info{}, apperr.InvalidInput("name is required")
	}

	var out rxcuiResponse
	err := c.http.GetJSON(ctx, "/REST/rxcui.json", url.Values{"name": {name}}, &out)
	if err != nil {
		return drugs.Info{}, c.mapErr(err)
	}
	if len(out.IDGroup.RxNormID) == 0 {
		return drugs.Info{}, apperr.NotFound("drug")
	}

	display := out.IDGroup.Name
	if display == "" {
		display = name
	}
	return drugs.Info{
		Name:        display,
		Description: "RxNorm concept " + out.IDGroup.RxNormID[0],
		Source:      SourceName,
	}, nil
}

// Suggest usa approximateTerm; candidatos sin nombre se omiten y se deduplican.
func (c *Client) Suggest(ctx context.Context, query string, limit int) ([]string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []string{}, nil
	}
	if limit <= 0 {
		limit = defaultLimit
	}

	var out approximateResponse
	q := url.Values{
		"term":       {query},
		"maxEntries": {strconv.Itoa(limit)},
	}
	if err := c.http.GetJSON(ctx, "/REST/approximateTerm.json", q, &out); err != nil {
		return nil, c.mapErr(err)
	}

	seen := map[string]bool{}
	names := make([]string, 0, limit)
	for _, cand := range out.ApproximateGroup.Candidate {
		n := strings.ToLower(strings.TrimSpace(cand.Name))
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		names = append(names, n)
		if len(names) == limit {
			break
		}
	}
	return names, nil
}

type interactionResponse struct {
	FullInteractionTypeGroup []struct {
		SourceName          string `json:"sourceName"`
		FullInteractionType []struct {
			InteractionPair []struct {
				Severity           string `json:"severity"`
				Description        string `json:"description"`
				InteractionConcept []struct {
					MinConceptItem struct {
						RxCUI string `json:"rxcui"`
						Name  string `json:"name"`
					} `json:"minConceptItem"`
				} `json:"interactionConcept"`
			} `json:"interactionPair"`
		} `json:"fullInteractionType"`
	} `json:"fullInteractionTypeGroup"`
}

// Interactions resuelve cada nombre a su RXCUI (los desconocidos se ignoran)
// y consulta interaction/list.json con todos juntos.
func (c *Client) Interactions(ctx context.Context, names []string) ([]drugs.Interaction, error) {
	cuis := make([]string, 0, len(names))
	seen := map[string]bool{}
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		var id rxcuiResponse
		if err := c.http.GetJSON(ctx, "/REST/rxcui.json", url.Values{"name": {n}}, &id); err != nil {
			if httpclient.StatusCode(err) == http.StatusNotFound {
				continue
			}
			return nil, c.mapErr(err)
		}
		if len(id.IDGroup.RxNormID) == 0 || seen[id.IDGroup.RxNormID[0]] {
			continue
		}
		seen[id.IDGroup.RxNormID[0]] = true
		cuis = append(cuis, id.IDGroup.RxNormID[0])
	}
	out := make([]drugs.Interaction, 0)
	if len(cuis) < 2 {
		return out, nil
	}

	var resp interactionResponse
	q := url.Values{"rxcuis": {strings.Join(cuis, " ")}}
	if err := c.http.GetJSON(ctx, "/REST/interaction/list.json", q, &resp); err != nil {
		return nil, c.mapErr(err)
	}

	dup := map[string]bool{}
	for _, g := range resp.FullInteractionTypeGroup {
		for _, ft := range g.FullInteractionType {
			for _, p := range ft.InteractionPair {
				if len(p.InteractionConcept) < 2 {
					continue
				}
				a := strings.ToLower(p.InteractionConcept[0].MinConceptItem.Name)
				b := strings.ToLower(p.InteractionConcept[1].MinConceptItem.Name)
				if a > b {
					a, b = b, a
				}
				if dup[a+"|"+b] {
					continue
				}
				dup[a+"|"+b] = true
				out = append(out, drugs.Interaction{
					DrugA:       a,
					DrugB:       b,
					Severity:    severityOf(p.Severity),
					Description: p.Description,
					Source:      SourceName,
				})
			}
		}
	}
	return out, nil
}

// severityOf traduce la severidad de RxNav ("high", "N/A", ...) a la escala local.
func severityOf(s string) drugs.Severity {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high", "major", "severe", "contraindicated":
		return drugs.SeveritySevere
	case "low", "minor":
		return drugs.SeverityMild
	default:
		return drugs.SeverityModerate
	}
}

func (c *Client) mapErr(err error) error {
	if httpclient.StatusCode(err) == http.StatusNotFound {
		return apperr.NotFound("drug")
	}
	return apperr.Wrap(err, apperr.CodeInternal, "drug dictionary unavailable")
}
