package rxnorm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"medirecord/internal/platform/apperr"
	"medirecord/internal/ports/drugs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := New(Config{BaseURL: srv.URL})
	require.NoError(t, err)
	return c
}

func TestLookup_Found(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/REST/rxcui.json", r.URL.Path)
		assert.Equal(t, "ibuprofen", r.URL.Query().Get("name"))
		_, _ = w.Write([]byte(`{"idGroup":{"name":"ibuprofen","rxnormId":["5640"]}}`))
	})

	info, err := c.Lookup(context.Background(), "ibuprofen")
	require.NoError(t, err)
	assert.Equal(t, "ibuprofen", info.Name)
	assert.Equal(t, SourceName, info.Source)
	assert.Contains(t, info.Description, "5640")
}

func TestLookup_NoConcept(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"idGroup":{"name":"xyz"}}`))
	})

	_, err := c.Lookup(context.Background(), "xyz")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestLookup_UpstreamFailure(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := c.Lookup(context.Background(), "ibuprofen")
	require.Error(t, err)
	assert.Equal(t, apperr.CodeInternal, apperr.CodeOf(err))
}

func TestSuggest_DedupAndLimit(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/REST/approximateTerm.json", r.URL.Path)
		assert.Equal(t, "ibu", r.URL.Query().Get("term"))
		assert.Equal(t, "2", r.URL.Query().Get("maxEntries"))
		_, _ = w.Write([]byte(`{"approximateGroup":{"candidate":[
			{"rxcui":"5640","name":"Ibuprofen"},
			{"rxcui":"5641","name":"ibuprofen"},
			{"rxcui":"1","name":""},
			{"rxcui":"2","name":"ibuprofen 200 MG"},
			{"rxcui":"3","name":"ibuprofen 400 MG"}
		]}}`))
	})

	got, err := c.Suggest(context.Background(), "ibu", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"ibuprofen", "ibuprofen 200 mg"}, got)
}

func TestSuggest_EmptyQuery(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	})
	got, err := c.Suggest(context.Background(), "  ", 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestInteractions_ResolvesAndMapsSeverity(t *testing.T) {
	cuis := map[string]string{"warfarin": "11289", "aspirin": "1191"}
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/REST/rxcui.json":
			id, ok := cuis[r.URL.Query().Get("name")]
			if !ok {
				_, _ = w.Write([]byte(`{"idGroup":{}}`))
				return
			}
			_, _ = w.Write([]byte(`{"idGroup":{"rxnormId":["` + id + `"]}}`))
		case "/REST/interaction/list.json":
			assert.Equal(t, "11289 1191", r.URL.Query().Get("rxcuis"))
			_, _ = w.Write([]byte(`{"fullInteractionTypeGroup":[{"sourceName":"DrugBank","fullInteractionType":[
				{"interactionPair":[{"severity":"high","description":"Bleeding risk.","interactionConcept":[
					{"minConceptItem":{"rxcui":"11289","name":"Warfarin"}},
					{"minConceptItem":{"rxcui":"1191","name":"Aspirin"}}]}]},
				{"interactionPair":[{"severity":"N/A","description":"Duplicate.","interactionConcept":[
					{"minConceptItem":{"rxcui":"1191","name":"aspirin"}},
					{"minConceptItem":{"rxcui":"11289","name":"warfarin"}}]}]}
			]}]}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})

	got, err := c.Interactions(context.Background(), []string{"warfarin", "aspirin", "unknown"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "aspirin", got[0].DrugA)
	assert.Equal(t, "warfarin", got[0].DrugB)
	assert.Equal(t, drugs.SeveritySevere, got[0].Severity)
	assert.Equal(t, "Bleeding risk.", got[0].Description)
	assert.Equal(t, SourceName, got[0].Source)
}

func TestInteractions_SingleKnownDrugSkipsQuery(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/REST/rxcui.json" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"idGroup":{"rxnormId":["1191"]}}`))
	})

	got, err := c.Interactions(context.Background(), []string{"aspirin", "Aspirin"})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSeverityOf(t *testing.T) {
	assert.Equal(t, drugs.SeveritySevere, severityOf("High"))
	assert.Equal(t, drugs.SeverityMild, severityOf("minor"))
	assert.Equal(t, drugs.SeverityModerate, severityOf("N/A"))
	assert.Equal(t, drugs.SeverityModerate, severityOf(""))
}
