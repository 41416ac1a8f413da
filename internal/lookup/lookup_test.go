// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lookup

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Jeffail/gabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/pdiddy/gene-report/pkg/types"
)

const sampleHGNCJSON = `{
  "responseHeader": {"status": 0, "QTime": 1},
  "response": {
    "numFound": 1,
    "start": 0,
    "docs": [{
      "symbol": "BRCA1",
      "name": "BRCA1 DNA repair associated",
      "locus_type": "gene with protein product",
      "hgnc_id": "HGNC:1100",
      "ensembl_gene_id": "ENSG00000012048",
      "uniprot_ids": ["P38398"]
    }]
  }
}`

const sampleProteinJSON = `{
  "accession": "%s",
  "protein": {"recommendedName": {"fullName": {"value": "Protein %s"}}}
}`

// newTestServer serves HGNC documents under /fetch/symbol/ and protein
// documents under /proteins/. Symbols or accessions starting with "MISSING"
// get a 404; "BROKEN" gets a 500.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Accept") != "application/json" {
			http.Error(w, "bad accept header", http.StatusNotAcceptable)
			return
		}
		last := r.URL.Path[strings.LastIndex(r.URL.Path, "/")+1:]
		switch {
		case strings.HasPrefix(last, "MISSING"):
			http.NotFound(w, r)
		case strings.HasPrefix(last, "BROKEN"):
			w.WriteHeader(http.StatusInternalServerError)
		case strings.HasPrefix(r.URL.Path, "/fetch/symbol/"):
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, sampleHGNCJSON)
		case strings.HasPrefix(r.URL.Path, "/proteins/"):
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprintf(w, sampleProteinJSON, last, last)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(ts.Close)
	return ts
}

func testClient(t *testing.T, base string) *Client {
	t.Helper()
	cfg := types.LookupConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   5 * time.Second,
			UserAgent: "gene-report-test/0.1",
		},
		GeneBase:    base + "/fetch/symbol",
		ProteinBase: base + "/proteins",
	}
	return NewClient(cfg, zaptest.NewLogger(t).Sugar())
}

func TestFetchGene(t *testing.T) {
	ts := newTestServer(t)
	c := testClient(t, ts.URL)

	resp, err := c.FetchGene(context.Background(), "BRCA1")
	require.NoError(t, err)

	docs := GeneDocs(resp)
	require.Len(t, docs, 1)
	assert.Equal(t, "BRCA1", docs[0].Search("symbol").Data())
	assert.Equal(t, float64(1), resp.Search("response", "numFound").Data())
}

func TestFetchGene_NonSuccessDegrades(t *testing.T) {
	ts := newTestServer(t)
	c := testClient(t, ts.URL)

	resp, err := c.FetchGene(context.Background(), "MISSING1")
	require.NoError(t, err)

	assert.True(t, IsDegraded(resp))
	assert.Equal(t, "404", resp.Search("name").Data())
	assert.Empty(t, GeneDocs(resp))
}

func TestFetchGene_TransportError(t *testing.T) {
	ts := newTestServer(t)
	c := testClient(t, ts.URL)
	ts.Close()

	_, err := c.FetchGene(context.Background(), "BRCA1")
	assert.Error(t, err)
}

func TestFetchGene_EmptySymbol(t *testing.T) {
	c := testClient(t, "http://127.0.0.1:0")
	_, err := c.FetchGene(context.Background(), "")
	assert.Error(t, err)
}

func TestFetchProteins_OrderAndIndependence(t *testing.T) {
	ts := newTestServer(t)
	c := testClient(t, ts.URL)

	ids := []string{"P38398", "BROKEN1", "Q92734", "MISSING2"}
	docs, err := c.FetchProteins(context.Background(), ids)
	require.NoError(t, err)
	require.Len(t, docs, len(ids))

	assert.Equal(t, "P38398", docs[0].Search("accession").Data())
	assert.Equal(t, "500", docs[1].Search("name").Data())
	assert.Equal(t, "Q92734", docs[2].Search("accession").Data())
	assert.Equal(t, "404", docs[3].Search("name").Data())
}

func TestFetchProteins_TransportErrorDegrades(t *testing.T) {
	ts := newTestServer(t)
	c := testClient(t, ts.URL)
	ts.Close()

	docs, err := c.FetchProteins(context.Background(), []string{"P38398"})
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "0", docs[0].Search("name").Data())
}

func TestFetchProteins_ContextCancelled(t *testing.T) {
	ts := newTestServer(t)
	c := testClient(t, ts.URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.FetchProteins(ctx, []string{"P38398"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFetchProteins_Empty(t *testing.T) {
	c := testClient(t, "http://127.0.0.1:0")
	docs, err := c.FetchProteins(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestIsDegraded(t *testing.T) {
	named, err := gabs.ParseJSON([]byte(`{"name": "BRCA1 DNA repair associated"}`))
	require.NoError(t, err)

	assert.True(t, IsDegraded(Degraded(503)))
	assert.False(t, IsDegraded(named))
	assert.False(t, IsDegraded(gabs.New()))
}

func TestGeneDocs_Nil(t *testing.T) {
	assert.Nil(t, GeneDocs(nil))
}
