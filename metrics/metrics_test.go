package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestStarted(t *testing.T) {
	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/notes", "200"))

	done := RequestStarted()
	assert.Equal(t, float64(1), testutil.ToFloat64(httpInFlight))

	done("GET", "/notes", "200")
	assert.Equal(t, float64(0), testutil.ToFloat64(httpInFlight))
	assert.Equal(t, before+1, testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/notes", "200")))
}

func TestRecordNoteCreated(t *testing.T) {
	before := testutil.ToFloat64(notesCreated)
	RecordNoteCreated()
	assert.Equal(t, before+1, testutil.ToFloat64(notesCreated))
}

func TestHandler(t *testing.T) {
	RecordNoteCreated()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "notes_api_notes_created_total")
}
