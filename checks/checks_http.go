package checks

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/maximeroma/seqsuite/framework"

	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// DoHTTPFixtureChecks verifies that suites using HTTP fixtures, set up and
// torn down per suite, see only their own server. The fixtures use mock
// handlers from go-test-helpers in the usual way.
func DoHTTPFixtureChecks(t *framework.T) {
	t.Run("each suite sees only its own server", func(t *framework.T) {
		handlerA, requestsA := httphelpers.RecordingHandler(httphelpers.HandlerWithStatus(204))
		handlerB, requestsB := httphelpers.RecordingHandler(httphelpers.HandlerWithStatus(503))

		httpSuite := func(handler http.Handler, wantStatus int) framework.SuiteFunc {
			return func(t *framework.T) {
				server := httptest.NewServer(handler)
				t.Defer(server.Close)
				t.Debug("suite server at %s", server.URL)

				resp, err := http.Get(server.URL + "/probe")
				require.NoError(t, err)
				defer resp.Body.Close()
				assert.Equal(t, wantStatus, resp.StatusCode)
			}
		}

		inner := framework.NewRunner(nil, nil, 0)
		require.NoError(t, inner.Register("status-204", httpSuite(handlerA, 204)))
		require.NoError(t, inner.Register("status-503", httpSuite(handlerB, 503)))

		results := inner.Run(context.Background())

		require.True(t, results.OK())
		require.Equal(t, 1, len(requestsA))
		require.Equal(t, 1, len(requestsB))
		reqA := <-requestsA
		assert.Equal(t, "GET", reqA.Request.Method)
		assert.Equal(t, "/probe", reqA.Request.URL.Path)
		reqB := <-requestsB
		assert.Equal(t, "/probe", reqB.Request.URL.Path)
	})

	t.Run("a suite's server is closed before the next suite starts", func(t *framework.T) {
		var firstServerURL string
		inner := framework.NewRunner(nil, nil, 0)
		require.NoError(t, inner.Register("opens server", func(t *framework.T) {
			server := httptest.NewServer(httphelpers.HandlerWithStatus(200))
			t.Defer(server.Close)
			firstServerURL = server.URL
		}))
		require.NoError(t, inner.Register("sees it closed", func(t *framework.T) {
			_, err := http.Get(firstServerURL + "/probe")
			assert.Error(t, err, "previous suite's server should no longer accept connections")
		}))

		results := inner.Run(context.Background())
		require.True(t, results.OK())
	})
}
