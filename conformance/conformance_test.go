// Package conformance drives the resolver through data-driven fixtures
// loaded from testdata/scenarios.json, mirroring the teacher's
// tests/utils/mfwg_test_utils.go JSON-fixture harness adapted to this
// module's own scenario shape instead of the MessageFormat Working Group's.
package conformance

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-json-experiment/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fluent "github.com/projectfluent/fluent-go"
	"github.com/projectfluent/fluent-go/pkg/ferrors"
)

type scenario struct {
	Name    string                 `json:"name"`
	Source  string                 `json:"source"`
	Message string                 `json:"message"`
	Args    map[string]interface{} `json:"args"`
	Expect  string                 `json:"expect"`
}

func loadScenarios(t *testing.T) []scenario {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "scenarios.json"))
	require.NoError(t, err)

	var scenarios []scenario
	require.NoError(t, json.Unmarshal(data, &scenarios))
	return scenarios
}

func TestScenarios(t *testing.T) {
	for _, sc := range loadScenarios(t) {
		sc := sc
		t.Run(sc.Name, func(t *testing.T) {
			ctx := fluent.New("en", fluent.WithUseIsolating(false))
			errs := ctx.AddMessages(sc.Source)
			require.Empty(t, errs)

			var resolveErrs []*ferrors.ResolutionError
			got := ctx.Format(sc.Message, sc.Args, &resolveErrs)
			require.NotNil(t, got)
			assert.Equal(t, sc.Expect, *got)
		})
	}
}
