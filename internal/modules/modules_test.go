package modules

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	domerrors "github.com/garyellow/showrank-lexbot/internal/errors"
	"github.com/garyellow/showrank-lexbot/internal/lex"
	"github.com/garyellow/showrank-lexbot/internal/logger"
	"github.com/garyellow/showrank-lexbot/internal/metrics"
)

type scenario struct {
	Name    string `yaml:"name"`
	Lenient bool   `yaml:"lenient"`
	Event   string `yaml:"event"`
	Expect  string `yaml:"expect"`
	Error   string `yaml:"error"`
}

func loadScenarios(t *testing.T) []scenario {
	t.Helper()
	raw, err := os.ReadFile("testdata/scenarios.yaml")
	require.NoError(t, err)

	var scenarios []scenario
	require.NoError(t, yaml.Unmarshal(raw, &scenarios))
	require.NotEmpty(t, scenarios)
	return scenarios
}

func TestNewRegistry_Intents(t *testing.T) {
	r := NewRegistry(Options{Logger: logger.NewWithWriter("info", io.Discard)})
	assert.Equal(t, []string{"GetBestShow", "GetIMDbScore", "GetTopFive"}, r.Intents())
}

func TestScenarios(t *testing.T) {
	log := logger.NewWithWriter("debug", io.Discard)

	for _, sc := range loadScenarios(t) {
		t.Run(sc.Name, func(t *testing.T) {
			r := NewRegistry(Options{
				Logger:             log,
				Metrics:            metrics.New(prometheus.NewRegistry()),
				LenientYearParsing: sc.Lenient,
			})

			var event lex.Event
			require.NoError(t, json.Unmarshal([]byte(sc.Event), &event))

			resp, err := r.Dispatch(context.Background(), &event)
			if sc.Error != "" {
				require.Error(t, err)
				assert.Nil(t, resp)
				assert.True(t, domerrors.IsUnknownIntent(err))
				assert.EqualError(t, err, sc.Error)
				return
			}
			require.NoError(t, err)

			got, err := json.Marshal(resp)
			require.NoError(t, err)
			assert.JSONEq(t, sc.Expect, string(got))
		})
	}
}
