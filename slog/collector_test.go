package slog_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/lexicon"
	"github.com/fwojciec/lexicon/collector"
	"github.com/fwojciec/lexicon/mock"
	lexslog "github.com/fwojciec/lexicon/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plainCollector(versions []lexicon.Version, err error) *mock.Collector {
	return &mock.Collector{
		KeyFn:         func() string { return "jquery" },
		DisplayNameFn: func() string { return "jQuery" },
		SourceURLFn:   func() string { return "https://api.jquery.com/" },
		CollectFn: func(context.Context) ([]lexicon.Version, error) {
			return versions, err
		},
	}
}

func TestLoggingCollector(t *testing.T) {
	t.Parallel()

	t.Run("delegates identity", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		c := lexslog.NewLoggingCollector(plainCollector(nil, nil), debugLogger(&buf))

		assert.Equal(t, "jquery", c.Key())
		assert.Equal(t, "jQuery", c.DisplayName())
		assert.Equal(t, "https://api.jquery.com/", c.SourceURL())
	})

	t.Run("logs collected counts", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		versions := []lexicon.Version{
			{Version: "1.0", Terms: []lexicon.Term{{ID: "a"}, {ID: "b"}}},
			{Version: "1.4", Terms: []lexicon.Term{{ID: "c"}}},
		}
		c := lexslog.NewLoggingCollector(plainCollector(versions, nil), debugLogger(&buf))

		got, err := c.Collect(context.Background())

		require.NoError(t, err)
		assert.Equal(t, versions, got)
		output := buf.String()
		assert.Contains(t, output, "source=jquery")
		assert.Contains(t, output, "versions=2")
		assert.Contains(t, output, "terms=3")
	})

	t.Run("logs collect error", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		c := lexslog.NewLoggingCollector(plainCollector(nil, errors.New("index unavailable")), debugLogger(&buf))

		_, err := c.Collect(context.Background())

		require.Error(t, err)
		assert.Contains(t, buf.String(), `err="index unavailable"`)
	})

	t.Run("optional phases are no-ops for plain collectors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		c := lexslog.NewLoggingCollector(plainCollector(nil, nil), debugLogger(&buf))

		o, err := c.CollectOverview(context.Background())
		require.NoError(t, err)
		assert.Nil(t, o)

		s, err := c.CollectSpecification(context.Background())
		require.NoError(t, err)
		assert.Nil(t, s)

		assert.Equal(t, collector.Capability(0), collector.Capabilities(c))
	})

	t.Run("optional phases delegate for full collectors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		full := &mock.FullCollector{
			Collector: *plainCollector(nil, nil),
			CollectOverviewFn: func(context.Context) (*lexicon.Overview, error) {
				return &lexicon.Overview{Characteristics: []lexicon.Characteristic{{ID: "x"}}}, nil
			},
			CollectSpecificationFn: func(context.Context) (*lexicon.Specification, error) {
				return &lexicon.Specification{Categories: []lexicon.SpecCategory{{Items: []lexicon.SpecItem{{ID: "i"}, {ID: "j"}}}}}, nil
			},
		}
		c := lexslog.NewLoggingCollector(full, debugLogger(&buf))

		o, err := c.CollectOverview(context.Background())
		require.NoError(t, err)
		assert.Len(t, o.Characteristics, 1)

		s, err := c.CollectSpecification(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 2, s.ItemCount())

		assert.Contains(t, buf.String(), "characteristics=1")
		assert.Contains(t, buf.String(), "items=2")
		assert.True(t, collector.Capabilities(c).Has(collector.CapOverview|collector.CapSpecification))
	})
}
