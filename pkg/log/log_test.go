package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newBufferedLogger(buf *bytes.Buffer) Logger {
	base := logrus.New()
	base.SetOutput(buf)
	base.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})
	return &logger{entry: logrus.NewEntry(base)}
}

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())
	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestWithFields_DevelopmentFilter(t *testing.T) {
	tests := []struct {
		name     string
		env      string
		contains []string
		missing  []string
	}{
		{
			name:     "Desenvolvimento mantém só campos relevantes",
			env:      "development",
			contains: []string{"run_id=run_1", "path=/v1/cron/status"},
			missing:  []string{"user_agent="},
		},
		{
			name:     "Produção mantém todos os campos",
			env:      "production",
			contains: []string{"run_id=run_1", "path=/v1/cron/status", "user_agent=curl"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("APP_ENV", tt.env)

			var buf bytes.Buffer
			newBufferedLogger(&buf).WithFields(Fields{
				"run_id":     "run_1",
				"path":       "/v1/cron/status",
				"user_agent": "curl",
			}).Info("teste")

			for _, s := range tt.contains {
				assert.Contains(t, buf.String(), s)
			}
			for _, s := range tt.missing {
				assert.NotContains(t, buf.String(), s)
			}
		})
	}
}

func TestWithContext_AddsCorrelationID(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	var buf bytes.Buffer
	ctx, id := WithCorrelationID(context.Background())
	newBufferedLogger(&buf).WithContext(ctx).Info("teste")

	assert.Contains(t, buf.String(), "correlation_id="+id)
}

func TestWithContext_AddsRunAndCorrelationIDs(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	var buf bytes.Buffer
	ctx, id := WithCorrelationID(context.Background())
	ctx = WithRunID(ctx, "run_xyz")
	newBufferedLogger(&buf).WithContext(ctx).Info("teste")

	assert.Contains(t, buf.String(), "correlation_id="+id)
	assert.Contains(t, buf.String(), "run_id=run_xyz")
}
