package postgres

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/app-rank-notifier/internal/config"
)

func TestConfigurePool(t *testing.T) {
	tests := []struct {
		name            string
		cfg             config.Database
		expectedMaxOpen int
	}{
		{"Limites configurados", config.Database{MaxOpenConns: 5, MaxIdleConns: 2, ConnMaxLifetime: time.Minute}, 5},
		{"Sem limite mantém o padrão do database/sql", config.Database{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, _, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			configurePool(db, tt.cfg)

			assert.Equal(t, tt.expectedMaxOpen, db.Stats().MaxOpenConnections)
		})
	}
}
