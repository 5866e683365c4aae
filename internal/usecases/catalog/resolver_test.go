package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/app-rank-notifier/infrastructure/repository/mocks"
	"github.com/vfg2006/app-rank-notifier/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestNewStaticResolver(t *testing.T) {
	tests := []struct {
		name     string
		entries  []string
		wantErr  bool
		validate func(t *testing.T, resolver *StaticResolver)
	}{
		{
			name:    "Entradas completas e sem nome",
			entries: []string{"com.coinbase.app=886427730:Coinbase", " revolut = 1260755201 ", ""},
			validate: func(t *testing.T, resolver *StaticResolver) {
				meta, ok := resolver.Resolve(context.Background(), "com.coinbase.app")
				assert.True(t, ok)
				assert.Equal(t, domain.AppMeta{AppID: "com.coinbase.app", ChartID: "886427730", Name: "Coinbase"}, meta)

				meta, ok = resolver.Resolve(context.Background(), "revolut")
				assert.True(t, ok)
				assert.Equal(t, "1260755201", meta.ChartID)
				assert.Empty(t, meta.Name)

				_, ok = resolver.Resolve(context.Background(), "unknown")
				assert.False(t, ok)
				assert.Len(t, resolver.Entries(), 2)
			},
		},
		{
			name:    "Entrada sem separador",
			entries: []string{"com.coinbase.app"},
			wantErr: true,
		},
		{
			name:    "Entrada sem chart_id",
			entries: []string{"com.coinbase.app=:Coinbase", "=123"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver, err := NewStaticResolver(tt.entries)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.validate(t, resolver)
		})
	}
}

func TestRepositoryResolver_Resolve(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockAppCatalogRepository(ctrl)
	resolver := NewRepositoryResolver(mockRepo)
	ctx := context.Background()

	coinbase := &domain.AppMeta{AppID: "com.coinbase.app", ChartID: "886427730", Name: "Coinbase"}

	// Apenas uma consulta: o segundo Resolve vem do cache
	mockRepo.EXPECT().GetByAppID(gomock.Any(), "com.coinbase.app").Return(coinbase, nil).Times(1)
	mockRepo.EXPECT().GetByAppID(gomock.Any(), "unknown").Return(nil, nil)
	mockRepo.EXPECT().GetByAppID(gomock.Any(), "broken").Return(nil, errors.New("connection reset"))

	for i := 0; i < 2; i++ {
		meta, ok := resolver.Resolve(ctx, "com.coinbase.app")
		assert.True(t, ok)
		assert.Equal(t, *coinbase, meta)
	}

	_, ok := resolver.Resolve(ctx, "unknown")
	assert.False(t, ok)

	_, ok = resolver.Resolve(ctx, "broken")
	assert.False(t, ok)
}

func TestChainResolverAndChartKey(t *testing.T) {
	static, err := NewStaticResolver([]string{"com.coinbase.app=886427730:Coinbase"})
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockAppCatalogRepository(ctrl)
	mockRepo.EXPECT().GetByAppID(gomock.Any(), "revolut").
		Return(&domain.AppMeta{AppID: "revolut", ChartID: "1260755201", Name: "Revolut"}, nil)
	mockRepo.EXPECT().GetByAppID(gomock.Any(), "123").Return(nil, nil)

	chain := ChainResolver{static, NewRepositoryResolver(mockRepo)}
	ctx := context.Background()

	assert.Equal(t, "886427730", ChartKey(ctx, chain, "com.coinbase.app"))
	assert.Equal(t, "1260755201", ChartKey(ctx, chain, "revolut"))
	assert.Equal(t, "123", ChartKey(ctx, chain, "123"))
	assert.Equal(t, "123", ChartKey(ctx, nil, "123"))
}

func TestSeed(t *testing.T) {
	static, err := NewStaticResolver([]string{"com.coinbase.app=886427730:Coinbase"})
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockAppCatalogRepository(ctrl)

	t.Run("Grava todas as entradas", func(t *testing.T) {
		mockRepo.EXPECT().
			SaveOrUpdate(gomock.Any(), domain.AppMeta{AppID: "com.coinbase.app", ChartID: "886427730", Name: "Coinbase"}).
			Return(nil)
		assert.NoError(t, Seed(context.Background(), mockRepo, static))
	})

	t.Run("Agrega erros de gravação", func(t *testing.T) {
		mockRepo.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).Return(errors.New("duplicate key"))
		err := Seed(context.Background(), mockRepo, static)
		assert.ErrorContains(t, err, "com.coinbase.app")
	})
}
