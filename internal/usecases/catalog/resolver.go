package catalog

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/app-rank-notifier/infrastructure/repository"
	"github.com/vfg2006/app-rank-notifier/internal/domain"
	"go.uber.org/multierr"
)

// AppResolver traduz o app_id das assinaturas para o id usado no chart e um nome amigável
type AppResolver interface {
	Resolve(ctx context.Context, appID string) (domain.AppMeta, bool)
}

// ChartKey retorna o id a ser procurado no snapshot. Sem resolução, o próprio app_id é usado.
func ChartKey(ctx context.Context, resolver AppResolver, appID string) string {
	if resolver == nil {
		return appID
	}
	if meta, ok := resolver.Resolve(ctx, appID); ok && meta.ChartID != "" {
		return meta.ChartID
	}
	return appID
}

// StaticResolver é carregado de APP_CATALOG (app_id=chart_id:Nome)
type StaticResolver struct {
	entries map[string]domain.AppMeta
}

func NewStaticResolver(entries []string) (*StaticResolver, error) {
	resolver := &StaticResolver{entries: make(map[string]domain.AppMeta, len(entries))}

	var err error
	for _, raw := range entries {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}

		meta, parseErr := parseEntry(raw)
		if parseErr != nil {
			err = multierr.Append(err, parseErr)
			continue
		}
		resolver.entries[meta.AppID] = meta
	}

	if err != nil {
		return nil, err
	}

	return resolver, nil
}

func parseEntry(raw string) (domain.AppMeta, error) {
	appID, rest, found := strings.Cut(raw, "=")
	appID = strings.TrimSpace(appID)
	if !found || appID == "" {
		return domain.AppMeta{}, fmt.Errorf("entrada de catálogo inválida: %q", raw)
	}

	chartID, name, _ := strings.Cut(rest, ":")
	chartID = strings.TrimSpace(chartID)
	if chartID == "" {
		return domain.AppMeta{}, fmt.Errorf("entrada de catálogo sem chart_id: %q", raw)
	}

	return domain.AppMeta{
		AppID:   appID,
		ChartID: chartID,
		Name:    strings.TrimSpace(name),
	}, nil
}

func (r *StaticResolver) Resolve(_ context.Context, appID string) (domain.AppMeta, bool) {
	meta, ok := r.entries[appID]
	return meta, ok
}

// Entries retorna as entradas carregadas (usado para popular a tabela app_catalog)
func (r *StaticResolver) Entries() []domain.AppMeta {
	entries := make([]domain.AppMeta, 0, len(r.entries))
	for _, meta := range r.entries {
		entries = append(entries, meta)
	}
	return entries
}

// RepositoryResolver consulta a tabela app_catalog e guarda os resultados encontrados em memória
type RepositoryResolver struct {
	repo  repository.AppCatalogRepository
	mu    sync.RWMutex
	cache map[string]domain.AppMeta
}

func NewRepositoryResolver(repo repository.AppCatalogRepository) *RepositoryResolver {
	return &RepositoryResolver{
		repo:  repo,
		cache: make(map[string]domain.AppMeta),
	}
}

func (r *RepositoryResolver) Resolve(ctx context.Context, appID string) (domain.AppMeta, bool) {
	r.mu.RLock()
	meta, ok := r.cache[appID]
	r.mu.RUnlock()
	if ok {
		return meta, true
	}

	found, err := r.repo.GetByAppID(ctx, appID)
	if err != nil {
		logrus.Warnf("Erro ao consultar catálogo para app %s: %v", appID, err)
		return domain.AppMeta{}, false
	}
	if found == nil {
		return domain.AppMeta{}, false
	}

	r.mu.Lock()
	r.cache[appID] = *found
	r.mu.Unlock()

	return *found, true
}

// ChainResolver consulta os resolvers em ordem e retorna o primeiro resultado
type ChainResolver []AppResolver

func (c ChainResolver) Resolve(ctx context.Context, appID string) (domain.AppMeta, bool) {
	for _, resolver := range c {
		if resolver == nil {
			continue
		}
		if meta, ok := resolver.Resolve(ctx, appID); ok {
			return meta, true
		}
	}
	return domain.AppMeta{}, false
}

// Seed grava as entradas estáticas na tabela app_catalog
func Seed(ctx context.Context, repo repository.AppCatalogRepository, static *StaticResolver) error {
	var err error
	for _, meta := range static.Entries() {
		if saveErr := repo.SaveOrUpdate(ctx, meta); saveErr != nil {
			err = multierr.Append(err, fmt.Errorf("erro ao gravar app %s no catálogo: %w", meta.AppID, saveErr))
		}
	}
	return err
}
