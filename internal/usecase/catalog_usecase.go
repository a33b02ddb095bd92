package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"orcamento_bot/internal/domain/entities"
	"orcamento_bot/internal/usecase/interfaces"
)

var (
	ErrCatalogRefreshFailed = errors.New("catalog refresh failed")
	ErrCatalogEmpty         = errors.New("catalog source returned no usable records")
)

// ICatalogUseCase exposes the current catalog snapshot.
type ICatalogUseCase interface {
	Refresh(ctx context.Context) (int, error)
	Lookup(query string) entities.CatalogMatch
	Size() int
	Entries() []entities.CatalogEntry
}

// CatalogUseCase publishes catalog snapshots atomically. Readers never see
// a partially built index; a failed refresh keeps the previous one.
type CatalogUseCase struct {
	source  interfaces.ICatalogSource
	metrics interfaces.IMetrics
	current atomic.Pointer[CatalogIndex]
	// serializes refreshes, not reads
	refreshMu sync.Mutex
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(source interfaces.ICatalogSource, metrics interfaces.IMetrics) *CatalogUseCase {
	if metrics == nil {
		metrics = interfaces.NopMetrics{}
	}
	u := &CatalogUseCase{source: source, metrics: metrics}
	u.current.Store(BuildCatalogIndex(nil))
	return u
}

func (u *CatalogUseCase) Refresh(ctx context.Context) (int, error) {
	u.refreshMu.Lock()
	defer u.refreshMu.Unlock()

	records, err := u.source.FetchCatalog(ctx)
	if err != nil {
		log.Printf("[catalog][usecase] refresh failed keeping=%d err=%v", u.Size(), err)
		return u.Size(), fmt.Errorf("%w: %v", ErrCatalogRefreshFailed, err)
	}
	next := BuildCatalogIndex(records)
	if next.Len() == 0 {
		log.Printf("[catalog][usecase] refresh returned no entries records=%d keeping=%d", len(records), u.Size())
		return u.Size(), ErrCatalogEmpty
	}
	u.current.Store(next)
	u.metrics.SetCatalogSize(next.Len())
	log.Printf("[catalog][usecase] refreshed records=%d entries=%d", len(records), next.Len())
	return next.Len(), nil
}

// RunRefreshLoop refreshes on every tick until ctx is done.
func (u *CatalogUseCase) RunRefreshLoop(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_, _ = u.Refresh(ctx)
		}
	}
}

func (u *CatalogUseCase) Lookup(query string) entities.CatalogMatch {
	return u.current.Load().Lookup(query)
}

func (u *CatalogUseCase) Size() int {
	return u.current.Load().Len()
}

func (u *CatalogUseCase) Entries() []entities.CatalogEntry {
	return u.current.Load().Entries()
}
