// Package memory implements the URL and user repositories on top of process memory.
// Every stored value is copied on the way in and on the way out, so the only way to
// change a record is through a repository method holding the write lock.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/vadimbarashkov/tinyapp/internal/entity"
)

type URLRepository struct {
	mu   sync.RWMutex
	urls map[string]*entity.URL
}

func NewURLRepository() *URLRepository {
	return &URLRepository{urls: make(map[string]*entity.URL)}
}

func (r *URLRepository) Save(ctx context.Context, url *entity.URL) (*entity.URL, error) {
	const op = "adapter.repository.memory.URLRepository.Save"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.urls[url.ShortCode]; ok {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrShortCodeExists)
	}

	r.urls[url.ShortCode] = url.Clone()

	return url.Clone(), nil
}

func (r *URLRepository) RetrieveByShortCode(ctx context.Context, shortCode string) (*entity.URL, error) {
	const op = "adapter.repository.memory.URLRepository.RetrieveByShortCode"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	url, ok := r.urls[shortCode]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrURLNotFound)
	}

	return url.Clone(), nil
}

// RetrieveByOwner returns the URLs owned by ownerID keyed by short code.
// The result is never nil.
func (r *URLRepository) RetrieveByOwner(ctx context.Context, ownerID string) (map[string]*entity.URL, error) {
	const op = "adapter.repository.memory.URLRepository.RetrieveByOwner"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	owned := make(map[string]*entity.URL)
	for code, url := range r.urls {
		if url.IsOwnedBy(ownerID) {
			owned[code] = url.Clone()
		}
	}

	return owned, nil
}

// Update replaces the long URL and stamps UpdatedAt with at.
func (r *URLRepository) Update(
	ctx context.Context,
	shortCode, requesterID, longURL string,
	at time.Time,
) (*entity.URL, error) {
	const op = "adapter.repository.memory.URLRepository.Update"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	url, err := r.owned(shortCode, requesterID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	url.LongURL = longURL
	url.UpdatedAt = at

	return url.Clone(), nil
}

func (r *URLRepository) Remove(ctx context.Context, shortCode, requesterID string) error {
	const op = "adapter.repository.memory.URLRepository.Remove"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.owned(shortCode, requesterID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	delete(r.urls, shortCode)

	return nil
}

// RecordVisit counts a visit and registers the visitor fingerprint as one atomic step.
func (r *URLRepository) RecordVisit(
	ctx context.Context,
	shortCode, fingerprint, identity string,
	at time.Time,
) (*entity.URL, entity.VisitOutcome, error) {
	const op = "adapter.repository.memory.URLRepository.RecordVisit"

	if err := ctx.Err(); err != nil {
		return nil, entity.VisitOutcome{}, fmt.Errorf("%s: %w", op, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	url, ok := r.urls[shortCode]
	if !ok {
		return nil, entity.VisitOutcome{}, fmt.Errorf("%s: %w", op, entity.ErrURLNotFound)
	}

	outcome := entity.VisitOutcome{
		Visit:     url.RecordVisit(at),
		FirstSeen: url.RegisterVisitor(fingerprint, identity),
	}

	return url.Clone(), outcome, nil
}

// owned must be called with the write lock held.
func (r *URLRepository) owned(shortCode, requesterID string) (*entity.URL, error) {
	url, ok := r.urls[shortCode]
	if !ok {
		return nil, entity.ErrURLNotFound
	}

	if !url.IsOwnedBy(requesterID) {
		return nil, entity.ErrForbidden
	}

	return url, nil
}
