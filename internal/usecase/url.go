// Package usecase holds the application logic of the URL shortener: minting and
// managing owned short URLs, resolving them publicly while tracking visits, and
// registering and authenticating accounts.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vadimbarashkov/tinyapp/internal/entity"
)

const maxRetries = 5

var ErrMaxRetriesExceeded = errors.New("maximum retries exceeded for generating identifier")

type urlRepository interface {
	Save(ctx context.Context, url *entity.URL) (*entity.URL, error)
	RetrieveByShortCode(ctx context.Context, shortCode string) (*entity.URL, error)
	RetrieveByOwner(ctx context.Context, ownerID string) (map[string]*entity.URL, error)
	Update(ctx context.Context, shortCode, requesterID, longURL string, at time.Time) (*entity.URL, error)
	Remove(ctx context.Context, shortCode, requesterID string) error
	RecordVisit(
		ctx context.Context,
		shortCode, fingerprint, identity string,
		at time.Time,
	) (*entity.URL, entity.VisitOutcome, error)
}

type accountDirectory interface {
	RetrieveByID(ctx context.Context, id string) (*entity.User, error)
}

type idGenerator interface {
	Generate() (string, error)
}

// Option configures the use cases.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock replaces the wall clock used to stamp records and visits.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func newOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

type URLUseCase struct {
	urlRepo  urlRepository
	accounts accountDirectory
	ids      idGenerator
	now      func() time.Time
}

func NewURLUseCase(urlRepo urlRepository, accounts accountDirectory, ids idGenerator, opts ...Option) *URLUseCase {
	o := newOptions(opts)

	return &URLUseCase{
		urlRepo:  urlRepo,
		accounts: accounts,
		ids:      ids,
		now:      o.now,
	}
}

func (uc *URLUseCase) ShortenURL(ctx context.Context, principal entity.Principal, longURL string) (*entity.URL, error) {
	const op = "usecase.URLUseCase.ShortenURL"

	if err := Authorize(principal, ActionCreateURL, nil); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := uc.requireAccount(ctx, principal); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if strings.TrimSpace(longURL) == "" {
		return nil, fmt.Errorf("%s: long url is blank: %w", op, entity.ErrValidation)
	}

	for i := 0; i < maxRetries; i++ {
		shortCode, err := uc.ids.Generate()
		if err != nil {
			return nil, fmt.Errorf("%s: failed to generate short code: %w", op, err)
		}

		url, err := uc.urlRepo.Save(ctx, entity.NewURL(shortCode, longURL, principal.ID, uc.now()))
		if err != nil {
			if errors.Is(err, entity.ErrShortCodeExists) {
				continue
			}

			return nil, fmt.Errorf("%s: failed to shorten url: %w", op, err)
		}

		return url, nil
	}

	return nil, fmt.Errorf("%s: %w", op, ErrMaxRetriesExceeded)
}

// ResolveShortCode looks up a short code for a public visit and records the visit.
// Visitors without a principal are offered a freshly minted identity; it is kept
// in the unique-visitor ledger and returned in the outcome only on their first visit.
// An unknown short code fails before anything is minted or recorded.
func (uc *URLUseCase) ResolveShortCode(
	ctx context.Context,
	shortCode string,
	visitor entity.Visitor,
) (*entity.URL, entity.VisitOutcome, error) {
	const op = "usecase.URLUseCase.ResolveShortCode"

	url, err := uc.authorized(ctx, visitor.Principal, ActionResolveURL, shortCode)
	if err != nil {
		return nil, entity.VisitOutcome{}, fmt.Errorf("%s: %w", op, err)
	}

	identity := visitor.Principal.ID
	if visitor.Principal.IsZero() {
		id, err := uc.mintVisitorID(ctx, url)
		if err != nil {
			return nil, entity.VisitOutcome{}, fmt.Errorf("%s: failed to generate visitor id: %w", op, err)
		}
		identity = id
	}

	url, outcome, err := uc.urlRepo.RecordVisit(ctx, shortCode, visitor.Fingerprint, identity, uc.now())
	if err != nil {
		return nil, entity.VisitOutcome{}, fmt.Errorf("%s: failed to resolve short code: %w", op, err)
	}

	if outcome.FirstSeen && visitor.Principal.IsZero() {
		outcome.AssignedVisitorID = identity
	}

	return url, outcome, nil
}

// mintVisitorID draws an identity that is neither a registered account
// nor already held by another visitor of url.
func (uc *URLUseCase) mintVisitorID(ctx context.Context, url *entity.URL) (string, error) {
	taken := make(map[string]struct{}, len(url.UniqueVisitors))
	for _, id := range url.UniqueVisitors {
		taken[id] = struct{}{}
	}

	for i := 0; i < maxRetries; i++ {
		id, err := uc.ids.Generate()
		if err != nil {
			return "", err
		}

		if _, ok := taken[id]; ok {
			continue
		}

		_, err = uc.accounts.RetrieveByID(ctx, id)
		if err == nil {
			continue
		}
		if !errors.Is(err, entity.ErrUserNotFound) {
			return "", fmt.Errorf("failed to look up account: %w", err)
		}

		return id, nil
	}

	return "", ErrMaxRetriesExceeded
}

func (uc *URLUseCase) ListURLs(ctx context.Context, principal entity.Principal) (map[string]*entity.URL, error) {
	const op = "usecase.URLUseCase.ListURLs"

	if err := Authorize(principal, ActionListURLs, nil); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := uc.requireAccount(ctx, principal); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	urls, err := uc.urlRepo.RetrieveByOwner(ctx, principal.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to list urls: %w", op, err)
	}

	return urls, nil
}

func (uc *URLUseCase) GetURL(ctx context.Context, principal entity.Principal, shortCode string) (*entity.URL, error) {
	const op = "usecase.URLUseCase.GetURL"

	url, err := uc.authorized(ctx, principal, ActionViewURL, shortCode)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return url, nil
}

func (uc *URLUseCase) ModifyURL(
	ctx context.Context,
	principal entity.Principal,
	shortCode, longURL string,
) (*entity.URL, error) {
	const op = "usecase.URLUseCase.ModifyURL"

	if _, err := uc.authorized(ctx, principal, ActionEditURL, shortCode); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if strings.TrimSpace(longURL) == "" {
		return nil, fmt.Errorf("%s: long url is blank: %w", op, entity.ErrValidation)
	}

	url, err := uc.urlRepo.Update(ctx, shortCode, principal.ID, longURL, uc.now())
	if err != nil {
		return nil, fmt.Errorf("%s: failed to modify url: %w", op, err)
	}

	return url, nil
}

func (uc *URLUseCase) DeactivateURL(ctx context.Context, principal entity.Principal, shortCode string) error {
	const op = "usecase.URLUseCase.DeactivateURL"

	if _, err := uc.authorized(ctx, principal, ActionDeleteURL, shortCode); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := uc.urlRepo.Remove(ctx, shortCode, principal.ID); err != nil {
		return fmt.Errorf("%s: failed to deactivate url: %w", op, err)
	}

	return nil
}

// authorized loads the URL and runs the access policy for action.
// Owner actions also require the principal's account to still exist.
func (uc *URLUseCase) authorized(
	ctx context.Context,
	principal entity.Principal,
	action Action,
	shortCode string,
) (*entity.URL, error) {
	url, err := uc.urlRepo.RetrieveByShortCode(ctx, shortCode)
	if err != nil && !errors.Is(err, entity.ErrURLNotFound) {
		return nil, fmt.Errorf("failed to retrieve url: %w", err)
	}

	if err := Authorize(principal, action, url); err != nil {
		return nil, err
	}

	if action != ActionResolveURL {
		if err := uc.requireAccount(ctx, principal); err != nil {
			return nil, err
		}
	}

	return url, nil
}

// requireAccount rejects a logged-in principal whose account is gone,
// such as one carried by a session issued before a restart.
func (uc *URLUseCase) requireAccount(ctx context.Context, principal entity.Principal) error {
	_, err := uc.accounts.RetrieveByID(ctx, principal.ID)
	if errors.Is(err, entity.ErrUserNotFound) {
		return entity.ErrUnauthenticated
	}
	if err != nil {
		return fmt.Errorf("failed to look up account: %w", err)
	}

	return nil
}
