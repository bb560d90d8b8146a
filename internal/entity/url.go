// Package entity defines the entities and errors used in the application.
// It includes the URL struct, which represents a shortened URL together with its
// visit analytics, the User account that owns URLs, and the session Principal.
package entity

import (
	"maps"
	"time"
)

// URL represents a shortened URL.
type URL struct {
	ShortCode string    // ShortCode is the generated code used to shorten the original URL.
	LongURL   string    // LongURL is the full URL that the short code resolves to.
	OwnerID   string    // OwnerID is the id of the user who created the URL.
	URLStats            // URLStats contains visit analytics of the URL.
	CreatedAt time.Time // CreatedAt is the timestamp when the URL was created.
	UpdatedAt time.Time // UpdatedAt is the timestamp when the URL was last updated.
}

// URLStats contains statistics related to a shortened URL.
// VisitCount always equals len(Visits).
type URLStats struct {
	VisitCount     int64             // VisitCount is the number of times the short URL has been followed.
	Visits         []Visit           // Visits is the append-only log of visits in arrival order.
	UniqueVisitors map[string]string // UniqueVisitors maps a visitor fingerprint to the identity that first produced it.
}

// Visit is a single entry of the visit log.
type Visit struct {
	Number    int64     // Number is the 1-based sequence index of the visit.
	VisitedAt time.Time // VisitedAt is the time the visit was recorded.
}

// Visitor describes who is following a short URL.
type Visitor struct {
	Fingerprint string    // Fingerprint is the network identity of the visitor, usually the remote IP.
	Principal   Principal // Principal is the session principal attached to the request, if any.
}

// VisitOutcome is the result of recording one visit.
type VisitOutcome struct {
	Visit
	FirstSeen bool // FirstSeen reports whether the fingerprint was new to the URL.
	// AssignedVisitorID is set when an anonymous visitor was seen for the first time
	// and should be given an ephemeral session identity.
	AssignedVisitorID string
}

// NewURL returns a URL with empty analytics.
func NewURL(shortCode, longURL, ownerID string, now time.Time) *URL {
	return &URL{
		ShortCode: shortCode,
		LongURL:   longURL,
		OwnerID:   ownerID,
		URLStats: URLStats{
			Visits:         []Visit{},
			UniqueVisitors: map[string]string{},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsOwnedBy reports whether userID owns the URL.
func (u *URL) IsOwnedBy(userID string) bool {
	return u.OwnerID == userID
}

// RecordVisit increments the visit count and appends a log entry stamped with at.
// It must be paired with RegisterVisitor under the same lock.
func (u *URL) RecordVisit(at time.Time) Visit {
	u.VisitCount++
	v := Visit{Number: u.VisitCount, VisitedAt: at}
	u.Visits = append(u.Visits, v)
	return v
}

// RegisterVisitor stores identity under fingerprint unless the fingerprint was seen before.
// It returns true for the first sighting.
func (u *URL) RegisterVisitor(fingerprint, identity string) bool {
	if u.UniqueVisitors == nil {
		u.UniqueVisitors = map[string]string{}
	}
	if _, ok := u.UniqueVisitors[fingerprint]; ok {
		return false
	}
	u.UniqueVisitors[fingerprint] = identity
	return true
}

// Clone returns a deep copy of the URL.
func (u *URL) Clone() *URL {
	c := *u
	c.Visits = append(make([]Visit, 0, len(u.Visits)), u.Visits...)
	c.UniqueVisitors = maps.Clone(u.UniqueVisitors)
	if c.UniqueVisitors == nil {
		c.UniqueVisitors = map[string]string{}
	}
	return &c
}
