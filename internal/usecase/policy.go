package usecase

import "github.com/vadimbarashkov/tinyapp/internal/entity"

// Action is an operation a principal may attempt.
type Action int

const (
	ActionListURLs Action = iota
	ActionCreateURL
	ActionViewURL
	ActionEditURL
	ActionDeleteURL
	ActionResolveURL
)

// Authorize decides whether principal may perform action on url.
// url is only consulted for the single-resource actions, where a nil url means it does not exist.
// Anonymous visitor identities never count as logged in.
func Authorize(principal entity.Principal, action Action, url *entity.URL) error {
	switch action {
	case ActionResolveURL:
		if url == nil {
			return entity.ErrURLNotFound
		}
		return nil
	case ActionListURLs, ActionCreateURL:
		if !principal.IsAuthenticated() {
			return entity.ErrUnauthenticated
		}
		return nil
	case ActionViewURL, ActionEditURL, ActionDeleteURL:
		if url == nil {
			return entity.ErrURLNotFound
		}
		if !principal.IsAuthenticated() {
			return entity.ErrUnauthenticated
		}
		if !url.IsOwnedBy(principal.ID) {
			return entity.ErrForbidden
		}
		return nil
	default:
		return entity.ErrForbidden
	}
}
