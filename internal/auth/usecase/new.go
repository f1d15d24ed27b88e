package usecase

import (
	"zenwell-client/internal/auth"
	"zenwell-client/internal/httpclient"
	"zenwell-client/internal/session"
	pkgLog "zenwell-client/pkg/log"
)

type usecase struct {
	l         pkgLog.Logger
	requester httpclient.Requester
	store     session.Store

	// onSessionEnded fires after logout has torn the session down, routing
	// the caller back to the login entry point. May be nil.
	onSessionEnded func()
}

func New(l pkgLog.Logger, requester httpclient.Requester, store session.Store, onSessionEnded func()) auth.UseCase {
	return &usecase{
		l:              l,
		requester:      requester,
		store:          store,
		onSessionEnded: onSessionEnded,
	}
}
