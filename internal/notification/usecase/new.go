package usecase

import (
	"zenwell-client/internal/httpclient"
	"zenwell-client/internal/notification"
	pkgLog "zenwell-client/pkg/log"
)

type usecase struct {
	l         pkgLog.Logger
	requester httpclient.Requester
}

func New(l pkgLog.Logger, requester httpclient.Requester) notification.UseCase {
	return &usecase{
		l:         l,
		requester: requester,
	}
}
