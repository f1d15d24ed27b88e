package usecase

import (
	"zenwell-client/internal/httpclient"
	"zenwell-client/internal/user"
	pkgLog "zenwell-client/pkg/log"
)

type usecase struct {
	l         pkgLog.Logger
	requester httpclient.Requester
}

func New(l pkgLog.Logger, requester httpclient.Requester) user.UseCase {
	return &usecase{
		l:         l,
		requester: requester,
	}
}
