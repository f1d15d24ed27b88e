package usecase

import (
	"zenwell-client/internal/community"
	"zenwell-client/internal/httpclient"
	pkgLog "zenwell-client/pkg/log"
)

type usecase struct {
	l         pkgLog.Logger
	requester httpclient.Requester
}

func New(l pkgLog.Logger, requester httpclient.Requester) community.UseCase {
	return &usecase{
		l:         l,
		requester: requester,
	}
}
