package usecase

import (
	"zenwell-client/internal/httpclient"
	"zenwell-client/internal/shop"
	pkgLog "zenwell-client/pkg/log"
)

type usecase struct {
	l         pkgLog.Logger
	requester httpclient.Requester
}

func New(l pkgLog.Logger, requester httpclient.Requester) shop.UseCase {
	return &usecase{
		l:         l,
		requester: requester,
	}
}
