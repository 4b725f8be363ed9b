// Package service is the facade over the upstream ISP API: one method
// per business operation. It owns the call-then-normalize sequence and
// the read/mutation error policy; handlers never touch wire shapes.
package service

import (
	"github.com/galmaraz/Sistema-de-Gesti-n-ISP/pkg/logger"
	"github.com/galmaraz/Sistema-de-Gesti-n-ISP/pkg/upstream"
)

// Error policy: list reads degrade to an empty collection (the error is
// still returned so callers can notify), single-entity reads and all
// mutations propagate the transport error unchanged. Lifecycle commands
// never flip local state; callers reload after success.
type Service struct {
	api *upstream.Client
	log *logger.Logger
}

func New(api *upstream.Client, log *logger.Logger) *Service {
	return &Service{api: api, log: log}
}
