package app

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"heroes/internal/domain"
	"heroes/internal/messages"
	herosvc "heroes/internal/services/hero"
	"heroes/internal/transport"
)

// Wire bundles the feed, transport and gateway for the CLI.
type Wire struct {
	Messages  domain.MessageFeed
	Transport domain.Transport
	Heroes    domain.HeroGateway
	HTTP      *http.Client
}

// NewWire constructs the dependency graph from cfg. A nil httpClient gets one
// with cfg.Client's timeout.
func NewWire(cfg *Config, logger logrus.FieldLogger, httpClient *http.Client) *Wire {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Client.Timeout()}
	}

	feed := messages.New(logger)
	tr := transport.NewHTTP(cfg.Client.APIURL, httpClient, logger)
	gateway := herosvc.New(tr, feed, logger)

	return &Wire{
		Messages:  feed,
		Transport: tr,
		Heroes:    gateway,
		HTTP:      httpClient,
	}
}
