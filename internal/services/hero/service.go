package hero

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"heroes/internal/domain"
)

// heroesURL is the backend collection path, relative to the transport base.
const heroesURL = "api/heroes"

// logPrefix marks every line this service writes to the message feed.
const logPrefix = "HeroService: "

// Service implements domain.HeroGateway over a Transport.
type Service struct {
	transport domain.Transport
	messages  domain.MessageLog
	logger    logrus.FieldLogger
}

// New returns a gateway that talks through t and reports to messages. logger
// receives failure details; nil discards them.
func New(t domain.Transport, messages domain.MessageLog, logger logrus.FieldLogger) *Service {
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}
	return &Service{transport: t, messages: messages, logger: logger}
}

var _ domain.HeroGateway = (*Service)(nil)

// Heroes fetches every hero.
func (s *Service) Heroes(ctx context.Context) []domain.Hero {
	var heroes []domain.Hero
	if err := s.transport.Do(ctx, http.MethodGet, heroesURL, nil, &heroes); err != nil {
		return recoverWith(s, "getHeroes", []domain.Hero{})(err)
	}
	s.log("fetched heroes")
	return heroes
}

// Hero fetches one hero by id, or nil when it cannot be fetched.
func (s *Service) Hero(ctx context.Context, id domain.HeroID) *domain.Hero {
	var hero domain.Hero
	if err := s.transport.Do(ctx, http.MethodGet, heroURL(id), nil, &hero); err != nil {
		return recoverWith[*domain.Hero](s, "getHero", nil)(err)
	}
	s.log(fmt.Sprintf("fetched hero id=%d", id))
	return &hero
}

// Search returns heroes whose name matches term. A blank term yields an empty
// result without contacting the backend.
//
// term is placed into the query string verbatim.
func (s *Service) Search(ctx context.Context, term string) []domain.Hero {
	if strings.TrimSpace(term) == "" {
		return []domain.Hero{}
	}

	var heroes []domain.Hero
	if err := s.transport.Do(ctx, http.MethodGet, heroesURL+"/?name="+term, nil, &heroes); err != nil {
		return recoverWith(s, "searchHeroes", []domain.Hero{})(err)
	}
	s.log(fmt.Sprintf("found heroes matching %q", term))
	return heroes
}

// Add creates hero on the backend and returns it with its assigned id.
func (s *Service) Add(ctx context.Context, hero domain.Hero) *domain.Hero {
	var created domain.Hero
	if err := s.transport.Do(ctx, http.MethodPost, heroesURL, hero, &created); err != nil {
		return recoverWith[*domain.Hero](s, "addHero", nil)(err)
	}
	s.log(fmt.Sprintf("added hero w/ id=%d", created.ID))
	return &created
}

// Delete removes the hero with id.
func (s *Service) Delete(ctx context.Context, id domain.HeroID) *domain.Ack {
	var body json.RawMessage
	if err := s.transport.Do(ctx, http.MethodDelete, heroURL(id), nil, &body); err != nil {
		return recoverWith[*domain.Ack](s, "deleteHero", nil)(err)
	}
	s.log(fmt.Sprintf("deleted hero id=%d", id))
	return &domain.Ack{Body: body}
}

// Update replaces the stored hero that has hero.ID.
func (s *Service) Update(ctx context.Context, hero domain.Hero) *domain.Ack {
	var body json.RawMessage
	if err := s.transport.Do(ctx, http.MethodPut, heroesURL, hero, &body); err != nil {
		return recoverWith[*domain.Ack](s, "updateHero", nil)(err)
	}
	s.log(fmt.Sprintf("updated hero id=%d", hero.ID))
	return &domain.Ack{Body: body}
}

func (s *Service) log(message string) {
	s.messages.Add(logPrefix + message)
}

// recoverWith returns a handler that reports a failed operation and yields
// result in its place.
func recoverWith[T any](s *Service, operation string, result T) func(error) T {
	return func(err error) T {
		s.logger.WithField("operation", operation).WithError(err).Error("hero request failed")
		s.log(fmt.Sprintf("%s failed: %s", operation, err.Error()))
		return result
	}
}

func heroURL(id domain.HeroID) string {
	return heroesURL + "/" + id.String()
}
