package app_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"heroes/internal/app"
	"heroes/internal/domain"
)

// newStack runs the development API in-process and wires a gateway against it.
func newStack(t *testing.T) (*app.Wire, func()) {
	t.Helper()
	cfg, err := app.LoadConfig()
	require.NoError(t, err)

	srv, err := app.NewServer(cfg, nil)
	require.NoError(t, err)
	ts := httptest.NewServer(srv.Handler)

	cfg.Client.APIURL = ts.URL
	return app.NewWire(cfg, nil, ts.Client()), ts.Close
}

func TestWire_EndToEnd(t *testing.T) {
	w, stop := newStack(t)
	defer stop()
	ctx := context.Background()

	all := w.Heroes.Heroes(ctx)
	require.Len(t, all, 10)

	h := w.Heroes.Hero(ctx, 12)
	require.NotNil(t, h)
	assert.Equal(t, "Narco", h.Name)

	found := w.Heroes.Search(ctx, "mag")
	assert.Equal(t, []domain.Hero{{ID: 15, Name: "Magneta"}, {ID: 19, Name: "Magma"}}, found)

	created := w.Heroes.Add(ctx, domain.Hero{Name: "Cat"})
	require.NotNil(t, created)
	assert.Equal(t, domain.HeroID(21), created.ID)

	require.NotNil(t, w.Heroes.Update(ctx, domain.Hero{ID: 21, Name: "Kitty"}))
	assert.Equal(t, "Kitty", w.Heroes.Hero(ctx, 21).Name)

	require.NotNil(t, w.Heroes.Delete(ctx, 21))
	assert.Nil(t, w.Heroes.Hero(ctx, 21))

	assert.Equal(t, []string{
		"HeroService: fetched heroes",
		"HeroService: fetched hero id=12",
		`HeroService: found heroes matching "mag"`,
		"HeroService: added hero w/ id=21",
		"HeroService: updated hero id=21",
		"HeroService: fetched hero id=21",
		"HeroService: deleted hero id=21",
		"HeroService: getHero failed: Not Found",
	}, w.Messages.Messages())
}

func TestWire_BackendDown(t *testing.T) {
	w, stop := newStack(t)
	stop()
	ctx := context.Background()

	assert.Empty(t, w.Heroes.Heroes(ctx))
	assert.Nil(t, w.Heroes.Hero(ctx, 11))
	assert.Nil(t, w.Heroes.Add(ctx, domain.Hero{Name: "x"}))
	assert.Nil(t, w.Heroes.Update(ctx, domain.Hero{ID: 11, Name: "x"}))
	assert.Nil(t, w.Heroes.Delete(ctx, 11))
	assert.Len(t, w.Messages.Messages(), 5)
}
