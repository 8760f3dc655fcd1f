package disclosure_test

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/alexisbeaulieu97/jiva/internal/disclosure"
	jivaerrors "github.com/alexisbeaulieu97/jiva/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestParsePolicy(t *testing.T) {
	cases := map[string]disclosure.Policy{
		"":            disclosure.Independent,
		"multiple":    disclosure.Independent,
		"Independent": disclosure.Independent,
		"accordion":   disclosure.Exclusive,
		" exclusive ": disclosure.Exclusive,
	}
	for in, want := range cases {
		got, err := disclosure.ParsePolicy(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	_, err := disclosure.ParsePolicy("single")
	require.Error(t, err)
	require.Equal(t, "exclusive", disclosure.Exclusive.String())
	require.Equal(t, "independent", disclosure.Independent.String())
}

func TestIndependentScenario(t *testing.T) {
	g := disclosure.NewGroup(disclosure.Independent)
	panels, err := g.Compose(disclosure.PanelSpec{ID: "A"}, disclosure.PanelSpec{ID: "B"}, disclosure.PanelSpec{ID: "C"})
	require.NoError(t, err)
	a, b := panels[0], panels[1]

	a.ToggleOpen()
	require.True(t, a.IsOpen())
	require.False(t, b.IsOpen())

	b.ToggleOpen()
	require.True(t, a.IsOpen())
	require.True(t, b.IsOpen())

	a.ToggleOpen()
	require.False(t, a.IsOpen())
	require.True(t, b.IsOpen())
}

func TestExclusiveScenario(t *testing.T) {
	g := disclosure.NewGroup(disclosure.Exclusive)
	g.Toggle("A")
	require.Equal(t, []disclosure.PanelID{"A"}, g.Expanded())
	g.Toggle("B")
	require.Equal(t, []disclosure.PanelID{"B"}, g.Expanded())
	g.Toggle("B")
	require.Empty(t, g.Expanded())
}

func TestIndependentMatchesOddToggleCounts(t *testing.T) {
	ids := []disclosure.PanelID{"a", "b", "c", "d", "e"}
	rng := rand.New(rand.NewPCG(7, 11))
	for run := 0; run < 50; run++ {
		g := disclosure.NewGroup(disclosure.Independent)
		counts := map[disclosure.PanelID]int{}
		for step := 0; step < 40; step++ {
			id := ids[rng.IntN(len(ids))]
			g.Toggle(id)
			counts[id]++
		}
		for _, id := range ids {
			require.Equal(t, counts[id]%2 == 1, g.IsExpanded(id), "run %d id %s", run, id)
		}
	}
}

func TestExclusiveNeverExpandsMoreThanOne(t *testing.T) {
	ids := []disclosure.PanelID{"a", "b", "c"}
	rng := rand.New(rand.NewPCG(3, 5))
	g := disclosure.NewGroup(disclosure.Exclusive)
	for step := 0; step < 500; step++ {
		id := ids[rng.IntN(len(ids))]
		soleBefore := slices.Equal(g.Expanded(), []disclosure.PanelID{id})
		g.Toggle(id)
		require.LessOrEqual(t, len(g.Expanded()), 1)
		if soleBefore {
			require.Empty(t, g.Expanded())
		} else {
			require.Equal(t, []disclosure.PanelID{id}, g.Expanded())
		}
	}
}

func TestDoubleToggleIsIdempotent(t *testing.T) {
	for _, policy := range []disclosure.Policy{disclosure.Independent, disclosure.Exclusive} {
		g := disclosure.NewGroup(policy)
		g.Toggle("x")
		for _, id := range []disclosure.PanelID{"x", "y"} {
			before := g.IsExpanded(id)
			g.Toggle(id)
			g.Toggle(id)
			require.Equal(t, before, g.IsExpanded(id), "%s %s", policy, id)
		}
	}
}

func TestSubscribersRunInOrderAfterEveryToggle(t *testing.T) {
	g := disclosure.NewGroup(disclosure.Independent)
	var calls []string
	g.Subscribe(func() { calls = append(calls, "first") })
	unsubscribe := g.Subscribe(func() {
		require.True(t, g.IsExpanded("a"), "state is applied before notification")
		calls = append(calls, "second")
	})

	g.Toggle("a")
	require.Equal(t, []string{"first", "second"}, calls)

	unsubscribe()
	unsubscribe()
	g.Toggle("a")
	require.Equal(t, []string{"first", "second", "first"}, calls)
}

func TestComposeSynthesizesIDs(t *testing.T) {
	g := disclosure.NewGroup(disclosure.Independent)
	panels, err := g.Compose(disclosure.PanelSpec{}, disclosure.PanelSpec{ID: "faq"}, disclosure.PanelSpec{})
	require.NoError(t, err)
	require.Equal(t, disclosure.PanelID("item-0"), panels[0].ID())
	require.Equal(t, disclosure.PanelID("faq"), panels[1].ID())
	require.Equal(t, disclosure.PanelID("item-2"), panels[2].ID())

	more, err := g.Compose(disclosure.PanelSpec{})
	require.NoError(t, err)
	require.Equal(t, disclosure.PanelID("item-3"), more[0].ID())
	require.Equal(t, 4, g.Len())
	require.Len(t, g.Panels(), 4)
	require.Same(t, g, more[0].Group())
}

func TestComposeRejectsDuplicates(t *testing.T) {
	g := disclosure.NewGroup(disclosure.Independent)
	_, err := g.Compose(disclosure.PanelSpec{ID: "item-1"}, disclosure.PanelSpec{})
	require.ErrorIs(t, err, disclosure.ErrDuplicatePanelID)

	var cfgErr *jivaerrors.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	require.Equal(t, "group", cfgErr.Component)
	require.Contains(t, err.Error(), `"item-1"`)
	require.Zero(t, g.Len(), "a failed composition adds nothing")
}
