package ui

import (
	"path/filepath"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/chuckle/internal/joke"
	"github.com/five82/chuckle/internal/prefs"
	"github.com/five82/chuckle/internal/state"
)

var atoms = joke.Joke{
	Setup:     "Why don't scientists trust atoms?",
	Punchline: "Because they make up everything!",
	Category:  "Science",
}

type fakeController struct {
	mu        sync.Mutex
	current   state.UIState
	favorites joke.Favorites
	ch        chan state.UIState
	requests  int
	saves     int
}

func newFakeController(s state.UIState) *fakeController {
	return &fakeController{current: s, ch: make(chan state.UIState, 1)}
}

func (f *fakeController) State() state.UIState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.current
}

func (f *fakeController) Favorites() joke.Favorites {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.favorites
}

func (f *fakeController) Subscribe() (<-chan state.UIState, func()) {
	return f.ch, func() {}
}

func (f *fakeController) RequestNewJoke() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests++
}

func (f *fakeController) SaveFavorite() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saves++
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T, c Controller) Model {
	t.Helper()
	m := New(Options{
		Controller: c,
		ThemeName:  "Nightfox",
		PrefsPath:  filepath.Join(t.TempDir(), "prefs.toml"),
	})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return updated.(Model)
}

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func TestModel_RendersLoadingBeforeReady(t *testing.T) {
	m := New(Options{Controller: newFakeController(state.Loading{})})
	assert.Equal(t, "Loading...", m.View())
}

func TestModel_RendersEachState(t *testing.T) {
	c := newFakeController(state.Loading{})
	m := newTestModel(t, c)
	assert.Contains(t, m.View(), loadingText)

	updated, cmd := m.Update(stateMsg{state: state.Success{Joke: atoms}})
	m = updated.(Model)
	require.NotNil(t, cmd, "subscription wait should be re-issued")
	view := m.View()
	assert.Contains(t, view, "SCIENCE")
	assert.Contains(t, view, "Why don't scientists trust atoms?")
	assert.Contains(t, view, "Because they make up everything!")
	assert.Contains(t, view, notFavoriteMarker)

	updated, _ = m.Update(stateMsg{state: state.Error{Message: "Network error: HTTP 500", Kind: joke.KindProtocol, Retryable: true}})
	m = updated.(Model)
	view = m.View()
	assert.Contains(t, view, errorTitle)
	assert.Contains(t, view, "Network error: HTTP 500")
}

func TestModel_NewJokeKeyRequestsFetch(t *testing.T) {
	c := newFakeController(state.Error{Message: "boom"})
	m := newTestModel(t, c)

	m, _ = press(t, m, runes("n"))
	m, _ = press(t, m, runes("r"))
	assert.Equal(t, 2, c.requests)
}

func TestModel_SaveKeyOnlyEnabledForUnsavedSuccess(t *testing.T) {
	c := newFakeController(state.Loading{})
	m := newTestModel(t, c)

	m, _ = press(t, m, runes("s"))
	assert.Equal(t, 0, c.saves, "save while loading")

	updated, _ := m.Update(stateMsg{state: state.Success{Joke: atoms}})
	m = updated.(Model)
	m, _ = press(t, m, runes("s"))
	assert.Equal(t, 1, c.saves)

	saved := joke.Favorites{atoms}
	updated, _ = m.Update(stateMsg{state: state.Success{Joke: atoms, Favorites: saved}})
	m = updated.(Model)
	assert.False(t, m.keys.Save.Enabled())
	assert.Contains(t, m.View(), favoriteMarker)
	m, _ = press(t, m, runes("s"))
	assert.Equal(t, 1, c.saves, "save of an already saved joke")
}

func TestModel_FavoritesViewAndBack(t *testing.T) {
	c := newFakeController(state.Success{Joke: atoms, Favorites: joke.Favorites{atoms}})
	c.favorites = joke.Favorites{atoms}
	m := newTestModel(t, c)

	m, _ = press(t, m, runes("v"))
	require.True(t, m.showFavorites)
	view := m.View()
	assert.Contains(t, view, "Favorites (1)")
	assert.Contains(t, view, atoms.Setup)

	// Joke commands are disabled while the list is open.
	m, _ = press(t, m, runes("n"))
	assert.Equal(t, 0, c.requests)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.showFavorites)
	assert.Contains(t, m.View(), atoms.Punchline)
}

func TestModel_EmptyFavorites(t *testing.T) {
	m := newTestModel(t, newFakeController(state.Loading{}))
	m, _ = press(t, m, runes("v"))
	assert.Contains(t, m.View(), "No favorites yet")
}

func TestModel_FavoritesSurviveLoading(t *testing.T) {
	m := newTestModel(t, newFakeController(state.Loading{}))
	updated, _ := m.Update(stateMsg{state: state.Success{Joke: atoms, Favorites: joke.Favorites{atoms}}})
	m = updated.(Model)
	updated, _ = m.Update(stateMsg{state: state.Loading{}})
	m = updated.(Model)
	assert.Equal(t, 1, m.favorites.Len())
}

func TestModel_CycleThemePersistsPrefs(t *testing.T) {
	m := newTestModel(t, newFakeController(state.Loading{}))

	m, _ = press(t, m, runes("T"))
	assert.Equal(t, "Kanagawa", m.theme.Name)

	p, err := prefs.Load(m.prefsPath)
	require.NoError(t, err)
	assert.Equal(t, "Kanagawa", p.Theme)
}

func TestModel_PrefsChangeAppliesTheme(t *testing.T) {
	m := newTestModel(t, newFakeController(state.Loading{}))
	updated, _ := m.Update(prefsMsg{prefs: prefs.Prefs{Theme: "Slate"}})
	assert.Equal(t, "Slate", updated.(Model).theme.Name)
}

func TestModel_HelpOverlay(t *testing.T) {
	m := newTestModel(t, newFakeController(state.Loading{}))
	m, _ = press(t, m, runes("?"))
	require.True(t, m.showHelp)
	assert.Contains(t, m.View(), "Keyboard Shortcuts")

	m, _ = press(t, m, runes("x"))
	assert.False(t, m.showHelp)
}

func TestModel_QuitKeyAndClosedSubscription(t *testing.T) {
	m := newTestModel(t, newFakeController(state.Loading{}))

	_, cmd := press(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = m.Update(stateClosedMsg{})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestWaitForState(t *testing.T) {
	ch := make(chan state.UIState, 1)
	ch <- state.Loading{}
	cmd := waitForState(ch)
	assert.Equal(t, stateMsg{state: state.Loading{}}, cmd())

	close(ch)
	assert.Equal(t, stateClosedMsg{}, cmd())

	assert.Nil(t, waitForState(nil))
}
