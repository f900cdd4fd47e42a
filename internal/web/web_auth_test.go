package web_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterCreatesAccountAndLogsIn(t *testing.T) {
	ts := newWebTestServer(t)

	form := url.Values{"username": {"alice"}, "password": {"secret123"}}
	rr := ts.post("/auth/register", form)

	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.True(t, ts.cookies.hasSession())

	doc := parseHTML(ts.followRedirect(rr).Body)
	assertFlash(t, doc, "Compte créé pour alice")
	assertContainsText(t, doc, ".username", "alice")
}

func TestRegisterDuplicateUsernameShowsError(t *testing.T) {
	ts := newWebTestServer(t)
	ts.register("alice", "secret123")

	// Second browser tries to take the same username
	ts.cookies = newCookieJar()

	form := url.Values{"username": {"alice"}, "password": {"other"}}
	rr := ts.post("/auth/register", form)

	require.Equal(t, http.StatusOK, rr.Code, "Expected form re-render, not redirect")
	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, ".form-error", "Ce pseudo existe déjà. Choisis-en un autre.")
	assert.False(t, ts.cookies.hasSession())
}

func TestRegisterEmptyFieldsShowsError(t *testing.T) {
	ts := newWebTestServer(t)

	form := url.Values{"username": {""}, "password": {""}}
	rr := ts.post("/auth/register", form)

	require.Equal(t, http.StatusOK, rr.Code)
	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, ".form-error", "Pseudo et mot de passe requis.")
}

func TestLoginSucceedsWithCorrectCredentials(t *testing.T) {
	ts := newWebTestServer(t)
	ts.register("alice", "secret123")
	ts.post("/auth/logout", nil)

	form := url.Values{"username": {"alice"}, "password": {"secret123"}}
	rr := ts.post("/auth/login", form)

	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.True(t, ts.cookies.hasSession())

	doc := parseHTML(ts.followRedirect(rr).Body)
	assertFlash(t, doc, "Connecté en tant que alice")
}

func TestLoginFailsWithWrongPassword(t *testing.T) {
	ts := newWebTestServer(t)
	ts.register("alice", "secret123")
	ts.post("/auth/logout", nil)

	form := url.Values{"username": {"alice"}, "password": {"wrong"}}
	rr := ts.post("/auth/login", form)

	require.Equal(t, http.StatusOK, rr.Code, "Expected form re-render, not redirect")
	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, ".form-error", "Pseudo ou mot de passe incorrect.")
	assert.False(t, ts.cookies.hasSession())
}

func TestLoginFailsWithUnknownUser(t *testing.T) {
	ts := newWebTestServer(t)

	form := url.Values{"username": {"nobody"}, "password": {"whatever"}}
	rr := ts.post("/auth/login", form)

	require.Equal(t, http.StatusOK, rr.Code)
	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, ".form-error", "Pseudo ou mot de passe incorrect.")
}

func TestLogoutEndsSession(t *testing.T) {
	ts := newWebTestServer(t)
	ts.register("alice", "secret123")

	rr := ts.post("/auth/logout", nil)
	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.False(t, ts.cookies.hasSession())

	doc := parseHTML(ts.followRedirect(rr).Body)
	assertFlash(t, doc, "Déconnecté.")
	assertContainsText(t, doc, "nav", "Connexion")
}

func TestLogoutKeepsBalanceAndPurchases(t *testing.T) {
	ts := newWebTestServer(t)
	ts.register("alice", "secret123")
	ts.setBalance("alice", 200)
	ts.addToCart(1)
	ts.post("/cart/checkout", nil)

	ts.post("/auth/logout", nil)

	form := url.Values{"username": {"alice"}, "password": {"secret123"}}
	ts.post("/auth/login", form)

	doc := parseHTML(ts.get("/").Body)
	assertContainsText(t, doc, ".balance", "140 ¥")
}

func TestLoginPageRedirectsWhenAlreadyLoggedIn(t *testing.T) {
	ts := newWebTestServer(t)
	ts.register("alice", "secret123")

	rr := ts.get("/login")
	assert.Equal(t, http.StatusSeeOther, rr.Code)
}
