package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gigfinder/gigfinder/internal/config"
	"github.com/gigfinder/gigfinder/internal/database"
	"github.com/gigfinder/gigfinder/internal/engine"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// browser replays cookies between requests like a real client.
type browser struct {
	t       *testing.T
	handler http.Handler
	cookies map[string]*http.Cookie
}

func (b *browser) do(req *http.Request) *httptest.ResponseRecorder {
	for _, c := range b.cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	b.handler.ServeHTTP(w, req)
	for _, c := range w.Result().Cookies() {
		if c.MaxAge < 0 || c.Value == "" {
			delete(b.cookies, c.Name)
			continue
		}
		b.cookies[c.Name] = c
	}
	return w
}

func (b *browser) get(path string) *httptest.ResponseRecorder {
	return b.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (b *browser) post(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return b.do(req)
}

func (b *browser) postJSON(path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return b.do(req)
}

func (b *browser) delete(path string) *httptest.ResponseRecorder {
	return b.do(httptest.NewRequest(http.MethodDelete, path, nil))
}

type ServerTestSuite struct {
	suite.Suite
	cfg    *config.Config
	db     *database.Client
	engine *engine.Engine
	server *Server
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func testConfig(dbPath string) *config.Config {
	return &config.Config{
		Listen:        "127.0.0.1:0",
		SessionKey:    "test-secret",
		SessionMaxAge: 3600,
		SessionStore:  config.SessionStoreMemory,
		Database:      &config.DatabaseConfig{Path: dbPath},
		Auth:          &config.AuthConfig{BcryptCost: 4},
		RateLimit:     &config.RateLimitConfig{Enabled: false},
	}
}

func (s *ServerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.cfg = testConfig(filepath.Join(s.T().TempDir(), "api.db"))
	db, err := database.New(s.cfg.Database.Path)
	s.Require().NoError(err)
	s.db = db

	s.engine, err = engine.New(s.cfg, db)
	s.Require().NoError(err)

	s.server, err = New(s.cfg, s.engine)
	s.Require().NoError(err)
}

func (s *ServerTestSuite) TearDownTest() {
	s.NoError(s.db.Close())
}

func (s *ServerTestSuite) newBrowser() *browser {
	return &browser{t: s.T(), handler: s.server.Handler(), cookies: map[string]*http.Cookie{}}
}

func (s *ServerTestSuite) signup(name string) *browser {
	b := s.newBrowser()
	w := b.post("/signup", url.Values{"username": {name}, "password": {"secret"}})
	s.Require().Equal(http.StatusFound, w.Code)
	return b
}

func futureDate() string {
	return time.Now().AddDate(0, 0, 7).Format("2006-01-02")
}

func (s *ServerTestSuite) addGig(b *browser, title, location string) uint {
	w := b.post("/add-gig", url.Values{"title": {title}, "date": {futureDate()}, "location": {location}})
	s.Require().Equal(http.StatusFound, w.Code, w.Body.String())

	gigs, err := s.db.GetGigs(context.Background(), database.GigFilter{SearchText: title})
	s.Require().NoError(err)
	s.Require().NotEmpty(gigs)
	return gigs[len(gigs)-1].ID
}

func (s *ServerTestSuite) TestSignup_LogsInAndRedirects() {
	b := s.newBrowser()
	w := b.post("/signup", url.Values{"username": {"alice"}, "password": {"secret"}})
	s.Equal(http.StatusFound, w.Code)
	s.Equal("/gigs", w.Header().Get("Location"))

	w = b.get("/api/me")
	s.Require().Equal(http.StatusOK, w.Code)
	var me struct {
		ID       uint   `json:"id"`
		Username string `json:"username"`
		Role     string `json:"role"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &me))
	s.Equal("alice", me.Username)
	s.Equal("user", me.Role)
}

func (s *ServerTestSuite) TestSignup_Errors() {
	s.signup("alice")

	b := s.newBrowser()
	w := b.post("/signup", url.Values{"username": {"alice"}, "password": {"other"}})
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "Username already taken.")

	w = b.post("/signup", url.Values{"username": {""}, "password": {"x"}})
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "All fields are required.")
}

func (s *ServerTestSuite) TestLogin_SameMessageForUnknownUserAndWrongPassword() {
	s.signup("alice")

	wrong := s.newBrowser().post("/login", url.Values{"username": {"alice"}, "password": {"nope"}})
	unknown := s.newBrowser().post("/login", url.Values{"username": {"bob"}, "password": {"secret"}})

	s.Equal(http.StatusOK, wrong.Code)
	s.Equal(http.StatusOK, unknown.Code)
	s.Contains(wrong.Body.String(), "Invalid username or password.")
	s.Contains(unknown.Body.String(), "Invalid username or password.")

	ok := s.newBrowser()
	w := ok.post("/login", url.Values{"username": {"alice"}, "password": {"secret"}})
	s.Equal(http.StatusFound, w.Code)
	s.Equal("/gigs", w.Header().Get("Location"))
}

func (s *ServerTestSuite) TestLogout() {
	b := s.signup("alice")

	w := b.get("/logout")
	s.Equal(http.StatusFound, w.Code)
	s.Equal("/", w.Header().Get("Location"))

	w = b.get("/my-gigs")
	s.Equal(http.StatusFound, w.Code)
	s.Equal("/login", w.Header().Get("Location"))
}

func (s *ServerTestSuite) TestProtectedRoutesRedirectAnonymous() {
	b := s.newBrowser()
	for _, path := range []string{"/add-gig", "/my-gigs", "/my-rsvps", "/edit-gig/1", "/admin"} {
		w := b.get(path)
		s.Equal(http.StatusFound, w.Code, path)
		s.Equal("/login", w.Header().Get("Location"), path)
	}
}

func (s *ServerTestSuite) TestAddGig_ValidationRerendersWithoutInsert() {
	b := s.signup("alice")

	w := b.post("/add-gig", url.Values{"title": {""}, "date": {"2000-01-01"}, "location": {""}})
	s.Equal(http.StatusOK, w.Code)
	body := w.Body.String()
	s.Contains(body, "Title is required.")
	s.Contains(body, "Date must be in the future.")
	s.Contains(body, "Location is required.")

	stats, err := s.db.GetStats(context.Background())
	s.Require().NoError(err)
	s.Zero(stats.Gigs)
}

func (s *ServerTestSuite) TestAddGig_TodayIsAccepted() {
	b := s.signup("alice")

	today := time.Now().Format("2006-01-02")
	w := b.post("/add-gig", url.Values{"title": {"Tonight"}, "date": {today}, "location": {"Pub"}})
	s.Equal(http.StatusFound, w.Code)
}

func (s *ServerTestSuite) TestAddGig_FlashShownOnce() {
	b := s.signup("alice")
	s.addGig(b, "Jazz Night", "Town Hall")

	w := b.get("/gigs")
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "Gig added successfully!")
	s.Contains(w.Body.String(), "Jazz Night")

	w = b.get("/gigs")
	s.NotContains(w.Body.String(), "Gig added successfully!")
}

func (s *ServerTestSuite) TestSearch() {
	b := s.signup("alice")
	s.addGig(b, "Jazz Night", "Town Hall")
	s.addGig(b, "Rock Show", "Arena")

	w := s.newBrowser().get("/gigs?search=jazz")
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "Jazz Night")
	s.NotContains(w.Body.String(), "Rock Show")

	w = s.newBrowser().get("/api/gigs?search=jazz")
	s.Require().Equal(http.StatusOK, w.Code)
	var gigs []map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &gigs))
	s.Require().Len(gigs, 1)
	s.Equal("Jazz Night", gigs[0]["title"])
}

func (s *ServerTestSuite) TestEditAndDelete_Ownership() {
	alice := s.signup("alice")
	bob := s.signup("bob")
	id := s.addGig(alice, "Jazz Night", "Town Hall")
	edit := "/edit-gig/" + itoa(id)

	s.Equal(http.StatusForbidden, bob.get(edit).Code)
	w := bob.post(edit, url.Values{"title": {"Hijacked"}, "date": {futureDate()}, "location": {"X"}})
	s.Equal(http.StatusForbidden, w.Code)
	s.Equal(http.StatusForbidden, bob.post("/delete-gig/"+itoa(id), nil).Code)

	s.Equal(http.StatusNotFound, alice.get("/edit-gig/9999").Code)
	s.Equal(http.StatusNotFound, alice.post("/delete-gig/9999", nil).Code)
	s.Equal(http.StatusNotFound, alice.get("/edit-gig/abc").Code)

	w = alice.get(edit)
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `value="Jazz Night"`)

	w = alice.post(edit, url.Values{"title": {"Jazz Night II"}, "date": {futureDate()}, "location": {"Club"}})
	s.Equal(http.StatusFound, w.Code)
	gig, err := s.db.GetGigByID(context.Background(), id)
	s.Require().NoError(err)
	s.Equal("Jazz Night II", gig.Title)

	w = alice.post("/delete-gig/"+itoa(id), nil)
	s.Equal(http.StatusFound, w.Code)
	_, err = s.db.GetGigByID(context.Background(), id)
	s.Error(err)
}

func (s *ServerTestSuite) TestRSVP_Idempotent() {
	alice := s.signup("alice")
	bob := s.signup("bob")
	id := s.addGig(alice, "Jazz Night", "Town Hall")

	for range 2 {
		w := bob.post("/gigs/"+itoa(id)+"/rsvp", nil)
		s.Equal(http.StatusFound, w.Code)
		s.Equal("/gigs", w.Header().Get("Location"))
		s.Contains(bob.get("/gigs").Body.String(), "RSVP confirmed!")
	}

	stats, err := s.db.GetStats(context.Background())
	s.Require().NoError(err)
	s.EqualValues(1, stats.RSVPs)

	s.Contains(bob.get("/my-rsvps").Body.String(), "Jazz Night")

	w := bob.post("/gigs/9999/rsvp", nil)
	s.Equal(http.StatusFound, w.Code)
	s.Contains(bob.get("/gigs").Body.String(), "RSVP failed or already exists.")
}

func (s *ServerTestSuite) TestAdmin() {
	alice := s.signup("alice")
	s.signup("root")
	w := alice.get("/admin")
	s.Equal(http.StatusForbidden, w.Code)
	s.Equal("Access denied. Admins only.", w.Body.String())

	_, err := s.engine.SetUserRoleByName(context.Background(), "root", "admin")
	s.Require().NoError(err)

	admin := s.newBrowser()
	s.Require().Equal(http.StatusFound, admin.post("/login", url.Values{"username": {"root"}, "password": {"secret"}}).Code)

	gigID := s.addGig(alice, "Jazz Night", "Town Hall")
	w = admin.get("/admin")
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "alice")
	s.Contains(w.Body.String(), "Jazz Night")

	w = admin.delete("/admin/gigs/" + itoa(gigID))
	s.Equal(http.StatusSeeOther, w.Code)
	s.Equal("/admin", w.Header().Get("Location"))
	s.NotContains(admin.get("/admin").Body.String(), "Jazz Night")

	aliceUser, err := s.db.GetUserByUsername(context.Background(), "alice")
	s.Require().NoError(err)
	w = admin.post("/admin/users/"+itoa(aliceUser.ID)+"/delete", nil)
	s.Equal(http.StatusSeeOther, w.Code)
	s.NotContains(admin.get("/admin").Body.String(), "alice")
}

func (s *ServerTestSuite) TestAdmin_SetRole() {
	s.signup("root")
	_, err := s.engine.SetUserRoleByName(context.Background(), "root", "admin")
	s.Require().NoError(err)
	admin := s.newBrowser()
	s.Require().Equal(http.StatusFound, admin.post("/login", url.Values{"username": {"root"}, "password": {"secret"}}).Code)

	root, err := s.db.GetUserByUsername(context.Background(), "root")
	s.Require().NoError(err)
	rolePath := "/admin/users/" + itoa(root.ID) + "/role"

	w := admin.post(rolePath, url.Values{"role": {"superuser"}})
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("Invalid role.", w.Body.String())

	w = admin.post(rolePath, url.Values{"role": {"admin"}})
	s.Equal(http.StatusFound, w.Code)
	s.Contains(admin.get("/admin").Body.String(), "Role updated successfully for user ID "+itoa(root.ID)+".")

	// demoting yourself takes effect on the very next request
	w = admin.post(rolePath, url.Values{"role": {"user"}})
	s.Equal(http.StatusFound, w.Code)
	s.Equal(http.StatusForbidden, admin.get("/admin").Code)
}

func (s *ServerTestSuite) TestAPI() {
	anon := s.newBrowser()
	w := anon.postJSON("/api/gigs", `{"title":"x"}`)
	s.Equal(http.StatusUnauthorized, w.Code)

	alice := s.signup("alice")
	w = alice.postJSON("/api/gigs", `{"title":"","date":"2000-01-01","location":""}`)
	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(w.Body.String(), "Title is required.")

	w = alice.postJSON("/api/gigs", `{"title":"Jazz Night","date":"`+futureDate()+`","location":"Town Hall"}`)
	s.Require().Equal(http.StatusCreated, w.Code)
	var created struct {
		ID uint `json:"id"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &created))
	s.NotZero(created.ID)

	w = anon.get("/api/gigs/" + itoa(created.ID))
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"title":"Jazz Night"`)

	w = anon.get("/api/gigs/9999")
	s.Equal(http.StatusNotFound, w.Code)
	s.JSONEq(`{"error":"Gig not found"}`, w.Body.String())

	bob := s.signup("bob")
	s.Equal(http.StatusForbidden, bob.delete("/api/gigs/"+itoa(created.ID)).Code)
	s.Equal(http.StatusOK, alice.delete("/api/gigs/"+itoa(created.ID)).Code)
	s.Equal(http.StatusNotFound, anon.get("/api/gigs/"+itoa(created.ID)).Code)
}

func (s *ServerTestSuite) loginAdmin(name string) *browser {
	s.signup(name)
	_, err := s.engine.SetUserRoleByName(context.Background(), name, "admin")
	s.Require().NoError(err)
	b := s.newBrowser()
	s.Require().Equal(http.StatusFound, b.post("/login", url.Values{"username": {name}, "password": {"secret"}}).Code)
	return b
}

func (s *ServerTestSuite) userID(name string) uint {
	u, err := s.db.GetUserByUsername(context.Background(), name)
	s.Require().NoError(err)
	return u.ID
}

func (s *ServerTestSuite) TestAdmin_DeletedAdminLosesAccess() {
	root := s.loginAdmin("root")
	bob := s.loginAdmin("bob")
	s.Equal(http.StatusOK, bob.get("/admin").Code)

	w := root.post("/admin/users/"+itoa(s.userID("bob"))+"/delete", nil)
	s.Require().Equal(http.StatusSeeOther, w.Code)

	w = bob.get("/admin")
	s.Equal(http.StatusFound, w.Code)
	s.Equal("/login", w.Header().Get("Location"))

	w = bob.post("/admin/users/"+itoa(s.userID("root"))+"/delete", nil)
	s.Equal(http.StatusFound, w.Code)
	_, err := s.db.GetUserByUsername(context.Background(), "root")
	s.NoError(err, "a deleted admin must not be able to delete other users")
}

func (s *ServerTestSuite) TestAdmin_DemotedAdminLosesAccess() {
	root := s.loginAdmin("root")
	carol := s.loginAdmin("carol")
	s.Equal(http.StatusOK, carol.get("/admin").Code)

	w := root.post("/admin/users/"+itoa(s.userID("carol"))+"/role", url.Values{"role": {"user"}})
	s.Require().Equal(http.StatusFound, w.Code)

	s.Equal(http.StatusForbidden, carol.get("/admin").Code)
	s.Equal(http.StatusForbidden, carol.get("/api/users").Code)
	s.NotContains(carol.get("/gigs").Body.String(), `href="/admin"`)
}

func (s *ServerTestSuite) TestAPIUsers() {
	anon := s.newBrowser()
	s.Equal(http.StatusUnauthorized, anon.get("/api/users").Code)

	alice := s.signup("alice")
	w := alice.get("/api/users")
	s.Equal(http.StatusForbidden, w.Code)
	s.JSONEq(`{"error":"Admins only"}`, w.Body.String())
	s.Equal(http.StatusForbidden, alice.delete("/api/users/1").Code)

	admin := s.loginAdmin("root")
	w = admin.get("/api/users")
	s.Require().Equal(http.StatusOK, w.Code)
	s.NotContains(w.Body.String(), "password")
	var users []struct {
		ID       uint   `json:"id"`
		Username string `json:"username"`
		Role     string `json:"role"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &users))
	s.Require().Len(users, 2)
	s.Equal("alice", users[0].Username)
	s.Equal("user", users[0].Role)
	s.Equal("root", users[1].Username)
	s.Equal("admin", users[1].Role)

	w = admin.postJSON("/api/users", `{"username":"carol","password":"pw"}`)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var created struct {
		ID uint `json:"id"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &created))
	s.Equal(s.userID("carol"), created.ID)
	s.Equal(http.StatusFound, s.newBrowser().post("/login", url.Values{"username": {"carol"}, "password": {"pw"}}).Code)

	w = admin.postJSON("/api/users", `{"username":"carol","password":"pw"}`)
	s.Equal(http.StatusConflict, w.Code)
	s.JSONEq(`{"error":"Username already taken."}`, w.Body.String())

	w = admin.postJSON("/api/users", `{"username":"dave","password":"pw","role":"superuser"}`)
	s.Equal(http.StatusBadRequest, w.Code)
	s.JSONEq(`{"errors":["Invalid role."]}`, w.Body.String())

	w = admin.postJSON("/api/users", `{"username":"","password":"pw"}`)
	s.Equal(http.StatusBadRequest, w.Code)
	s.JSONEq(`{"errors":["All fields are required."]}`, w.Body.String())

	w = admin.delete("/api/users/" + itoa(created.ID))
	s.Equal(http.StatusOK, w.Code)
	_, err := s.db.GetUserByUsername(context.Background(), "carol")
	s.Error(err)

	w = admin.delete("/api/users/abc")
	s.Equal(http.StatusNotFound, w.Code)
	s.JSONEq(`{"error":"User not found"}`, w.Body.String())
}

func (s *ServerTestSuite) TestStaticAndRequestID() {
	w := s.newBrowser().get("/static/validate.js")
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "Date must be in the future.")
	s.NotEmpty(w.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = s.newBrowser().do(req)
	s.Equal(http.StatusOK, w.Code)
	s.Equal("abc-123", w.Header().Get(RequestIDHeader))
}

func newLimitedServer(t *testing.T, trustedProxies ...string) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := testConfig(filepath.Join(t.TempDir(), "limit.db"))
	cfg.RateLimit = &config.RateLimitConfig{Enabled: true, Rate: "2-M", Store: config.RateLimitStoreMemory}
	cfg.TrustedProxies = trustedProxies

	db, err := database.New(cfg.Database.Path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	e, err := engine.New(cfg, db)
	require.NoError(t, err)
	srv, err := New(cfg, e)
	require.NoError(t, err)
	return srv.Handler()
}

// postLogin sends a failed login from remoteAddr, optionally claiming forwardedFor as the client.
func postLogin(h http.Handler, remoteAddr, forwardedFor string) int {
	form := url.Values{"username": {"alice"}, "password": {"nope"}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.RemoteAddr = remoteAddr
	if forwardedFor != "" {
		req.Header.Set("X-Forwarded-For", forwardedFor)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimit_CredentialRoutes(t *testing.T) {
	h := newLimitedServer(t)

	b := &browser{t: t, handler: h, cookies: map[string]*http.Cookie{}}
	form := url.Values{"username": {"alice"}, "password": {"nope"}}
	assert.Equal(t, http.StatusOK, b.post("/login", form).Code)
	assert.Equal(t, http.StatusOK, b.post("/login", form).Code)
	assert.Equal(t, http.StatusTooManyRequests, b.post("/login", form).Code)

	// reading the form is never limited
	assert.Equal(t, http.StatusOK, b.get("/login").Code)
}

func TestRateLimit_IgnoresForwardedForFromUntrustedClients(t *testing.T) {
	h := newLimitedServer(t)

	var codes []int
	for i := range 5 {
		codes = append(codes, postLogin(h, "203.0.113.7:40000", "198.51.100."+strconv.Itoa(i+1)))
	}
	assert.Equal(t, []int{200, 200, 429, 429, 429}, codes)
}

func TestRateLimit_TrustedProxyForwardsClientIP(t *testing.T) {
	h := newLimitedServer(t, "10.0.0.1")
	proxy := "10.0.0.1:5000"

	assert.Equal(t, http.StatusOK, postLogin(h, proxy, "198.51.100.1"))
	assert.Equal(t, http.StatusOK, postLogin(h, proxy, "198.51.100.1"))
	assert.Equal(t, http.StatusTooManyRequests, postLogin(h, proxy, "198.51.100.1"))

	// another client behind the same proxy has its own budget
	assert.Equal(t, http.StatusOK, postLogin(h, proxy, "198.51.100.2"))
}

func TestNew_InvalidTrustedProxy(t *testing.T) {
	cfg := testConfig(filepath.Join(t.TempDir(), "proxy.db"))
	cfg.TrustedProxies = []string{"not-an-ip"}
	db, err := database.New(cfg.Database.Path)
	require.NoError(t, err)
	defer db.Close()
	e, err := engine.New(cfg, db)
	require.NoError(t, err)

	_, err = New(cfg, e)
	assert.Error(t, err)
}

func TestNewRateLimiter_InvalidRate(t *testing.T) {
	_, err := newRateLimiter(&config.RateLimitConfig{Enabled: true, Rate: "lots"})
	assert.Error(t, err)

	_, err = newRateLimiter(&config.RateLimitConfig{Enabled: true, Rate: "5-M", Store: config.RateLimitStoreRedis, RedisURL: "::not a url"})
	assert.Error(t, err)
}

func TestNew_RequiresDependencies(t *testing.T) {
	_, err := New(nil, nil)
	assert.Error(t, err)
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
