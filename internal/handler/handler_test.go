package handler

import (
	"errors"
	"image/png"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"studio-site/internal/domain"
	"studio-site/internal/logger"
	"studio-site/internal/ogimage"
	"studio-site/internal/repository"
	"studio-site/internal/services"
	"studio-site/internal/videocdn"

	"github.com/gookit/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type site struct {
	server *httptest.Server
	client *http.Client
	events *event.Manager

	mu      sync.Mutex
	landing []domain.PersonalizationContext
	briefs  []*domain.IntakeSubmission
}

func newSite(t *testing.T) *site {
	t.Helper()

	log := logger.Discard()
	events := event.NewManager("test")
	sanitizer := NewTextSanitizer()
	videos := videocdn.New("", log)
	intake := services.NewIntakeService(repository.NewMemoryProgressRepository(), nil, events, time.Millisecond, log)

	router := NewRouter(Handlers{
		Pages:     NewPageHandler(videos, log),
		Intake:    NewIntakeHandler(intake, sanitizer, false, log),
		Solutions: NewSolutionsHandler(videos, NewPublisher(events), sanitizer, "http://localhost:3000/", log),
		OG:        NewOGHandler(ogimage.Render, sanitizer, log),
	}, "", log)

	s := &site{server: httptest.NewServer(router), events: events}
	t.Cleanup(s.server.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	s.client = &http.Client{Jar: jar}

	events.On(domain.EventLandingPersonalized, event.ListenerFunc(func(e event.Event) error {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.landing = append(s.landing, e.Get("context").(domain.PersonalizationContext))
		return nil
	}))
	events.On(domain.EventIntakeSubmitted, event.ListenerFunc(func(e event.Event) error {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.briefs = append(s.briefs, e.Get("submission").(*domain.IntakeSubmission))
		return nil
	}))

	return s
}

func (s *site) get(t *testing.T, path string) (int, string) {
	t.Helper()
	resp, err := s.client.Get(s.server.URL + path)
	require.NoError(t, err)
	return readBody(t, resp)
}

func (s *site) post(t *testing.T, path string, form url.Values) (int, string) {
	t.Helper()
	resp, err := s.client.PostForm(s.server.URL+path, form)
	require.NoError(t, err)
	return readBody(t, resp)
}

func readBody(t *testing.T, resp *http.Response) (int, string) {
	t.Helper()
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestPages(t *testing.T) {
	s := newSite(t)

	cases := []struct {
		path   string
		status int
		want   string
	}{
		{"/", http.StatusOK, "Digital Solutions"},
		{"/about", http.StatusOK, "Our Three Pillars"},
		{"/web-dev", http.StatusOK, "Recent Projects"},
		{"/iptv?theme=luxury", http.StatusOK, `data-theme="luxury"`},
		{"/iptv?theme=nope", http.StatusOK, `data-theme="standard"`},
		{"/3d-visuals?category=interior", http.StatusOK, `href="/3d-visuals?category=interior" class="active"`},
		{"/healthz", http.StatusOK, `{"status":"ok"}`},
		{"/missing", http.StatusNotFound, "This page wandered off."},
	}

	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			status, body := s.get(t, tc.path)
			assert.Equal(t, tc.status, status)
			assert.Contains(t, body, tc.want)
		})
	}
}

func TestSolutions_PersonalizedFiresEvent(t *testing.T) {
	s := newSite(t)

	status, body := s.get(t, "/solutions/Fashion?company=%3Cb%3EAcme%3C%2Fb%3E&ref=agent001")
	require.Equal(t, http.StatusOK, status)

	assert.Contains(t, body, "Welcome, Acme!")
	assert.NotContains(t, body, "<b>Acme")
	assert.Contains(t, body, "Reference: agent001")
	assert.Contains(t, body, `content="http://localhost:3000/api/og?company=Acme&amp;industry=fashion"`)
	assert.Contains(t, body, `property="og:image:width" content="1200"`)

	s.mu.Lock()
	defer s.mu.Unlock()
	require.Len(t, s.landing, 1)
	assert.Equal(t, domain.PersonalizationContext{
		IndustryKey:   "fashion",
		CompanyName:   "Acme",
		ReferenceCode: "agent001",
	}, s.landing[0])
}

func TestSolutions_WithoutRefIsQuiet(t *testing.T) {
	s := newSite(t)

	status, body := s.get(t, "/solutions/unknown-industry?company=Acme")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Welcome, Acme!")
	assert.NotContains(t, body, "<video")
	assert.NotContains(t, body, "Reference:")

	s.mu.Lock()
	defer s.mu.Unlock()
	assert.Empty(t, s.landing)
}

func TestSitemap(t *testing.T) {
	s := newSite(t)

	status, body := s.get(t, "/sitemap.xml")
	require.Equal(t, http.StatusOK, status)
	assert.True(t, strings.HasPrefix(body, "<?xml"))
	assert.Contains(t, body, "<loc>http://localhost:3000/about</loc>")
	assert.Contains(t, body, "<loc>http://localhost:3000/solutions/real-estate</loc>")
	assert.NotContains(t, body, "generic")
}

func TestOGImage(t *testing.T) {
	h := NewOGHandler(ogimage.Render, NewTextSanitizer(), logger.Discard())

	rec := httptest.NewRecorder()
	h.Image(rec, httptest.NewRequest(http.MethodGet, "/api/og?industry=hospitality&company=Ritz", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Header().Get("Cache-Control"))

	img, err := png.Decode(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, ogimage.Width, img.Bounds().Dx())
	assert.Equal(t, ogimage.Height, img.Bounds().Dy())
}

func TestOGImage_RenderFailure(t *testing.T) {
	failing := func(io.Writer, domain.IndustryConfig, string) error { return errors.New("font missing") }
	h := NewOGHandler(failing, NewTextSanitizer(), logger.Discard())

	rec := httptest.NewRecorder()
	h.Image(rec, httptest.NewRequest(http.MethodGet, "/api/og", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/plain"))
	assert.Equal(t, MSG_OG_FAILED, strings.TrimSpace(rec.Body.String()))
}

func TestIntakeFlow(t *testing.T) {
	s := newSite(t)

	status, body := s.get(t, "/start-project")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `data-intake-step="vibe"`)

	status, body = s.post(t, "/start-project/vibe", url.Values{"vibe": {"vr"}})
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Contains(t, body, MSG_INVALID_VIBE)

	status, body = s.post(t, "/start-project/vibe", url.Values{"vibe": {"web"}})
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `data-intake-step="details"`)

	details := url.Values{
		"name":  {"Ada"},
		"email": {"ada@example.com"},
		"brief": {""},
	}

	details.Set("action", "submit")
	status, body = s.post(t, "/start-project/details", details)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Contains(t, body, `role="alert"`)

	details.Set("brief", "A <em>fast</em> store")
	details.Set("action", "save")
	status, body = s.post(t, "/start-project/details", details)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `value="ada@example.com"`)
	assert.Contains(t, body, "A &lt;em&gt;fast&lt;/em&gt; store")
	assert.NotContains(t, body, "<em>fast")

	details.Set("action", "back")
	status, body = s.post(t, "/start-project/details", details)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `data-intake-step="vibe"`)

	status, body = s.post(t, "/start-project/vibe", url.Values{"vibe": {"3d"}})
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `value="Ada"`)

	details.Set("action", "submit")
	status, body = s.post(t, "/start-project/details", details)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Project Submitted!")

	s.mu.Lock()
	require.Len(t, s.briefs, 1)
	assert.Equal(t, domain.Vibe3D, s.briefs[0].Vibe)
	assert.Equal(t, "A <em>fast</em> store", s.briefs[0].Brief)
	s.mu.Unlock()

	status, body = s.get(t, "/start-project")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `data-intake-step="vibe"`)
	assert.NotContains(t, body, `value="Ada"`)
}

func TestIntakeBriefKeepsAngleBrackets(t *testing.T) {
	s := newSite(t)

	status, _ := s.post(t, "/start-project/vibe", url.Values{"vibe": {"web"}})
	require.Equal(t, http.StatusOK, status)

	status, body := s.post(t, "/start-project/details", url.Values{
		"name":    {"Ada"},
		"email":   {"ada@example.com"},
		"company": {"<b>Acme</b>"},
		"brief":   {"  We need a <video> hero on the landing page  "},
		"action":  {"submit"},
	})
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Project Submitted!")

	s.mu.Lock()
	defer s.mu.Unlock()
	require.Len(t, s.briefs, 1)
	assert.Equal(t, "We need a <video> hero on the landing page", s.briefs[0].Brief)
	assert.Equal(t, "Acme", s.briefs[0].Company)
}

func TestIntakeReset(t *testing.T) {
	s := newSite(t)

	_, _ = s.post(t, "/start-project/vibe", url.Values{"vibe": {"iptv"}})
	_, _ = s.post(t, "/start-project/details", url.Values{"name": {"Grace"}, "action": {"save"}})

	status, body := s.post(t, "/start-project/reset", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `data-intake-step="vibe"`)
	assert.NotContains(t, body, "Grace")
}

func TestDetailsWithoutVibeRedirects(t *testing.T) {
	s := newSite(t)

	status, body := s.post(t, "/start-project/details", url.Values{"name": {"Ada"}, "action": {"save"}})
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `data-intake-step="vibe"`)
}

func TestTextSanitizer(t *testing.T) {
	s := NewTextSanitizer()

	assert.Equal(t, "Acme", s.Clean("  <b>Acme</b> "))
	assert.Equal(t, "Tom & Jerry", s.Clean("Tom & Jerry"))
	assert.Equal(t, "Hi", s.Clean("<script>alert(1)</script>Hi"))
}
