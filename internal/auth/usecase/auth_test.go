package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"zenwell-client/internal/auth"
	"zenwell-client/internal/httpclient"
	"zenwell-client/internal/session"

	"github.com/golang-jwt/jwt/v5"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

// fakeRequester records calls and plays back canned responses per path.
type fakeRequester struct {
	calls     []recordedCall
	responses map[string][]byte
	errs      map[string]error
}

type recordedCall struct {
	method string
	path   string
	body   any
}

func (f *fakeRequester) Do(ctx context.Context, method, path string, body any, params url.Values) ([]byte, error) {
	f.calls = append(f.calls, recordedCall{method: method, path: path, body: body})
	if err, ok := f.errs[path]; ok {
		return nil, err
	}
	return f.responses[path], nil
}

func (f *fakeRequester) Upload(ctx context.Context, path, field, filename string, file io.Reader) ([]byte, error) {
	f.calls = append(f.calls, recordedCall{method: http.MethodPost, path: path})
	return f.responses[path], nil
}

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func loginResponse(t *testing.T, resp auth.LoginResponse) []byte {
	t.Helper()
	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("failed to encode response: %v", err)
	}
	return data
}

func TestLogin_PersistsSession(t *testing.T) {
	store := session.NewMemoryStore()
	req := &fakeRequester{responses: map[string][]byte{
		"/auth/login": loginResponse(t, auth.LoginResponse{
			AccessToken:  "tok-access",
			RefreshToken: "tok-refresh",
			UserID:       "42",
			Role:         "USER",
		}),
	}}
	uc := New(&mockLogger{}, req, store, nil)

	id, err := uc.Login(context.Background(), auth.LoginInput{Email: "a@b.c", Password: "pw"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if id.UserID != "42" || id.Role != "USER" {
		t.Fatalf("identity = %+v", id)
	}

	sess, _ := store.Get()
	want := session.Session{
		AccessToken:  "tok-access",
		RefreshToken: "tok-refresh",
		UserID:       "42",
		Role:         "USER",
	}
	if sess != want {
		t.Fatalf("stored session = %+v, want %+v", sess, want)
	}

	if len(req.calls) != 1 || req.calls[0].method != http.MethodPost || req.calls[0].path != "/auth/login" {
		t.Fatalf("calls = %+v", req.calls)
	}
}

// When the backend leaves userId/role out of the login payload, they are
// read from the access token's claims instead.
func TestLogin_DerivesIdentityFromTokenClaims(t *testing.T) {
	store := session.NewMemoryStore()
	token := signedToken(t, jwt.MapClaims{
		"sub":  "user-77",
		"role": "PRACTITIONER",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	req := &fakeRequester{responses: map[string][]byte{
		"/auth/login": loginResponse(t, auth.LoginResponse{
			AccessToken:  token,
			RefreshToken: "tok-refresh",
		}),
	}}
	uc := New(&mockLogger{}, req, store, nil)

	id, err := uc.Login(context.Background(), auth.LoginInput{Email: "a@b.c", Password: "pw"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if id.UserID != "user-77" || id.Role != "PRACTITIONER" {
		t.Fatalf("identity = %+v", id)
	}
	sess, _ := store.Get()
	if sess.UserID != "user-77" || sess.Role != "PRACTITIONER" {
		t.Fatalf("stored session = %+v", sess)
	}
}

// Round trip through the real request client: the token persisted by Login
// is the one attached to the next call.
func TestLogin_TokenFlowsIntoNextRequest(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			w.Write(loginResponse(t, auth.LoginResponse{
				AccessToken:  "tok-live",
				RefreshToken: "tok-refresh",
				UserID:       "42",
				Role:         "USER",
			}))
		case "/users/profile":
			gotAuth = r.Header.Get("Authorization")
			w.Write([]byte(`{"userId":"42"}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	store := session.NewMemoryStore()
	client := httpclient.New(httpclient.Config{BaseURL: srv.URL}, store, &mockLogger{}, nil)
	uc := New(&mockLogger{}, client, store, nil)

	if _, err := uc.Login(context.Background(), auth.LoginInput{Email: "a@b.c", Password: "pw"}); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if _, err := client.Get(context.Background(), "/users/profile", nil); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if gotAuth != "Bearer tok-live" {
		t.Fatalf("Authorization = %q, want Bearer tok-live", gotAuth)
	}
}

func TestLogin_InputValidation(t *testing.T) {
	uc := New(&mockLogger{}, &fakeRequester{}, session.NewMemoryStore(), nil)
	if _, err := uc.Login(context.Background(), auth.LoginInput{Email: "a@b.c"}); err != auth.ErrEmptyCredentials {
		t.Fatalf("missing password: err = %v", err)
	}
	if _, err := uc.Login(context.Background(), auth.LoginInput{Password: "pw"}); err != auth.ErrEmptyCredentials {
		t.Fatalf("missing email: err = %v", err)
	}
}

func TestLogin_MissingTokens(t *testing.T) {
	store := session.NewMemoryStore()
	req := &fakeRequester{responses: map[string][]byte{
		"/auth/login": loginResponse(t, auth.LoginResponse{AccessToken: "tok-access"}),
	}}
	uc := New(&mockLogger{}, req, store, nil)

	if _, err := uc.Login(context.Background(), auth.LoginInput{Email: "a@b.c", Password: "pw"}); err != auth.ErrMissingTokens {
		t.Fatalf("err = %v, want ErrMissingTokens", err)
	}
	if sess, _ := store.Get(); !sess.IsZero() {
		t.Fatalf("session persisted on bad login: %+v", sess)
	}
}

func TestLogout_RevokesAndClears(t *testing.T) {
	store := session.NewMemoryStore()
	store.Set(session.Session{AccessToken: "tok-access", RefreshToken: "tok-refresh", UserID: "42"})
	req := &fakeRequester{responses: map[string][]byte{}}
	hookFired := false
	uc := New(&mockLogger{}, req, store, func() { hookFired = true })

	if err := uc.Logout(context.Background()); err != nil {
		t.Fatalf("Logout: %v", err)
	}

	if len(req.calls) != 1 || req.calls[0].path != "/auth/logout" {
		t.Fatalf("calls = %+v", req.calls)
	}
	payload, ok := req.calls[0].body.(map[string]string)
	if !ok || payload["refreshToken"] != "tok-refresh" {
		t.Fatalf("logout payload = %+v", req.calls[0].body)
	}
	if sess, _ := store.Get(); !sess.IsZero() {
		t.Fatalf("session survived logout: %+v", sess)
	}
	if !hookFired {
		t.Fatal("session-ended hook did not fire")
	}
}

// A failed revocation still clears local state and fires the hook; the
// failure is reported to the caller.
func TestLogout_ClearsOnNetworkFailure(t *testing.T) {
	store := session.NewMemoryStore()
	store.Set(session.Session{AccessToken: "tok-access", RefreshToken: "tok-refresh"})
	netErr := errors.New("connection refused")
	req := &fakeRequester{errs: map[string]error{"/auth/logout": netErr}}
	hookFired := false
	uc := New(&mockLogger{}, req, store, func() { hookFired = true })

	err := uc.Logout(context.Background())
	if !errors.Is(err, netErr) {
		t.Fatalf("err = %v, want wrapped %v", err, netErr)
	}
	if sess, _ := store.Get(); !sess.IsZero() {
		t.Fatalf("session survived failed logout: %+v", sess)
	}
	if !hookFired {
		t.Fatal("session-ended hook did not fire")
	}
}

func TestLogout_WithoutSession(t *testing.T) {
	store := session.NewMemoryStore()
	req := &fakeRequester{}
	uc := New(&mockLogger{}, req, store, nil)

	if err := uc.Logout(context.Background()); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if len(req.calls) != 0 {
		t.Fatalf("no revocation call expected, got %+v", req.calls)
	}
}

func TestCurrentUser(t *testing.T) {
	store := session.NewMemoryStore()
	uc := New(&mockLogger{}, &fakeRequester{}, store, nil)

	if _, err := uc.CurrentUser(); err != auth.ErrNotAuthenticated {
		t.Fatalf("logged out: err = %v", err)
	}

	store.Set(session.Session{AccessToken: "tok", RefreshToken: "ref", UserID: "42", Role: "USER"})
	id, err := uc.CurrentUser()
	if err != nil {
		t.Fatalf("CurrentUser: %v", err)
	}
	if id.UserID != "42" || id.Role != "USER" {
		t.Fatalf("identity = %+v", id)
	}
}

func TestIsAuthenticated(t *testing.T) {
	store := session.NewMemoryStore()
	uc := New(&mockLogger{}, &fakeRequester{}, store, nil)

	if uc.IsAuthenticated() {
		t.Fatal("empty store must not be authenticated")
	}

	// Opaque tokens stay usable until the backend says otherwise.
	store.Set(session.Session{AccessToken: "opaque-token", RefreshToken: "ref"})
	if !uc.IsAuthenticated() {
		t.Fatal("opaque token must count as authenticated")
	}

	expired := signedToken(t, jwt.MapClaims{
		"sub": "42",
		"exp": time.Now().Add(-time.Minute).Unix(),
	})
	store.Set(session.Session{AccessToken: expired, RefreshToken: "ref"})
	if uc.IsAuthenticated() {
		t.Fatal("expired token must not count as authenticated")
	}

	live := signedToken(t, jwt.MapClaims{
		"sub": "42",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	store.Set(session.Session{AccessToken: live, RefreshToken: "ref"})
	if !uc.IsAuthenticated() {
		t.Fatal("live token must count as authenticated")
	}
}
