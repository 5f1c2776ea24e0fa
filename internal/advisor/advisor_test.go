package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"balloon-tower-defense/internal/defs"
)

type stubSuggester struct {
	text    string
	err     error
	release chan struct{}
	panics  bool
}

func (s *stubSuggester) Suggest(ctx context.Context, _ Summary) (string, error) {
	if s.release != nil {
		select {
		case <-s.release:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if s.panics {
		panic("boom")
	}
	return s.text, s.err
}

func receive(t *testing.T, ch <-chan string) string {
	t.Helper()
	select {
	case text, ok := <-ch:
		if !ok {
			t.Fatal("channel closed without a value")
		}
		if _, more := <-ch; more {
			t.Fatal("channel delivered more than one value")
		}
		return text
	case <-time.After(2 * time.Second):
		t.Fatal("advisor did not answer")
	}
	return ""
}

func TestRequestDeliversExactlyOneString(t *testing.T) {
	tests := []struct {
		name string
		stub *stubSuggester
		want string
	}{
		{"text", &stubSuggester{text: "  Buy ice.  "}, "Buy ice."},
		{"empty", &stubSuggester{text: ""}, EmptyAdvice},
		{"error", &stubSuggester{err: errors.New("quota")}, FallbackMessage},
		{"panic", &stubSuggester{panics: true}, FallbackMessage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New(tt.stub, time.Second)
			ch, ok := a.Request(context.Background(), Summary{})
			if !ok {
				t.Fatal("request rejected")
			}
			if got := receive(t, ch); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
			if a.Consulting() {
				t.Fatal("advisor still busy after answering")
			}
		})
	}
}

func TestRequestRejectedWhileInFlight(t *testing.T) {
	stub := &stubSuggester{text: "ok", release: make(chan struct{})}
	a := New(stub, time.Second)

	ch, ok := a.Request(context.Background(), Summary{})
	if !ok || !a.Consulting() {
		t.Fatal("first request must start")
	}
	if _, ok := a.Request(context.Background(), Summary{}); ok {
		t.Fatal("second request must be rejected")
	}
	close(stub.release)
	if got := receive(t, ch); got != "ok" {
		t.Fatalf("got %q", got)
	}
	if _, ok := a.Request(context.Background(), Summary{}); !ok {
		t.Fatal("advisor must accept requests again")
	}
}

func TestTimeoutFallsBack(t *testing.T) {
	stub := &stubSuggester{release: make(chan struct{})}
	a := New(stub, 20*time.Millisecond)
	ch, _ := a.Request(context.Background(), Summary{})
	if got := receive(t, ch); got != FallbackMessage {
		t.Fatalf("got %q", got)
	}
}

func TestBuildPrompt(t *testing.T) {
	p := BuildPrompt(Summary{Wave: 7, Gold: 320, Lives: 88, Towers: map[defs.TowerType]int{
		defs.TowerIce: 1, defs.TowerDartMonkey: 3,
	}})
	for _, want := range []string{"Wave: 7", "Gold: 320", "Lives: 88", "DART_MONKEY=3, ICE_TOWER=1"} {
		if !strings.Contains(p, want) {
			t.Errorf("prompt missing %q:\n%s", want, p)
		}
	}
	if !strings.Contains(BuildPrompt(Summary{}), "Towers: none") {
		t.Error("empty tower list must read 'none'")
	}
}

func TestGenerativeClient(t *testing.T) {
	var gotKey, gotPath, gotPrompt string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-goog-api-key")
		gotPath = r.URL.Path
		var req generateRequest
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &req)
		if len(req.Contents) > 0 && len(req.Contents[0].Parts) > 0 {
			gotPrompt = req.Contents[0].Parts[0].Text
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"candidates":[{"content":{"parts":[{"text":"Upgrade "},{"text":"the cannon."}]}}]}`)
	}))
	defer srv.Close()

	c := &GenerativeClient{Endpoint: srv.URL, Model: "test-model", APIKey: "secret", HTTPClient: srv.Client()}
	text, err := c.Suggest(context.Background(), Summary{Wave: 3})
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if text != "Upgrade the cannon." {
		t.Errorf("text = %q", text)
	}
	if gotKey != "secret" || gotPath != "/models/test-model:generateContent" {
		t.Errorf("key %q path %q", gotKey, gotPath)
	}
	if !strings.Contains(gotPrompt, "Wave: 3") {
		t.Errorf("prompt = %q", gotPrompt)
	}
}

func TestGenerativeClientErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := &GenerativeClient{Endpoint: srv.URL, Model: "m", APIKey: "k"}
	if _, err := c.Suggest(context.Background(), Summary{}); err == nil || !strings.Contains(err.Error(), "429") {
		t.Fatalf("err = %v", err)
	}
	a := New(c, time.Second)
	ch, _ := a.Request(context.Background(), Summary{})
	if got := receive(t, ch); got != FallbackMessage {
		t.Fatalf("got %q", got)
	}
}

func TestNewGenerativeClientFromEnv(t *testing.T) {
	t.Setenv(KeyEnv, "")
	if _, err := NewGenerativeClientFromEnv(); !errors.Is(err, ErrNoKey) {
		t.Fatalf("err = %v", err)
	}
	t.Setenv(KeyEnv, "abc")
	c, err := NewGenerativeClientFromEnv()
	if err != nil || c.APIKey != "abc" {
		t.Fatalf("client %+v err %v", c, err)
	}
}

func TestRuleSuggester(t *testing.T) {
	r := RuleSuggester{Library: defs.Default()}
	tests := []struct {
		name    string
		summary Summary
		want    string
	}{
		{"no towers", Summary{Gold: 650, Lives: 100}, "Dart Monkey"},
		{"low lives", Summary{Lives: 10, Towers: map[defs.TowerType]int{defs.TowerDartMonkey: 1}}, "Ice Tower"},
		{"late game", Summary{Wave: 20, Gold: 700, Lives: 80, Towers: map[defs.TowerType]int{defs.TowerDartMonkey: 2}}, "Bomb Cannon"},
		{"broke", Summary{Wave: 2, Gold: 10, Lives: 100, Towers: map[defs.TowerType]int{defs.TowerDartMonkey: 1}}, "Save gold"},
	}
	for _, tt := range tests {
		got, err := r.Suggest(context.Background(), tt.summary)
		if err != nil || !strings.Contains(got, tt.want) {
			t.Errorf("%s: got %q (%v), want mention of %q", tt.name, got, err, tt.want)
		}
	}
}
