// internal/advisor/advisor.go
package advisor

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"balloon-tower-defense/internal/defs"
)

const (
	// FallbackMessage показывается при любой ошибке советника.
	FallbackMessage = "Strategist is sleeping (API error)."
	// EmptyAdvice — ответ без текста.
	EmptyAdvice = "Build more towers!"
	// ConsultingMessage — пока ждём ответ.
	ConsultingMessage = "Consulting strategist..."

	DefaultTimeout = 10 * time.Second
)

// Summary — всё, что советник знает о партии.
type Summary struct {
	Session string // короткий id сессии, только для логов
	Wave    int
	Gold    int
	Lives   int
	Towers  map[defs.TowerType]int
}

// Suggester produces one short piece of advice for a game summary.
type Suggester interface {
	Suggest(ctx context.Context, s Summary) (string, error)
}

// BuildPrompt renders the summary into the text sent to a language model.
func BuildPrompt(s Summary) string {
	var b strings.Builder
	b.WriteString("You are an expert balloon tower defense player.\n")
	fmt.Fprintf(&b, "Wave: %d\nGold: %d\nLives: %d\n", s.Wave, s.Gold, s.Lives)
	b.WriteString("Towers: ")
	b.WriteString(formatTowers(s.Towers))
	b.WriteString("\nThe Ice Tower slows balloons, the Bomb Cannon deals splash damage.\n")
	b.WriteString("Reply with one short sentence on what to build or upgrade next.")
	return b.String()
}

func formatTowers(towers map[defs.TowerType]int) string {
	if len(towers) == 0 {
		return "none"
	}
	keys := make([]string, 0, len(towers))
	for t := range towers {
		keys = append(keys, string(t))
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%d", k, towers[defs.TowerType(k)]))
	}
	return strings.Join(parts, ", ")
}

// Advisor запускает запросы к Suggester в отдельной горутине.
// Одновременно идёт не больше одного запроса.
type Advisor struct {
	suggester Suggester
	timeout   time.Duration
	busy      atomic.Bool
}

func New(suggester Suggester, timeout time.Duration) *Advisor {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Advisor{suggester: suggester, timeout: timeout}
}

// Consulting reports whether a request is in flight.
func (a *Advisor) Consulting() bool {
	return a.busy.Load()
}

// Request starts a suggestion. The returned channel receives exactly one
// string and is then closed. It returns false if a request is already running.
func (a *Advisor) Request(ctx context.Context, s Summary) (<-chan string, bool) {
	if !a.busy.CompareAndSwap(false, true) {
		return nil, false
	}
	out := make(chan string, 1)
	go func() {
		text := a.suggest(ctx, s)
		a.busy.Store(false)
		out <- text
		close(out)
	}()
	return out, true
}

func (a *Advisor) suggest(ctx context.Context, s Summary) (text string) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[%s] advisor: suggester panicked: %v", s.Session, r)
			text = FallbackMessage
		}
	}()
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	text, err := a.suggester.Suggest(ctx, s)
	if err != nil {
		log.Printf("[%s] advisor: %v", s.Session, err)
		return FallbackMessage
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return EmptyAdvice
	}
	return text
}
