package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	appauth "github.com/yigit/injurydesk/internal/app/auth"
	"github.com/yigit/injurydesk/internal/app/repositories"
	"github.com/yigit/injurydesk/internal/seed"
)

var testNow = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

type published struct {
	userIDs   []string
	eventType string
	data      any
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []published
}

func (p *recordingPublisher) Publish(userIDs []string, eventType string, data any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, published{userIDs: userIDs, eventType: eventType, data: data})
}

func (p *recordingPublisher) ofType(eventType string) []published {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []published
	for _, e := range p.events {
		if e.eventType == eventType {
			out = append(out, e)
		}
	}
	return out
}

// demoGateway returns a writable gateway holding the demo dataset
func demoGateway(t *testing.T) *repositories.Gateway {
	t.Helper()
	data, err := seed.DemoData(testNow)
	require.NoError(t, err)
	return repositories.NewMemoryGateway(data)
}

// fixtureGateway returns the read-mostly fixture gateway with no latency
func fixtureGateway(t *testing.T) *repositories.Gateway {
	t.Helper()
	data, err := seed.DemoData(testNow)
	require.NoError(t, err)
	return repositories.NewFixtureGateway(data, 0)
}

func sessionFor(t *testing.T, gw *repositories.Gateway, userID string) appauth.Session {
	t.Helper()
	user, err := gw.Users.Get(context.Background(), userID)
	require.NoError(t, err)
	role, err := appauth.RoleFromUser(&user)
	require.NoError(t, err)
	return appauth.Session{UserID: user.ID, Email: user.Email, Role: role}
}

func nop() zerolog.Logger { return zerolog.Nop() }
