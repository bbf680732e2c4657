package service

import (
	"context"
	"errors"
	"sync"
	"time"

	dmn "github.com/beka-birhanu/wumpus-api/domain"
	"github.com/beka-birhanu/wumpus-api/world"
	"github.com/google/uuid"
)

type memoryStats struct {
	sync.Mutex
	stats     dmn.WorldStats
	recordErr error
}

func (m *memoryStats) Record(_ context.Context, s world.Summary) error {
	if m.recordErr != nil {
		return m.recordErr
	}
	m.Lock()
	defer m.Unlock()
	m.stats.Worlds++
	m.stats.Pits += int64(s.Pits)
	m.stats.EligibleCells += int64(s.EligibleCells)
	if s.MonsterOnPit {
		m.stats.MonsterOnPit++
	}
	return nil
}

func (m *memoryStats) Snapshot(context.Context) (*dmn.WorldStats, error) {
	m.Lock()
	defer m.Unlock()
	snapshot := m.stats
	return &snapshot, nil
}

func (m *memoryStats) Reset(context.Context) error {
	m.Lock()
	defer m.Unlock()
	m.stats = dmn.WorldStats{}
	return nil
}

type recordingLogger struct {
	sync.Mutex
	infos, warnings, errors []string
}

func (l *recordingLogger) Info(msg string) {
	l.Lock()
	defer l.Unlock()
	l.infos = append(l.infos, msg)
}

func (l *recordingLogger) Warning(msg string) {
	l.Lock()
	defer l.Unlock()
	l.warnings = append(l.warnings, msg)
}

func (l *recordingLogger) Error(msg string) {
	l.Lock()
	defer l.Unlock()
	l.errors = append(l.errors, msg)
}

type memoryUserRepo struct {
	users map[string]*dmn.User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: map[string]*dmn.User{}}
}

func (r *memoryUserRepo) Save(user *dmn.User) error {
	r.users[user.Username] = user
	return nil
}

func (r *memoryUserRepo) ByID(id uuid.UUID) (*dmn.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, errors.New("user not found")
}

func (r *memoryUserRepo) ByUsername(username string) (*dmn.User, error) {
	if u, ok := r.users[username]; ok {
		return u, nil
	}
	return nil, errors.New("user not found")
}

type stubTokenizer struct {
	claims map[string]interface{}
	exp    time.Duration
}

func (s *stubTokenizer) Generate(claims map[string]interface{}, exp time.Duration) (string, error) {
	s.claims, s.exp = claims, exp
	return "signed-token", nil
}

func (s *stubTokenizer) Decode(string) (map[string]interface{}, error) {
	return s.claims, nil
}
