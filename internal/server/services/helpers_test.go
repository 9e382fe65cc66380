package services

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/otpshare/internal/common"
	"github.com/dmitrijs2005/otpshare/internal/cryptox"
	"github.com/dmitrijs2005/otpshare/internal/logging"
	"github.com/dmitrijs2005/otpshare/internal/server/config"
	"github.com/dmitrijs2005/otpshare/internal/server/models"
	"github.com/dmitrijs2005/otpshare/internal/server/notify"
	"github.com/dmitrijs2005/otpshare/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/otpshare/internal/server/repositories/repotest"
	"github.com/stretchr/testify/require"
)

// -------- test fakes --------

type memStore struct {
	mu     sync.Mutex
	m      map[string][]byte
	putErr error
	getErr error
	// getHook runs on every Get, before the lookup.
	getHook func()
}

func newMemStore() *memStore { return &memStore{m: map[string][]byte{}} }

func (s *memStore) Put(ctx context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.putErr != nil {
		return s.putErr
	}
	s.m[key] = append([]byte(nil), data...)
	return nil
}

func (s *memStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getHook != nil {
		s.getHook()
	}
	if s.getErr != nil {
		return nil, s.getErr
	}
	b, ok := s.m[key]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return append([]byte(nil), b...), nil
}

func (s *memStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, key)
	return nil
}

func (s *memStore) has(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.m[key]
	return ok
}

func (s *memStore) mutate(key string, fn func([]byte)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.m[key])
}

type fakeScheduler struct {
	mu   sync.Mutex
	msgs []notify.Message
	err  error
}

func (f *fakeScheduler) Enqueue(msg notify.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msg)
	return nil
}

func (f *fakeScheduler) last(t *testing.T) notify.Message {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.msgs)
	return f.msgs[len(f.msgs)-1]
}

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

// -------- harness --------

type harness struct {
	db     *sql.DB
	rm     repomanager.RepositoryManager
	blobs  *memStore
	sched  *fakeScheduler
	clock  *fakeClock
	cfg    *config.Config
	upload *UploadService
	access *AccessService
	files  *FileService
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.PublicBaseURL = "https://share.example.com/"
	cfg.ExposeOTP = true
	return cfg
}

func newHarness(t *testing.T, cfg *config.Config) *harness {
	t.Helper()
	if cfg == nil {
		cfg = testConfig()
	}
	db, rm := repotest.SQLite(t)
	h := &harness{
		db:    db,
		rm:    rm,
		blobs: newMemStore(),
		sched: &fakeScheduler{},
		clock: &fakeClock{t: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)},
		cfg:   cfg,
	}
	log := logging.Nop()
	h.upload = NewUploadService(db, rm, h.blobs, h.sched, cryptox.NewEnvelope(nil), cfg, log)
	h.access = NewAccessService(db, rm, h.blobs, cfg, log)
	h.files = NewFileService(db, rm, cfg, log)
	h.upload.now = h.clock.Now
	h.access.now = h.clock.Now
	h.files.now = h.clock.Now
	return h
}

func helloInput() UploadInput {
	return UploadInput{
		OwnerID:        "u1",
		OwnerEmail:     "alice@example.com",
		Content:        []byte("hello test"),
		FileName:       "hello.txt",
		MimeType:       "text/plain",
		RecipientEmail: "bob@example.com",
		Description:    "greeting",
		ClientAddr:     "10.0.0.1:5000",
	}
}

func (h *harness) mustUpload(t *testing.T, in UploadInput) *UploadResult {
	t.Helper()
	res, err := h.upload.Upload(context.Background(), in)
	require.NoError(t, err)
	return res
}

func (h *harness) record(t *testing.T, id string) *models.FileRecord {
	t.Helper()
	rec, err := h.rm.Records(h.db).Get(context.Background(), id)
	require.NoError(t, err)
	return rec
}

func (h *harness) logs(t *testing.T, id string) []*models.AccessLogEntry {
	t.Helper()
	entries, err := h.rm.AccessLogs(h.db).ListByFile(context.Background(), id)
	require.NoError(t, err)
	return entries
}

// orphanFailures counts failure rows written without a file id.
func (h *harness) orphanFailures(t *testing.T, typ models.AccessType) int {
	t.Helper()
	var n int
	err := h.db.QueryRow(`SELECT COUNT(*) FROM access_logs WHERE file_id IS NULL AND access_type = ? AND access_status = 'failure'`,
		string(typ)).Scan(&n)
	require.NoError(t, err)
	return n
}

func (h *harness) exec(t *testing.T, query string, args ...any) {
	t.Helper()
	_, err := h.db.Exec(query, args...)
	require.NoError(t, err)
}

var errBoom = errors.New("boom")
