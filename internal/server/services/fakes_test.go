package services

import (
	"context"
	"database/sql"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/DarshanchGIT/wordverse/internal/common"
	"github.com/DarshanchGIT/wordverse/internal/dbx"
	"github.com/DarshanchGIT/wordverse/internal/logging"
	"github.com/DarshanchGIT/wordverse/internal/server/config"
	"github.com/DarshanchGIT/wordverse/internal/server/models"
	postsrepo "github.com/DarshanchGIT/wordverse/internal/server/repositories/posts"
	usersrepo "github.com/DarshanchGIT/wordverse/internal/server/repositories/users"
	votesrepo "github.com/DarshanchGIT/wordverse/internal/server/repositories/votes"
)

// --- helpers ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func testLogger() logging.Logger {
	return logging.NewJSONLogger(io.Discard)
}

func testConfig() *config.Config {
	return &config.Config{
		SecretKey:             "test-secret",
		TokenValidityDuration: time.Hour,
	}
}

// --- fakes ---

type fakeUsersRepo struct {
	created   *models.User
	createErr error

	getOut *models.User
	getErr error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = u
	return u, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

type fakePostsRepo struct {
	exists    bool
	existsErr error

	created   *models.Post
	createErr error

	getOut  *models.PostWithMeta
	getErr  error
	listOut []*models.PostWithMeta
	listErr error

	existsCalls int
}

func (f *fakePostsRepo) Create(ctx context.Context, p *models.Post) (*models.Post, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = p
	p.CreatedAt = time.Now()
	return p, nil
}

func (f *fakePostsRepo) GetByID(ctx context.Context, id string) (*models.PostWithMeta, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.getOut == nil {
		return nil, common.ErrorNotFound
	}
	return f.getOut, nil
}

func (f *fakePostsRepo) List(ctx context.Context) ([]*models.PostWithMeta, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

func (f *fakePostsRepo) Exists(ctx context.Context, id string) (bool, error) {
	f.existsCalls++
	if f.existsErr != nil {
		return false, f.existsErr
	}
	return f.exists, nil
}

// memVotesRepo is an in-memory vote store. GetForUpdate takes a per-post
// lock that CountForPost releases, mimicking the row lock a real store
// holds from the locked read until commit. The toggle flow always ends a
// transaction with CountForPost, so paired toggles serialize the same way
// they do against PostgreSQL.
type memVotesRepo struct {
	mu        sync.Mutex
	postLocks map[string]*sync.Mutex
	rows      map[string]models.VoteDirection // key: userID|postID
	baseline  map[string]int64                // pre-existing up-votes per post

	getForUpdateCalls int
	failGetForUpdate  error
}

func newMemVotesRepo() *memVotesRepo {
	return &memVotesRepo{
		postLocks: make(map[string]*sync.Mutex),
		rows:      make(map[string]models.VoteDirection),
		baseline:  make(map[string]int64),
	}
}

func voteKey(userID, postID string) string { return userID + "|" + postID }

func (f *memVotesRepo) postLock(postID string) *sync.Mutex {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.postLocks[postID] == nil {
		f.postLocks[postID] = &sync.Mutex{}
	}
	return f.postLocks[postID]
}

func (f *memVotesRepo) Get(ctx context.Context, userID, postID string) (models.VoteDirection, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if d, ok := f.rows[voteKey(userID, postID)]; ok {
		return d, nil
	}
	return models.VoteNone, nil
}

func (f *memVotesRepo) GetForUpdate(ctx context.Context, userID, postID string) (models.VoteDirection, error) {
	f.mu.Lock()
	f.getForUpdateCalls++
	fail := f.failGetForUpdate
	f.mu.Unlock()
	if fail != nil {
		return "", fail
	}

	f.postLock(postID).Lock()
	return f.Get(ctx, userID, postID)
}

func (f *memVotesRepo) Upsert(ctx context.Context, userID, postID string, direction models.VoteDirection) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows[voteKey(userID, postID)] = direction
	return nil
}

func (f *memVotesRepo) CountForPost(ctx context.Context, postID string) (int64, error) {
	f.mu.Lock()
	count := f.baseline[postID]
	for k, d := range f.rows {
		if d == models.VoteUp && strings.HasSuffix(k, "|"+postID) {
			count++
		}
	}
	f.mu.Unlock()

	f.postLock(postID).Unlock()
	return count, nil
}

// CountForPostUnlocked counts without touching the post lock; used by tests
// to inspect final state outside any toggle flow.
func (f *memVotesRepo) CountForPostUnlocked(postID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := f.baseline[postID]
	for k, d := range f.rows {
		if d == models.VoteUp && strings.HasSuffix(k, "|"+postID) {
			count++
		}
	}
	return count, nil
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	p *fakePostsRepo
	v *memVotesRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error  { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository       { return m.u }
func (m *fakeRepoManager) Posts(db dbx.DBTX) postsrepo.Repository       { return m.p }
func (m *fakeRepoManager) Votes(db dbx.DBTX) votesrepo.Repository       { return m.v }
