package application

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"time"

	"github.com/sharely/sharely/internal/domain/entity"
	repo "github.com/sharely/sharely/internal/domain/repository"
)

// fakeUserRepo is an in-memory UserRepository for use case tests.
type fakeUserRepo struct {
	nextID int64
	users  map[int64]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*entity.User{}}
}

func (f *fakeUserRepo) Save(_ context.Context, u *entity.User) error {
	if !u.IsSaved() {
		f.nextID++
		u.ID = f.nextID
	} else if _, ok := f.users[u.ID]; !ok {
		return repo.ErrNotFound
	}
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id int64) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (f *fakeUserRepo) SetEmailVerified(_ context.Context, id int64, at time.Time) error {
	u, ok := f.users[id]
	if !ok {
		return repo.ErrNotFound
	}
	u.MarkEmailVerified(at)
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.users[id]; !ok {
		return repo.ErrNotFound
	}
	delete(f.users, id)
	return nil
}

// fakeShareRepo is an in-memory ShareRepository for use case tests.
type fakeShareRepo struct {
	nextID int64
	shares map[int64]*entity.Share
}

func newFakeShareRepo() *fakeShareRepo {
	return &fakeShareRepo{shares: map[int64]*entity.Share{}}
}

func (f *fakeShareRepo) Save(_ context.Context, s *entity.Share) error {
	if !s.IsSaved() {
		f.nextID++
		s.ID = f.nextID
	} else if _, ok := f.shares[s.ID]; !ok {
		return repo.ErrNotFound
	}
	cp := *s
	f.shares[s.ID] = &cp
	return nil
}

func (f *fakeShareRepo) FindByID(_ context.Context, id int64) (*entity.Share, error) {
	s, ok := f.shares[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *fakeShareRepo) GetAll(_ context.Context) ([]*entity.Share, error) {
	ids := make([]int64, 0, len(f.shares))
	for id := range f.shares {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]*entity.Share, 0, len(ids))
	for _, id := range ids {
		cp := *f.shares[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeShareRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.shares[id]; !ok {
		return repo.ErrNotFound
	}
	delete(f.shares, id)
	return nil
}

// fakeAuth issues deterministic tokens and tracks revocations.
type fakeAuth struct {
	issued  int
	revoked []string
	fail    bool
}

func (f *fakeAuth) CreateToken(_ context.Context, u *entity.User) (string, error) {
	if f.fail {
		return "", errors.New("token backend down")
	}
	f.issued++
	return "tok-" + strconv.FormatInt(u.ID, 10) + "-" + strconv.Itoa(f.issued), nil
}

func (f *fakeAuth) ParseToken(_ context.Context, token string) (int64, error) {
	return 0, errors.New("not implemented")
}

func (f *fakeAuth) RevokeToken(_ context.Context, token string) error {
	f.revoked = append(f.revoked, token)
	return nil
}

// fakeVerifier records dispatches and can be told to fail.
type fakeVerifier struct {
	sent []int64
	fail bool
}

func (f *fakeVerifier) SendVerificationEmail(_ context.Context, userID int64) error {
	if f.fail {
		return errors.New("queue unavailable")
	}
	f.sent = append(f.sent, userID)
	return nil
}
