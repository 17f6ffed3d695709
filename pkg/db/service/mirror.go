package service

import (
	"errors"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-redis/redis"
	"github.com/ivpusic/grpool"
	"xmirrord/internal/log"
	"xmirrord/pkg/model/mirror"
)

var (
	ErrMirrorNotFound = errors.New("mirror not found")
	ErrNotImplemented = errors.New("not implemented")
)

// Backend is the subset of the database client the mirror service reads
// through. Both *redis.Client and the pooled client in pkg/db/client/redis
// satisfy it.
type Backend interface {
	Scan(cursor uint64, match string, count int64) *redis.ScanCmd
	HGetAll(key string) *redis.StringStringMapCmd
}

type MirrorService struct {
	client  Backend
	workers int
}

type Option func(*MirrorService)

// WithFetchWorkers sets how many mirrors GetAllMirrors fetches at once.
// Values below 2 keep fetching sequential.
func WithFetchWorkers(n int) Option {
	return func(m *MirrorService) {
		m.workers = n
	}
}

func NewMirrorService(client Backend, opts ...Option) *MirrorService {
	m := &MirrorService{client: client, workers: 1}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// ListIds returns the ids of all stored mirrors in ascending order.
func (m *MirrorService) ListIds() ([]uint64, error) {
	log.Debug("Scanning mirror list")
	ids, err := scanIds(m.client)
	if err != nil {
		return nil, fmt.Errorf("scan mirror keys: %w", err)
	}
	return ids, nil
}

// GetMirror reads and decodes one mirror. The id always comes from the key,
// never from the record.
func (m *MirrorService) GetMirror(id uint64) (mirror.Mirror, error) {
	key := MirrorKey(id)
	log.Debugf("Getting mirror %d", id)
	raw, err := m.client.HGetAll(key).Result()
	if err != nil {
		return mirror.Mirror{}, fmt.Errorf("get %s: %w", key, err)
	}
	if len(raw) == 0 {
		return mirror.Mirror{}, fmt.Errorf("get %s: %w", key, ErrMirrorNotFound)
	}
	mr, err := mirror.Decode(raw)
	if err != nil {
		log.Debugf("Undecodable record %s: %s", key, spew.Sdump(raw))
		return mirror.Mirror{}, fmt.Errorf("decode %s: %w", key, err)
	}
	mr.Id = id
	return mr, nil
}

// GetAllMirrors returns every mirror ordered by id. A single failed fetch or
// decode fails the whole call.
func (m *MirrorService) GetAllMirrors() ([]mirror.Mirror, error) {
	log.Debug("Getting all mirrors")
	ids, err := m.ListIds()
	if err != nil {
		return nil, err
	}
	if m.workers > 1 && len(ids) > 1 {
		return m.fetchParallel(ids)
	}
	mirrors := make([]mirror.Mirror, 0, len(ids))
	for _, id := range ids {
		mr, err := m.GetMirror(id)
		if err != nil {
			return nil, err
		}
		mirrors = append(mirrors, mr)
	}
	return mirrors, nil
}

func (m *MirrorService) fetchParallel(ids []uint64) ([]mirror.Mirror, error) {
	mirrors := make([]mirror.Mirror, len(ids))
	errs := make([]error, len(ids))

	pool := grpool.NewPool(m.workers, 1)
	defer pool.Release()
	pool.WaitCount(len(ids))

	for i, id := range ids {
		i, id := i, id
		pool.JobQueue <- func() {
			defer pool.JobDone()
			mirrors[i], errs[i] = m.GetMirror(id)
		}
	}
	pool.WaitAll()

	// report the failure of the lowest id, as the sequential path would
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return mirrors, nil
}

// TODO: write paths need a decision on how ids are allocated before
// CreateMirror can be implemented.

func (m *MirrorService) CreateMirror(mr mirror.Mirror) error {
	return ErrNotImplemented
}

func (m *MirrorService) UpdateMirror(id uint64, mr mirror.Mirror) error {
	return ErrNotImplemented
}

func (m *MirrorService) DeleteMirror(id uint64) error {
	return ErrNotImplemented
}
