// Package search backs the navigation search box: a cached list of all book
// titles for the suggestion dropdown, and a short per-client history of
// recent terms.
package search

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/AhmedAli0123/books-by-karl/internal/store/books"
)

const (
	titlesKey       = "search:titles"
	recentKeyPrefix = "recentSearches:"

	// MaxSuggestions / MaxRecent cap the dropdown to its historical size.
	MaxSuggestions = 3
	MaxRecent      = 3
)

type Service struct {
	rdb    *redis.Client
	store  *books.Store
	ttl    time.Duration
	opTO   time.Duration
	warned sync.Once
}

func NewService(rdb *redis.Client, store *books.Store) *Service {
	return &Service{
		rdb:   rdb,
		store: store,
		ttl:   10 * time.Minute,
		opTO:  150 * time.Millisecond,
	}
}

// Titles returns all book titles, served from cache when possible. Cache
// failures fail open to the store; the first failure per service is logged.
func (s *Service) Titles(ctx context.Context) ([]string, error) {
	if s.rdb != nil {
		cctx, cancel := context.WithTimeout(ctx, s.opTO)
		raw, err := s.rdb.Get(cctx, titlesKey).Bytes()
		cancel()
		if err == nil {
			var titles []string
			if json.Unmarshal(raw, &titles) == nil {
				return titles, nil
			}
		} else if err != redis.Nil {
			s.warnOnce("title cache read failed: %v; bypassing cache", err)
		}
	}

	titles, err := s.store.Titles(ctx)
	if err != nil {
		return nil, err
	}

	if s.rdb != nil {
		if raw, err := json.Marshal(titles); err == nil {
			cctx, cancel := context.WithTimeout(ctx, s.opTO)
			if err := s.rdb.SetEx(cctx, titlesKey, raw, s.ttl).Err(); err != nil {
				s.warnOnce("title cache write failed: %v", err)
			}
			cancel()
		}
	}
	return titles, nil
}

// Invalidate drops the cached title list. Called after admin mutations.
func (s *Service) Invalidate(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	cctx, cancel := context.WithTimeout(ctx, s.opTO)
	defer cancel()
	if err := s.rdb.Del(cctx, titlesKey).Err(); err != nil {
		s.warnOnce("title cache invalidate failed: %v", err)
	}
}

// Suggest returns up to MaxSuggestions titles containing q.
func (s *Service) Suggest(ctx context.Context, q string) ([]string, error) {
	titles, err := s.Titles(ctx)
	if err != nil {
		return nil, err
	}
	return SuggestFrom(titles, q, MaxSuggestions), nil
}

// SuggestFrom is the pure suggestion computation: the first limit titles
// whose name contains q case-insensitively. Empty input suggests nothing.
func SuggestFrom(titles []string, q string, limit int) []string {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return nil
	}
	out := make([]string, 0, limit)
	for _, t := range titles {
		if strings.Contains(strings.ToLower(t), q) {
			out = append(out, t)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}

// Recent returns the client's recent search terms, most recent first.
func (s *Service) Recent(ctx context.Context, clientID string) ([]string, error) {
	if s.rdb == nil || clientID == "" {
		return nil, nil
	}
	cctx, cancel := context.WithTimeout(ctx, s.opTO)
	defer cancel()
	terms, err := s.rdb.LRange(cctx, recentKeyPrefix+clientID, 0, int64(MaxRecent-1)).Result()
	if err != nil {
		s.warnOnce("recent searches read failed: %v", err)
		return nil, nil
	}
	return terms, nil
}

// Record pushes a search term onto the client's history: duplicates move to
// the front rather than repeating, and the list stays capped at MaxRecent.
func (s *Service) Record(ctx context.Context, clientID, term string) {
	term = strings.TrimSpace(term)
	if s.rdb == nil || clientID == "" || term == "" {
		return
	}
	key := recentKeyPrefix + clientID
	cctx, cancel := context.WithTimeout(ctx, s.opTO)
	defer cancel()

	pipe := s.rdb.TxPipeline()
	pipe.LRem(cctx, key, 0, term)
	pipe.LPush(cctx, key, term)
	pipe.LTrim(cctx, key, 0, int64(MaxRecent-1))
	pipe.Expire(cctx, key, 30*24*time.Hour)
	if _, err := pipe.Exec(cctx); err != nil {
		s.warnOnce("recent searches write failed: %v", err)
	}
}

// PushRecent is the pure list transform Record applies remotely: term to the
// front, existing occurrence removed, capped at max.
func PushRecent(existing []string, term string, max int) []string {
	out := make([]string, 0, max)
	out = append(out, term)
	for _, t := range existing {
		if t == term {
			continue
		}
		out = append(out, t)
		if len(out) == max {
			break
		}
	}
	return out
}

func (s *Service) warnOnce(format string, args ...any) {
	s.warned.Do(func() {
		log.Printf("[search][cache] "+format, args...)
	})
}
