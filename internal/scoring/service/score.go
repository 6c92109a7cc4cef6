package service

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"strconv"
	"time"

	"scoring-api/internal/scoring/request"
)

// adminScore is returned to the admin without touching the store.
const adminScore = 42

// scoreCacheTTL bounds how long a computed score is served from cache.
const scoreCacheTTL = time.Hour

// score returns the caller's score, preferring the cached value. The store
// is best effort here: any failure, on read or write, degrades to a fresh
// computation and never fails the request.
func (s *Service) score(ctx context.Context, args *request.OnlineScoreArgs) float64 {
	key := scoreCacheKey(args)

	cached, ok, err := s.store.CacheGet(ctx, key)
	if err != nil {
		s.logger.Warn("score cache read failed", "err", err)
	}
	if ok {
		// a cached zero is recomputed, matching the legacy behavior
		if v, perr := strconv.ParseFloat(cached, 64); perr == nil && v > 0 {
			return v
		}
	}

	var score float64
	if args.Has("phone") {
		score += 1.5
	}
	if args.Has("email") {
		score += 1.5
	}
	if args.Has("birthday") && args.Has("gender") {
		score += 1.5
	}
	if args.Has("first_name") && args.Has("last_name") {
		score += 0.5
	}

	if err := s.store.CacheSet(ctx, key, strconv.FormatFloat(score, 'f', -1, 64), scoreCacheTTL); err != nil {
		s.logger.Warn("score cache write failed", "err", err)
	}
	return score
}

// scoreCacheKey derives the cache key from the identity fields only; the
// remaining fields influence the score, not the key.
func scoreCacheKey(args *request.OnlineScoreArgs) string {
	var birthday string
	if !args.Birthday.IsZero() {
		birthday = args.Birthday.Format("20060102")
	}
	sum := md5.Sum([]byte(args.FirstName + args.LastName + args.Phone + birthday))
	return "uid:" + hex.EncodeToString(sum[:])
}
