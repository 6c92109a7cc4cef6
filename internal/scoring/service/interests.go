package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"scoring-api/internal/scoring/request"
)

// interestsKeyPrefix namespaces interest entries in the store.
const interestsKeyPrefix = "i:"

// interests fetches the interest list for every client id. Unlike score,
// there is no fallback: the first store failure (including a plain miss)
// aborts the whole lookup.
func (s *Service) interests(ctx context.Context, args *request.ClientsInterestsArgs) (map[string]any, error) {
	out := make(map[string]any, len(args.ClientIDs))
	for _, id := range args.ClientIDs {
		key := interestsKeyPrefix + strconv.FormatInt(id, 10)
		raw, err := s.store.Get(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("get %s: %w", key, err)
		}

		var list any
		if raw != "" {
			if err := json.Unmarshal([]byte(raw), &list); err != nil {
				return nil, fmt.Errorf("decode %s: %w", key, err)
			}
		} else {
			list = []any{}
		}
		out[strconv.FormatInt(id, 10)] = list
	}
	return out, nil
}
