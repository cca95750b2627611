package cache

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/riskibarqy/propchart-api/internal/domain/player"
	"github.com/riskibarqy/propchart-api/internal/domain/sport"
	"github.com/riskibarqy/propchart-api/internal/domain/team"
	basecache "github.com/riskibarqy/propchart-api/internal/platform/cache"
)

type PlayerRepository struct {
	next  player.Repository
	cache *basecache.Store
}

func NewPlayerRepository(next player.Repository, cache *basecache.Store) *PlayerRepository {
	return &PlayerRepository{next: next, cache: cache}
}

func (r *PlayerRepository) ListBySport(ctx context.Context, s sport.Sport) ([]player.Player, error) {
	items, err := basecache.Fetch(ctx, r.cache, basecache.Key("player", "list", s.Key), func(ctx context.Context) ([]player.Player, error) {
		items, err := r.next.ListBySport(ctx, s)
		if err != nil {
			return nil, err
		}
		return append([]player.Player(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	return append([]player.Player(nil), items...), nil
}

type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) ListByIDs(ctx context.Context, s sport.Sport, ids []int64) ([]team.Team, error) {
	if len(ids) == 0 {
		return r.next.ListByIDs(ctx, s, ids)
	}

	key := basecache.Key("team", "ids", s.Key, idsKey(ids))
	items, err := basecache.Fetch(ctx, r.cache, key, func(ctx context.Context) ([]team.Team, error) {
		items, err := r.next.ListByIDs(ctx, s, ids)
		if err != nil {
			return nil, err
		}
		return append([]team.Team(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	return append([]team.Team(nil), items...), nil
}

// idsKey renders ids sorted so that equal sets share one cache entry.
func idsKey(ids []int64) string {
	sorted := append([]int64(nil), ids...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	parts := make([]string, 0, len(sorted))
	for i, id := range sorted {
		if i > 0 && id == sorted[i-1] {
			continue
		}
		parts = append(parts, strconv.FormatInt(id, 10))
	}
	return strings.Join(parts, ",")
}
