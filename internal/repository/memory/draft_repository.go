package memory

import (
	"time"

	"ai-lifecoach-be/internal/entity"
	"ai-lifecoach-be/internal/repository/contract"

	"github.com/patrickmn/go-cache"
)

type DraftRepository struct {
	cache *cache.Cache
}

func NewDraftRepository() contract.DraftRepository {
	// Drafts live for an hour; abandoned wizards are purged every 10 minutes.
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &DraftRepository{
		cache: c,
	}
}

func (r *DraftRepository) Save(draft *entity.Draft) {
	r.cache.Set(draft.Id, draft, cache.DefaultExpiration)
}

func (r *DraftRepository) Get(id string) (*entity.Draft, bool) {
	if x, found := r.cache.Get(id); found {
		return x.(*entity.Draft), true
	}
	return nil, false
}

func (r *DraftRepository) Delete(id string) {
	r.cache.Delete(id)
}
