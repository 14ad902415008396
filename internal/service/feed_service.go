package service

import (
	"encoding/json"
	"microblog/internal/cache"
	"microblog/internal/model"
	"microblog/internal/repository"
	"microblog/pkg/config"
	"microblog/pkg/logger"

	"go.uber.org/zap"
)

// ScopeKind selects which posts a feed contains.
type ScopeKind int

const (
	ScopeAll ScopeKind = iota
	ScopeGroup
	ScopeAuthor
	ScopeSubscriptions
)

// Scope is a feed filter. Build one with the constructors below; the zero
// value is the global feed.
type Scope struct {
	Kind     ScopeKind
	Slug     string // ScopeGroup
	Username string // ScopeAuthor
	UserID   uint   // ScopeSubscriptions; 0 means anonymous
}

func AllScope() Scope                      { return Scope{Kind: ScopeAll} }
func GroupScope(slug string) Scope         { return Scope{Kind: ScopeGroup, Slug: slug} }
func AuthorScope(username string) Scope    { return Scope{Kind: ScopeAuthor, Username: username} }
func SubscriptionsScope(userID uint) Scope { return Scope{Kind: ScopeSubscriptions, UserID: userID} }

// FeedPage is one page of a feed, newest post first.
type FeedPage struct {
	Items       []model.Post `json:"items"`
	CurrentPage int          `json:"current_page"`
	TotalPages  int          `json:"total_pages"`
	TotalItems  int64        `json:"total_items"`

	// Group/Author context for the scoped feeds, nil otherwise.
	Group  *model.Group `json:"group,omitempty"`
	Author *model.User  `json:"author,omitempty"`
}

// FeedService composes paginated feeds. The global feed's first page goes
// through the snapshot cache; every other scope/page combination is read
// straight from the store.
type FeedService struct {
	postRepo  *repository.PostRepository
	groupRepo *repository.GroupRepository
	userRepo  *repository.UserRepository
	feedCache *cache.FeedCache
}

func NewFeedService(
	postRepo *repository.PostRepository,
	groupRepo *repository.GroupRepository,
	userRepo *repository.UserRepository,
	feedCache *cache.FeedCache,
) *FeedService {
	return &FeedService{
		postRepo:  postRepo,
		groupRepo: groupRepo,
		userRepo:  userRepo,
		feedCache: feedCache,
	}
}

func (s *FeedService) pageSize() int {
	size := config.GlobalConfig.App.PageSize
	if size <= 0 {
		size = 10
	}
	return size
}

// clampPage mirrors paginator get_page semantics: pages below 1 become 1,
// pages past the end become the last page. Out-of-range never errors.
func clampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

func totalPages(totalItems int64, pageSize int) int {
	pages := int((totalItems + int64(pageSize) - 1) / int64(pageSize))
	if pages < 1 {
		pages = 1
	}
	return pages
}

// ComposeFeed builds one page of the feed selected by scope. Unknown group
// slugs and usernames yield ErrNotFound; a subscriptions feed for an
// anonymous caller or a caller who follows nobody is empty, not an error.
func (s *FeedService) ComposeFeed(scope Scope, page int) (*FeedPage, error) {
	size := s.pageSize()

	var (
		count  func() (int64, error)
		list   func(limit, offset int) ([]model.Post, error)
		group  *model.Group
		author *model.User
	)

	switch scope.Kind {
	case ScopeGroup:
		g, err := s.groupRepo.FindBySlug(scope.Slug)
		if err != nil {
			return nil, err
		}
		if g == nil {
			return nil, ErrNotFound
		}
		group = g
		count = func() (int64, error) { return s.postRepo.CountByGroupID(g.ID) }
		list = func(limit, offset int) ([]model.Post, error) {
			return s.postRepo.FindByGroupID(g.ID, limit, offset)
		}
	case ScopeAuthor:
		u, err := s.userRepo.FindByUsername(scope.Username)
		if err != nil {
			return nil, err
		}
		if u == nil {
			return nil, ErrNotFound
		}
		author = u
		count = func() (int64, error) { return s.postRepo.CountByAuthorID(u.ID) }
		list = func(limit, offset int) ([]model.Post, error) {
			return s.postRepo.FindByAuthorID(u.ID, limit, offset)
		}
	case ScopeSubscriptions:
		userID := scope.UserID
		count = func() (int64, error) {
			if userID == 0 {
				return 0, nil
			}
			return s.postRepo.CountBySubscriptions(userID)
		}
		list = func(limit, offset int) ([]model.Post, error) {
			if userID == 0 {
				return []model.Post{}, nil
			}
			return s.postRepo.FindBySubscriptions(userID, limit, offset)
		}
	default:
		count = s.postRepo.CountAll
		list = s.postRepo.FindAll
	}

	totalItems, err := count()
	if err != nil {
		return nil, err
	}
	pages := totalPages(totalItems, size)
	current := clampPage(page, pages)

	items, err := list(size, (current-1)*size)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.Post{}
	}

	return &FeedPage{
		Items:       items,
		CurrentPage: current,
		TotalPages:  pages,
		TotalItems:  totalItems,
		Group:       group,
		Author:      author,
	}, nil
}

// IndexPage is the global-feed read path: the rendered (JSON) first page is
// served from the snapshot cache while fresh. Deeper pages bypass the cache.
func (s *FeedService) IndexPage(page int) ([]byte, error) {
	cacheable := page <= 1 && s.feedCache != nil

	if cacheable {
		if data, ok := s.feedCache.Get(); ok {
			return data, nil
		}
	}

	feed, err := s.ComposeFeed(AllScope(), page)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(feed)
	if err != nil {
		return nil, err
	}

	// Cache only what was actually page 1 after clamping, so an out-of-range
	// request can't seed the slot with a different page.
	if cacheable && feed.CurrentPage == 1 {
		s.feedCache.Set(data)
		logger.L.Debug("Global feed snapshot refreshed", zap.Int("items", len(feed.Items)))
	}
	return data, nil
}

// ClearIndexCache is the explicit administrative invalidation event.
func (s *FeedService) ClearIndexCache() {
	if s.feedCache != nil {
		s.feedCache.Clear()
	}
}
