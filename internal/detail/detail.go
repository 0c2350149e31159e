// Package detail renders a single news post looked up by slug.
package detail

import (
	"context"
	"log/slog"
	"sync"

	"github.com/negociacion/admin/internal/apiclient"
	"github.com/negociacion/admin/internal/news"
)

// State is the lifecycle of a View.
type State int

const (
	Loading State = iota
	Loaded
)

func (s State) String() string {
	if s == Loaded {
		return "loaded"
	}
	return "loading"
}

// View fetches a post by slug. It stays Loading until a fetch succeeds.
type View struct {
	api    *apiclient.Client
	assets *apiclient.Client
	logger *slog.Logger

	mu   sync.RWMutex
	post *news.Post
}

// New creates a View reading posts through api and resolving images against
// assetHost.
func New(api *apiclient.Client, assetHost string, logger *slog.Logger) *View {
	if logger == nil {
		logger = slog.Default()
	}
	return &View{api: api, assets: apiclient.New(assetHost), logger: logger}
}

// Load fetches the post for slug. A failure is logged and leaves the view as
// it was; the error is returned for callers that want it.
func (v *View) Load(ctx context.Context, slug string) error {
	post, err := news.GetBySlug(ctx, v.api, slug)
	if err != nil {
		v.logger.Debug("failed to load news post", "slug", slug, "error", err)
		return err
	}

	v.mu.Lock()
	v.post = &post
	v.mu.Unlock()
	return nil
}

// State reports whether a post has been loaded.
func (v *View) State() State {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if v.post == nil {
		return Loading
	}
	return Loaded
}

// Post returns the loaded post, or nil while loading.
func (v *View) Post() *news.Post {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if v.post == nil {
		return nil
	}
	p := *v.post
	return &p
}

// ImageURL is the public URL of the post's cover image, or "" when there is
// no post or no image.
func (v *View) ImageURL() string {
	post := v.Post()
	if post == nil || post.Image == nil || *post.Image == "" {
		return ""
	}
	return v.assets.AssetURL(*post.Image)
}
