package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/phrazzld/folio-api/internal/redact"
	"golang.org/x/sync/singleflight"
	"google.golang.org/genai"
)

const modelNamePrefix = "models/"

// discoveryTimeout bounds a shared discovery, which outlives the request
// that started it.
const discoveryTimeout = 15 * time.Second

// singleflight keys
const (
	listKey           = "list"
	listRefreshKey    = "list-refresh"
	resolveKey        = "resolve"
	resolveRefreshKey = "resolve-refresh"
)

// ModelLister returns the raw names of the models usable with the current
// credential.
type ModelLister interface {
	ListModels(ctx context.Context) ([]string, error)
}

// sdkModelLister pages through the Gemini models endpoint.
type sdkModelLister struct {
	models *genai.Models
}

func (l sdkModelLister) ListModels(ctx context.Context) ([]string, error) {
	page, err := l.models.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list models: %w", err)
	}

	var names []string
	for {
		for _, model := range page.Items {
			if model != nil {
				names = append(names, model.Name)
			}
		}
		if page.NextPageToken == "" {
			return names, nil
		}

		page, err = page.Next(ctx)
		if errors.Is(err, genai.ErrPageDone) {
			return names, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list models: %w", err)
		}
	}
}

// ModelCatalog caches the models available to the credential and the model
// selected from them. It is safe for concurrent use.
//
// The discovered set is cached after the first successful listing. The
// resolved model is written once, even when discovery fails, and only a
// forced refresh replaces it. Discovery is shared between concurrent callers
// and detached from their cancellation: a caller that gives up gets the
// current model back and the result is still recorded.
type ModelCatalog struct {
	lister       ModelLister
	defaultModel string
	preferences  []string
	logger       *slog.Logger

	group singleflight.Group

	mu        sync.RWMutex
	ids       []string
	fetched   bool
	fetchedAt time.Time
	resolved  string
}

// NewModelCatalog creates a catalog that prefers defaultModel and then each
// of preferences, in order. A nil lister disables discovery: Available is
// always empty and Resolve returns defaultModel.
func NewModelCatalog(
	lister ModelLister,
	defaultModel string,
	preferences []string,
	logger *slog.Logger,
) *ModelCatalog {
	if logger == nil {
		logger = slog.Default()
	}

	order := make([]string, 0, len(preferences)+1)
	for _, id := range append([]string{defaultModel}, preferences...) {
		if id != "" && !slices.Contains(order, id) {
			order = append(order, id)
		}
	}

	return &ModelCatalog{
		lister:       lister,
		defaultModel: defaultModel,
		preferences:  order,
		logger:       logger.With("component", "gemini_model_catalog"),
	}
}

// Current returns the resolved model, or the configured default before the
// first resolution.
func (c *ModelCatalog) Current() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.resolved != "" {
		return c.resolved
	}
	return c.defaultModel
}

// Available returns the discovered model ids without the "models/" prefix.
// Discovery failures yield an empty slice.
func (c *ModelCatalog) Available(ctx context.Context) []string {
	return slices.Clone(c.discover(ctx, false))
}

// FetchedAt reports when the model list was last discovered successfully.
func (c *ModelCatalog) FetchedAt() (time.Time, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.fetchedAt, c.fetched
}

// Resolve returns the model to use for generation. The first call discovers
// the available models; later calls are served from memory unless
// forceRefresh is set. Resolve never fails: without a match it keeps the
// configured default.
func (c *ModelCatalog) Resolve(ctx context.Context, forceRefresh bool) string {
	if !forceRefresh {
		c.mu.RLock()
		resolved := c.resolved
		c.mu.RUnlock()
		if resolved != "" {
			return resolved
		}
	}

	key := resolveKey
	if forceRefresh {
		key = resolveRefreshKey
	}

	v, ok := c.shared(ctx, key, func(sharedCtx context.Context) any {
		if !forceRefresh {
			c.mu.RLock()
			resolved := c.resolved
			c.mu.RUnlock()
			if resolved != "" {
				return resolved
			}
		}

		model := c.selectModel(c.discover(sharedCtx, forceRefresh))

		c.mu.Lock()
		c.resolved = model
		c.mu.Unlock()

		c.logger.InfoContext(sharedCtx, "resolved gemini model",
			"model", model,
			"default_model", c.defaultModel,
			"force_refresh", forceRefresh)
		return model
	})
	if !ok {
		return c.Current()
	}
	return v.(string)
}

// shared runs fn once per key across concurrent callers. fn gets a context
// that carries ctx's values but not its cancellation. When ctx ends first,
// shared returns false and fn keeps running for the other callers.
func (c *ModelCatalog) shared(ctx context.Context, key string, fn func(context.Context) any) (any, bool) {
	ch := c.group.DoChan(key, func() (any, error) {
		sharedCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), discoveryTimeout)
		defer cancel()
		return fn(sharedCtx), nil
	})

	select {
	case res := <-ch:
		return res.Val, true
	case <-ctx.Done():
		c.logger.DebugContext(ctx, "caller left shared model discovery", "key", key, "error", ctx.Err())
		return nil, false
	}
}

func (c *ModelCatalog) selectModel(available []string) string {
	for _, id := range c.preferences {
		if slices.Contains(available, id) {
			return id
		}
	}
	return c.defaultModel
}

// discover returns the cached model ids, listing them first when nothing is
// cached yet or forceRefresh is set.
func (c *ModelCatalog) discover(ctx context.Context, forceRefresh bool) []string {
	if c.lister == nil {
		return []string{}
	}

	if !forceRefresh {
		c.mu.RLock()
		ids, fetched := c.ids, c.fetched
		c.mu.RUnlock()
		if fetched {
			return ids
		}
	}

	key := listKey
	if forceRefresh {
		key = listRefreshKey
	}

	v, ok := c.shared(ctx, key, func(sharedCtx context.Context) any {
		names, err := c.lister.ListModels(sharedCtx)
		if err != nil {
			c.logger.WarnContext(sharedCtx, "failed to list gemini models, keeping configured default",
				"error", redact.Error(err),
				"default_model", c.defaultModel)
			return []string{}
		}

		ids := make([]string, 0, len(names))
		for _, name := range names {
			id := strings.TrimPrefix(name, modelNamePrefix)
			if id != "" && !slices.Contains(ids, id) {
				ids = append(ids, id)
			}
		}

		c.mu.Lock()
		c.ids = ids
		c.fetched = true
		c.fetchedAt = time.Now()
		c.mu.Unlock()

		c.logger.DebugContext(sharedCtx, "discovered gemini models", "count", len(ids))
		return ids
	})
	if !ok {
		return []string{}
	}
	return v.([]string)
}
