package dashboard

import (
	"fmt"
	"sync"
)

// PageHook lets packages register pages/providers during init().
type PageHook func(reg *Registry) error

var (
	globalHookMu sync.Mutex
	globalHooks  []PageHook
)

// RegisterPageHook registers a hook executed against new registries.
func RegisterPageHook(h PageHook) {
	globalHookMu.Lock()
	defer globalHookMu.Unlock()
	globalHooks = append(globalHooks, h)
}

// Registry implements PageRegistry with hook + manifest support.
type Registry struct {
	mu        sync.RWMutex
	pages     map[PageID]PageDefinition
	providers map[PageID]Provider
}

// NewRegistry builds a registry holding the built-in pages and applies global hooks.
func NewRegistry() *Registry {
	reg := NewEmptyRegistry()
	reg.registerDefaults()
	_ = reg.ApplyHooks()
	return reg
}

// NewEmptyRegistry builds a registry with no pages.
func NewEmptyRegistry() *Registry {
	return &Registry{
		pages:     map[PageID]PageDefinition{},
		providers: map[PageID]Provider{},
	}
}

func (r *Registry) registerDefaults() {
	for _, def := range DefaultPageDefinitions() {
		_ = r.RegisterPage(def)
		if provider, ok := defaultProviders[def.ID]; ok {
			_ = r.RegisterProvider(def.ID, provider)
		}
	}
}

// ApplyHooks executes registered page hooks.
func (r *Registry) ApplyHooks() error {
	globalHookMu.Lock()
	defer globalHookMu.Unlock()
	for _, hook := range globalHooks {
		if err := hook(r); err != nil {
			return err
		}
	}
	return nil
}

// RegisterPage stores a page definition, replacing any previous one.
func (r *Registry) RegisterPage(def PageDefinition) error {
	if def.ID == "" {
		return fmt.Errorf("page definition id is required")
	}
	if def.Path == "" {
		def.Path = "/" + string(def.ID)
	}
	if len(def.Widgets) == 0 {
		def.Widgets = append([]string(nil), def.DefaultOrder...)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pages[def.ID] = def.clone()
	return nil
}

// RegisterProvider associates a provider implementation with a page.
func (r *Registry) RegisterProvider(page PageID, provider Provider) error {
	if page == "" {
		return fmt.Errorf("page id is required to register provider")
	}
	if provider == nil {
		return fmt.Errorf("provider cannot be nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.pages[page]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownPage, page)
	}
	r.providers[page] = provider
	return nil
}

// Page fetches a page definition by id.
func (r *Registry) Page(id PageID) (PageDefinition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.pages[id]
	if !ok {
		return PageDefinition{}, false
	}
	return def.clone(), true
}

// Provider fetches a page provider by id.
func (r *Registry) Provider(id PageID) (Provider, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	provider, ok := r.providers[id]
	return provider, ok
}

// Pages returns all registered pages ordered by position.
func (r *Registry) Pages() []PageDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	pages := make([]PageDefinition, 0, len(r.pages))
	for _, def := range r.pages {
		pages = append(pages, def.clone())
	}
	sortPages(pages)
	return pages
}
