package client

import (
	"errors"
	"fmt"
	"sync"

	"github.com/virgilvox/launchcue-sub001/internal/auth"
	"github.com/virgilvox/launchcue-sub001/pkg/sdk"
)

// Provider yields the lazily-constructed gateway, session, and SDK client
// backed by the on-disk session store. Construction and restore happen once
// per process; errors are memoized.
type Provider struct {
	serverURL string

	once     sync.Once
	store    *auth.FileStore
	gateway  *sdk.Gateway
	session  *sdk.Session
	client   *sdk.Client
	restored bool
	err      error
}

// NewProvider constructs a Provider bound to the given server URL.
func NewProvider(serverURL string) *Provider {
	return &Provider{serverURL: serverURL}
}

func (p *Provider) init() {
	p.once.Do(func() {
		store, err := auth.NewFileStore()
		if err != nil {
			p.err = fmt.Errorf("failed to create session store: %w", err)
			return
		}
		p.store = store
		p.gateway = sdk.NewGateway(p.serverURL)
		p.session = sdk.NewSession(p.gateway, store)
		p.restored = p.session.Restore()
		p.client = sdk.NewClient(p.gateway)
	})
}

// Session returns the session manager, restored from disk when a usable
// session was stored.
func (p *Provider) Session() (*sdk.Session, error) {
	p.init()
	if p.err != nil {
		return nil, p.err
	}
	return p.session, nil
}

// RequireSession returns the session manager, failing when no usable session
// could be restored.
func (p *Provider) RequireSession() (*sdk.Session, error) {
	p.init()
	if p.err != nil {
		return nil, p.err
	}
	if !p.restored {
		return nil, errors.New("not logged in; run `cuectl auth login`")
	}
	return p.session, nil
}

// SDKClient returns the resource wrappers sharing the provider's gateway.
func (p *Provider) SDKClient() (*sdk.Client, error) {
	p.init()
	if p.err != nil {
		return nil, p.err
	}
	return p.client, nil
}
