package wallet

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/solmint/solmint/internal/logger"
	"github.com/solmint/solmint/internal/solana"
)

// Wallet exposes the connected public key. No key means disconnected.
type Wallet interface {
	PublicKey() (PublicKey, bool)
}

// ProviderOptions configures the wallet connection context.
type ProviderOptions struct {
	Cluster     solana.Cluster
	Endpoint    string
	Adapter     string
	AutoConnect bool
	Log         *logger.Logger
}

// Provider is the wallet connection context: the selected network endpoint,
// the supported adapters and the current connection. Connect may run from a
// background command while the UI reads the state, so access is guarded.
type Provider struct {
	mu          sync.RWMutex
	cluster     solana.Cluster
	endpoint    string
	adapters    map[string]Adapter
	selected    string
	autoConnect bool
	connected   *PublicKey
	log         *logger.Logger
}

// NewProvider registers adapters and selects opts.Adapter, or the first
// adapter when none is named.
func NewProvider(opts ProviderOptions, adapters ...Adapter) (*Provider, error) {
	endpoint, err := solana.ResolveEndpoint(opts.Cluster, opts.Endpoint)
	if err != nil {
		return nil, err
	}
	p := &Provider{
		cluster:     opts.Cluster,
		endpoint:    endpoint,
		adapters:    make(map[string]Adapter, len(adapters)),
		autoConnect: opts.AutoConnect,
		log:         opts.Log,
	}
	for _, a := range adapters {
		if a == nil {
			continue
		}
		if _, dup := p.adapters[a.Name()]; dup {
			return nil, fmt.Errorf("duplicate wallet adapter %q", a.Name())
		}
		p.adapters[a.Name()] = a
		if p.selected == "" {
			p.selected = a.Name()
		}
	}
	if opts.Adapter != "" {
		if err := p.Select(opts.Adapter); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Cluster returns the configured cluster.
func (p *Provider) Cluster() solana.Cluster { return p.cluster }

// Endpoint returns the RPC URL for the connection.
func (p *Provider) Endpoint() string { return p.endpoint }

// AutoConnect reports whether Connect should run on load.
func (p *Provider) AutoConnect() bool { return p.autoConnect }

// Adapters returns the registered adapter names, sorted.
func (p *Provider) Adapters() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	names := make([]string, 0, len(p.adapters))
	for name := range p.adapters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Selected returns the name of the adapter Connect will use.
func (p *Provider) Selected() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.selected
}

// Select switches adapters. Any existing connection is dropped.
func (p *Provider) Select(name string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.adapters[name]; !ok {
		return fmt.Errorf("unknown wallet adapter %q", name)
	}
	if p.selected != name {
		p.connected = nil
	}
	p.selected = name
	return nil
}

// Connect connects the selected adapter.
func (p *Provider) Connect(ctx context.Context) (PublicKey, error) {
	p.mu.RLock()
	adapter, ok := p.adapters[p.selected]
	p.mu.RUnlock()
	if !ok {
		return PublicKey{}, fmt.Errorf("no wallet adapter configured")
	}

	pk, err := adapter.Connect(ctx)
	if err != nil {
		p.log.With("adapter", adapter.Name()).Error(err, "wallet connect failed")
		return PublicKey{}, err
	}

	p.mu.Lock()
	p.connected = &pk
	p.mu.Unlock()

	p.log.WithFields(map[string]any{
		"adapter":    adapter.Name(),
		"public_key": pk.String(),
		"cluster":    string(p.cluster),
	}).Info("wallet connected")
	return pk, nil
}

// Disconnect forgets the current connection.
func (p *Provider) Disconnect() {
	p.mu.Lock()
	p.connected = nil
	p.mu.Unlock()
	p.log.Info("wallet disconnected")
}

// PublicKey implements Wallet.
func (p *Provider) PublicKey() (PublicKey, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.connected == nil {
		return PublicKey{}, false
	}
	return *p.connected, true
}

var _ Wallet = (*Provider)(nil)
