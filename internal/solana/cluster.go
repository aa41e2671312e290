package solana

import (
	"fmt"
	"net/url"
	"strings"
)

// Cluster names a Solana network.
type Cluster string

const (
	MainnetBeta Cluster = "mainnet-beta"
	Devnet      Cluster = "devnet"
	Testnet     Cluster = "testnet"
	Localnet    Cluster = "localnet"
)

var clusterEndpoints = map[Cluster]string{
	MainnetBeta: "https://api.mainnet-beta.solana.com",
	Devnet:      "https://api.devnet.solana.com",
	Testnet:     "https://api.testnet.solana.com",
	Localnet:    "http://127.0.0.1:8899",
}

// Clusters lists the known clusters in display order.
func Clusters() []Cluster {
	return []Cluster{MainnetBeta, Devnet, Testnet, Localnet}
}

// ClusterNames lists the known clusters for help and error text.
func ClusterNames() string {
	names := make([]string, 0, len(clusterEndpoints))
	for _, c := range Clusters() {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}

// Known reports whether c is one of the predefined clusters.
func (c Cluster) Known() bool {
	_, ok := clusterEndpoints[c]
	return ok
}

// Endpoint returns the public RPC URL for c, or "" for an unknown cluster.
func (c Cluster) Endpoint() string {
	return clusterEndpoints[c]
}

// ResolveEndpoint picks the RPC URL for a connection: an explicit override
// wins, otherwise the cluster's public endpoint is used.
func ResolveEndpoint(cluster Cluster, override string) (string, error) {
	override = strings.TrimSpace(override)
	if override != "" {
		u, err := url.Parse(override)
		if err != nil {
			return "", fmt.Errorf("parse rpc url: %w", err)
		}
		if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return "", fmt.Errorf("rpc url %q must be an http(s) URL", override)
		}
		return override, nil
	}
	if !cluster.Known() {
		return "", fmt.Errorf("unknown cluster %q (expected one of %s)", cluster, ClusterNames())
	}
	return cluster.Endpoint(), nil
}
