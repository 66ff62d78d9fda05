package netplan

// TunnelConfig configures one entry under tunnels. Tunnels allow traffic to
// pass as if it was between systems on the same local network, although
// systems may be far from each other but reachable via the Internet.
type TunnelConfig struct {
	// The tunnel mode. For systemd-networkd, the valid modes are sit,
	// gre, ip6gre, ipip, ipip6, ip6ip6, vti, vti6 and wireguard. When
	// using NetworkManager, the supported modes are gre, ip6gre, ipip,
	// ipip6, ip6ip6, vti, vti6 and isatap.
	Mode *TunnelMode `yaml:"mode,omitempty" mapstructure:"mode"`
	// Defines the address of the local endpoint of the tunnel.
	Local *string `yaml:"local,omitempty" mapstructure:"local"`
	// Defines the address of the remote endpoint of the tunnel.
	Remote *string `yaml:"remote,omitempty" mapstructure:"remote"`
	// Defines the TTL of the tunnel.
	TTL *int `yaml:"ttl,omitempty" mapstructure:"ttl"`
	// Define keys to use for the tunnel. The key can be a number or a
	// dotted quad (an IPv4 address). For wireguard it can be a base64-
	// encoded private key or (as of networkd v242+) an absolute path to a
	// file containing the private key.
	Key *TunnelKey `yaml:"key,omitempty" mapstructure:"key"`
	// Firewall mark for outgoing WireGuard packets from this interface,
	// optional.
	Mark *string `yaml:"mark,omitempty" mapstructure:"mark"`
	// UDP port to listen at or auto. Optional, defaults to auto.
	Port *string `yaml:"port,omitempty" mapstructure:"port"`
	// A list of peers.
	Peers []WireGuardPeer `yaml:"peers,omitempty" mapstructure:"peers"`

	CommonProperties `yaml:",inline" mapstructure:",squash"`
}

// TunnelKey holds the input and output keys of a tunnel. On the wire this
// is either a single scalar, used for both directions, or a mapping with
// separate input and output keys.
type TunnelKey struct {
	// Simple is set when the key was given as a plain scalar.
	Simple string `yaml:"-" mapstructure:"-"`
	// The input key for the tunnel.
	Input *string `yaml:"input,omitempty" mapstructure:"input"`
	// The output key for the tunnel.
	Output *string `yaml:"output,omitempty" mapstructure:"output"`
	// A base64-encoded private key required for WireGuard tunnels. When
	// the systemd-networkd backend (v242+) is used, this can also be an
	// absolute path to a file containing the private key.
	Private *string `yaml:"private,omitempty" mapstructure:"private"`
}

type tunnelKey struct {
	Input   *string `yaml:"input,omitempty"`
	Output  *string `yaml:"output,omitempty"`
	Private *string `yaml:"private,omitempty"`
}

func (k *TunnelKey) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err == nil {
		k.Simple = s
		return nil
	}
	var aux tunnelKey
	if err := unmarshal(&aux); err != nil {
		return err
	}
	k.Input = aux.Input
	k.Output = aux.Output
	k.Private = aux.Private
	return nil
}

func (k TunnelKey) MarshalYAML() (interface{}, error) {
	if k.Simple != "" {
		return k.Simple, nil
	}
	return tunnelKey{Input: k.Input, Output: k.Output, Private: k.Private}, nil
}

// WireGuardPeer describes one peer of a wireguard tunnel.
type WireGuardPeer struct {
	// Remote endpoint IPv4/IPv6 address or a hostname, followed by a
	// colon and a port number.
	Endpoint *string `yaml:"endpoint,omitempty" mapstructure:"endpoint"`
	// A list of IP (v4 or v6) addresses with CIDR masks from which this
	// peer is allowed to send incoming traffic and to which outgoing
	// traffic for this peer is directed. The catch-all 0.0.0.0/0 may be
	// specified for matching all IPv4 addresses, and ::/0 may be
	// specified for matching all IPv6 addresses.
	AllowedIPs []string `yaml:"allowed-ips,omitempty" mapstructure:"allowed-ips"`
	// An interval in seconds, between 1 and 65535 inclusive, of how often
	// to send an authenticated empty packet to the peer for the purpose
	// of keeping a stateful firewall or NAT mapping valid persistently.
	// Optional.
	Keepalive *int `yaml:"keepalive,omitempty" mapstructure:"keepalive"`
	// Define keys to use for the WireGuard peers.
	Keys *WireGuardPeerKey `yaml:"keys,omitempty" mapstructure:"keys"`
}

// WireGuardPeerKey holds the keys of a wireguard peer.
type WireGuardPeerKey struct {
	// A base64-encoded public key, required for WireGuard peers.
	Public *string `yaml:"public,omitempty" mapstructure:"public"`
	// A base64-encoded preshared key. Optional for WireGuard peers. When
	// the systemd-networkd backend (v242+) is used, this can also be an
	// absolute path to a file containing the preshared key.
	Shared *string `yaml:"shared,omitempty" mapstructure:"shared"`
}

// TunnelMode is the encapsulation mode of a tunnel.
type TunnelMode string

const (
	TunnelModeSIT       TunnelMode = "sit"
	TunnelModeGRE       TunnelMode = "gre"
	TunnelModeIP6GRE    TunnelMode = "ip6gre"
	TunnelModeIPIP      TunnelMode = "ipip"
	TunnelModeIPIP6     TunnelMode = "ipip6"
	TunnelModeIP6IP6    TunnelMode = "ip6ip6"
	TunnelModeVTI       TunnelMode = "vti"
	TunnelModeVTI6      TunnelMode = "vti6"
	TunnelModeWireGuard TunnelMode = "wireguard"
	TunnelModeGRETAP    TunnelMode = "gretap"
	TunnelModeIP6GRETAP TunnelMode = "ip6gretap"
	TunnelModeISATAP    TunnelMode = "isatap"
)
