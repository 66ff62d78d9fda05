package netplan

// DHCPOverrides tweaks DHCP client behavior. Most overrides only have an
// effect with the networkd backend, except use-routes and route-metric.
// Overrides only apply when the corresponding dhcp4 or dhcp6 is enabled.
//
// With the networkd backend, if both dhcp4 and dhcp6 are enabled,
// dhcp4-overrides and dhcp6-overrides must contain the same keys and
// values, otherwise the configuration is rejected. The NetworkManager
// backend accepts differing values and applies them to the respective DHCP
// client processes.
type DHCPOverrides struct {
	// Default true. Use the DNS servers received from the DHCP server, with
	// precedence over statically configured ones. networkd only.
	UseDNS *Bool `yaml:"use-dns,omitempty" mapstructure:"use-dns"`
	// Default true. Use the NTP servers received from the DHCP server via
	// systemd-timesyncd, with precedence over statically configured ones.
	// networkd only.
	UseNTP *Bool `yaml:"use-ntp,omitempty" mapstructure:"use-ntp"`
	// Default true. Send the machine's hostname to the DHCP server.
	// networkd only.
	SendHostname *Bool `yaml:"send-hostname,omitempty" mapstructure:"send-hostname"`
	// Default true. Set the hostname received from the DHCP server as the
	// transient hostname of the system. networkd only.
	UseHostname *Bool `yaml:"use-hostname,omitempty" mapstructure:"use-hostname"`
	// Default true. Apply the MTU received from the DHCP server to the
	// network interface. networkd only.
	UseMTU *Bool `yaml:"use-mtu,omitempty" mapstructure:"use-mtu"`
	// Send this value as the hostname instead of the machine's hostname.
	// networkd only.
	Hostname *string `yaml:"hostname,omitempty" mapstructure:"hostname"`
	// Default true. Install routes received from the DHCP server. When
	// false, the user is responsible for adding static routes if necessary;
	// this allows avoiding a default gateway on DHCP-configured interfaces.
	// Available on both backends.
	UseRoutes *Bool `yaml:"use-routes,omitempty" mapstructure:"use-routes"`
	// Default metric for automatically-added routes. Use a lower metric on
	// a preferred interface to prioritize its routes. Available on both
	// backends.
	RouteMetric *int `yaml:"route-metric,omitempty" mapstructure:"route-metric"`
	// Takes a boolean, or the special value "route". When true, the domain
	// name received from the DHCP server is used as the DNS search domain
	// over this link. When "route", it is used for routing DNS queries
	// only, not for searching, similar to systemd's Domains= with a "~"
	// prefix.
	UseDomains *string `yaml:"use-domains,omitempty" mapstructure:"use-domains"`
}

// IPv6AddressGeneration is the method for creating the address for RFC 4862
// IPv6 Stateless Address Autoconfiguration.
type IPv6AddressGeneration string

const (
	IPv6AddressGenerationEUI64         IPv6AddressGeneration = "eui64"
	IPv6AddressGenerationStablePrivacy IPv6AddressGeneration = "stable-privacy"
)

// PreferredLifetime corresponds to the PreferredLifetime option in
// systemd-networkd's Address section. networkd only.
type PreferredLifetime string

const (
	PreferredLifetimeForever PreferredLifetime = "forever"
	PreferredLifetimeZero    PreferredLifetime = "0"
)

// AddressMapping is one entry of an addresses sequence. It is either a
// plain CIDR scalar, or a mapping carrying a preferred lifetime and an
// address label (networkd only).
type AddressMapping struct {
	// Simple holds the scalar form. When set, the mapping form is ignored.
	Simple string `yaml:"-" mapstructure:"-"`
	// Default forever. Can be forever or 0.
	Lifetime PreferredLifetime `yaml:"lifetime" mapstructure:"lifetime"`
	// An IP address label, equivalent to the ip address label command.
	Label string `yaml:"label" mapstructure:"label"`
}

// addressMapping mirrors the mapping form for (un)marshaling without
// recursing into AddressMapping's own methods.
type addressMapping struct {
	Lifetime PreferredLifetime `yaml:"lifetime"`
	Label    string            `yaml:"label"`
}

// UnmarshalYAML implements yaml.Unmarshaler, accepting both entry forms.
func (a *AddressMapping) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err == nil {
		a.Simple = s
		return nil
	}
	var m addressMapping
	if err := unmarshal(&m); err != nil {
		return err
	}
	a.Lifetime = m.Lifetime
	a.Label = m.Label
	return nil
}

// MarshalYAML implements yaml.Marshaler, emitting whichever form the entry
// was built from.
func (a AddressMapping) MarshalYAML() (interface{}, error) {
	if a.Simple != "" {
		return a.Simple, nil
	}
	return addressMapping{Lifetime: a.Lifetime, Label: a.Label}, nil
}
