package netplan

// CommonProperties are the properties shared by every device type. They are
// inlined into the device mapping itself, not nested under a separate key.
type CommonProperties struct {
	// Use the given networking backend for this definition. See Renderer.
	Renderer *Renderer `yaml:"renderer,omitempty" mapstructure:"renderer"`
	// Enable DHCP for IPv4. Off by default.
	DHCP4 *Bool `yaml:"dhcp4,omitempty" mapstructure:"dhcp4"`
	// Enable DHCP for IPv6. Off by default. This covers both stateless DHCP,
	// where the DHCP server supplies information like DNS nameservers but not
	// the IP address, and stateful DHCP, where the server provides both.
	//
	// In an IPv6-only environment with completely stateless autoconfiguration
	// (SLAAC with RDNSS), this option can be set to bring the interface up;
	// setting accept-ra alone is not sufficient. Autoconfiguration still
	// honours the router advertisement and only uses DHCP if the RA requests
	// it. Note that rdnssd(8) is required for RDNSS with networkd.
	DHCP6 *Bool `yaml:"dhcp6,omitempty" mapstructure:"dhcp6"`
	// Set the IPv6 MTU (networkd backend only). Needing this is unusual.
	IPv6MTU *int `yaml:"ipv6-mtu,omitempty" mapstructure:"ipv6-mtu"`
	// Enable IPv6 Privacy Extensions (RFC 4941) and prefer temporary
	// addresses. Defaults to false. There is currently no way to have a
	// private address but prefer the public address.
	IPv6Privacy *Bool `yaml:"ipv6-privacy,omitempty" mapstructure:"ipv6-privacy"`
	// Configure the link-local addresses to bring up. Valid entries are
	// "ipv4" and "ipv6". When the key is not defined, only IPv6 link-local
	// addresses are enabled; an explicitly empty list disables both families.
	LinkLocal []string `yaml:"link-local,omitempty" mapstructure:"link-local"`
	// (networkd backend only) Allow the interface to be configured even if it
	// has no carrier.
	IgnoreCarrier *Bool `yaml:"ignore-carrier,omitempty" mapstructure:"ignore-carrier"`
	// Designate the connection as critical to the system: the assigned IP is
	// not released when the daemon restarts. Not recognized by
	// NetworkManager.
	Critical *bool `yaml:"critical,omitempty" mapstructure:"critical"`
	// (networkd backend only) Source of the DHCPv4 client identifier. With
	// "mac" the link's MAC address is used; omitted or "duid", networkd
	// generates an RFC 4361 compliant identifier from the link's IAID and
	// DUID.
	DHCPIdentifier *string `yaml:"dhcp-identifier,omitempty" mapstructure:"dhcp-identifier"`
	// (networkd backend only) Overrides default DHCP behavior.
	DHCP4Overrides *DHCPOverrides `yaml:"dhcp4-overrides,omitempty" mapstructure:"dhcp4-overrides"`
	// (networkd backend only) Overrides default DHCP behavior.
	DHCP6Overrides *DHCPOverrides `yaml:"dhcp6-overrides,omitempty" mapstructure:"dhcp6-overrides"`
	// Accept Router Advertisements. When unset the host kernel default is
	// used.
	AcceptRA *bool `yaml:"accept-ra,omitempty" mapstructure:"accept-ra"`
	// Static addresses for the interface, in addition to ones received via
	// DHCP or RA. Entries are in CIDR notation (addr/prefixlen), either as a
	// plain scalar or as a mapping with lifetime and label.
	Addresses []AddressMapping `yaml:"addresses,omitempty" mapstructure:"addresses"`
	// Method for creating the address for RFC 4862 IPv6 Stateless Address
	// Autoconfiguration (NetworkManager backend only). Mutually exclusive
	// with ipv6-address-token.
	IPv6AddressGeneration *IPv6AddressGeneration `yaml:"ipv6-address-generation,omitempty" mapstructure:"ipv6-address-generation"`
	// IPv6 address token for a static interface identifier. Mutually
	// exclusive with ipv6-address-generation.
	IPv6AddressToken *string `yaml:"ipv6-address-token,omitempty" mapstructure:"ipv6-address-token"`
	// Deprecated, use Routes. Default IPv4 gateway for manual address
	// configuration; requires Addresses. Only a single gateway per family
	// should be set in the global config.
	Gateway4 *string `yaml:"gateway4,omitempty" mapstructure:"gateway4"`
	// Deprecated, use Routes. Default IPv6 gateway for manual address
	// configuration; requires Addresses.
	Gateway6 *string `yaml:"gateway6,omitempty" mapstructure:"gateway6"`
	// DNS servers and search domains, for manual address configuration.
	Nameservers *NameserverConfig `yaml:"nameservers,omitempty" mapstructure:"nameservers"`
	// The device's MAC address, in the form "XX:XX:XX:XX:XX:XX". Unreliable
	// for devices matched by name only and rendered by networkd; match by
	// MAC when setting MAC addresses.
	MACAddress *string `yaml:"macaddress,omitempty" mapstructure:"macaddress"`
	// Maximum Transmission Unit for the interface. The default is 1500.
	MTU *int `yaml:"mtu,omitempty" mapstructure:"mtu"`
	// An optional device is not required for booting: networkd will not wait
	// for it at boot. networkd only; default false.
	Optional *bool `yaml:"optional,omitempty" mapstructure:"optional"`
	// Address types that are not required for the device to be considered
	// online.
	OptionalAddresses []string `yaml:"optional-addresses,omitempty" mapstructure:"optional-addresses"`
	// Management policy for the interface: "manual" hands control over to the
	// administrator, "off" (networkd only) forces the link down. A device
	// with activation-mode set is implicitly optional. networkd v248+.
	ActivationMode *ActivationMode `yaml:"activation-mode,omitempty" mapstructure:"activation-mode"`
	// Static routes for the device.
	Routes []RoutingConfig `yaml:"routes,omitempty" mapstructure:"routes"`
	// Policy routing for the device.
	RoutingPolicy []RoutingPolicy `yaml:"routing-policy,omitempty" mapstructure:"routing-policy"`
}

// ActivationMode overrides how netplan brings a configured interface up.
type ActivationMode string

const (
	ActivationModeManual ActivationMode = "manual"
	ActivationModeOff    ActivationMode = "off"
)
