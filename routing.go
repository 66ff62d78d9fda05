package netplan

// RoutingConfig defines one standard static route for an interface. At
// least "to" must be specified. If the type is local or nat a default scope
// of host is assumed; unicast without a gateway (via), broadcast, multicast
// and anycast default to scope link; everything else defaults to global.
//
// For from, to and via, both IPv4 and IPv6 addresses are recognized, in the
// form addr/prefixlen or addr.
type RoutingConfig struct {
	// Source IP address for traffic going through the route.
	// (NetworkManager: as of v1.8.0)
	From *string `yaml:"from,omitempty" mapstructure:"from"`
	// Destination address for the route.
	To *string `yaml:"to,omitempty" mapstructure:"to"`
	// Address of the gateway to use for this route.
	Via *string `yaml:"via,omitempty" mapstructure:"via"`
	// When true, the route is directly connected to the interface.
	// (NetworkManager: as of v1.12.0 for IPv4 and v1.18.0 for IPv6)
	OnLink *Bool `yaml:"on-link,omitempty" mapstructure:"on-link"`
	// The relative priority of the route. Must be a positive integer.
	Metric *int `yaml:"metric,omitempty" mapstructure:"metric"`
	// The type of route. Defaults to unicast.
	Type *RouteType `yaml:"type,omitempty" mapstructure:"type"`
	// The route scope: how wide-ranging it is to the network.
	Scope *RouteScope `yaml:"scope,omitempty" mapstructure:"scope"`
	// The table number to use for the route. Allowed values are positive
	// integers starting from 1; some values already refer to specific
	// routing tables, see /etc/iproute2/rt_tables.
	// (NetworkManager: as of v1.10.0)
	Table *int `yaml:"table,omitempty" mapstructure:"table"`
	// The MTU to be used for the route, in bytes.
	MTU *int `yaml:"mtu,omitempty" mapstructure:"mtu"`
	// The congestion window to be used for the route, in segments.
	CongestionWindow *int `yaml:"congestion-window,omitempty" mapstructure:"congestion-window"`
	// The receive window to be advertised for the route, in segments.
	AdvertisedReceiveWindow *int `yaml:"advertised-receive-window,omitempty" mapstructure:"advertised-receive-window"`
}

// RouteType is the type of a static route.
type RouteType string

const (
	RouteTypeUnicast     RouteType = "unicast"
	RouteTypeAnycast     RouteType = "anycast"
	RouteTypeBlackhole   RouteType = "blackhole"
	RouteTypeBroadcast   RouteType = "broadcast"
	RouteTypeLocal       RouteType = "local"
	RouteTypeMulticast   RouteType = "multicast"
	RouteTypeNat         RouteType = "nat"
	RouteTypeProhibit    RouteType = "prohibit"
	RouteTypeThrow       RouteType = "throw"
	RouteTypeUnreachable RouteType = "unreachable"
	RouteTypeXresolve    RouteType = "xresolve"
)

// RouteScope is how wide-ranging a route is to the network.
type RouteScope string

const (
	RouteScopeGlobal RouteScope = "global"
	RouteScopeLink   RouteScope = "link"
	RouteScopeHost   RouteScope = "host"
)

// RoutingPolicy defines an extra routing policy for a network, where
// traffic may be handled specially based on source IP, firewall marking,
// etc.
type RoutingPolicy struct {
	// Source IP address to match traffic for this rule.
	From *string `yaml:"from,omitempty" mapstructure:"from"`
	// Match traffic going to the specified destination.
	To *string `yaml:"to,omitempty" mapstructure:"to"`
	// The table number to match for the route. Positive integers starting
	// from 1; see /etc/iproute2/rt_tables for values already in use.
	Table int `yaml:"table" mapstructure:"table"`
	// Priority of the rule; rules are processed in order by increasing
	// priority number.
	Priority *int `yaml:"priority,omitempty" mapstructure:"priority"`
	// Match traffic marked by the iptables firewall with this value.
	// Positive integers starting from 1.
	Mark *int `yaml:"mark,omitempty" mapstructure:"mark"`
	// Match based on the type of service number applied to the traffic.
	TypeOfService *string `yaml:"type-of-service,omitempty" mapstructure:"type-of-service"`
}

// NameserverConfig sets DNS servers and search domains, for manual address
// configuration.
type NameserverConfig struct {
	// A list of IPv4 or IPv6 addresses.
	Addresses []string `yaml:"addresses,omitempty" mapstructure:"addresses"`
	// A list of search domains.
	Search []string `yaml:"search,omitempty" mapstructure:"search"`
}
