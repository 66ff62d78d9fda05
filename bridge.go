package netplan

// BridgeConfig configures one entry under bridges.
type BridgeConfig struct {
	// All devices matching this ID list will be added to the bridge. This
	// may be an empty list, in which case the bridge will be brought
	// online with no member interfaces.
	Interfaces []string `yaml:"interfaces,omitempty" mapstructure:"interfaces"`
	// Customization parameters for special bridging options. Time
	// intervals may need to be expressed as a number of seconds or
	// milliseconds: the default value type is the one used by the
	// renderer backend.
	Parameters *BridgeParameters `yaml:"parameters,omitempty" mapstructure:"parameters"`

	CommonProperties `yaml:",inline" mapstructure:",squash"`
}

// BridgeParameters holds special bridging options.
type BridgeParameters struct {
	// Set the period of time to keep a MAC address in the forwarding
	// database after a packet is received. This maps to the AgeingTimeSec=
	// property when the networkd renderer is used.
	AgeingTime *string `yaml:"ageing-time,omitempty" mapstructure:"ageing-time"`
	// Set the priority value for the bridge. This value should be a number
	// between 0 and 65535. Lower values mean higher priority. The bridge
	// with the higher priority will be elected as the root bridge.
	Priority *int `yaml:"priority,omitempty" mapstructure:"priority"`
	// Set the port priority to <priority>. The priority value is a number
	// between 0 and 63. This metric is used in the designated port and
	// root port selection algorithms.
	PortPriority *int `yaml:"port-priority,omitempty" mapstructure:"port-priority"`
	// Specify the period of time the bridge will remain in Listening and
	// Learning states before getting to the Forwarding state. This field
	// maps to the ForwardDelaySec= property for the networkd renderer.
	ForwardDelay *string `yaml:"forward-delay,omitempty" mapstructure:"forward-delay"`
	// Specify the interval between two hello packets being sent out from
	// the root and designated bridges. Hello packets communicate
	// information about the network topology.
	HelloTime *string `yaml:"hello-time,omitempty" mapstructure:"hello-time"`
	// Set the maximum age of a hello packet. If the last hello packet is
	// older than that value, the bridge will attempt to become the root
	// bridge.
	MaxAge *string `yaml:"max-age,omitempty" mapstructure:"max-age"`
	// Set the cost of a path on the bridge. Faster interfaces should have
	// a lower cost. This allows a finer control on the network topology so
	// that the fastest paths are available whenever possible.
	PathCost *int `yaml:"path-cost,omitempty" mapstructure:"path-cost"`
	// Define whether the bridge should use Spanning Tree Protocol. The
	// default value is "true", which means that Spanning Tree should be
	// used.
	STP *Bool `yaml:"stp,omitempty" mapstructure:"stp"`
}
