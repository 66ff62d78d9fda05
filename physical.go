package netplan

// PhysicalProperties are the properties shared by physical device types
// (ethernets, modems, wifis). Like CommonProperties they are inlined into
// the device mapping.
type PhysicalProperties struct {
	// Select a subset of available physical devices by hardware properties.
	// The configuration applies to all matching devices as soon as they
	// appear; all specified properties must match.
	Match *MatchConfig `yaml:"match,omitempty" mapstructure:"match"`
	// When match rules match exactly one device, set-name gives that device
	// a nicer name than the default from udev's ifnames. Any additional
	// device satisfying the rules fails to get renamed and keeps its kernel
	// name.
	SetName *string `yaml:"set-name,omitempty" mapstructure:"set-name"`
	// Enable wake on LAN. Off by default. Unreliable for devices matched by
	// name only and rendered by networkd; match by MAC instead.
	WakeOnLAN *Bool `yaml:"wakeonlan,omitempty" mapstructure:"wakeonlan"`
	// (networkd backend only) Whether to emit LLDP packets. Off by default.
	EmitLLDP *Bool `yaml:"emit-lldp,omitempty" mapstructure:"emit-lldp"`
	// (networkd backend only) Hardware offload for checksumming of ingress
	// packets. When unset, the kernel's default is used.
	ReceiveChecksumOffload *Bool `yaml:"receive-checksum-offload,omitempty" mapstructure:"receive-checksum-offload"`
	// (networkd backend only) Hardware offload for checksumming of egress
	// packets. When unset, the kernel's default is used.
	TransmitChecksumOffload *Bool `yaml:"transmit-checksum-offload,omitempty" mapstructure:"transmit-checksum-offload"`
	// (networkd backend only) TCP Segmentation Offload (TSO). When unset,
	// the kernel's default is used.
	TCPSegmentationOffload *Bool `yaml:"tcp-segmentation-offload,omitempty" mapstructure:"tcp-segmentation-offload"`
	// (networkd backend only) TCP6 Segmentation Offload
	// (tx-tcp6-segmentation). When unset, the kernel's default is used.
	TCP6SegmentationOffload *Bool `yaml:"tcp6-segmentation-offload,omitempty" mapstructure:"tcp6-segmentation-offload"`
	// (networkd backend only) Generic Segmentation Offload (GSO). When
	// unset, the kernel's default is used.
	GenericSegmentationOffload *Bool `yaml:"generic-segmentation-offload,omitempty" mapstructure:"generic-segmentation-offload"`
	// (networkd backend only) Generic Receive Offload (GRO). When unset, the
	// kernel's default is used.
	GenericReceiveOffload *Bool `yaml:"generic-receive-offload,omitempty" mapstructure:"generic-receive-offload"`
	// (networkd backend only) Large Receive Offload. When unset, the
	// kernel's default is used.
	LargeReceiveOffload *Bool `yaml:"large-receive-offload,omitempty" mapstructure:"large-receive-offload"`
	// Additional configuration for openvswitch. If openvswitch is not
	// available on the system, netplan treats the presence of this mapping
	// as an error.
	//
	// Any device declared with an openvswitch mapping (or any bond/bridge
	// including such a device) is created in openvswitch instead of the
	// defined renderer. A vlan declared this way becomes a fake VLAN bridge
	// in openvswitch with the requested vlan properties.
	OpenVSwitch *OpenVSwitchConfig `yaml:"openvswitch,omitempty" mapstructure:"openvswitch"`
}

// MatchConfig selects physical devices by hardware properties.
type MatchConfig struct {
	// Current interface name. Globs are supported.
	// (NetworkManager: as of v1.14.0)
	Name *string `yaml:"name,omitempty" mapstructure:"name"`
	// Device's MAC address in the form "XX:XX:XX:XX:XX:XX". No globs.
	MACAddress *string `yaml:"macaddress,omitempty" mapstructure:"macaddress"`
	// Kernel driver names, corresponding to the DRIVER udev property. A
	// sequence of globs, any of which must match. networkd only.
	Driver []string `yaml:"driver,omitempty" mapstructure:"driver"`
}

// OpenVSwitchConfig configures a device for openvswitch.
type OpenVSwitchConfig struct {
	// Passed through directly to OpenVSwitch.
	ExternalIDs *string `yaml:"external-ids,omitempty" mapstructure:"external-ids"`
	// Passed through directly to OpenVSwitch.
	OtherConfig *string `yaml:"other-config,omitempty" mapstructure:"other-config"`
	// Valid for bond interfaces. Accepts active, passive or off (the
	// default).
	Lacp *Lacp `yaml:"lacp,omitempty" mapstructure:"lacp"`
	// Valid for bridge interfaces. Accepts secure or standalone (the
	// default).
	FailMode *FailMode `yaml:"fail-mode,omitempty" mapstructure:"fail-mode"`
	// Valid for bridge interfaces. False by default.
	McastSnooping *Bool `yaml:"mcast-snooping,omitempty" mapstructure:"mcast-snooping"`
	// Valid for bridge interfaces or the network section. Protocols to use
	// when negotiating a connection with the controller.
	Protocols []OpenFlowProtocol `yaml:"protocols,omitempty" mapstructure:"protocols"`
	// Valid for bridge interfaces. False by default.
	RSTP *Bool `yaml:"rstp,omitempty" mapstructure:"rstp"`
	// Valid for bridge interfaces. Specify an external OpenFlow controller.
	Controller *ControllerConfig `yaml:"controller,omitempty" mapstructure:"controller"`
	// OpenvSwitch patch ports. Each port is declared as a pair of names
	// which can be referenced as interfaces in dependent virtual devices
	// (bonds, bridges).
	Ports [][]string `yaml:"ports,omitempty" mapstructure:"ports"`
	// Valid for global openvswitch settings. SSL server endpoint for the
	// switch.
	SSL *SSLConfig `yaml:"ssl,omitempty" mapstructure:"ssl"`
}

// SSLConfig holds the SSL server endpoint options for the switch.
type SSLConfig struct {
	// Path to a file containing the CA certificate to be used.
	CACert *string `yaml:"ca-cert,omitempty" mapstructure:"ca-cert"`
	// Path to a file containing the server certificate.
	Certificate *string `yaml:"certificate,omitempty" mapstructure:"certificate"`
	// Path to a file containing the private key for the server.
	PrivateKey *string `yaml:"private-key,omitempty" mapstructure:"private-key"`
}

// ControllerConfig specifies an external OpenFlow controller.
type ControllerConfig struct {
	// Addresses to use for the controller targets, in ovs-vsctl(8) syntax.
	// Example: [tcp:127.0.0.1:6653, "ssl:[fe80::1234%eth0]:6653"]
	Addresses []string `yaml:"addresses,omitempty" mapstructure:"addresses"`
	// Connection mode for the controller. The default is in-band.
	ConnectionMode *ConnectionMode `yaml:"connection-mode,omitempty" mapstructure:"connection-mode"`
}

// ConnectionMode is the controller connection mode.
type ConnectionMode string

const (
	ConnectionModeInBand    ConnectionMode = "in-band"
	ConnectionModeOutOfBand ConnectionMode = "out-of-band"
)

// Lacp is the LACP mode of an openvswitch bond.
type Lacp string

const (
	LacpActive  Lacp = "active"
	LacpPassive Lacp = "passive"
	LacpOff     Lacp = "off"
)

// FailMode is the failure mode of an openvswitch bridge.
type FailMode string

const (
	FailModeSecure     FailMode = "secure"
	FailModeStandalone FailMode = "standalone"
)

// OpenFlowProtocol is a protocol version for controller negotiation.
type OpenFlowProtocol string

const (
	OpenFlow10 OpenFlowProtocol = "OpenFlow10"
	OpenFlow11 OpenFlowProtocol = "OpenFlow11"
	OpenFlow12 OpenFlowProtocol = "OpenFlow12"
	OpenFlow13 OpenFlowProtocol = "OpenFlow13"
	OpenFlow14 OpenFlowProtocol = "OpenFlow14"
	OpenFlow15 OpenFlowProtocol = "OpenFlow15"
	OpenFlow16 OpenFlowProtocol = "OpenFlow16"
)
