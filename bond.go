package netplan

// BondConfig configures one entry under bonds.
type BondConfig struct {
	// All devices matching this ID list will be added to the bond.
	Interfaces []string `yaml:"interfaces,omitempty" mapstructure:"interfaces"`
	// Customization parameters for special bonding options. Time intervals
	// may need to be expressed as a number of seconds or milliseconds: the
	// default value type is the one used by the renderer backend.
	Parameters *BondParameters `yaml:"parameters,omitempty" mapstructure:"parameters"`

	CommonProperties `yaml:",inline" mapstructure:",squash"`
}

// BondParameters holds special bonding options.
type BondParameters struct {
	// Set the bonding mode used for the interfaces. The default is
	// balance-rr (round robin).
	Mode *BondMode `yaml:"mode,omitempty" mapstructure:"mode"`
	// Set the rate at which LACPDUs are transmitted. This is only useful
	// in 802.3ad mode. Possible values are slow (30 seconds, default) and
	// fast (every second).
	LacpRate *LacpRate `yaml:"lacp-rate,omitempty" mapstructure:"lacp-rate"`
	// Specifies the interval for MII monitoring (verifying if an interface
	// of the bond has carrier). The default is 0; which disables MII
	// monitoring. This is equivalent to the MIIMonitorSec= field for the
	// networkd backend. If no time suffix is specified, the value will be
	// interpreted as seconds.
	MIIMonitorInterval *string `yaml:"mii-monitor-interval,omitempty" mapstructure:"mii-monitor-interval"`
	// The minimum number of links up in a bond to consider the bond
	// interface to be up.
	MinLinks *int `yaml:"min-links,omitempty" mapstructure:"min-links"`
	// Specifies the transmit hash policy for the selection of ports. This
	// is only useful in balance-xor, 802.3ad and balance-tlb modes.
	TransmitHashPolicy *TransmitHashPolicy `yaml:"transmit-hash-policy,omitempty" mapstructure:"transmit-hash-policy"`
	// Set the aggregation selection mode. Only used in 802.3ad mode.
	AdSelect *AdSelect `yaml:"ad-select,omitempty" mapstructure:"ad-select"`
	// If the bond should drop duplicate frames received on inactive ports,
	// set this option to false. If they should be delivered, set this
	// option to true. The default value is false, and is the desirable
	// behavior in most situations.
	AllSlavesActive *Bool `yaml:"all-slaves-active,omitempty" mapstructure:"all-slaves-active"`
	// Set the interval value for how frequently ARP link monitoring should
	// happen. The default value is 0, which disables ARP monitoring. For
	// the networkd backend, this maps to the ARPIntervalSec= property. If
	// no time suffix is specified, the value will be interpreted as
	// seconds.
	ARPInterval *string `yaml:"arp-interval,omitempty" mapstructure:"arp-interval"`
	// IPs of other hosts on the link which should be sent ARP requests in
	// order to validate that a port is up. This option is only used when
	// arp-interval is set to a value other than 0. At least one IP address
	// must be given for ARP link monitoring to function. Only IPv4
	// addresses are supported.
	ARPIPTargets []string `yaml:"arp-ip-targets,omitempty" mapstructure:"arp-ip-targets"`
	// Configure how ARP replies are to be validated when using ARP link
	// monitoring.
	ARPValidate *ARPValidate `yaml:"arp-validate,omitempty" mapstructure:"arp-validate"`
	// Specify whether to use any ARP IP target being up as sufficient for
	// a port to be considered up; or if all the targets must be up.
	ARPAllTargets *ARPAllTargets `yaml:"arp-all-targets,omitempty" mapstructure:"arp-all-targets"`
	// Specify the delay before enabling a link once the link is physically
	// up. The default value is 0. This maps to the UpDelaySec= property
	// for the networkd renderer. This option is only valid for the
	// miimon link monitor.
	UpDelay *string `yaml:"up-delay,omitempty" mapstructure:"up-delay"`
	// Specify the delay before disabling a link once the link has been
	// lost. The default value is 0. This maps to the DownDelaySec=
	// property for the networkd renderer. This option is only valid for
	// the miimon link monitor.
	DownDelay *string `yaml:"down-delay,omitempty" mapstructure:"down-delay"`
	// Set whether to set all ports to the same MAC address when adding
	// them to the bond, or how else the system should handle MAC addresses.
	FailOverMACPolicy *FailOverMACPolicy `yaml:"fail-over-mac-policy,omitempty" mapstructure:"fail-over-mac-policy"`
	// Specify how many ARP packets to send after failover. Once a link is
	// up on a new port, a notification is sent and possibly repeated if
	// this value is set to a number greater than 1. The default value is 1
	// and valid values are between 1 and 255. This only affects
	// active-backup mode.
	GratuitousARP *int `yaml:"gratuitous-arp,omitempty" mapstructure:"gratuitous-arp"`
	// In balance-rr mode, specifies the number of packets to transmit on a
	// port before switching to the next one. When this value is set to 0,
	// ports are chosen at random. Allowable values are between 0 and
	// 65535. The default value is 1. This option only has effect in
	// balance-rr mode.
	PacketsPerSlave *int `yaml:"packets-per-slave,omitempty" mapstructure:"packets-per-slave"`
	// Set the reselection policy for the primary port. On failure of the
	// active port, the system will use this policy to decide how the new
	// active port will be chosen and how recovery will be handled.
	PrimaryReselectPolicy *PrimaryReselectPolicy `yaml:"primary-reselect-policy,omitempty" mapstructure:"primary-reselect-policy"`
	// In modes balance-rr, active-backup, balance-tlb and balance-alb, a
	// failover can switch IGMP traffic from one port to another.
	//
	// This parameter defines how many IGMP membership reports are issued
	// on a failover event. Values range from 0 to 255. 0 disables sending
	// membership reports. Otherwise, the first membership report is sent
	// on failover and subsequent reports are sent at 200ms intervals.
	ResendIGMP *int `yaml:"resend-igmp,omitempty" mapstructure:"resend-igmp"`
	// Specify the interval between sending learning packets to each port.
	// The value ranges from 1 to 0x7fffffff. The default value is 1. This
	// option only affects balance-tlb and balance-alb modes. Using the
	// networkd renderer, this field maps to the LearnPacketIntervalSec=
	// property. If no time suffix is specified, the value will be
	// interpreted as seconds.
	LearnPacketInterval *string `yaml:"learn-packet-interval,omitempty" mapstructure:"learn-packet-interval"`
	// Specify a device to be used as a primary port, or preferred device
	// to use as a port for the bond (i.e. the preferred device to send
	// data through), whenever it is available. This only affects
	// active-backup, balance-alb and balance-tlb modes.
	Primary *string `yaml:"primary,omitempty" mapstructure:"primary"`
}

// BondMode is the bonding mode used for the member interfaces.
type BondMode string

const (
	BondModeBalanceRR    BondMode = "balance-rr"
	BondModeActiveBackup BondMode = "active-backup"
	BondModeBalanceXOR   BondMode = "balance-xor"
	BondModeBroadcast    BondMode = "broadcast"
	BondMode8023ad       BondMode = "802.3ad"
	BondModeBalanceTLB   BondMode = "balance-tlb"
	BondModeBalanceALB   BondMode = "balance-alb"
)

// LacpRate is the rate at which LACPDUs are transmitted in 802.3ad mode.
type LacpRate string

const (
	LacpRateSlow LacpRate = "slow"
	LacpRateFast LacpRate = "fast"
)

// TransmitHashPolicy selects the hash policy used for port selection.
type TransmitHashPolicy string

const (
	TransmitHashPolicyLayer2  TransmitHashPolicy = "layer2"
	TransmitHashPolicyLayer34 TransmitHashPolicy = "layer3+4"
	TransmitHashPolicyLayer23 TransmitHashPolicy = "layer2+3"
	TransmitHashPolicyEncap23 TransmitHashPolicy = "encap2+3"
	TransmitHashPolicyEncap34 TransmitHashPolicy = "encap3+4"
)

// AdSelect is the 802.3ad aggregation selection mode.
type AdSelect string

const (
	AdSelectStable    AdSelect = "stable"
	AdSelectBandwidth AdSelect = "bandwidth"
	AdSelectCount     AdSelect = "count"
)

// ARPValidate configures how ARP replies are validated.
type ARPValidate string

const (
	ARPValidateNone   ARPValidate = "none"
	ARPValidateActive ARPValidate = "active"
	ARPValidateBackup ARPValidate = "backup"
	ARPValidateAll    ARPValidate = "all"
)

// ARPAllTargets decides how many ARP IP targets must be reachable.
type ARPAllTargets string

const (
	ARPAllTargetsAny ARPAllTargets = "any"
	ARPAllTargetsAll ARPAllTargets = "all"
)

// FailOverMACPolicy governs MAC address handling on failover.
type FailOverMACPolicy string

const (
	FailOverMACPolicyNone   FailOverMACPolicy = "none"
	FailOverMACPolicyActive FailOverMACPolicy = "active"
	FailOverMACPolicyFollow FailOverMACPolicy = "follow"
)

// PrimaryReselectPolicy is the reselection policy for the primary port.
type PrimaryReselectPolicy string

const (
	PrimaryReselectPolicyAlways  PrimaryReselectPolicy = "always"
	PrimaryReselectPolicyBetter  PrimaryReselectPolicy = "better"
	PrimaryReselectPolicyFailure PrimaryReselectPolicy = "failure"
)
