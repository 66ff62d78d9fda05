package netplan

// WifiConfig configures one entry under wifis.
type WifiConfig struct {
	// Pre-configured connections for NetworkManager; users can of course
	// still select other access points/SSIDs. The keys of the mapping are
	// the SSIDs.
	AccessPoints map[string]AccessPointConfig `yaml:"access-points,omitempty" mapstructure:"access-points"`
	// Enable WakeOnWLan on supported devices. Not all drivers support all
	// options. Any combination of the flags, or the exclusive default flag
	// (the default).
	WakeOnWLAN []WakeOnWLANFlag `yaml:"wakeonwlan,omitempty" mapstructure:"wakeonwlan"`

	PhysicalProperties `yaml:",inline" mapstructure:",squash"`
	CommonProperties   `yaml:",inline" mapstructure:",squash"`
}

// AccessPointConfig describes one SSID's connection settings.
type AccessPointConfig struct {
	// Enable WPA2 authentication and set the passphrase for it. If neither
	// this nor an auth block are given, the network is assumed to be open.
	Password *string     `yaml:"password,omitempty" mapstructure:"password"`
	Auth     *AuthConfig `yaml:"auth,omitempty" mapstructure:"auth"`
	// The access point mode. ap is only supported with NetworkManager.
	Mode *AccessPointMode `yaml:"mode,omitempty" mapstructure:"mode"`
	// Only associate with the given access point.
	BSSID *string `yaml:"bssid,omitempty" mapstructure:"bssid"`
	// Restrict the 802.11 frequency band of the network. Unset (the
	// default) means no restriction.
	Band *WirelessBand `yaml:"band,omitempty" mapstructure:"band"`
	// Wireless channel for the Wi-Fi connection. Because channel numbers
	// overlap between bands, this property only takes effect when band is
	// also set.
	Channel *int `yaml:"channel,omitempty" mapstructure:"channel"`
	// Change the SSID scan technique for connecting to hidden networks.
	// May be slower than false (the default) for publicly broadcast SSIDs.
	Hidden *Bool `yaml:"hidden,omitempty" mapstructure:"hidden"`
}

// WirelessBand restricts the 802.11 frequency band of the network.
type WirelessBand string

const (
	Band24GHz WirelessBand = "2.4GHz"
	Band5GHz  WirelessBand = "5GHz"
)

// AccessPointMode is the operating mode for a wifi network.
type AccessPointMode string

const (
	// APModeInfrastructure is the default station mode.
	APModeInfrastructure AccessPointMode = "infrastructure"
	// APModeAP creates an access point other devices can connect to.
	APModeAP AccessPointMode = "ap"
	// APModeAdhoc is peer to peer networking without a central access point.
	APModeAdhoc AccessPointMode = "adhoc"
)

// WakeOnWLANFlag is one WakeOnWLan trigger.
type WakeOnWLANFlag string

const (
	WakeOnWLANAny              WakeOnWLANFlag = "any"
	WakeOnWLANDisconnect       WakeOnWLANFlag = "disconnect"
	WakeOnWLANMagicPkt         WakeOnWLANFlag = "magic_pkt"
	WakeOnWLANGTKRekeyFailure  WakeOnWLANFlag = "gtk_rekey_failure"
	WakeOnWLANEAPIdentityReq   WakeOnWLANFlag = "eap_identity_req"
	WakeOnWLANFourWayHandshake WakeOnWLANFlag = "four_way_handshake"
	WakeOnWLANRfkillRelease    WakeOnWLANFlag = "rfkill_release"
	// WakeOnWLANTCP is supported by NetworkManager only.
	WakeOnWLANTCP WakeOnWLANFlag = "tcp"
	// WakeOnWLANDefault is exclusive with the other flags.
	WakeOnWLANDefault WakeOnWLANFlag = "default"
)
