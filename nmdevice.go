package netplan

// NMDeviceConfig configures one entry under nm-devices. nm-devices are
// created by NetworkManager for connection profiles that have no netplan
// counterpart; they carry the raw NetworkManager settings as passthrough
// and are not meant to be written by hand.
type NMDeviceConfig struct {
	NetworkManager *NetworkManagerSettings `yaml:"networkmanager,omitempty" mapstructure:"networkmanager"`
}

// NetworkManagerSettings holds NetworkManager-specific configuration for a
// connection profile.
type NetworkManagerSettings struct {
	// The NetworkManager UUID of the original connection profile.
	UUID *string `yaml:"uuid,omitempty" mapstructure:"uuid"`
	// The name of the original NetworkManager connection profile.
	Name *string `yaml:"name,omitempty" mapstructure:"name"`
	// Keyfile settings that have no netplan equivalent, as
	// "section.key: value" pairs.
	Passthrough map[string]string `yaml:"passthrough,omitempty" mapstructure:"passthrough"`
}
