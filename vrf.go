package netplan

// VrfConfig configures one entry under vrfs.
type VrfConfig struct {
	// The numeric routing table identifier. This setting is compulsory.
	Table int `yaml:"table" mapstructure:"table"`
	// All devices matching this ID list will be added to the VRF. This may
	// be an empty list, in which case the VRF will be brought online with
	// no member interfaces.
	Interfaces []string `yaml:"interfaces" mapstructure:"interfaces"`

	CommonProperties `yaml:",inline" mapstructure:",squash"`
}
