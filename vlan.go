package netplan

// VlanConfig configures one entry under vlans.
type VlanConfig struct {
	// VLAN ID, a number between 0 and 4094.
	ID *int `yaml:"id,omitempty" mapstructure:"id"`
	// netplan ID of the underlying device definition on which this VLAN
	// gets created.
	Link *string `yaml:"link,omitempty" mapstructure:"link"`

	CommonProperties `yaml:",inline" mapstructure:",squash"`
}
