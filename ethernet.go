package netplan

// EthernetConfig configures one entry under ethernets.
type EthernetConfig struct {
	// (SR-IOV devices only) Declare the device as a Virtual Function of the
	// selected Physical Function device, identified by its netplan ID.
	Link *string `yaml:"link,omitempty" mapstructure:"link"`
	// (SR-IOV devices only) Set an explicit number of Virtual Functions for
	// the given Physical Function, for VFs configured outside of netplan.
	// If unset, only as many VFs as are defined in the netplan
	// configuration are created. Special cases only.
	VirtualFunctionCount *int `yaml:"virtual-function-count,omitempty" mapstructure:"virtual-function-count"`
	// (SR-IOV devices only) Operational mode of the embedded switch of a
	// supported SmartNIC PCI device (e.g. Mellanox ConnectX-5). If
	// unspecified the vendor's default configuration is used.
	EmbeddedSwitchMode *EmbeddedSwitchMode `yaml:"embedded-switch-mode,omitempty" mapstructure:"embedded-switch-mode"`
	// (SR-IOV devices only) Delay rebinding of SR-IOV virtual functions to
	// its driver after changing the embedded-switch-mode setting to a later
	// stage. Can be enabled when bonding/VF LAG is in use. Defaults to
	// false.
	DelayVirtualFunctionsRebind *bool `yaml:"delay-virtual-functions-rebind,omitempty" mapstructure:"delay-virtual-functions-rebind"`

	PhysicalProperties `yaml:",inline" mapstructure:",squash"`
	CommonProperties   `yaml:",inline" mapstructure:",squash"`
}

// EmbeddedSwitchMode is the operational mode of a SmartNIC embedded switch.
type EmbeddedSwitchMode string

const (
	EmbeddedSwitchModeSwitchdev EmbeddedSwitchMode = "switchdev"
	EmbeddedSwitchModeLegacy    EmbeddedSwitchMode = "legacy"
)
