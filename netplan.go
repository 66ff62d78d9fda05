// Package netplan maps the netplan network configuration schema into native
// Go types. The layout follows what you would write in a netplan YAML file,
// so a parsed document can be inspected, edited and written back without
// losing structure. See https://netplan.io/reference for the format itself.
package netplan

// Config is the root of a netplan document.
type Config struct {
	Network NetworkConfig `yaml:"network" mapstructure:"network"`
}

// NetworkConfig holds the global settings and the per-device-type
// collections. Each collection is a mapping from netplan device ID to that
// device's configuration.
type NetworkConfig struct {
	Version  int       `yaml:"version" mapstructure:"version"`
	Renderer *Renderer `yaml:"renderer,omitempty" mapstructure:"renderer"`

	Ethernets    map[string]EthernetConfig    `yaml:"ethernets,omitempty" mapstructure:"ethernets"`
	Modems       map[string]ModemConfig       `yaml:"modems,omitempty" mapstructure:"modems"`
	Wifis        map[string]WifiConfig        `yaml:"wifis,omitempty" mapstructure:"wifis"`
	Bridges      map[string]BridgeConfig      `yaml:"bridges,omitempty" mapstructure:"bridges"`
	DummyDevices map[string]DummyDeviceConfig `yaml:"dummy-devices,omitempty" mapstructure:"dummy-devices"`
	Bonds        map[string]BondConfig        `yaml:"bonds,omitempty" mapstructure:"bonds"`
	Tunnels      map[string]TunnelConfig      `yaml:"tunnels,omitempty" mapstructure:"tunnels"`
	Vlans        map[string]VlanConfig        `yaml:"vlans,omitempty" mapstructure:"vlans"`
	Vrfs         map[string]VrfConfig         `yaml:"vrfs,omitempty" mapstructure:"vrfs"`
	NMDevices    map[string]NMDeviceConfig    `yaml:"nm-devices,omitempty" mapstructure:"nm-devices"`
}

// Renderer selects the networking backend used for a definition. It can be
// set globally in network:, per device type (e.g. in ethernets:) or per
// device. The default is networkd.
//
// Since netplan 0.99, vlan definitions additionally accept sriov, which sets
// up a hardware VLAN filter for an SR-IOV Virtual Function interface. There
// can be only one per VF.
type Renderer string

const (
	RendererNetworkd       Renderer = "networkd"
	RendererNetworkManager Renderer = "NetworkManager"
	RendererSriov          Renderer = "sriov"
)
