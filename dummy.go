package netplan

// DummyDeviceConfig configures one entry under dummy-devices. Dummy devices
// are virtual interfaces that can be used to route packets to without
// actually transmitting them.
type DummyDeviceConfig struct {
	CommonProperties `yaml:",inline" mapstructure:",squash"`
}
