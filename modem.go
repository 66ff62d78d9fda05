package netplan

// ModemConfig configures one entry under modems. GSM/CDMA modem
// connections are only supported with the NetworkManager backend. systemd-
// networkd does not support modems.
type ModemConfig struct {
	// Set the carrier APN (Access Point Name). This can be omitted if
	// auto-config is enabled.
	APN *string `yaml:"apn,omitempty" mapstructure:"apn"`
	// Specify whether to try and auto-configure the modem by doing a
	// lookup of the carrier against the Mobile Broadband Provider
	// database. This may not work for all carriers.
	AutoConfig *Bool `yaml:"auto-config,omitempty" mapstructure:"auto-config"`
	// Specify the device ID (as given by the WWAN management service) of
	// the modem to match. This can be found using mmcli.
	DeviceID *string `yaml:"device-id,omitempty" mapstructure:"device-id"`
	// Specify the Network ID (GSM LAI format). If this is specified,
	// the device will not roam networks.
	NetworkID *string `yaml:"network-id,omitempty" mapstructure:"network-id"`
	// The number to dial to establish the connection to the mobile
	// broadband network. (Deprecated for GSM)
	Number *string `yaml:"number,omitempty" mapstructure:"number"`
	// Specify the password used to authenticate with the carrier network.
	// This can be omitted if auto-config is enabled.
	Password *string `yaml:"password,omitempty" mapstructure:"password"`
	// Specify the SIM PIN to allow it to operate if a PIN is set.
	PIN *string `yaml:"pin,omitempty" mapstructure:"pin"`
	// Specify the SIM unique identifier (as given by the WWAN management
	// service) which this connection applies to. If given, the connection
	// will apply to any device also allowed by device-id which contains a
	// SIM card matching the given identifier.
	SIMID *string `yaml:"sim-id,omitempty" mapstructure:"sim-id"`
	// Specify the MCC/MNC string (such as "310260" or "21601") which
	// identifies the carrier that this connection should apply to. If
	// given, the connection will apply to any device also allowed by
	// device-id and sim-id which contains a SIM card provisioned by the
	// given operator.
	SIMOperatorID *string `yaml:"sim-operator-id,omitempty" mapstructure:"sim-operator-id"`
	// Specify the username used to authenticate with the carrier network.
	// This can be omitted if auto-config is enabled.
	Username *string `yaml:"username,omitempty" mapstructure:"username"`

	PhysicalProperties `yaml:",inline" mapstructure:",squash"`
	CommonProperties   `yaml:",inline" mapstructure:",squash"`
}
