package netplan

// AuthConfig holds the advanced authentication settings netplan supports
// for ethernet and wifi interfaces, as well as individual wifi networks.
type AuthConfig struct {
	// The key management mode: none (no key management), psk (WPA with
	// pre-shared key, common for home wifi), eap (WPA with EAP, common for
	// enterprise wifi) or 802.1x (used primarily for wired Ethernet).
	KeyManagement *KeyManagementMode `yaml:"key-management,omitempty" mapstructure:"key-management"`
	// The password string for EAP, or the pre-shared key for WPA-PSK.
	Password *string `yaml:"password,omitempty" mapstructure:"password"`
	// The EAP method to use.
	Method *AuthMethod `yaml:"method,omitempty" mapstructure:"method"`
	// The identity to use for EAP.
	Identity *string `yaml:"identity,omitempty" mapstructure:"identity"`
	// The identity to pass over the unencrypted channel, if the chosen EAP
	// method supports a different tunnelled identity.
	AnonymousIdentity *string `yaml:"anonymous-identity,omitempty" mapstructure:"anonymous-identity"`
	// Path to a file with one or more trusted CA certificates.
	CACertificate *string `yaml:"ca-certificate,omitempty" mapstructure:"ca-certificate"`
	// Path to a file containing the certificate used by the client during
	// authentication.
	ClientCertificate *string `yaml:"client-certificate,omitempty" mapstructure:"client-certificate"`
	// Path to a file containing the private key corresponding to
	// client-certificate.
	ClientKey *string `yaml:"client-key,omitempty" mapstructure:"client-key"`
	// Password to decrypt the private key in client-key, if encrypted.
	ClientKeyPassword *string `yaml:"client-key-password,omitempty" mapstructure:"client-key-password"`
	// Phase 2 authentication mechanism.
	Phase2Auth *string `yaml:"phase2-auth,omitempty" mapstructure:"phase2-auth"`
}

// AuthMethod is the EAP method to use.
type AuthMethod string

const (
	AuthMethodTLS  AuthMethod = "tls"
	AuthMethodPEAP AuthMethod = "peap"
	AuthMethodTTLS AuthMethod = "ttls"
)

// KeyManagementMode is the supported key management mode.
type KeyManagementMode string

const (
	KeyManagementNone  KeyManagementMode = "none"
	KeyManagementPSK   KeyManagementMode = "psk"
	KeyManagementEAP   KeyManagementMode = "eap"
	KeyManagement8021x KeyManagementMode = "802.1x"
)
