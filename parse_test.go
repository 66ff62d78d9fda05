package netplan

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const workstationYAML = `
network:
  version: 2
  renderer: networkd
  ethernets:
    enp3s0:
      dhcp4: "no"
      addresses:
        - 10.10.10.2/24
      gateway4: 10.10.10.1
      nameservers:
        search: [mydomain, otherdomain]
        addresses: [10.10.10.1, 1.1.1.1]
      routes:
        - to: 192.168.14.0/24
          via: 10.10.10.254
          metric: 100
`

func TestParse(t *testing.T) {
	config, err := Parse([]byte(workstationYAML))
	require.NoError(t, err)

	assert.Equal(t, 2, config.Network.Version)
	require.NotNil(t, config.Network.Renderer)
	assert.Equal(t, RendererNetworkd, *config.Network.Renderer)

	eth, ok := config.Network.Ethernets["enp3s0"]
	require.True(t, ok)
	require.NotNil(t, eth.DHCP4)
	assert.False(t, bool(*eth.DHCP4))
	assert.Equal(t, "10.10.10.1", StringVal(eth.Gateway4))
	require.NotNil(t, eth.Nameservers)
	assert.Equal(t, []string{"10.10.10.1", "1.1.1.1"}, eth.Nameservers.Addresses)
	require.Len(t, eth.Routes, 1)
	assert.Equal(t, "192.168.14.0/24", StringVal(eth.Routes[0].To))
	assert.Equal(t, 100, IntVal(eth.Routes[0].Metric))

	// Absent optional booleans stay unset.
	assert.Nil(t, eth.DHCP6)
	assert.Nil(t, eth.Optional)
}

func TestParse_lenientBooleans(t *testing.T) {
	config, err := Parse([]byte(`
network:
  version: 2
  ethernets:
    eno1:
      dhcp4: yes
      dhcp6: "off"
      dhcp4-overrides:
        use-dns: "No"
        use-routes: on
`))
	require.NoError(t, err)

	eth := config.Network.Ethernets["eno1"]
	assert.True(t, BoolVal(eth.DHCP4))
	require.NotNil(t, eth.DHCP6)
	assert.False(t, bool(*eth.DHCP6))
	require.NotNil(t, eth.DHCP4Overrides)
	assert.False(t, BoolVal(eth.DHCP4Overrides.UseDNS))
	assert.True(t, BoolVal(eth.DHCP4Overrides.UseRoutes))
}

func TestParse_badBoolean(t *testing.T) {
	_, err := Parse([]byte(`
network:
  version: 2
  ethernets:
    eno1:
      dhcp4: maybe
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"maybe"`)
}

func TestParse_unknownKey(t *testing.T) {
	_, err := Parse([]byte(`
network:
  version: 2
  ethernets:
    eno1:
      dhpc4: true
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dhpc4")
}

func TestParse_deviceTypes(t *testing.T) {
	config, err := Parse([]byte(`
network:
  version: 2
  ethernets:
    eno1: {}
    eno2: {}
  bonds:
    bond0:
      interfaces: [eno1, eno2]
      parameters:
        mode: 802.3ad
        lacp-rate: fast
        transmit-hash-policy: layer3+4
  vlans:
    bond0.100:
      id: 100
      link: bond0
  tunnels:
    wg0:
      mode: wireguard
      key: SECRETKEY
      port: "51820"
      peers:
        - endpoint: 1.2.3.4:5
          allowed-ips: [0.0.0.0/0]
          keys:
            public: PUBKEY
  vrfs:
    vrf20:
      table: 20
      interfaces: [bond0.100]
`))
	require.NoError(t, err)

	n := config.Network

	bond := n.Bonds["bond0"]
	assert.Equal(t, []string{"eno1", "eno2"}, bond.Interfaces)
	require.NotNil(t, bond.Parameters)
	assert.Equal(t, BondMode8023ad, *bond.Parameters.Mode)
	assert.Equal(t, TransmitHashPolicyLayer34, *bond.Parameters.TransmitHashPolicy)

	vlan := n.Vlans["bond0.100"]
	assert.Equal(t, 100, IntVal(vlan.ID))
	assert.Equal(t, "bond0", StringVal(vlan.Link))

	tun := n.Tunnels["wg0"]
	require.NotNil(t, tun.Mode)
	assert.Equal(t, TunnelModeWireGuard, *tun.Mode)
	require.NotNil(t, tun.Key)
	assert.Equal(t, "SECRETKEY", tun.Key.Simple)
	require.Len(t, tun.Peers, 1)
	assert.Equal(t, "PUBKEY", StringVal(tun.Peers[0].Keys.Public))

	vrf := n.Vrfs["vrf20"]
	assert.Equal(t, 20, vrf.Table)
	assert.Equal(t, []string{"bond0.100"}, vrf.Interfaces)
}

func TestParse_addressMappings(t *testing.T) {
	config, err := Parse([]byte(`
network:
  version: 2
  ethernets:
    eno1:
      addresses:
        - 10.0.0.2/24
        - lifetime: "0"
          label: backup
`))
	require.NoError(t, err)

	eth := config.Network.Ethernets["eno1"]
	require.Len(t, eth.Addresses, 2)
	assert.Equal(t, "10.0.0.2/24", eth.Addresses[0].Simple)
	assert.Equal(t, PreferredLifetimeZero, eth.Addresses[1].Lifetime)
	assert.Equal(t, "backup", eth.Addresses[1].Label)
}

func TestConfig_bytes(t *testing.T) {
	config, err := Parse([]byte(workstationYAML))
	require.NoError(t, err)

	out, err := config.Bytes()
	require.NoError(t, err)

	// Lenient spellings normalize on output.
	assert.Contains(t, string(out), "dhcp4: false")
	assert.NotContains(t, string(out), "dhcp6")

	again, err := Parse(out)
	require.NoError(t, err)
	assert.Equal(t, config, again)
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "01-netcfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte(workstationYAML), 0o644))

	config, err := FromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, config.Network.Version)

	_, err = FromFile(filepath.Join(dir, "nope.yaml"))
	require.Error(t, err)
}

func TestFromPath_dirMerge(t *testing.T) {
	dir := t.TempDir()

	base := `
network:
  version: 2
  ethernets:
    eno1:
      dhcp4: true
      mtu: 1500
`
	override := `
network:
  ethernets:
    eno1:
      dhcp4: false
    eno2:
      dhcp4: true
`
	extra := `
network:
  ethernets:
    eno3:
      dhcp6: true
`
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "00-base.yaml"), []byte(base), 0o644))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "90-override.yaml"), []byte(override), 0o644))
	// The short extension is read too.
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "95-extra.yml"), []byte(extra), 0o644))
	// Non-yaml files are ignored.
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "README"), []byte("not yaml"), 0o644))

	config, err := FromPath(dir)
	require.NoError(t, err)

	assert.Equal(t, 2, config.Network.Version)

	eno1 := config.Network.Ethernets["eno1"]
	// The later file wins on scalar conflicts but sibling keys survive.
	assert.False(t, BoolVal(eno1.DHCP4))
	assert.Equal(t, 1500, IntVal(eno1.MTU))

	eno2 := config.Network.Ethernets["eno2"]
	assert.True(t, BoolVal(eno2.DHCP4))

	eno3 := config.Network.Ethernets["eno3"]
	assert.True(t, BoolVal(eno3.DHCP6))
}

func TestFromPath_file(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(workstationYAML), 0o644))

	config, err := FromPath(path)
	require.NoError(t, err)
	assert.Equal(t, 2, config.Network.Version)
}

func TestFromPath_emptyDir(t *testing.T) {
	dir := t.TempDir()

	_, err := FromPath(dir)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "no netplan files"))
}

func TestConfig_writeFile(t *testing.T) {
	config, err := Parse([]byte(workstationYAML))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, config.WriteFile(path, 0o644))

	again, err := FromFile(path)
	require.NoError(t, err)
	assert.Equal(t, config, again)
}
