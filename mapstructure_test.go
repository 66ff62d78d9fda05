package netplan

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromMap(t *testing.T) {
	config, err := FromMap(map[string]interface{}{
		"network": map[string]interface{}{
			"version": 2,
			"ethernets": map[string]interface{}{
				"eno1": map[string]interface{}{
					"dhcp4":    "yes",
					"dhcp6":    false,
					"gateway4": "10.0.0.1",
					"mtu":      9000,
					"dhcp4-overrides": map[string]interface{}{
						"use-dns": "off",
					},
				},
			},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, config.Network.Version)

	eth := config.Network.Ethernets["eno1"]
	assert.True(t, BoolVal(eth.DHCP4))
	require.NotNil(t, eth.DHCP6)
	assert.False(t, bool(*eth.DHCP6))
	assert.Equal(t, "10.0.0.1", StringVal(eth.Gateway4))
	assert.Equal(t, 9000, IntVal(eth.MTU))
	require.NotNil(t, eth.DHCP4Overrides)
	assert.False(t, BoolVal(eth.DHCP4Overrides.UseDNS))
}

func TestFromMap_scalarAddresses(t *testing.T) {
	config, err := FromMap(map[string]interface{}{
		"network": map[string]interface{}{
			"version": 2,
			"ethernets": map[string]interface{}{
				"eno1": map[string]interface{}{
					"addresses": []interface{}{
						"10.0.0.1/24",
						map[string]interface{}{
							"lifetime": "0",
							"label":    "backup",
						},
					},
				},
			},
		},
	})
	require.NoError(t, err)

	eth := config.Network.Ethernets["eno1"]
	require.Len(t, eth.Addresses, 2)
	assert.Equal(t, "10.0.0.1/24", eth.Addresses[0].Simple)
	assert.Equal(t, PreferredLifetimeZero, eth.Addresses[1].Lifetime)
	assert.Equal(t, "backup", eth.Addresses[1].Label)
}

func TestFromMap_scalarTunnelKey(t *testing.T) {
	config, err := FromMap(map[string]interface{}{
		"network": map[string]interface{}{
			"version": 2,
			"tunnels": map[string]interface{}{
				"wg0": map[string]interface{}{
					"mode": "wireguard",
					"key":  "SECRETKEY",
				},
				"gre1": map[string]interface{}{
					"mode": "gre",
					"key": map[string]interface{}{
						"input":  "1234",
						"output": "5678",
					},
				},
			},
		},
	})
	require.NoError(t, err)

	wg := config.Network.Tunnels["wg0"]
	require.NotNil(t, wg.Key)
	assert.Equal(t, "SECRETKEY", wg.Key.Simple)

	gre := config.Network.Tunnels["gre1"]
	require.NotNil(t, gre.Key)
	assert.Empty(t, gre.Key.Simple)
	assert.Equal(t, "1234", StringVal(gre.Key.Input))
	assert.Equal(t, "5678", StringVal(gre.Key.Output))
}

func TestFromMap_badBoolean(t *testing.T) {
	_, err := FromMap(map[string]interface{}{
		"network": map[string]interface{}{
			"version": 2,
			"ethernets": map[string]interface{}{
				"eno1": map[string]interface{}{
					"dhcp4": "maybe",
				},
			},
		},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"maybe"`)
}

func TestFromMap_unknownKey(t *testing.T) {
	_, err := FromMap(map[string]interface{}{
		"network": map[string]interface{}{
			"version": 2,
			"ethernets": map[string]interface{}{
				"eno1": map[string]interface{}{
					"dhpc4": true,
				},
			},
		},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dhpc4")
}

func TestBoolHookFunc(t *testing.T) {
	cases := []struct {
		name string
		in   interface{}
		e    bool
		err  bool
	}{
		{
			"native_bool",
			true,
			true,
			false,
		},
		{
			"lenient_string",
			"On",
			true,
			false,
		},
		{
			"falsy_string",
			"n",
			false,
			false,
		},
		{
			"already_converted",
			Bool(true),
			true,
			false,
		},
		{
			"unrecognized",
			"maybe",
			false,
			true,
		},
	}

	for i, tc := range cases {
		t.Run(fmt.Sprintf("%d_%s", i, tc.name), func(t *testing.T) {
			config, err := FromMap(map[string]interface{}{
				"network": map[string]interface{}{
					"version": 2,
					"ethernets": map[string]interface{}{
						"eno1": map[string]interface{}{
							"dhcp4": tc.in,
						},
					},
				},
			})
			if (err != nil) != tc.err {
				t.Fatalf("\nexp err: %t\nact err: %v", tc.err, err)
			}
			if tc.err {
				return
			}
			got := BoolVal(config.Network.Ethernets["eno1"].DHCP4)
			if got != tc.e {
				t.Errorf("\nexp: %t\nact: %t", tc.e, got)
			}
		})
	}
}
