package netplan

import (
	"fmt"

	multierror "github.com/hashicorp/go-multierror"
)

// Validate checks the Config for structural problems that the schema itself
// cannot express. All problems found are accumulated and returned as one
// error; a nil return means the configuration is valid.
func (c *Config) Validate() error {
	var errs *multierror.Error

	n := &c.Network

	if n.Version != 2 {
		errs = multierror.Append(errs, fmt.Errorf(
			"network.version must be 2, got %d", n.Version))
	}

	defined := c.deviceIDs()

	for id, vlan := range n.Vlans {
		if vlan.ID == nil {
			errs = multierror.Append(errs, fmt.Errorf(
				"vlan %q: missing id", id))
		} else if *vlan.ID < 0 || *vlan.ID > 4094 {
			errs = multierror.Append(errs, fmt.Errorf(
				"vlan %q: id must be between 0 and 4094, got %d", id, *vlan.ID))
		}
		if vlan.Link == nil {
			errs = multierror.Append(errs, fmt.Errorf(
				"vlan %q: missing link", id))
		} else if !defined[*vlan.Link] {
			errs = multierror.Append(errs, fmt.Errorf(
				"vlan %q: link %q is not a defined device", id, *vlan.Link))
		}
	}

	for id, vrf := range n.Vrfs {
		if vrf.Table == 0 {
			errs = multierror.Append(errs, fmt.Errorf(
				"vrf %q: missing table", id))
		}
		for _, member := range vrf.Interfaces {
			if !defined[member] {
				errs = multierror.Append(errs, fmt.Errorf(
					"vrf %q: interface %q is not a defined device", id, member))
			}
		}
	}

	for id, bridge := range n.Bridges {
		for _, member := range bridge.Interfaces {
			if !defined[member] {
				errs = multierror.Append(errs, fmt.Errorf(
					"bridge %q: interface %q is not a defined device", id, member))
			}
		}
	}

	for id, bond := range n.Bonds {
		for _, member := range bond.Interfaces {
			if !defined[member] {
				errs = multierror.Append(errs, fmt.Errorf(
					"bond %q: interface %q is not a defined device", id, member))
			}
		}
	}

	for id, wifi := range n.Wifis {
		for ssid, ap := range wifi.AccessPoints {
			if ap.Channel != nil && ap.Band == nil {
				errs = multierror.Append(errs, fmt.Errorf(
					"wifi %q: access point %q: channel requires band", id, ssid))
			}
		}
	}

	return errs.ErrorOrNil()
}

// deviceIDs collects the netplan IDs of every defined device, across all
// device types.
func (c *Config) deviceIDs() map[string]bool {
	n := &c.Network
	ids := make(map[string]bool)
	for id := range n.Ethernets {
		ids[id] = true
	}
	for id := range n.Modems {
		ids[id] = true
	}
	for id := range n.Wifis {
		ids[id] = true
	}
	for id := range n.Bridges {
		ids[id] = true
	}
	for id := range n.DummyDevices {
		ids[id] = true
	}
	for id := range n.Bonds {
		ids[id] = true
	}
	for id := range n.Tunnels {
		ids[id] = true
	}
	for id := range n.Vlans {
		ids[id] = true
	}
	for id := range n.Vrfs {
		ids[id] = true
	}
	for id := range n.NMDevices {
		ids[id] = true
	}
	return ids
}
