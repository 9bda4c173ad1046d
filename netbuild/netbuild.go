// Package netbuild: deterministic topology constructors.
package netbuild

import (
	"errors"
	"fmt"

	"github.com/voltkern/voltkern/netmodel"
)

// ErrSize indicates a constructor size below the topology's minimum.
var ErrSize = errors.New("netbuild: size below topology minimum")

// Chain builds an n-bus radial network: branch i joins bus i to bus i+1
// with the impedance profile's i-th value. With WithBusRows or
// WithZoneSize, every bus also carries one attribute row.
//
// Chains are the workhorse fixture: their kernels are dense, well
// conditioned and grow linearly, which keeps selection and interpolation
// behavior inspectable at any size.
func Chain(n int, opts ...Option) (*netmodel.Network, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: chain needs 2 buses, got %d", ErrSize, n)
	}
	o := gatherOptions(opts...)
	net, err := netmodel.New(n)
	if err != nil {
		return nil, err
	}
	if err := addRows(net, n, o); err != nil {
		return nil, err
	}
	for i := 0; i < n-1; i++ {
		r, x := o.impedance(i)
		br := netmodel.Branch{From: i, To: i + 1, R: r, X: x, Phase: o.phase}
		if err := net.AddBranch(br); err != nil {
			return nil, err
		}
	}
	return net, nil
}

// Star builds an n-bus hub-and-spoke network: branch i joins bus 0 to bus
// i+1 with the impedance profile's i-th value. Options behave as for
// Chain.
//
// Stars stress the opposite regime from chains: every pair of leaves is
// exactly two hops apart, so kernel similarity concentrates on the hub.
func Star(n int, opts ...Option) (*netmodel.Network, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: star needs 2 buses, got %d", ErrSize, n)
	}
	o := gatherOptions(opts...)
	net, err := netmodel.New(n)
	if err != nil {
		return nil, err
	}
	if err := addRows(net, n, o); err != nil {
		return nil, err
	}
	for i := 1; i < n; i++ {
		r, x := o.impedance(i - 1)
		br := netmodel.Branch{From: 0, To: i, R: r, X: x, Phase: o.phase}
		if err := net.AddBranch(br); err != nil {
			return nil, err
		}
	}
	return net, nil
}

// addRows emits the optional per-bus attribute rows.
func addRows(net *netmodel.Network, n int, o Options) error {
	if !o.rows {
		return nil
	}
	for i := 0; i < n; i++ {
		zone := netmodel.ZoneNone
		if o.zoneSize > 0 {
			zone = i / o.zoneSize
		}
		b := netmodel.Bus{Index: i, Phase: o.phase, P: o.p, Q: o.q, V: o.v, Zone: zone}
		if err := net.AddBus(b); err != nil {
			return err
		}
	}
	return nil
}
