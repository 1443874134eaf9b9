// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2026 The Talus developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"io"
	"net"
	"time"
)

// maxNetAddressPayload returns the max payload size for a talus NetAddress
// based on the protocol version.
func maxNetAddressPayload(pver uint32) uint32 {
	plen := uint32(8 + 16 + 2) // services + ip + port
	if pver >= NetAddressTimeVersion {
		plen += 4
	}
	return plen
}

// NetAddress defines information about a peer on the network, including the
// time it was last seen, the services it supports, its IP address, and port.
type NetAddress struct {
	// Time the address was last seen.  This is not used when the protocol
	// version is less than NetAddressTimeVersion.
	Timestamp time.Time

	// Bitfield which identifies the services supported by the address.
	Services ServiceFlag

	// IP address of the peer.
	IP net.IP

	// Port the peer is using.  This is encoded in big endian on the wire
	// which differs from most everything else.
	Port uint16
}

// NewNetAddressIPPort returns a new NetAddress using the provided IP, port,
// and supported services with defaults for the remaining fields.
func NewNetAddressIPPort(ip net.IP, port uint16, services ServiceFlag) *NetAddress {
	return NewNetAddressTimestamp(time.Now(), services, ip, port)
}

// NewNetAddressTimestamp returns a new NetAddress using the provided
// timestamp, IP, port, and supported services.
func NewNetAddressTimestamp(timestamp time.Time, services ServiceFlag, ip net.IP, port uint16) *NetAddress {
	na := NetAddress{
		Timestamp: time.Unix(timestamp.Unix(), 0),
		Services:  services,
		IP:        ip,
		Port:      port,
	}
	return &na
}

// readNetAddress reads an encoded NetAddress from r depending on the
// protocol version and whether or not the timestamp field, which was added
// in NetAddressTimeVersion, is present.
func readNetAddress(r io.Reader, pver uint32, na *NetAddress, ts bool) error {
	var ip [16]byte

	if ts && pver >= NetAddressTimeVersion {
		stamp, err := binarySerializer.Uint32(r, littleEndian)
		if err != nil {
			return err
		}
		na.Timestamp = time.Unix(int64(stamp), 0)
	}

	services, err := binarySerializer.Uint64(r, littleEndian)
	if err != nil {
		return err
	}
	na.Services = ServiceFlag(services)

	if _, err := io.ReadFull(r, ip[:]); err != nil {
		return err
	}
	na.IP = net.IP(ip[:]).To16()

	port, err := binarySerializer.Uint16(r, bigEndian)
	if err != nil {
		return err
	}
	na.Port = port

	return nil
}

// writeNetAddress serializes a NetAddress to w depending on the protocol
// version and whether or not the timestamp field, which was added in
// NetAddressTimeVersion, is included.
func writeNetAddress(w io.Writer, pver uint32, na *NetAddress, ts bool) error {
	if ts && pver >= NetAddressTimeVersion {
		err := binarySerializer.PutUint32(w, littleEndian, uint32(na.Timestamp.Unix()))
		if err != nil {
			return err
		}
	}

	if err := binarySerializer.PutUint64(w, littleEndian, uint64(na.Services)); err != nil {
		return err
	}

	var ip [16]byte
	if na.IP != nil {
		copy(ip[:], na.IP.To16())
	}
	if _, err := w.Write(ip[:]); err != nil {
		return err
	}

	return binarySerializer.PutUint16(w, bigEndian, na.Port)
}
