package wifi

import (
	"errors"
	"fmt"
	"os"
	"sync"

	mdwifi "github.com/mdlayher/wifi"
)

// Connect opens the nl80211 generic netlink socket. Failure here is
// unrecoverable for the dashboard and should abort startup.
func Connect() (*Socket, error) {
	client, err := mdwifi.New()
	if err != nil {
		return nil, fmt.Errorf("can't open nl80211 socket: %w", err)
	}
	return &Socket{
		client:  client,
		byIndex: make(map[int]*mdwifi.Interface),
	}, nil
}

// Socket implements Querier against the kernel's nl80211 subsystem.
type Socket struct {
	client *mdwifi.Client

	mu      sync.Mutex
	byIndex map[int]*mdwifi.Interface
}

// Close releases the netlink socket.
func (s *Socket) Close() error {
	return s.client.Close()
}

// Interfaces lists the current wireless interfaces and remembers them
// by index for subsequent BSS lookups.
func (s *Socket) Interfaces() ([]Interface, error) {
	ifis, err := s.client.Interfaces()
	if err != nil {
		return nil, fmt.Errorf("interface list error: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Interface, 0, len(ifis))
	for _, ifi := range ifis {
		s.byIndex[ifi.Index] = ifi
		out = append(out, Interface{
			Index:        ifi.Index,
			Name:         ifi.Name,
			HardwareAddr: ifi.HardwareAddr,
			PHY:          ifi.PHY,
			Device:       ifi.Device,
			Frequency:    ifi.Frequency,
		})
	}
	return out, nil
}

// BSS fetches the access-point record for the interface with the given
// index. An interface that is simply not associated yields (nil, nil).
func (s *Socket) BSS(ifIndex int) (*BSS, error) {
	s.mu.Lock()
	ifi, ok := s.byIndex[ifIndex]
	s.mu.Unlock()

	if !ok {
		return nil, fmt.Errorf("unknown interface index: %d", ifIndex)
	}

	bss, err := s.client.BSS(ifi)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("bss info error: %w", err)
	}

	status := int(bss.Status)
	rec := &BSS{
		Status:         &status,
		Frequency:      bss.Frequency,
		BeaconInterval: bss.BeaconInterval,
		LastSeen:       bss.LastSeen,
	}

	// Signal strength lives on the station record, in whole dBm.
	if stations, err := s.client.StationInfo(ifi); err == nil && len(stations) > 0 {
		mbm := stations[0].Signal * 100
		rec.SignalMBM = &mbm
	}

	return rec, nil
}
