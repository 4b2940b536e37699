package wifi

import (
	"net"
	"time"
)

// Interface is a wireless interface as reported by the kernel.
type Interface struct {
	Index        int
	Name         string
	HardwareAddr net.HardwareAddr
	PHY          int
	Device       int
	Frequency    int
}

// BSS is the access-point record an interface is associated with.
// Signal is kept in hundredths of dBm, the unit nl80211 reports.
type BSS struct {
	Status         *int
	SignalMBM      *int
	Frequency      int
	BeaconInterval time.Duration
	LastSeen       time.Duration
}

// BSS status codes, as nl80211 defines them.
const (
	StatusAuthenticated = iota
	StatusAssociated
	StatusIBSSJoined
)

// Querier asks the operating system for wireless telemetry. BSS returns
// nil without an error when the interface has no access-point record.
type Querier interface {
	Interfaces() ([]Interface, error)
	BSS(ifIndex int) (*BSS, error)
}
