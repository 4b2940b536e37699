package monitor

import (
	log "github.com/sirupsen/logrus"

	"wifi-check-termui/internal/wifi"
)

// Level classifies signal strength for display.
type Level string

const (
	LevelGood Level = "good"
	LevelWarn Level = "warn"
	LevelBad  Level = "bad"
)

// Row is one interface's displayable sample. Mac has already been
// through the anonymization policy.
type Row struct {
	Name       string
	Associated bool
	SignalDBM  int
	Level      Level
	Mac        string
}

// ErrorSignal is a displayable sampling failure.
type ErrorSignal struct {
	Header string
	Detail string
}

var (
	errNoInterface = &ErrorSignal{
		Header: "wifi interface error",
		Detail: "wifi interface is not existed",
	}
	errNoConnection = &ErrorSignal{
		Header: "Internet connection failed",
		Detail: "Internet connection do not exists",
	}
)

// New creates and returns a wireless telemetry monitor.
func New(querier wifi.Querier, logger *log.Logger) *Monitor {
	return &Monitor{
		querier: querier,
		logger:  logger,
	}
}

// Monitor turns raw interface telemetry into display rows.
type Monitor struct {
	querier wifi.Querier
	logger  *log.Logger
}

// Sample queries every named wireless interface once and returns rows
// in interface-list order. Any failure aborts the whole sample: either
// the full row set comes back or a single displayable signal, never a
// partial result.
func (m *Monitor) Sample(hide bool) ([]Row, *ErrorSignal) {
	ifaces, err := m.querier.Interfaces()
	if err != nil {
		m.logger.Error(err)
		return nil, errNoInterface
	}

	// The kernel reports a single placeholder entry when no real
	// wireless interface exists, so a list of length one means missing.
	if len(ifaces) == 1 {
		return nil, errNoInterface
	}

	rows := make([]Row, 0, len(ifaces))

	for _, ifi := range ifaces {
		if ifi.Name == "" {
			continue
		}

		bss, err := m.querier.BSS(ifi.Index)
		if err != nil {
			m.logger.Error(err)
			return nil, errNoConnection
		}
		if bss == nil || bss.Status == nil {
			return nil, errNoConnection
		}

		var signal int
		if bss.SignalMBM != nil {
			signal = *bss.SignalMBM / 100
		}

		m.logger.Debugf(
			"frequency %d beacon_interval %s seen %s",
			bss.Frequency, bss.BeaconInterval, bss.LastSeen,
		)

		if len(ifi.HardwareAddr) == 0 {
			continue
		}
		mac := Anonymize(ifi.HardwareAddr.String(), hide)

		m.logger.Debugf("mac %s phy %d device %d", mac, ifi.PHY, ifi.Device)

		rows = append(rows, Row{
			Name:       ifi.Name,
			Associated: *bss.Status == wifi.StatusAssociated,
			SignalDBM:  signal,
			Level:      LevelFor(signal),
			Mac:        mac,
		})
	}

	return rows, nil
}

// LevelFor buckets a signal by the absolute magnitude of its dBm value.
func LevelFor(signal int) Level {
	if signal < 0 {
		signal = -signal
	}
	switch {
	case signal <= 60:
		return LevelGood
	case signal <= 100:
		return LevelWarn
	default:
		return LevelBad
	}
}
