package sequencer

import (
	"fmt"
	"time"
)

const (
	// 2024-01-01T00:00:00Z
	epochMillis int64 = 1704067200000

	datacenterBits = 5
	workerBits     = 5
	sequenceBits   = 12

	maxDatacenterID int64 = -1 ^ (-1 << datacenterBits)
	maxWorkerID     int64 = -1 ^ (-1 << workerBits)
	sequenceMask    int64 = -1 ^ (-1 << sequenceBits)

	workerShift     = sequenceBits
	datacenterShift = sequenceBits + workerBits
	timestampShift  = sequenceBits + workerBits + datacenterBits
)

// Generator issues strictly increasing snowflake ids.
// It is not safe for concurrent use; the Actor owns it.
type Generator struct {
	datacenter int64
	worker     int64

	lastMillis int64
	sequence   int64

	now func() time.Time
}

func NewGenerator(datacenter, worker int64) (*Generator, error) {
	if datacenter < 0 || datacenter > maxDatacenterID {
		return nil, fmt.Errorf("datacenter id must be between 0 and %d", maxDatacenterID)
	}
	if worker < 0 || worker > maxWorkerID {
		return nil, fmt.Errorf("worker id must be between 0 and %d", maxWorkerID)
	}

	return &Generator{
		datacenter: datacenter,
		worker:     worker,
		lastMillis: -1,
		now:        time.Now,
	}, nil
}

// Next never goes backwards: a stalled or rewound clock keeps the last millisecond,
// and an exhausted sequence borrows the next millisecond instead of waiting for it.
func (g *Generator) Next() ID {
	ms := g.now().UnixMilli() - epochMillis
	if ms < 0 {
		ms = 0
	}

	if ms > g.lastMillis {
		g.lastMillis = ms
		g.sequence = 0
	} else {
		g.sequence = (g.sequence + 1) & sequenceMask
		if g.sequence == 0 {
			g.lastMillis++
		}
	}

	return ID(g.lastMillis<<timestampShift |
		g.datacenter<<datacenterShift |
		g.worker<<workerShift |
		g.sequence)
}
