package metrics

import (
	"sync/atomic"
	"time"
)

type GameMetric struct {
	StartTime  time.Time     `json:"startTime"`
	Duration   time.Duration `json:"duration"`
	Actions    int           `json:"actions"`
	Rejected   int           `json:"rejected"`
	Attacks    int           `json:"attacks"`
	Conquests  int           `json:"conquests"`
	Turns      int           `json:"turns"`
	Undos      int           `json:"undos"`
	Redos      int           `json:"redos"`
	Resets     int           `json:"resets"`
	Finished   bool          `json:"finished"`
	Winner     int           `json:"winner"` // Player ID, 0 if none
	TotalMoves int           `json:"totalMoves"`
}

type Collector interface {
	Start()
	AddAction(rejected bool)
	AddAttack(conquered bool)
	AddTurn()
	AddUndo()
	AddRedo()
	AddReset()
	SetWinner(player int)
	ClearWinner()
	Complete() GameMetric
}

type collector struct {
	startTime atomic.Int64
	actions   atomic.Int32
	rejected  atomic.Int32
	attacks   atomic.Int32
	conquests atomic.Int32
	turns     atomic.Int32
	undos     atomic.Int32
	redos     atomic.Int32
	resets    atomic.Int32
	finished  atomic.Bool
	winner    atomic.Int32
}

func NewCollector() Collector {
	c := &collector{}
	c.Start()
	return c
}

func (m *collector) Start() {
	m.startTime.Store(time.Now().UnixNano())
}

func (m *collector) AddAction(rejected bool) {
	m.actions.Add(1)
	if rejected {
		m.rejected.Add(1)
	}
}

func (m *collector) AddAttack(conquered bool) {
	m.attacks.Add(1)
	if conquered {
		m.conquests.Add(1)
	}
}

func (m *collector) AddTurn() {
	m.turns.Add(1)
}

func (m *collector) AddUndo() {
	m.undos.Add(1)
}

func (m *collector) AddRedo() {
	m.redos.Add(1)
}

func (m *collector) AddReset() {
	m.resets.Add(1)
	m.ClearWinner()
}

func (m *collector) SetWinner(player int) {
	m.finished.Store(true)
	m.winner.Store(int32(player))
}

// ClearWinner marks the game as running again, as after undoing the final move.
func (m *collector) ClearWinner() {
	m.finished.Store(false)
	m.winner.Store(0)
}

func (m *collector) Complete() GameMetric {
	start := time.Unix(0, m.startTime.Load())
	actions := int(m.actions.Load())
	return GameMetric{
		StartTime:  start,
		Duration:   time.Since(start),
		Actions:    actions,
		Rejected:   int(m.rejected.Load()),
		Attacks:    int(m.attacks.Load()),
		Conquests:  int(m.conquests.Load()),
		Turns:      int(m.turns.Load()),
		Undos:      int(m.undos.Load()),
		Redos:      int(m.redos.Load()),
		Resets:     int(m.resets.Load()),
		Finished:   m.finished.Load(),
		Winner:     int(m.winner.Load()),
		TotalMoves: actions - int(m.rejected.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                   {}
func (m *dummyCollector) AddAction(rejected bool)  {}
func (m *dummyCollector) AddAttack(conquered bool) {}
func (m *dummyCollector) AddTurn()                 {}
func (m *dummyCollector) AddUndo()                 {}
func (m *dummyCollector) AddRedo()                 {}
func (m *dummyCollector) AddReset()                {}
func (m *dummyCollector) SetWinner(player int)     {}
func (m *dummyCollector) ClearWinner()             {}
func (m *dummyCollector) Complete() GameMetric     { return GameMetric{} }
