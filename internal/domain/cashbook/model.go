package cashbook

import "time"

// Direction marks money coming in ("+") or going out ("-").
type Direction string

const (
	DirectionCredit Direction = "+"
	DirectionDebit  Direction = "-"
)

func (d Direction) Valid() bool {
	return d == DirectionCredit || d == DirectionDebit
}

func (d Direction) Label() string {
	if d == DirectionDebit {
		return "Keluar"
	}
	return "Masuk"
}

// MaxAmount is the largest single entry accepted, one trillion rupiah.
const MaxAmount int64 = 1_000_000_000_000

// Entry amounts are whole rupiah.
type Entry struct {
	ID          string
	Date        time.Time
	Description string
	Direction   Direction
	Amount      int64
}

func (e Entry) Signed() int64 {
	if e.Direction == DirectionDebit {
		return -e.Amount
	}
	return e.Amount
}

type AddEntryInput struct {
	Date        time.Time
	Description string
	Direction   Direction
	Amount      int64
}

type StatementLine struct {
	Entry
	RunningBalance int64
}

type Statement struct {
	Lines       []StatementLine
	TotalCredit int64
	TotalDebit  int64
	Balance     int64
}
