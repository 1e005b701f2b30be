package reportv1

import (
	"strconv"
	"time"

	commandv1 "github.com/muhammadchandra19/limit-order-book/internal/domain/command/v1"
	orderbookv1 "github.com/muhammadchandra19/limit-order-book/internal/domain/orderbook/v1"
)

// Header is the first row of a timing report.
var Header = []string{"command", "nanoseconds", "executed", "rebalances"}

// Entry is the timing of one processed command.
type Entry struct {
	Command     commandv1.Type
	Nanoseconds int64
	Executed    int
	Rebalances  int
}

// NewEntry creates an entry from the elapsed time and the report of a command.
func NewEntry(command commandv1.Type, elapsed time.Duration, report orderbookv1.Report) Entry {
	return Entry{
		Command:     command,
		Nanoseconds: elapsed.Nanoseconds(),
		Executed:    report.Executed,
		Rebalances:  report.Rebalances,
	}
}

// Row returns the entry as report columns in Header order.
func (e Entry) Row() []string {
	return []string{
		string(e.Command),
		strconv.FormatInt(e.Nanoseconds, 10),
		strconv.Itoa(e.Executed),
		strconv.Itoa(e.Rebalances),
	}
}
