package shell

// Severity is the display category of an output record.
type Severity string

// Severities a record can carry. They only affect how hosts render text.
const (
	// SeveritySuccess marks normal command output.
	SeveritySuccess Severity = "success"
	// SeverityError marks failures such as unknown commands or bad paths.
	SeverityError Severity = "error"
	// SeverityWarning marks refusals that are not failures, like sudo.
	SeverityWarning Severity = "warning"
	// SeverityInfo marks echoed command lines, help and flavor text.
	SeverityInfo Severity = "info"
)

// Record is one block of output. Text may span several lines.
type Record struct {
	Text     string
	Severity Severity
}

// Output receives the records a session produces. Hosts render them; the
// session never reads them back.
type Output interface {
	Append(Record)
	Clear()
}

// Log is an in-memory Output.
type Log struct {
	records []Record
}

// NewLog returns an empty log.
func NewLog() *Log {
	return &Log{}
}

// Append adds a record to the end of the log.
func (l *Log) Append(r Record) {
	l.records = append(l.records, r)
}

// Clear drops every record.
func (l *Log) Clear() {
	l.records = nil
}

// Records returns a copy of the records in insertion order.
func (l *Log) Records() []Record {
	out := make([]Record, len(l.records))
	copy(out, l.records)
	return out
}

// Last returns the most recent record and whether there was one.
func (l *Log) Last() (Record, bool) {
	if len(l.records) == 0 {
		return Record{}, false
	}
	return l.records[len(l.records)-1], true
}
