// types.go — violation kinds, the Violation value, the Report
// accumulator, and the matching sentinel errors.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers branch with
//     errors.Is(v, ErrX), never by string comparison.
//   - A Violation wraps exactly one sentinel via Unwrap.
//   - Validation never panics; it accumulates.
package validate

import (
	"errors"
	"fmt"
)

// Sentinel errors, one per violation kind.
var (
	// ErrDuplicateID indicates a node or segment ID used more than once.
	ErrDuplicateID = errors.New("validate: duplicate identifier")

	// ErrDanglingReference indicates a segment endpoint that names a
	// non-existent node.
	ErrDanglingReference = errors.New("validate: dangling node reference")

	// ErrSourceCount indicates zero or multiple source nodes.
	ErrSourceCount = errors.New("validate: source count")

	// ErrNonPositiveDimension indicates a segment length or diameter
	// that is not strictly positive, or a negative roughness.
	ErrNonPositiveDimension = errors.New("validate: non-positive dimension")

	// ErrNegativeDemand indicates a node with demand below zero.
	ErrNegativeDemand = errors.New("validate: negative demand")

	// ErrCycleOrNotSpanning indicates that the oriented segment set does
	// not form a spanning tree rooted at the source.
	ErrCycleOrNotSpanning = errors.New("validate: cycle or non-spanning-tree")

	// ErrDisconnectedNode indicates a node with no path from the source.
	ErrDisconnectedNode = errors.New("validate: node disconnected from source")

	// ErrNoActiveDemand indicates that no active hydrant carries
	// positive demand.
	ErrNoActiveDemand = errors.New("validate: no active demand")
)

// Kind enumerates violation categories; each maps to one sentinel.
type Kind uint8

const (
	DuplicateID Kind = iota
	DanglingReference
	SourceCount
	NonPositiveDimension
	NegativeDemand
	CycleOrNotSpanning
	DisconnectedNode
	NoActiveDemand
)

// sentinelOf maps a Kind to its sentinel error.
var sentinelOf = map[Kind]error{
	DuplicateID:          ErrDuplicateID,
	DanglingReference:    ErrDanglingReference,
	SourceCount:          ErrSourceCount,
	NonPositiveDimension: ErrNonPositiveDimension,
	NegativeDemand:       ErrNegativeDemand,
	CycleOrNotSpanning:   ErrCycleOrNotSpanning,
	DisconnectedNode:     ErrDisconnectedNode,
	NoActiveDemand:       ErrNoActiveDemand,
}

// Violation is one structural or field invariant failure.
type Violation struct {
	// Kind categorizes the failure.
	Kind Kind

	// ID names the offending node or segment, when one exists.
	ID string

	// Msg is the human-readable description.
	Msg string
}

// Error implements the error interface.
func (v Violation) Error() string {
	base := sentinelOf[v.Kind].Error()
	if v.Msg == "" {
		return base
	}

	return fmt.Sprintf("%s: %s", base, v.Msg)
}

// Unwrap exposes the Kind's sentinel for errors.Is.
func (v Violation) Unwrap() error { return sentinelOf[v.Kind] }

// Report accumulates violations across all validation passes.
type Report struct {
	// Violations lists every failure found, in check order.
	Violations []Violation
}

// OK reports whether the network passed every check.
func (r *Report) OK() bool { return len(r.Violations) == 0 }

// Messages renders every violation as a string, in check order.
func (r *Report) Messages() []string {
	out := make([]string, len(r.Violations))
	for i, v := range r.Violations {
		out[i] = v.Error()
	}

	return out
}

// add appends a violation with formatted message context.
func (r *Report) add(kind Kind, id, format string, args ...interface{}) {
	r.Violations = append(r.Violations, Violation{
		Kind: kind,
		ID:   id,
		Msg:  fmt.Sprintf(format, args...),
	})
}
