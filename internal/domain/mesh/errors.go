package mesh

import (
	"errors"
	"fmt"
)

// ErrorKind is one of the four disjoint failure categories the planner
// can report (§7). It is a closed tag, not an exception hierarchy.
type ErrorKind string

const (
	InvalidInput        ErrorKind = "InvalidInput"
	TopologyUnreachable ErrorKind = "TopologyUnreachable"
	ChannelAssignment   ErrorKind = "ChannelAssignment"
	InternalInvariant   ErrorKind = "InternalInvariant"
)

// Error is the planner's single error type. It carries enough structured
// detail for a caller to report the §7 detail columns without parsing a
// message string.
type Error struct {
	Kind    ErrorKind
	Message string
	Details map[string]any
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// KindOf extracts the ErrorKind from err if err is, or wraps, a *Error.
func KindOf(err error) (ErrorKind, bool) {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind, true
	}
	return "", false
}

// NewInvalidInputError reports a §4.1 validation failure.
func NewInvalidInputError(field string, value any, requirement string) *Error {
	return &Error{
		Kind:    InvalidInput,
		Message: fmt.Sprintf("%s: %s", field, requirement),
		Details: map[string]any{
			"field":       field,
			"value":       value,
			"requirement": requirement,
		},
	}
}

// NewTopologyUnreachableError reports that the generator could not connect
// every node under the configured constraints.
func NewTopologyUnreachableError(unreachable []string, treeSize int) *Error {
	return &Error{
		Kind:    TopologyUnreachable,
		Message: fmt.Sprintf("%d node(s) could not be attached to the tree", len(unreachable)),
		Details: map[string]any{
			"unreachable": unreachable,
			"tree_size":   treeSize,
		},
	}
}

// ChannelAttempt records one (bandwidth, channel) candidate the assigner
// tried and rejected for a node/band, and why.
type ChannelAttempt struct {
	Bandwidth   int      `json:"bandwidth"`
	Channel     int      `json:"channel"`
	Conflicting []string `json:"conflicting"`
}

// NewChannelAssignmentError reports that the assigner exhausted every
// candidate for (node, band).
func NewChannelAssignmentError(node string, band Band, attempted []ChannelAttempt) *Error {
	conflicting := map[string]struct{}{}
	for _, a := range attempted {
		for _, c := range a.Conflicting {
			conflicting[c] = struct{}{}
		}
	}
	names := make([]string, 0, len(conflicting))
	for id := range conflicting {
		names = append(names, id)
	}
	return &Error{
		Kind:    ChannelAssignment,
		Message: fmt.Sprintf("no feasible channel for node %s on band %s", node, band),
		Details: map[string]any{
			"node":      node,
			"band":      band.String(),
			"attempted": attempted,
			"conflicts": names,
		},
	}
}

// NewInternalInvariantError reports that a post-condition check found the
// planner's own output inconsistent.
func NewInternalInvariantError(description string) *Error {
	return &Error{
		Kind:    InternalInvariant,
		Message: description,
		Details: map[string]any{"description": description},
	}
}
