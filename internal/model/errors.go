package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidInput is wrapped by InvalidInputError.
	ErrInvalidInput = errors.New("invalid input")

	// ErrGraphInconsistency is wrapped by GraphInconsistencyError.
	ErrGraphInconsistency = errors.New("graph inconsistency")
)

// InvalidInputError reports change-set identifiers absent from the graph.
type InvalidInputError struct {
	IDs []TypeID
}

func (e *InvalidInputError) Error() string {
	ids := make([]string, 0, len(e.IDs))
	for _, id := range e.IDs {
		ids = append(ids, string(id))
	}

	return fmt.Sprintf("%s: change set references unknown types: %s", ErrInvalidInput, strings.Join(ids, ", "))
}

func (e *InvalidInputError) Unwrap() error {
	return ErrInvalidInput
}

// GraphInconsistencyError reports an edge whose endpoint is not a graph node.
type GraphInconsistencyError struct {
	Edge    EdgeKind
	From    TypeID
	To      TypeID
	Missing TypeID
}

func (e *GraphInconsistencyError) Error() string {
	return fmt.Sprintf("%s: %s edge %s -> %s references unknown type %s",
		ErrGraphInconsistency, e.Edge, e.From, e.To, e.Missing)
}

func (e *GraphInconsistencyError) Unwrap() error {
	return ErrGraphInconsistency
}
