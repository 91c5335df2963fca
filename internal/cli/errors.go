package cli

import "fmt"

type notFoundError struct {
	kind string
	id   string
}

func (e notFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.kind, e.id)
}

func errNotFound(kind, id string) error {
	return notFoundError{kind: kind, id: id}
}

type needsConfirmError struct {
	action string
}

func (e needsConfirmError) Error() string {
	return fmt.Sprintf("%s is destructive; re-run with --yes to confirm", e.action)
}

// errNeedsConfirm gates destructive operations at the caller boundary.
// Declining (no --yes) never reaches the store, so there is no partial
// mutation to undo.
func errNeedsConfirm(action string) error {
	return needsConfirmError{action: action}
}
