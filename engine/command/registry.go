// Package command maps input tokens to executable actions.
//
// Matching is exact-string and case-sensitive unless the registry was built
// with case folding. Aliases are explicit extra tokens bound to an existing
// command; there is no prefix or fuzzy matching.
package command

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrDuplicate  = errors.New("command already registered")
	ErrNilAction  = errors.New("command has no action")
	ErrEmptyName  = errors.New("command name is empty")
	ErrNoSuchName = errors.New("no command with that name")
)

// UnrecognizedError is returned by Resolve for a token that names no command.
type UnrecognizedError struct {
	Token string
}

func (e *UnrecognizedError) Error() string {
	if e.Token == "" {
		return "no command entered; type 'help' for a list of commands"
	}
	return fmt.Sprintf("%q is not a command; type 'help' for a list of commands", e.Token)
}

// Command is a named, described, executable unit.
type Command struct {
	Name    string
	Help    string
	Action  Action
	Aliases []string
}

// Registry holds the recognized commands.
type Registry struct {
	fold    bool
	byToken map[string]*Command
	order   []*Command
}

// NewRegistry creates an empty registry. With fold set, tokens are matched
// case-insensitively.
func NewRegistry(fold bool) *Registry {
	return &Registry{fold: fold, byToken: make(map[string]*Command)}
}

// FoldCase reports whether the registry matches case-insensitively.
func (r *Registry) FoldCase() bool { return r.fold }

func (r *Registry) key(token string) string {
	if r.fold {
		return strings.ToLower(token)
	}
	return token
}

// Register binds name to action.
func (r *Registry) Register(name, help string, action Action) error {
	if name == "" {
		return ErrEmptyName
	}
	if action == nil {
		return fmt.Errorf("%w: %s", ErrNilAction, name)
	}
	k := r.key(name)
	if _, ok := r.byToken[k]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicate, name)
	}
	cmd := &Command{Name: name, Help: help, Action: action}
	r.byToken[k] = cmd
	r.order = append(r.order, cmd)
	return nil
}

// RegisterAlias binds an extra token to the command registered as name.
func (r *Registry) RegisterAlias(alias, name string) error {
	if alias == "" {
		return ErrEmptyName
	}
	cmd, ok := r.byToken[r.key(name)]
	if !ok || r.key(cmd.Name) != r.key(name) {
		return fmt.Errorf("%w: %s", ErrNoSuchName, name)
	}
	k := r.key(alias)
	if _, ok := r.byToken[k]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicate, alias)
	}
	r.byToken[k] = cmd
	cmd.Aliases = append(cmd.Aliases, alias)
	return nil
}

// IsRecognized reports whether token names a command or alias.
func (r *Registry) IsRecognized(token string) bool {
	_, ok := r.byToken[r.key(token)]
	return ok
}

// Resolve returns the command bound to token, or an *UnrecognizedError.
func (r *Registry) Resolve(token string) (*Command, error) {
	cmd, ok := r.byToken[r.key(token)]
	if !ok {
		return nil, &UnrecognizedError{Token: token}
	}
	return cmd, nil
}

// Entries returns the commands in registration order.
func (r *Registry) Entries() []*Command {
	out := make([]*Command, len(r.order))
	copy(out, r.order)
	return out
}
