package command

import (
	"sort"
	"strings"
	"sync"

	"github.com/KindaJayant/termfolio/internal/session"
)

// Actions is the set of side-effecting callbacks a command handler may
// invoke. It is the only channel through which a handler affects anything
// beyond its own return value; handlers never touch the session store
// directly.
type Actions struct {
	Clear               func()
	SetBoost            func(active bool)
	SetGlitch           func(active bool)
	SetTheme            func(name string)
	RequestThemeConfirm func()
	SetChatMode         func(active bool)
}

// Command defines a single terminal command.
type Command struct {
	Name        string
	Description string
	Hidden      bool
	Execute     func(args []string, actions Actions) session.Output
}

// Registry holds all available commands. It is populated once at
// construction and never mutated afterward; lookup is case-insensitive.
type Registry struct {
	mu       sync.RWMutex
	commands map[string]*Command
	order    []string
}

// NewRegistry returns a registry with all builtin commands registered.
func NewRegistry() *Registry {
	r := &Registry{commands: make(map[string]*Command)}
	registerBuiltins(r)
	return r
}

// Register adds a command to the registry. Names are keyed lowercase.
func (r *Registry) Register(cmd *Command) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := strings.ToLower(cmd.Name)
	if _, exists := r.commands[key]; !exists {
		r.order = append(r.order, key)
	}
	r.commands[key] = cmd
}

// Get retrieves a command by name, case-insensitively.
func (r *Registry) Get(name string) (*Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.commands[strings.ToLower(name)]
	return c, ok
}

// Names returns all registered command names, hidden ones included, sorted.
// This is the candidate set for autocompletion.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Visible returns the non-hidden commands in registration order, for the
// help listing.
func (r *Registry) Visible() []*Command {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var cmds []*Command
	for _, name := range r.order {
		if c := r.commands[name]; !c.Hidden {
			cmds = append(cmds, c)
		}
	}
	return cmds
}

// Dispatcher routes submitted input lines to command handlers and records
// the results in the session store.
type Dispatcher struct {
	registry *Registry
	store    *session.Store
	actions  Actions
}

// NewDispatcher wires a registry to a store and the capability set handed
// to handlers.
func NewDispatcher(registry *Registry, store *session.Store, actions Actions) *Dispatcher {
	return &Dispatcher{registry: registry, store: store, actions: actions}
}

// Dispatch processes one submitted line. Blank input still appends an empty
// entry so history navigation sees the submission. The clear sentinel wipes
// the transcript instead of appending.
func (d *Dispatcher) Dispatch(raw string) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		d.store.Append("", session.Output{})
		return
	}

	fields := strings.Fields(trimmed)
	name, args := fields[0], fields[1:]

	cmd, ok := d.registry.Get(name)
	if !ok {
		d.store.Append(trimmed, session.Text(
			"Command not found: "+name+". Type 'help' for available commands."))
		return
	}

	out := cmd.Execute(args, d.actions)
	if out.IsClear() {
		d.store.Clear()
		return
	}
	d.store.Append(trimmed, out)
}
