package getarg

import "sync"

// emptyArguments backs a Store that has not parsed anything yet.
var emptyArguments = newParsedArguments(0)

// Store holds the ParsedArguments of a process behind a lock, for programs
// that want one shared table instead of passing a value around. Parse
// replaces the table wholesale; lookups always see a complete table.
type Store struct {
	mu   sync.RWMutex
	args *ParsedArguments
}

// NewStore creates a Store holding an empty table.
func NewStore() *Store {
	return &Store{args: emptyArguments}
}

// Parse parses args and swaps the result in, discarding the previous table.
func (s *Store) Parse(args []string) *ParsedArguments {
	parsed := Parse(args)

	s.mu.Lock()
	s.args = parsed
	s.mu.Unlock()

	return parsed
}

// Current returns the table installed by the last Parse.
func (s *Store) Current() *ParsedArguments {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.args == nil {
		return emptyArguments
	}
	return s.args
}

// GetBoolArg is ParsedArguments.GetBoolArg on the current table.
func (s *Store) GetBoolArg(name string, def bool) bool {
	return s.Current().GetBoolArg(name, def)
}

// GetArg is ParsedArguments.GetArg on the current table.
func (s *Store) GetArg(name, def string) string {
	return s.Current().GetArg(name, def)
}

// GetIntArg is ParsedArguments.GetIntArg on the current table.
func (s *Store) GetIntArg(name string, def int64) int64 {
	return s.Current().GetIntArg(name, def)
}
