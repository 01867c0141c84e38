package visit

import "github.com/vegerot/quick-lint-js/lexer"

// eventKind tags which fields of a recorded event are meaningful.
type eventKind int

const (
	evEnterBlockScope eventKind = iota
	evEnterClassScope
	evEnterForScope
	evEnterFunctionScope
	evEnterFunctionScopeBody
	evEnterNamedFunctionScope
	evExitBlockScope
	evExitClassScope
	evExitForScope
	evExitFunctionScope
	evPropertyDeclaration
	evVariableDeclaration
	evVariableAssignment
	evVariableTypeofUse
	evVariableUse
	evEndOfModule
)

type event struct {
	kind eventKind
	name lexer.Identifier
	vk   VariableKind
}

// Buffer is the buffering visitor described in spec.md §4.4: the parser
// records a function or arrow body's events here instead of forwarding them
// to the real Visitor immediately, so that the enclosing function's header
// (in particular, its own parameter declarations) can finish being visited
// first. Replay then delivers the buffered events in their original source
// order.
//
// Grounded on the same need T14Raptor-go-fAST's parser.go addresses with its
// deferred function-body parsing, generalized here to an explicit recorder
// rather than a closure list, since Visitor events (not closures) are what
// spec.md's pipeline threads through.
type Buffer struct {
	events []event
}

func (b *Buffer) EnterBlockScope()    { b.events = append(b.events, event{kind: evEnterBlockScope}) }
func (b *Buffer) EnterClassScope()    { b.events = append(b.events, event{kind: evEnterClassScope}) }
func (b *Buffer) EnterForScope()      { b.events = append(b.events, event{kind: evEnterForScope}) }
func (b *Buffer) EnterFunctionScope() { b.events = append(b.events, event{kind: evEnterFunctionScope}) }
func (b *Buffer) EnterFunctionScopeBody() {
	b.events = append(b.events, event{kind: evEnterFunctionScopeBody})
}
func (b *Buffer) EnterNamedFunctionScope(name lexer.Identifier) {
	b.events = append(b.events, event{kind: evEnterNamedFunctionScope, name: name})
}
func (b *Buffer) ExitBlockScope()    { b.events = append(b.events, event{kind: evExitBlockScope}) }
func (b *Buffer) ExitClassScope()    { b.events = append(b.events, event{kind: evExitClassScope}) }
func (b *Buffer) ExitForScope()      { b.events = append(b.events, event{kind: evExitForScope}) }
func (b *Buffer) ExitFunctionScope() { b.events = append(b.events, event{kind: evExitFunctionScope}) }

func (b *Buffer) PropertyDeclaration(name lexer.Identifier) {
	b.events = append(b.events, event{kind: evPropertyDeclaration, name: name})
}
func (b *Buffer) VariableDeclaration(name lexer.Identifier, kind VariableKind) {
	b.events = append(b.events, event{kind: evVariableDeclaration, name: name, vk: kind})
}
func (b *Buffer) VariableAssignment(name lexer.Identifier) {
	b.events = append(b.events, event{kind: evVariableAssignment, name: name})
}
func (b *Buffer) VariableTypeofUse(name lexer.Identifier) {
	b.events = append(b.events, event{kind: evVariableTypeofUse, name: name})
}
func (b *Buffer) VariableUse(name lexer.Identifier) {
	b.events = append(b.events, event{kind: evVariableUse, name: name})
}
func (b *Buffer) EndOfModule() { b.events = append(b.events, event{kind: evEndOfModule}) }

// Replay delivers every buffered event to target, in recorded order, then
// clears the buffer. A Buffer must not be replayed twice.
func (b *Buffer) Replay(target Visitor) {
	for _, e := range b.events {
		switch e.kind {
		case evEnterBlockScope:
			target.EnterBlockScope()
		case evEnterClassScope:
			target.EnterClassScope()
		case evEnterForScope:
			target.EnterForScope()
		case evEnterFunctionScope:
			target.EnterFunctionScope()
		case evEnterFunctionScopeBody:
			target.EnterFunctionScopeBody()
		case evEnterNamedFunctionScope:
			target.EnterNamedFunctionScope(e.name)
		case evExitBlockScope:
			target.ExitBlockScope()
		case evExitClassScope:
			target.ExitClassScope()
		case evExitForScope:
			target.ExitForScope()
		case evExitFunctionScope:
			target.ExitFunctionScope()
		case evPropertyDeclaration:
			target.PropertyDeclaration(e.name)
		case evVariableDeclaration:
			target.VariableDeclaration(e.name, e.vk)
		case evVariableAssignment:
			target.VariableAssignment(e.name)
		case evVariableTypeofUse:
			target.VariableTypeofUse(e.name)
		case evVariableUse:
			target.VariableUse(e.name)
		case evEndOfModule:
			target.EndOfModule()
		}
	}
	b.events = nil
}

// Empty reports whether no events have been recorded.
func (b *Buffer) Empty() bool { return len(b.events) == 0 }

var _ Visitor = (*Buffer)(nil)
