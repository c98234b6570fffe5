// Package policy is an in-memory matcher of role based allow rules
package policy

import (
	"github.com/casbin/casbin/v2"

	"github.com/totegamma/rolegate/core"
)

// Engine answers whether a subject may perform an action.
// Users and roles live in separate namespaces inside the enforcer, so a user
// named like a role neither inherits its facts nor links roles together.
// An Engine is not safe for concurrent use.
type Engine struct {
	enforcer *casbin.Enforcer
	bypass   string

	facts       []core.PolicyFact
	assignments []core.RoleAssignment
}

type Option func(*Engine)

// WithBypassSubject makes subject match every action regardless of its roles
func WithBypassSubject(subject string) Option {
	return func(e *Engine) {
		e.bypass = subject
	}
}

func NewEngine(opts ...Option) (*Engine, error) {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}

	if err := e.reset(); err != nil {
		return nil, err
	}

	return e, nil
}

func (e *Engine) reset() error {
	m, err := newModel(e.bypass)
	if err != nil {
		return core.NewErrorPolicy("failed to build model", err)
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return core.NewErrorPolicy("failed to create enforcer", err)
	}

	e.enforcer = enforcer
	e.facts = nil
	e.assignments = nil
	return nil
}

// Evaluate is true iff subject holds a role granted action, or subject is the bypass subject.
// Matching is exact; errors always come with false.
func (e *Engine) Evaluate(subject, action string) (bool, error) {
	if subject == "" || action == "" {
		return false, nil
	}

	ok, err := e.enforcer.Enforce(userKey(subject), action)
	if err != nil {
		return false, core.NewErrorPolicy("evaluation failed", err)
	}

	return ok, nil
}

func (e *Engine) AddPolicyFact(subject, action string) error {
	if subject == "" {
		return core.NewErrorPolicy("policy subject must not be empty", nil)
	}
	if action == "" {
		return core.NewErrorPolicy("policy action must not be empty", nil)
	}

	added, err := e.enforcer.AddPolicy(roleKey(subject), action)
	if err != nil {
		return core.NewErrorPolicy("failed to add policy", err)
	}
	if added {
		e.facts = append(e.facts, core.PolicyFact{Subject: subject, Action: action})
	}

	return nil
}

func (e *Engine) AddRoleAssignment(user, role string) error {
	if user == "" {
		return core.NewErrorPolicy("assignment user must not be empty", nil)
	}
	if role == "" {
		return core.NewErrorPolicy("assignment role must not be empty", nil)
	}

	added, err := e.enforcer.AddRoleForUser(userKey(user), roleKey(role))
	if err != nil {
		return core.NewErrorPolicy("failed to add role assignment", err)
	}
	if added {
		e.assignments = append(e.assignments, core.RoleAssignment{User: user, Role: role})
	}

	return nil
}

// Clear drops every fact and assignment
func (e *Engine) Clear() error {
	return e.reset()
}

func (e *Engine) Policies() []core.PolicyFact {
	out := make([]core.PolicyFact, len(e.facts))
	copy(out, e.facts)
	return out
}

func (e *Engine) Assignments() []core.RoleAssignment {
	out := make([]core.RoleAssignment, len(e.assignments))
	copy(out, e.assignments)
	return out
}
