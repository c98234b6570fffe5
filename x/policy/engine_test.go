package policy

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/totegamma/rolegate/core"
)

func TestEngineRoleMembership(t *testing.T) {
	engine, err := NewEngine()
	if !assert.NoError(t, err) {
		return
	}

	assert.NoError(t, engine.AddPolicyFact("editor", "/posts/write"))
	assert.NoError(t, engine.AddRoleAssignment("alice", "editor"))

	ok, err := engine.Evaluate("alice", "/posts/write")
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = engine.Evaluate("alice", "/posts/delete")
	assert.NoError(t, err)
	assert.False(t, ok)

	// user not in the role
	ok, err = engine.Evaluate("bob", "/posts/write")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestEngineExactMatchOnly(t *testing.T) {
	engine, err := NewEngine()
	if !assert.NoError(t, err) {
		return
	}

	assert.NoError(t, engine.AddPolicyFact("reader", "/posts/*"))
	assert.NoError(t, engine.AddRoleAssignment("carol", "reader"))

	ok, err := engine.Evaluate("carol", "/posts/1")
	assert.NoError(t, err)
	assert.False(t, ok)

	ok, err = engine.Evaluate("carol", "/posts/*")
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestEngineRejectsMalformedFacts(t *testing.T) {
	engine, err := NewEngine()
	if !assert.NoError(t, err) {
		return
	}

	var policyErr core.ErrorPolicy

	err = engine.AddPolicyFact("", "/posts/write")
	assert.True(t, errors.As(err, &policyErr))

	err = engine.AddPolicyFact("editor", "")
	assert.True(t, errors.As(err, &policyErr))

	err = engine.AddRoleAssignment("", "editor")
	assert.True(t, errors.As(err, &policyErr))

	err = engine.AddRoleAssignment("alice", "")
	assert.True(t, errors.As(err, &policyErr))

	assert.Empty(t, engine.Policies())
	assert.Empty(t, engine.Assignments())
}

func TestEngineEmptyRequestIsDenied(t *testing.T) {
	engine, err := NewEngine()
	if !assert.NoError(t, err) {
		return
	}

	ok, err := engine.Evaluate("", "")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestEngineBypassSubject(t *testing.T) {
	engine, err := NewEngine(WithBypassSubject("root"))
	if !assert.NoError(t, err) {
		return
	}

	assert.NoError(t, engine.AddPolicyFact("editor", "/posts/write"))
	assert.NoError(t, engine.AddRoleAssignment("alice", "editor"))

	ok, err := engine.Evaluate("root", "/anything")
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = engine.Evaluate("alice", "/anything")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestEngineWithoutBypassHasNoSuperuser(t *testing.T) {
	engine, err := NewEngine()
	if !assert.NoError(t, err) {
		return
	}

	assert.NoError(t, engine.AddPolicyFact("editor", "/posts/write"))

	ok, err := engine.Evaluate("root", "/posts/write")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestEngineInvalidBypassSubject(t *testing.T) {
	_, err := NewEngine(WithBypassSubject(`x" || true || "`))
	assert.Error(t, err)
}

func TestEngineClear(t *testing.T) {
	engine, err := NewEngine()
	if !assert.NoError(t, err) {
		return
	}

	assert.NoError(t, engine.AddPolicyFact("editor", "/posts/write"))
	assert.NoError(t, engine.AddPolicyFact("editor", "/posts/write"))
	assert.NoError(t, engine.AddRoleAssignment("alice", "editor"))
	assert.Len(t, engine.Policies(), 1)
	assert.Len(t, engine.Assignments(), 1)

	assert.NoError(t, engine.Clear())
	assert.Empty(t, engine.Policies())
	assert.Empty(t, engine.Assignments())

	ok, err := engine.Evaluate("alice", "/posts/write")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestEngineUserNamedLikeRole(t *testing.T) {
	engine, err := NewEngine()
	if !assert.NoError(t, err) {
		return
	}

	assert.NoError(t, engine.AddPolicyFact("admin", "/admin/rbac/reset"))
	assert.NoError(t, engine.AddPolicyFact("viewer", "/posts/read"))
	assert.NoError(t, engine.AddRoleAssignment("admin", "viewer"))

	// the user "admin" only holds viewer
	ok, err := engine.Evaluate("admin", "/admin/rbac/reset")
	assert.NoError(t, err)
	assert.False(t, ok)

	ok, err = engine.Evaluate("admin", "/posts/read")
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestEngineAssignmentsDoNotChain(t *testing.T) {
	engine, err := NewEngine()
	if !assert.NoError(t, err) {
		return
	}

	assert.NoError(t, engine.AddPolicyFact("admin", "/admin/rbac/reset"))
	assert.NoError(t, engine.AddPolicyFact("editor", "/posts/write"))
	assert.NoError(t, engine.AddRoleAssignment("alice", "editor"))
	assert.NoError(t, engine.AddRoleAssignment("editor", "admin"))

	ok, err := engine.Evaluate("alice", "/admin/rbac/reset")
	assert.NoError(t, err)
	assert.False(t, ok)

	ok, err = engine.Evaluate("alice", "/posts/write")
	assert.NoError(t, err)
	assert.True(t, ok)

	// the user "editor" holds admin and nothing of the editor role
	ok, err = engine.Evaluate("editor", "/admin/rbac/reset")
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = engine.Evaluate("editor", "/posts/write")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestEngineBypassIsNotARole(t *testing.T) {
	engine, err := NewEngine(WithBypassSubject("root"))
	if !assert.NoError(t, err) {
		return
	}

	assert.NoError(t, engine.AddPolicyFact("root", "/posts/write"))
	assert.NoError(t, engine.AddRoleAssignment("alice", "root"))

	// holding a role named like the bypass subject grants only that role's facts
	ok, err := engine.Evaluate("alice", "/anything")
	assert.NoError(t, err)
	assert.False(t, ok)

	ok, err = engine.Evaluate("alice", "/posts/write")
	assert.NoError(t, err)
	assert.True(t, ok)
}
