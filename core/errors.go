package core

import (
	"fmt"
)

type ErrorNotFound struct {
}

func (e ErrorNotFound) Error() string {
	return "Not Found"
}

func NewErrorNotFound() ErrorNotFound {
	return ErrorNotFound{}
}

type ErrorAlreadyExists struct {
}

func (e ErrorAlreadyExists) Error() string {
	return "Already Exists"
}

func NewErrorAlreadyExists() ErrorAlreadyExists {
	return ErrorAlreadyExists{}
}

type ErrorPermissionDenied struct {
}

func (e ErrorPermissionDenied) Error() string {
	return "Permission Denied"
}

func NewErrorPermissionDenied() ErrorPermissionDenied {
	return ErrorPermissionDenied{}
}

type ErrorAlreadyDeleted struct {
}

func (e ErrorAlreadyDeleted) Error() string {
	return "Already Deleted"
}

func NewErrorAlreadyDeleted() ErrorAlreadyDeleted {
	return ErrorAlreadyDeleted{}
}

type ErrorInvalidArgument struct {
	Reason string
}

func (e ErrorInvalidArgument) Error() string {
	return "Invalid Argument: " + e.Reason
}

func NewErrorInvalidArgument(reason string) ErrorInvalidArgument {
	return ErrorInvalidArgument{Reason: reason}
}

// ErrorOptimisticLocking is returned when the version precondition of an update fails.
// The caller has to re-read the entity before retrying.
type ErrorOptimisticLocking struct {
	ID      string
	Version uint64
}

func (e ErrorOptimisticLocking) Error() string {
	return fmt.Sprintf("optimistic locking error: %s@%d", e.ID, e.Version)
}

func NewErrorOptimisticLocking(id string, version uint64) ErrorOptimisticLocking {
	return ErrorOptimisticLocking{ID: id, Version: version}
}

// ErrorFetch is an upstream role/user source failure
type ErrorFetch struct {
	Source string
	Cause  error
}

func (e ErrorFetch) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Source, e.Cause)
}

func (e ErrorFetch) Unwrap() error {
	return e.Cause
}

func NewErrorFetch(source string, cause error) ErrorFetch {
	return ErrorFetch{Source: source, Cause: cause}
}

// ErrorPolicy is a failed mutation of the policy fact set
type ErrorPolicy struct {
	Reason string
	Cause  error
}

func (e ErrorPolicy) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("policy: %s: %v", e.Reason, e.Cause)
	}
	return "policy: " + e.Reason
}

func (e ErrorPolicy) Unwrap() error {
	return e.Cause
}

func NewErrorPolicy(reason string, cause error) ErrorPolicy {
	return ErrorPolicy{Reason: reason, Cause: cause}
}

type ErrorChannelClosed struct {
	Actor string
}

func (e ErrorChannelClosed) Error() string {
	return e.Actor + ": channel closed"
}

func NewErrorChannelClosed(actor string) ErrorChannelClosed {
	return ErrorChannelClosed{Actor: actor}
}

type ErrorGeneratorUnavailable struct {
}

func (e ErrorGeneratorUnavailable) Error() string {
	return "id generator unavailable"
}

func NewErrorGeneratorUnavailable() ErrorGeneratorUnavailable {
	return ErrorGeneratorUnavailable{}
}

// ErrorStore wraps a failure of the underlying document store
type ErrorStore struct {
	Op    string
	Cause error
}

func (e ErrorStore) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Cause)
}

func (e ErrorStore) Unwrap() error {
	return e.Cause
}

func NewErrorStore(op string, cause error) ErrorStore {
	return ErrorStore{Op: op, Cause: cause}
}
