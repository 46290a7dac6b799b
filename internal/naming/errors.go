package naming

import (
	"errors"
	"fmt"
)

// ErrCollision matches every naming collision, at method or interface level.
var ErrCollision = errors.New("naming collision")

// CollisionError reports two operations that resolve to the same method
// name inside one interface.
type CollisionError struct {
	Interface         string
	Method            string
	FirstOperationID  string
	SecondOperationID string
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("method %q in interface %q is produced by both operation %q and operation %q",
		e.Method, e.Interface, e.FirstOperationID, e.SecondOperationID)
}

func (e *CollisionError) Is(target error) bool {
	return target == ErrCollision
}

// InterfaceCollisionError reports two partition buckets that resolve to the
// same interface name (for example tags "pet" and "Pet").
type InterfaceCollisionError struct {
	Name      string
	FirstKey  string
	SecondKey string
}

func (e *InterfaceCollisionError) Error() string {
	return fmt.Sprintf("interface name %q is produced by both group %q and group %q",
		e.Name, e.FirstKey, e.SecondKey)
}

func (e *InterfaceCollisionError) Is(target error) bool {
	return target == ErrCollision
}

// GroupNameError reports a partition group whose key has no letters or
// digits, so it cannot contribute to an interface name.
type GroupNameError struct {
	Key string
}

func (e *GroupNameError) Error() string {
	return fmt.Sprintf("group %q yields no identifier for an interface name", e.Key)
}
