package interfaces

//go:generate mockgen -source=locker_interface.go -destination=mocks/locker_interface_mock.go

import "context"

// ILocker provides mutual exclusion across service instances.
//
// The returned release func must be called once the critical section ends.
type ILocker interface {
	Acquire(ctx context.Context, key string) (release func(context.Context) error, err error)
}
